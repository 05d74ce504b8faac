package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/daylily/internal/filter"
	"github.com/user/daylily/internal/model"
)

// Edit changes the active filter; the owner applies it to the gallery.
type Edit func(*filter.Spec)

// Text inputs, in panel order.
const (
	inputName = iota
	inputHybridizer
	inputYearStart
	inputYearEnd
	inputBloomMin
	inputBloomMax
	inputScapeMin
	inputScapeMax
	inputBranchesMin
	inputBranchesMax
	inputBudMin
	inputBudMax
	inputCount
)

// Range criteria backed by a pair of inputs.
const (
	rangeYear = iota
	rangeBloom
	rangeScape
	rangeBranches
	rangeBud
	rangeCount
)

type controlKind int

const (
	controlInput controlKind = iota
	controlToggle
)

// control is one focusable row of the panel.
type control struct {
	kind    controlKind
	label   string
	input   int // controlInput only
	toggle  Edit
	checked func(filter.Spec) bool
	count   func(filter.Facets) int
}

// FilterPanel edits the filter through text inputs and toggles. Every edit
// is reported back immediately so the grid re-filters as the user types.
type FilterPanel struct {
	keys     keyMap
	styles   Styles
	inputs   []textinput.Model
	controls []control
	focus    int
	errors   [rangeCount]string

	spec   filter.Spec
	facets filter.Facets
	width  int
	height int
}

// NewFilterPanel builds the panel with every control unfocused.
func NewFilterPanel(styles Styles) FilterPanel {
	p := FilterPanel{
		keys:   defaultKeyMap(),
		styles: styles,
		inputs: make([]textinput.Model, inputCount),
	}

	placeholders := [inputCount]string{
		"any", "any", "from", "to",
		"min", "max", "min", "max", "min", "max", "min", "max",
	}
	for i := range p.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 20
		p.inputs[i] = ti
	}

	p.controls = buildControls()
	return p
}

func inputControl(label string, input int) control {
	return control{kind: controlInput, label: label, input: input}
}

func toggleControl(label string, edit Edit, checked func(filter.Spec) bool, count func(filter.Facets) int) control {
	return control{kind: controlToggle, label: label, toggle: edit, checked: checked, count: count}
}

func buildControls() []control {
	controls := []control{
		inputControl("Name", inputName),
		toggleControl("Exact name",
			func(s *filter.Spec) { s.Name.Mode = flipMode(s.Name.Mode) },
			func(s filter.Spec) bool { return s.Name.Mode == filter.Exact }, nil),
		inputControl("Hybridizer", inputHybridizer),
		toggleControl("Exact hybridizer",
			func(s *filter.Spec) { s.Hybridizer.Mode = flipMode(s.Hybridizer.Mode) },
			func(s filter.Spec) bool { return s.Hybridizer.Mode == filter.Exact }, nil),
		inputControl("Year from", inputYearStart),
		inputControl("Year to", inputYearEnd),
		inputControl("Bloom size min", inputBloomMin),
		inputControl("Bloom size max", inputBloomMax),
		inputControl("Scape min", inputScapeMin),
		inputControl("Scape max", inputScapeMax),
		inputControl("Branches min", inputBranchesMin),
		inputControl("Branches max", inputBranchesMax),
		inputControl("Bud count min", inputBudMin),
		inputControl("Bud count max", inputBudMax),
	}

	for _, v := range model.Ploidies {
		controls = append(controls, toggleControl(v,
			func(s *filter.Spec) { s.TogglePloidy(v) },
			func(s filter.Spec) bool { got, ok := s.Ploidy.Get(); return ok && got == v },
			func(f filter.Facets) int { return f.Ploidy[v] }))
	}
	for _, v := range model.BloomSeasons {
		controls = append(controls, toggleControl(v,
			func(s *filter.Spec) { s.ToggleSeason(v) },
			func(s filter.Spec) bool { return slices.Contains(s.BloomSeasons, v) },
			func(f filter.Facets) int { return f.BloomSeason[v] }))
	}
	controls = append(controls, toggleControl("Rebloomer",
		func(s *filter.Spec) { s.Rebloom = !s.Rebloom },
		func(s filter.Spec) bool { return s.Rebloom },
		func(f filter.Facets) int { return f.Rebloom }))
	for _, v := range model.FoliageTypes {
		controls = append(controls, toggleControl(v,
			func(s *filter.Spec) { s.ToggleFoliage(v) },
			func(s filter.Spec) bool { got, ok := s.FoliageType.Get(); return ok && got == v },
			func(f filter.Facets) int { return f.FoliageType[v] }))
	}
	controls = append(controls, toggleControl("Reset all filters",
		func(s *filter.Spec) { *s = filter.Default() },
		func(filter.Spec) bool { return false }, nil))

	return controls
}

func flipMode(m filter.MatchMode) filter.MatchMode {
	if m == filter.Exact {
		return filter.Partial
	}
	return filter.Exact
}

// Sync refreshes the checked state and facet counts shown by the panel.
func (p *FilterPanel) Sync(spec filter.Spec, facets filter.Facets) {
	p.spec = spec
	p.facets = facets
}

// SetStyles switches theme.
func (p *FilterPanel) SetStyles(styles Styles) {
	p.styles = styles
}

// SetSize sets the area the panel may draw in.
func (p *FilterPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Focus activates the focused control.
func (p *FilterPanel) Focus() tea.Cmd {
	c := p.controls[p.focus]
	if c.kind == controlInput {
		return p.inputs[c.input].Focus()
	}
	return nil
}

// Blur deactivates every input.
func (p *FilterPanel) Blur() {
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
}

// Clear empties every input and error, after an external reset.
func (p *FilterPanel) Clear() {
	for i := range p.inputs {
		p.inputs[i].SetValue("")
	}
	p.errors = [rangeCount]string{}
}

// Error returns the inline error shown for a range criterion.
func (p FilterPanel) Error(r int) string {
	return p.errors[r]
}

// Focused returns the label of the focused control.
func (p FilterPanel) Focused() string {
	return p.controls[p.focus].label
}

// Update handles one key. A non-nil Edit must be applied to the gallery.
func (p FilterPanel) Update(msg tea.Msg) (FilterPanel, Edit, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Next):
		return p, nil, p.moveFocus(1)
	case key.Matches(keyMsg, p.keys.Prev):
		return p, nil, p.moveFocus(-1)
	}

	c := p.controls[p.focus]
	if c.kind == controlToggle {
		if key.Matches(keyMsg, p.keys.Toggle) {
			if p.focus == len(p.controls)-1 {
				p.Clear()
			}
			return p, c.toggle, nil
		}
		return p, nil, nil
	}

	if key.Matches(keyMsg, p.keys.Open) {
		return p, nil, p.moveFocus(1)
	}

	before := p.inputs[c.input].Value()
	var cmd tea.Cmd
	p.inputs[c.input], cmd = p.inputs[c.input].Update(msg)
	if p.inputs[c.input].Value() == before {
		return p, nil, cmd
	}
	return p, p.inputEdit(c.input), cmd
}

func (p *FilterPanel) moveFocus(delta int) tea.Cmd {
	p.Blur()
	n := len(p.controls)
	p.focus = (p.focus + delta + n) % n
	return p.Focus()
}

// inputEdit applies the changed input. A range whose text does not parse
// keeps its previous value and shows an error until fixed.
func (p *FilterPanel) inputEdit(input int) Edit {
	value := func(i int) string { return p.inputs[i].Value() }

	switch input {
	case inputName:
		q := strings.TrimSpace(value(inputName))
		return func(s *filter.Spec) { s.Name.SetText(q) }
	case inputHybridizer:
		q := strings.TrimSpace(value(inputHybridizer))
		return func(s *filter.Spec) { s.Hybridizer.SetText(q) }
	case inputYearStart, inputYearEnd:
		r, err := filter.ParseIntRange(value(inputYearStart), value(inputYearEnd))
		if p.setError(rangeYear, err) {
			return nil
		}
		return func(s *filter.Spec) { s.Year = r }
	}

	type floatRange struct {
		rng    int
		lo, hi int
		assign func(*filter.Spec, filter.FloatRange)
	}
	ranges := []floatRange{
		{rangeBloom, inputBloomMin, inputBloomMax, func(s *filter.Spec, r filter.FloatRange) { s.BloomSize = r }},
		{rangeScape, inputScapeMin, inputScapeMax, func(s *filter.Spec, r filter.FloatRange) { s.ScapeHeight = r }},
		{rangeBranches, inputBranchesMin, inputBranchesMax, func(s *filter.Spec, r filter.FloatRange) { s.Branches = r }},
		{rangeBud, inputBudMin, inputBudMax, func(s *filter.Spec, r filter.FloatRange) { s.BudCount = r }},
	}
	for _, fr := range ranges {
		if input != fr.lo && input != fr.hi {
			continue
		}
		r, err := filter.ParseFloatRange(value(fr.lo), value(fr.hi))
		if p.setError(fr.rng, err) {
			return nil
		}
		assign := fr.assign
		return func(s *filter.Spec) { assign(s, r) }
	}
	return nil
}

// setError records err for a range and reports whether there was one.
func (p *FilterPanel) setError(rng int, err error) bool {
	if err != nil {
		p.errors[rng] = err.Error()
		return true
	}
	p.errors[rng] = ""
	return false
}

func rangeOf(input int) (int, bool) {
	switch input {
	case inputYearStart, inputYearEnd:
		return rangeYear, true
	case inputBloomMin, inputBloomMax:
		return rangeBloom, true
	case inputScapeMin, inputScapeMax:
		return rangeScape, true
	case inputBranchesMin, inputBranchesMax:
		return rangeBranches, true
	case inputBudMin, inputBudMax:
		return rangeBud, true
	}
	return 0, false
}

// View renders the panel, scrolled so the focused control is visible.
func (p FilterPanel) View() string {
	lines := []string{p.styles.PanelTitle.Render("Filters")}
	focusLine := 0

	for i, c := range p.controls {
		if i == len(p.controls)-1 {
			lines = append(lines, "")
		}
		cursor := "  "
		label := p.styles.Label.Render(c.label)
		if i == p.focus {
			cursor = p.styles.Focused.Render("> ")
			focusLine = len(lines)
		}

		var line string
		switch c.kind {
		case controlInput:
			line = cursor + label + p.inputs[c.input].View()
			if rng, ok := rangeOf(c.input); ok && p.errors[rng] != "" && isUpperBound(c.input) {
				line += "  " + p.styles.Error.Render(p.errors[rng])
			}
		case controlToggle:
			box := "[ ]"
			if c.checked(p.spec) {
				box = p.styles.Checked.Render("[x]")
			}
			line = cursor + box + " " + c.label
			if c.count != nil {
				line += " " + p.styles.Count.Render(fmt.Sprintf("(%d)", c.count(p.facets)))
			}
		}
		lines = append(lines, line)
	}

	if p.height > 0 && len(lines) > p.height {
		start := min(max(focusLine-p.height/2, 0), len(lines)-p.height)
		lines = lines[start : start+p.height]
	}
	return strings.Join(lines, "\n")
}

// isUpperBound reports whether input is the second of its pair; the range
// error is shown once, next to it.
func isUpperBound(input int) bool {
	switch input {
	case inputYearEnd, inputBloomMax, inputScapeMax, inputBranchesMax, inputBudMax:
		return true
	}
	return false
}
