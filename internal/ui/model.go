package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/user/daylily/internal/gallery"
	"github.com/user/daylily/internal/logging"
	"github.com/user/daylily/internal/model"
)

type viewMode int

const (
	modeGrid viewMode = iota
	modeFilter
	modeDetail
)

// panelWidth is the width of the filter panel beside the grid.
const panelWidth = 56

// Options configures the gallery model.
type Options struct {
	Context  context.Context
	DataPath string
	PageSize int
	Theme    Theme
	Logger   *zap.Logger
}

// Model is the root bubbletea model. It owns the gallery state; every
// change to it happens in Update.
type Model struct {
	gallery *gallery.Gallery
	keys    keyMap
	styles  Styles
	logger  *zap.Logger

	mode    viewMode
	cursor  int
	offset  int
	width   int
	height  int
	loading bool

	panel  FilterPanel
	detail DetailModel

	load tea.Cmd
}

// New creates the gallery model. Records arrive through the Cmd returned
// by Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.OrNop(opts.Logger)
	styles := NewStyles(opts.Theme)

	m := Model{
		gallery: gallery.New(opts.PageSize),
		keys:    defaultKeyMap(),
		styles:  styles,
		logger:  logger,
		loading: true,
		panel:   NewFilterPanel(styles),
		detail:  NewDetailModel(opts.Theme.IsDark),
		load:    LoadRecords(ctx, opts.DataPath, logger),
	}
	m.syncPanel()
	return m
}

// Gallery exposes the state owner, for tests and callers embedding the model.
func (m Model) Gallery() *gallery.Gallery {
	return m.gallery
}

// Init starts the dataset load.
func (m Model) Init() tea.Cmd {
	return m.load
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.panel.SetSize(panelWidth, m.bodyHeight())
		m.detail.SetSize(m.width, m.bodyHeight())
		return m, nil

	case RecordsLoadedMsg:
		m.loading = false
		m.gallery.SetRecords(msg.Records)
		m.afterFilterChange()
		m.logger.Debug("records shown", zap.Int("records", len(msg.Records)), zap.Bool("reloaded", msg.Reloaded))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateGrid(msg)
		}
	}

	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.gallery.Visible()
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.cursor = moveCursor(m.cursor, len(visible), cols, -1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor = moveCursor(m.cursor, len(visible), cols, 1, 0)
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, len(visible), cols, 0, -1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, len(visible), cols, 0, 1)
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(visible) {
			m.detail.Show(visible[m.cursor])
			m.mode = modeDetail
		}
	case key.Matches(msg, m.keys.LoadMore):
		m.gallery.LoadMore()
	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		return m, m.panel.Focus()
	case key.Matches(msg, m.keys.Reset):
		m.gallery.Reset()
		m.panel.Clear()
		m.afterFilterChange()
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	}

	m.offset = scrollOffset(m.offset, m.cursor/cols, m.gridRows())
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.panel.Blur()
		m.mode = modeGrid
		return m, nil
	}

	var edit Edit
	var cmd tea.Cmd
	m.panel, edit, cmd = m.panel.Update(msg)
	if edit != nil {
		m.gallery.Update(edit)
		m.afterFilterChange()
	}
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.mode = modeGrid
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// afterFilterChange returns the cursor to the first card; the gallery
// itself is already back on page 1.
func (m *Model) afterFilterChange() {
	m.cursor = 0
	m.offset = 0
	m.syncPanel()
}

func (m *Model) syncPanel() {
	m.panel.Sync(m.gallery.Spec(), m.gallery.Facets())
}

func (m *Model) toggleTheme() {
	theme := LightTheme()
	if !m.styles.Theme.IsDark {
		theme = DarkTheme()
	}
	m.styles = NewStyles(theme)
	m.panel.SetStyles(m.styles)
	m.detail.SetDark(theme.IsDark)
}

func (m Model) gridWidth() int {
	if m.mode == modeFilter {
		return max(m.width-panelWidth, 0)
	}
	return m.width
}

func (m Model) columns() int {
	return gridColumns(m.gridWidth())
}

// bodyHeight is the height left after the header, status and footer lines.
func (m Model) bodyHeight() int {
	return max(m.height-3, 1)
}

func (m Model) gridRows() int {
	return max(m.bodyHeight()/cardHeight, 1)
}

// View renders the current screen.
func (m Model) View() string {
	header := m.styles.Header.Render("Daylily Gallery")
	if m.mode == modeDetail {
		return header + "\n" + m.detail.View() + "\n" + m.styles.Footer.Render("esc back • ↑/↓ scroll • q quit")
	}

	var body string
	switch {
	case m.loading:
		body = m.styles.Muted.Render("Loading varieties…")
	case len(m.gallery.Visible()) == 0:
		body = m.styles.Muted.Render("No varieties match the current filters.")
	default:
		body = renderGrid(m.styles, m.gallery.Visible(), m.cursor, m.columns(), m.offset, m.gridRows())
	}
	if m.mode == modeFilter {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(panelWidth).Render(m.panel.View()),
			body)
	}

	return strings.Join([]string{header, m.statusLine(), body, m.footer()}, "\n")
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("%d of %d varieties", len(m.gallery.Filtered()), m.gallery.Total())
	if active := m.gallery.Spec().Active(); len(active) > 0 {
		status += " • filtered by " + strings.Join(active, ", ")
	}
	return m.styles.Status.Render(status)
}

func (m Model) footer() string {
	var parts []string
	if m.gallery.HasMore() {
		shown := len(m.gallery.Visible())
		parts = append(parts, fmt.Sprintf("showing %d • load more (m)", shown))
	}
	if m.mode == modeFilter {
		parts = append(parts, "tab/↑/↓ move • enter/space toggle • esc close")
	} else {
		for _, b := range m.keys.gridHelp() {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
	}
	return m.styles.Footer.Render(strings.Join(parts, " • "))
}

// Selected returns the variety under the cursor, if any.
func (m Model) Selected() *model.Daylily {
	visible := m.gallery.Visible()
	if m.cursor < len(visible) {
		return visible[m.cursor]
	}
	return nil
}
