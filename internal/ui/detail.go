package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/user/daylily/internal/model"
)

// DetailModel shows every field of one variety as rendered markdown.
type DetailModel struct {
	viewport viewport.Model
	renderer *glamour.TermRenderer
	dark     bool
	variety  *model.Daylily
	width    int
}

// NewDetailModel creates a detail view for the given theme.
func NewDetailModel(dark bool) DetailModel {
	m := DetailModel{
		viewport: viewport.New(0, 0),
		dark:     dark,
		width:    80,
	}
	m.renderer = newRenderer(dark, m.width)
	return m
}

func newRenderer(dark bool, width int) *glamour.TermRenderer {
	style := "light"
	if dark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return nil
	}
	return renderer
}

// Variety returns the variety being shown, if any.
func (m DetailModel) Variety() *model.Daylily {
	return m.variety
}

// Show displays d from the top.
func (m *DetailModel) Show(d *model.Daylily) {
	m.variety = d
	m.viewport.SetContent(m.render())
	m.viewport.GotoTop()
}

// SetSize resizes the view.
func (m *DetailModel) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height, 1)
	if width != m.width {
		m.width = width
		m.renderer = newRenderer(m.dark, width)
	}
	if m.variety != nil {
		m.viewport.SetContent(m.render())
	}
}

// SetDark switches the markdown style.
func (m *DetailModel) SetDark(dark bool) {
	if dark == m.dark {
		return
	}
	m.dark = dark
	m.renderer = newRenderer(dark, m.width)
	if m.variety != nil {
		m.viewport.SetContent(m.render())
	}
}

// Update scrolls the viewport.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewport.
func (m DetailModel) View() string {
	return m.viewport.View()
}

func (m DetailModel) render() string {
	md := detailMarkdown(m.variety)
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// detailMarkdown describes d as a markdown document.
func detailMarkdown(d *model.Daylily) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(d.Name))
	fmt.Fprintf(&sb, "*%s*\n\n", escapeMarkdown(d.Subtitle()))
	sb.WriteString("| Characteristic | Value |\n|---|---|\n")
	for _, f := range d.Fields() {
		fmt.Fprintf(&sb, "| %s | %s |\n", f.Label, escapeMarkdown(f.Value))
	}
	fmt.Fprintf(&sb, "\nImage: `%s`\n", model.ImagePath(d.ImageURL))
	if d.URL != "" {
		fmt.Fprintf(&sb, "\nSource: %s\n", d.URL)
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"\n", " ",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
