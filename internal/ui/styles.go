// Package ui is the terminal gallery: a grid of variety cards, a filter
// panel and a detail view, built on bubbletea.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/daylily/internal/config"
)

// Garden palette
var (
	// Light mode
	LightBackground = lipgloss.Color("#fbf8f1") // parchment
	LightForeground = lipgloss.Color("#2d2a24")
	LightPrimary    = lipgloss.Color("#b85c00") // daylily orange
	LightAccent     = lipgloss.Color("#4f7a28") // leaf green
	LightMuted      = lipgloss.Color("#8a8577")
	LightBorder     = lipgloss.Color("#d9d2c0")

	// Dark mode
	DarkBackground = lipgloss.Color("#1b1a17")
	DarkForeground = lipgloss.Color("#eeeae0")
	DarkPrimary    = lipgloss.Color("#f5a623") // gold
	DarkAccent     = lipgloss.Color("#8bc34a") // lime
	DarkMuted      = lipgloss.Color("#7d7868")
	DarkBorder     = lipgloss.Color("#3a372f")

	// Semantic colors, same in both modes
	Destructive = lipgloss.Color("#e53935")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks a theme from COLORFGBG ("fg;bg"); background indexes
// 0-6 and 8 are dark. Anything else is light.
func DetectTheme() Theme {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) >= 2 {
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			if (bg >= 0 && bg <= 6) || bg == 8 {
				return DarkTheme()
			}
		}
	}
	return LightTheme()
}

// ThemeFor resolves a configured theme name.
func ThemeFor(name string) Theme {
	switch name {
	case config.ThemeDark:
		return DarkTheme()
	case config.ThemeLight:
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	Header lipgloss.Style
	Status lipgloss.Style
	Footer lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardSubtitle lipgloss.Style

	PanelTitle lipgloss.Style
	Label      lipgloss.Style
	Focused    lipgloss.Style
	Checked    lipgloss.Style
	Count      lipgloss.Style

	Muted lipgloss.Style
	Error lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		CardSubtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		PanelTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Width(16),

		Focused: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Checked: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Count: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected terminal theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
