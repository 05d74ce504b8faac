package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/daylily/internal/config"
	"github.com/user/daylily/internal/ui"
	"github.com/user/daylily/internal/watch"
)

var (
	browseWatch bool
	browseTheme string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive gallery (default)",
	Long: `Open the daylily gallery in the terminal.

Keys:
  arrows, hjkl   Move between cards
  enter          Open the selected variety
  m              Load more varieties
  f              Open the filter panel (tab/shift+tab to move, esc to close)
  r              Reset all filters
  t              Toggle light/dark theme
  q, ctrl+c      Quit

With --watch (or watch: true in the config) the gallery reloads when the
dataset file changes.

Examples:
  daylily
  daylily browse --theme dark
  daylily browse --data data/varieties.jsonl --watch`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browseWatch, "watch", false, "Reload when the dataset file changes")
	browseCmd.Flags().StringVar(&browseTheme, "theme", "", "Theme: auto, light or dark (default: config theme)")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	opts, err := browseOptions()
	if err != nil {
		ExitValidationError(err.Error(), map[string]interface{}{"flag": "theme"})
		return nil
	}
	opts.Context = cmd.Context()

	p := tea.NewProgram(ui.New(opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if browseWatch || runCtx.Config.Watch {
		w, err := watch.NewWatcher(runCtx.DataPath, ui.Reloader(p.Send), logger)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		if err := w.Start(); err != nil {
			logger.Warn("dataset watch disabled", zap.String("path", runCtx.DataPath), zap.Error(err))
		}
		defer w.Close()
	}

	logger.Info("gallery started", zap.String("path", runCtx.DataPath))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("gallery: %w", err)
	}
	return nil
}

// browseOptions builds the gallery options from the resolved context and flags.
func browseOptions() (ui.Options, error) {
	theme := runCtx.Config.Theme
	if browseTheme != "" {
		theme = strings.ToLower(browseTheme)
		if !isValidTheme(theme) {
			return ui.Options{}, fmt.Errorf("invalid --theme %q (expected one of: %s)",
				browseTheme, strings.Join(config.ValidThemes, ", "))
		}
	}

	return ui.Options{
		DataPath: runCtx.DataPath,
		PageSize: runCtx.Config.PageSize,
		Theme:    ui.ThemeFor(theme),
		Logger:   logger,
	}, nil
}

func isValidTheme(theme string) bool {
	for _, t := range config.ValidThemes {
		if t == theme {
			return true
		}
	}
	return false
}
