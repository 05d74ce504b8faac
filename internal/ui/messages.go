package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/user/daylily/internal/gallery"
	"github.com/user/daylily/internal/model"
	"github.com/user/daylily/internal/storage"
)

// RecordsLoadedMsg replaces the gallery's record set.
type RecordsLoadedMsg struct {
	Records  []*model.Daylily
	Reloaded bool // from a file change rather than the initial load
}

// LoadRecords reads the dataset once in the background. A failure is
// logged and delivers an empty record set.
func LoadRecords(ctx context.Context, path string, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		return RecordsLoadedMsg{Records: gallery.Load(ctx, path, logger)}
	}
}

// Reloader returns a reload function for a file watcher that delivers
// fresh records through send (usually tea.Program.Send). Failed reloads
// are returned to the watcher and the current records stay on screen.
func Reloader(send func(tea.Msg)) func(path string) error {
	return func(path string) error {
		records, err := storage.NewDataset(path).ReadAll()
		if err != nil {
			return err
		}
		send(RecordsLoadedMsg{Records: records, Reloaded: true})
		return nil
	}
}
