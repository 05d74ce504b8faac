package cli

import (
	"go.uber.org/zap"

	"github.com/user/daylily/internal/model"
	"github.com/user/daylily/internal/storage"
)

// loadRecords reads the resolved dataset for a one-shot command. Unlike the
// gallery, scripting commands fail on a missing or malformed dataset instead
// of showing nothing. It reports false after writing the error.
func loadRecords() ([]*model.Daylily, bool) {
	if err := runCtx.RequireData(); err != nil {
		ExitDatasetError(err, runCtx.DataPath)
		return nil, false
	}

	records, err := storage.NewDataset(runCtx.DataPath).ReadAll()
	if err != nil {
		logger.Debug("failed to load dataset", zap.String("path", runCtx.DataPath), zap.Error(err))
		ExitDatasetError(err, runCtx.DataPath)
		return nil, false
	}

	logger.Debug("dataset loaded",
		zap.String("path", runCtx.DataPath),
		zap.Int("records", len(records)))
	return records, true
}
