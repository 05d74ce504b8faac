package gallery

import (
	"context"

	"go.uber.org/zap"

	"github.com/user/daylily/internal/logging"
	"github.com/user/daylily/internal/model"
	"github.com/user/daylily/internal/storage"
)

// Load reads the dataset at path once. Any failure is logged and yields an
// empty record set; there is no retry.
func Load(ctx context.Context, path string, logger *zap.Logger) []*model.Daylily {
	return LoadFrom(ctx, storage.NewDataset(path), logger)
}

// LoadFrom is Load for an arbitrary source.
func LoadFrom(ctx context.Context, src storage.Source, logger *zap.Logger) []*model.Daylily {
	logger = logging.OrNop(logger)

	if err := ctx.Err(); err != nil {
		logger.Warn("dataset load cancelled", zap.String("path", src.Path()), zap.Error(err))
		return []*model.Daylily{}
	}

	records, err := src.ReadAll()
	if err != nil {
		logger.Error("failed to load dataset", zap.String("path", src.Path()), zap.Error(err))
		return []*model.Daylily{}
	}

	logger.Debug("dataset loaded", zap.String("path", src.Path()), zap.Int("records", len(records)))
	return records
}
