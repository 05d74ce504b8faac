package gallery

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/user/daylily/internal/testutil"
)

func TestLoad(t *testing.T) {
	t.Run("reads every record", func(t *testing.T) {
		path := testutil.WriteDataset(t, t.TempDir(), "varieties.jsonl", testutil.Garden())

		records := Load(context.Background(), path, nil)
		assert.Equal(t, testutil.Names(testutil.Garden()), testutil.Names(records))
	})

	t.Run("missing file logs and yields empty set", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		path := filepath.Join(t.TempDir(), "missing.jsonl")

		records := Load(context.Background(), path, zap.New(core))

		require.NotNil(t, records)
		assert.Empty(t, records)
		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "failed to load dataset", entry.Message)
		assert.Equal(t, path, entry.ContextMap()["path"])
	})

	t.Run("one bad line discards the whole dataset", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		content := testutil.NDJSON(t, testutil.Garden()) + "{truncated"
		path := testutil.WriteFile(t, t.TempDir(), "varieties.jsonl", content)

		records := Load(context.Background(), path, zap.New(core))

		assert.Empty(t, records)
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("cancelled context skips the read", func(t *testing.T) {
		path := testutil.WriteDataset(t, t.TempDir(), "varieties.jsonl", testutil.Garden())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Empty(t, Load(ctx, path, nil))
	})
}
