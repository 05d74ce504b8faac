package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/daylily/internal/model"
	"github.com/user/daylily/internal/testutil"
)

func TestDataset_ReadAll(t *testing.T) {
	tmpDir := t.TempDir()
	path := testutil.WriteDataset(t, tmpDir, "varieties.jsonl", testutil.Garden())

	ds := NewDataset(path)
	records, err := ds.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, testutil.Names(testutil.Garden()), testutil.Names(records))
	assert.Equal(t, "Jablonski", records[0].Hybridizer)
	assert.Equal(t, "Diurnal; Rebloom", records[0].BloomHabit)
	assert.Equal(t, "Reliable REBLOOMER in the south", records[3].Notes)
}

func TestDataset_MissingFile(t *testing.T) {
	ds := NewDataset(filepath.Join(t.TempDir(), "missing.jsonl"))

	t.Run("ReadAll fails", func(t *testing.T) {
		_, err := ds.ReadAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open dataset")
	})

	t.Run("ReadAllOrEmpty returns no records", func(t *testing.T) {
		records, err := ds.ReadAllOrEmpty()
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	assert.False(t, ds.Exists())
}

func TestDataset_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	content := testutil.NDJSON(t, testutil.Garden()[:2]) + "{not json}\n"
	path := testutil.WriteFile(t, tmpDir, "varieties.jsonl", content)

	_, err := NewDataset(path).ReadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestDataset_EmptyLines(t *testing.T) {
	tmpDir := t.TempDir()
	lines := strings.Split(strings.TrimSpace(testutil.NDJSON(t, testutil.Garden()[:2])), "\n")
	content := "\n" + lines[0] + "\n   \n\n" + lines[1] + "\n\n"
	path := testutil.WriteFile(t, tmpDir, "varieties.jsonl", content)

	records, err := NewDataset(path).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Stella de Oro", "Moon River"}, testutil.Names(records))
}

func TestDataset_WriteAll(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "varieties.jsonl")
	ds := NewDataset(path)

	garden := testutil.Garden()
	garden[0].Notes = "Gold & <orange> edge, café"
	require.NoError(t, ds.WriteAll(garden))

	raw := testutil.ReadFile(t, path)
	assert.Contains(t, raw, "Gold & <orange> edge, café", "HTML and non-ASCII are written as-is")
	assert.Len(t, strings.Split(strings.TrimSpace(raw), "\n"), len(garden))

	records, err := ds.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, garden, records)

	t.Run("overwrites previous content", func(t *testing.T) {
		require.NoError(t, ds.WriteAll(garden[:1]))
		records, err := ds.ReadAll()
		require.NoError(t, err)
		assert.Equal(t, []string{"Stella de Oro"}, testutil.Names(records))
	})

	t.Run("empty set leaves an empty file", func(t *testing.T) {
		require.NoError(t, ds.WriteAll([]*model.Daylily{}))
		assert.Empty(t, testutil.ReadFile(t, path))
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		matches, err := filepath.Glob(filepath.Join(tmpDir, "nested", "*.tmp"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestDataset_Path(t *testing.T) {
	ds := NewDataset("/data/varieties.jsonl")
	assert.Equal(t, "/data/varieties.jsonl", ds.Path())

	var src Source = ds
	assert.Equal(t, ds.Path(), src.Path())
}

func TestDataset_ReadLenient(t *testing.T) {
	tmpDir := t.TempDir()
	lines := strings.Split(strings.TrimSpace(testutil.NDJSON(t, testutil.Garden()[:2])), "\n")
	content := lines[0] + "\n{oops\n\n" + lines[1] + "\n[1,2]\n"
	path := testutil.WriteFile(t, tmpDir, "master.jsonl", content)

	records, skipped, err := NewDataset(path).ReadLenient()
	require.NoError(t, err)
	assert.Equal(t, []string{"Stella de Oro", "Moon River"}, testutil.Names(records))
	assert.Equal(t, []int{2, 5}, skipped)
}
