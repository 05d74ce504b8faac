package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/daylily/internal/model"
)

func TestVariety(t *testing.T) {
	d := Variety("Moon River", func(d *model.Daylily) { d.Year = "1995" })
	assert.Equal(t, "Moon River", d.Name)
	assert.Equal(t, "1995", d.Year)
	assert.Equal(t, "Moon_River.jpg", d.ImageURL)
	assert.Equal(t, "https://daylilies.example.org/moon-river", d.URL)
}

func TestNumbered(t *testing.T) {
	records := Numbered(3)
	assert.Equal(t, []string{"Variety 001", "Variety 002", "Variety 003"}, Names(records))
}

func TestWriteAndReadDataset(t *testing.T) {
	dir := t.TempDir()
	path := WriteDataset(t, dir, "data/varieties.jsonl", Garden())

	assert.Equal(t, filepath.Join(dir, "data", "varieties.jsonl"), path)
	assert.True(t, FileExists(t, path))

	entries := ReadDataset(t, path)
	require.Len(t, entries, len(Garden()))
	assert.Equal(t, "Stella de Oro", entries[0]["name"])
}

func TestCaptureStdout(t *testing.T) {
	out := CaptureStdout(t, func() {
		fmt.Println("hello")
	})
	assert.Equal(t, "hello\n", out)
}
