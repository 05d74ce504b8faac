package curate

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/daylily/internal/model"
	"github.com/user/daylily/internal/storage"
	"github.com/user/daylily/internal/testutil"
)

func TestCurator_Publish(t *testing.T) {
	t.Run("copies the URL image and drops scraped_at", func(t *testing.T) {
		// Given a master variety whose image exists under its URL name
		f := setupCurator(t, testutil.Garden())
		testutil.WriteFile(t, f.cfg.Images, "Moon_River.jpg", string(testutil.PNGHeader))

		// When publishing it
		report, err := f.curator.Publish("moon river")
		require.NoError(t, err)
		require.NoError(t, report.Err())

		// Then the published entry points at the copied asset
		assert.Equal(t, 1, report.Changed())
		assert.Equal(t, "Moon River", report.Results[0].Name)
		published := f.readPublished(t)
		require.Len(t, published, 1)
		assert.Equal(t, "Moon_River.jpg", published[0].ImageURL)
		assert.Empty(t, published[0].ScrapedAt)
		assert.Equal(t, "Smith", published[0].Hybridizer)
		assert.True(t, testutil.FileExists(t, filepath.Join(f.cfg.Assets, "Moon_River.jpg")))

		raw := testutil.ReadDataset(t, f.published)
		assert.Equal(t, "", raw[0]["scraped_at"])
	})

	t.Run("falls back to name.jpg", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())
		testutil.WriteFile(t, f.cfg.Images, "Moon River.jpg", string(testutil.PNGHeader))

		report, err := f.curator.Publish("Moon River")
		require.NoError(t, err)
		assert.Equal(t, "Moon River.jpg", report.Results[0].Image)
	})

	t.Run("non-image content uses the placeholder", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())
		testutil.WriteFile(t, f.cfg.Images, "Moon_River.jpg", "this is not a picture\n")

		report, err := f.curator.Publish("Moon River")
		require.NoError(t, err)
		assert.Equal(t, model.PlaceholderImage, report.Results[0].Image)
		assert.False(t, testutil.FileExists(t, filepath.Join(f.cfg.Assets, "Moon_River.jpg")))
	})

	t.Run("no image uses the placeholder", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())

		report, err := f.curator.Publish("Moon River")
		require.NoError(t, err)
		assert.Equal(t, model.PlaceholderImage, f.readPublished(t)[0].ImageURL)
		assert.Equal(t, model.PlaceholderImage, report.Results[0].Image)
	})

	t.Run("appends after existing entries in one write", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())
		require.NoError(t, storage.NewDataset(f.published).WriteAll(testutil.Garden()[:1]))

		report, err := f.curator.Publish("Moon River", "Happy Returns")
		require.NoError(t, err)
		assert.Equal(t, 2, report.Changed())
		assert.Equal(t, []string{"Stella de Oro", "Moon River", "Happy Returns"}, testutil.Names(f.readPublished(t)))
	})

	t.Run("reports per-name failures", func(t *testing.T) {
		master := append(testutil.Garden(), testutil.Variety("No Year", func(d *model.Daylily) { d.Year = "" }))
		f := setupCurator(t, master)
		require.NoError(t, storage.NewDataset(f.published).WriteAll(testutil.Garden()[:1]))

		report, err := f.curator.Publish("Stella de Oro", "Blue Moon", "No Year", "Moon River", "moon  river")
		require.NoError(t, err)

		require.Len(t, report.Results, 5)
		assert.True(t, errors.Is(report.Results[0].Err, model.ErrAlreadyPublished))
		assert.True(t, errors.Is(report.Results[1].Err, model.ErrVarietyNotFound))
		assert.True(t, errors.Is(report.Results[2].Err, model.ErrMissingField))
		assert.Contains(t, report.Results[2].Err.Error(), "year")
		assert.NoError(t, report.Results[3].Err)
		assert.True(t, errors.Is(report.Results[4].Err, model.ErrAlreadyPublished))

		assert.Equal(t, 1, report.Changed())
		assert.Error(t, report.Err())
		assert.Equal(t, []string{"Stella de Oro", "Moon River"}, testutil.Names(f.readPublished(t)))
	})

	t.Run("nothing applied leaves the file untouched", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())

		report, err := f.curator.Publish("Blue Moon")
		require.NoError(t, err)
		assert.Equal(t, 0, report.Changed())
		assert.False(t, testutil.FileExists(t, f.published))
	})
}

func TestCurator_Unpublish(t *testing.T) {
	t.Run("removes entry and its image", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())
		testutil.WriteFile(t, f.cfg.Images, "Moon_River.jpg", string(testutil.PNGHeader))
		_, err := f.curator.Publish("Moon River", "Happy Returns")
		require.NoError(t, err)
		asset := filepath.Join(f.cfg.Assets, "Moon_River.jpg")
		require.True(t, testutil.FileExists(t, asset))

		report, err := f.curator.Unpublish("MOON RIVER")
		require.NoError(t, err)
		require.NoError(t, report.Err())

		assert.Equal(t, "Moon River", report.Results[0].Name)
		assert.False(t, testutil.FileExists(t, asset))
		assert.Equal(t, []string{"Happy Returns"}, testutil.Names(f.readPublished(t)))
	})

	t.Run("keeps shared images", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())
		records := testutil.Garden()[:2]
		records[0].ImageURL = NoImage
		records[1].ImageURL = model.PlaceholderImage
		require.NoError(t, storage.NewDataset(f.published).WriteAll(records))
		noImage := testutil.WriteFile(t, f.cfg.Assets, NoImage, string(testutil.PNGHeader))
		placeholder := testutil.WriteFile(t, f.cfg.Assets, model.PlaceholderImage, string(testutil.PNGHeader))

		report, err := f.curator.Unpublish("Stella de Oro", "Moon River")
		require.NoError(t, err)
		assert.Equal(t, 2, report.Changed())
		assert.True(t, testutil.FileExists(t, noImage))
		assert.True(t, testutil.FileExists(t, placeholder))
		assert.Empty(t, f.readPublished(t))
	})

	t.Run("missing image is not an error", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())
		require.NoError(t, storage.NewDataset(f.published).WriteAll(testutil.Garden()[:1]))

		report, err := f.curator.Unpublish("Stella de Oro")
		require.NoError(t, err)
		assert.NoError(t, report.Err())
	})

	t.Run("unknown name", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())
		require.NoError(t, storage.NewDataset(f.published).WriteAll(testutil.Garden()[:1]))

		report, err := f.curator.Unpublish("Moon River")
		require.NoError(t, err)
		assert.True(t, errors.Is(report.Results[0].Err, model.ErrNotPublished))
		assert.Equal(t, []string{"Stella de Oro"}, testutil.Names(f.readPublished(t)))
	})

	t.Run("removes every entry with the name", func(t *testing.T) {
		f := setupCurator(t, testutil.Garden())
		dup := testutil.Variety("Stella de Oro", func(d *model.Daylily) { d.Hybridizer = "Other" })
		require.NoError(t, storage.NewDataset(f.published).WriteAll(append(testutil.Garden()[:2], dup)))

		_, err := f.curator.Unpublish("stella de oro")
		require.NoError(t, err)
		assert.Equal(t, []string{"Moon River"}, testutil.Names(f.readPublished(t)))
	})
}

func TestImageCandidates(t *testing.T) {
	d := testutil.Variety("Moon River")
	assert.Equal(t, []string{"Moon_River.jpg", "Moon River.jpg"}, imageCandidates(d))

	d.ImageURL = "Moon River.jpg"
	assert.Equal(t, []string{"Moon River.jpg"}, imageCandidates(d))

	d.ImageURL = "none"
	assert.Equal(t, []string{"Moon River.jpg"}, imageCandidates(d))
}
