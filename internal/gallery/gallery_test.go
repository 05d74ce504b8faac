package gallery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/daylily/internal/filter"
	"github.com/user/daylily/internal/testutil"
)

func TestGallery_Empty(t *testing.T) {
	g := New(0)

	assert.Empty(t, g.Visible())
	assert.False(t, g.HasMore())
	assert.Equal(t, 0, g.Total())
	assert.Equal(t, 1, g.Page())
	assert.Equal(t, 20, g.PageSize())
}

func TestGallery_LoadMore(t *testing.T) {
	// Given 45 matching records and a page size of 20
	g := New(20)
	g.SetRecords(testutil.Numbered(45))

	// Then the first page shows 20 with more available
	assert.Len(t, g.Visible(), 20)
	assert.True(t, g.HasMore())

	// When loading more twice
	g.LoadMore()
	assert.Len(t, g.Visible(), 40)
	assert.True(t, g.HasMore())

	g.LoadMore()
	assert.Len(t, g.Visible(), 45)
	assert.False(t, g.HasMore())
	assert.Equal(t, 3, g.Page())

	// Then further loads change nothing
	g.LoadMore()
	assert.Equal(t, 3, g.Page())
	assert.Len(t, g.Visible(), 45)
}

func TestGallery_FilterChangeResetsPage(t *testing.T) {
	g := New(2)
	g.SetRecords(testutil.Garden())
	g.LoadMore()
	require.Equal(t, 2, g.Page())

	g.Update(func(s *filter.Spec) { s.Name.SetText("moon") })

	assert.Equal(t, 1, g.Page())
	if diff := cmp.Diff([]string{"Moon River", "Moonlit Masquerade"}, testutil.Names(g.Visible())); diff != "" {
		t.Errorf("visible mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, g.HasMore())
	assert.Equal(t, []string{filter.CriterionName}, g.Spec().Active())
}

func TestGallery_RecordChangeRefilters(t *testing.T) {
	g := New(20)
	g.Update(func(s *filter.Spec) { s.TogglePloidy("Tetraploid") })
	assert.Empty(t, g.Filtered())

	g.SetRecords(testutil.Garden())

	assert.Equal(t, []string{"Moon River", "Stella Blue", "Moonlit Masquerade"}, testutil.Names(g.Filtered()))
	assert.Equal(t, 6, g.Total())
}

func TestGallery_Reset(t *testing.T) {
	g := New(20)
	g.SetRecords(testutil.Garden())
	g.Update(func(s *filter.Spec) { s.Rebloom = true })
	require.Len(t, g.Filtered(), 3)

	g.Reset()

	assert.True(t, g.Spec().IsDefault())
	assert.Len(t, g.Filtered(), 6)
}

func TestGallery_SpecIsolation(t *testing.T) {
	g := New(20)
	g.SetRecords(testutil.Garden())
	g.Update(func(s *filter.Spec) { s.ToggleSeason("Late") })

	spec := g.Spec()
	spec.BloomSeasons[0] = "Early"

	assert.Equal(t, []string{"Late"}, g.Spec().BloomSeasons, "callers cannot mutate the active filter")
	assert.Equal(t, []string{"Stella Blue"}, testutil.Names(g.Filtered()))
}

func TestGallery_Facets(t *testing.T) {
	g := New(20)
	g.SetRecords(testutil.Garden())
	g.Update(func(s *filter.Spec) { s.TogglePloidy("Diploid") })

	facets := g.Facets()
	assert.Equal(t, 3, facets.Total)
	assert.Equal(t, map[string]int{"Diploid": 3}, facets.Ploidy)
}
