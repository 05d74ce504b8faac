package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/daylily/internal/filter"
	"github.com/user/daylily/internal/testutil"
)

func TestFacets(t *testing.T) {
	t.Run("JSON summary of the whole dataset", func(t *testing.T) {
		// Given: A dataset of six varieties
		_, cleanup := setupTestDataset(t, testutil.Garden())
		defer cleanup()

		// When: User runs `daylily facets --json`
		out, err := runCLI(t, "facets", "--json")

		// Then: Counts and ranges cover every variety
		require.NoError(t, err)
		assert.Equal(t, 0, ExitCode)

		var facets filter.Facets
		require.NoError(t, json.Unmarshal([]byte(out), &facets), "output: %s", out)
		assert.Equal(t, 6, facets.Total)
		assert.Equal(t, 3, facets.Rebloom)
		assert.Equal(t, map[string]int{"Diploid": 3, "Tetraploid": 3}, facets.Ploidy)
		assert.Equal(t, map[string]int{"Dormant": 3, "Evergreen": 1, "Semi-Evergreen": 2}, facets.FoliageType)
		require.NotNil(t, facets.YearRange)
		assert.Equal(t, filter.Span{Min: 1975, Max: 2010}, *facets.YearRange)
		require.NotNil(t, facets.BloomSizeMin)
		require.NotNil(t, facets.BloomSizeMax)
		assert.InDelta(t, 2.75, *facets.BloomSizeMin, 1e-9)
		assert.InDelta(t, 6.5, *facets.BloomSizeMax, 1e-9)
	})

	t.Run("filter flags narrow the counts", func(t *testing.T) {
		_, cleanup := setupTestDataset(t, testutil.Garden())
		defer cleanup()

		out, err := runCLI(t, "facets", "--json", "--hybridizer", "smith")

		require.NoError(t, err)
		var facets filter.Facets
		require.NoError(t, json.Unmarshal([]byte(out), &facets))
		assert.Equal(t, 2, facets.Total)
		assert.Equal(t, map[string]int{"Midseason": 2}, facets.BloomSeason)
	})

	t.Run("text output", func(t *testing.T) {
		_, cleanup := setupTestDataset(t, testutil.Garden())
		defer cleanup()

		out, err := runCLI(t, "facets")

		require.NoError(t, err)
		assert.Contains(t, out, "Varieties:   6")
		assert.Contains(t, out, "Rebloomers:  3")
		assert.Contains(t, out, "Years:       1975 - 2010")
		assert.Contains(t, out, "Bloom size:  2.75 - 6.5 inches")
		assert.Contains(t, out, "Ploidy:")
		assert.Contains(t, out, "Bloom season:")
		assert.Contains(t, out, "Extra Early Rebloom")
	})

	t.Run("invalid filter flag", func(t *testing.T) {
		_, cleanup := setupTestDataset(t, testutil.Garden())
		defer cleanup()

		out, err := runCLI(t, "facets", "--json", "--bud-count-max", "lots")

		require.NoError(t, err)
		assert.Equal(t, 2, ExitCode)
		assert.Equal(t, "bud-count-max", decodeJSONError(t, out).Details["flag"])
	})
}

func TestOrderedKeys(t *testing.T) {
	counts := map[string]int{"Late": 1, "Zebra": 2, "Early": 4, "Abc": 1}

	got := orderedKeys(counts, []string{"Extra Early", "Early", "Late"})

	assert.Equal(t, []string{"Early", "Late", "Abc", "Zebra"}, got)
}
