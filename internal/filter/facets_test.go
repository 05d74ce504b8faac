package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/daylily/internal/testutil"
)

func TestSummarize(t *testing.T) {
	f := Summarize(testutil.Garden())

	assert.Equal(t, 6, f.Total)
	assert.Equal(t, map[string]int{"Diploid": 3, "Tetraploid": 3}, f.Ploidy)
	assert.Equal(t, map[string]int{
		"Early-Mid":           2,
		"Midseason":           2,
		"Extra Early Rebloom": 1,
		"Late":                1,
	}, f.BloomSeason)
	assert.Equal(t, map[string]int{"Dormant": 3, "Evergreen": 1, "Semi-Evergreen": 2}, f.FoliageType)
	assert.Equal(t, 3, f.Rebloom)

	require.NotNil(t, f.YearRange)
	assert.Equal(t, Span{Min: 1975, Max: 2010}, *f.YearRange)
	require.NotNil(t, f.BloomSizeMin)
	require.NotNil(t, f.BloomSizeMax)
	assert.Equal(t, 2.75, *f.BloomSizeMin)
	assert.Equal(t, 6.5, *f.BloomSizeMax)
}

func TestSummarize_Empty(t *testing.T) {
	f := Summarize(nil)
	assert.Zero(t, f.Total)
	assert.Empty(t, f.Ploidy)
	assert.Nil(t, f.YearRange)
	assert.Nil(t, f.BloomSizeMin)
}
