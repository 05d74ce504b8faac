package filter

import (
	"github.com/user/daylily/internal/model"
)

// Facets summarizes a record set for the filter panel and the facets command.
type Facets struct {
	Total        int            `json:"total"`
	Ploidy       map[string]int `json:"ploidy"`
	BloomSeason  map[string]int `json:"bloom_season"`
	FoliageType  map[string]int `json:"foliage_type"`
	Rebloom      int            `json:"rebloom"`
	YearRange    *Span          `json:"year_range,omitempty"`
	BloomSizeMin *float64       `json:"bloom_size_min,omitempty"`
	BloomSizeMax *float64       `json:"bloom_size_max,omitempty"`
}

// Span is an inclusive integer min/max pair.
type Span struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Summarize counts values per enumerated dimension and the numeric extents
// of year and bloom size. Unparsable numeric values are skipped.
func Summarize(records []*model.Daylily) Facets {
	f := Facets{
		Total:       len(records),
		Ploidy:      make(map[string]int),
		BloomSeason: make(map[string]int),
		FoliageType: make(map[string]int),
	}

	for _, d := range records {
		if d.Ploidy != "" {
			f.Ploidy[d.Ploidy]++
		}
		if d.BloomSeason != "" {
			f.BloomSeason[d.BloomSeason]++
		}
		if d.FoliageType != "" {
			f.FoliageType[d.FoliageType]++
		}
		if IsRebloomer(d) {
			f.Rebloom++
		}

		if year, ok := model.ParseLeadingInt(d.Year); ok {
			if f.YearRange == nil {
				f.YearRange = &Span{Min: year, Max: year}
			} else {
				f.YearRange.Min = min(f.YearRange.Min, year)
				f.YearRange.Max = max(f.YearRange.Max, year)
			}
		}
		if size, ok := model.ParseLeadingFloat(d.BloomSize); ok {
			if f.BloomSizeMin == nil || size < *f.BloomSizeMin {
				v := size
				f.BloomSizeMin = &v
			}
			if f.BloomSizeMax == nil || size > *f.BloomSizeMax {
				v := size
				f.BloomSizeMax = &v
			}
		}
	}

	return f
}
