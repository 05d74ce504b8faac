// Package testutil provides fixtures shared by the package tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/user/daylily/internal/model"
)

// Variety builds a record with sensible defaults. Overrides are applied in
// order and may set any field.
func Variety(name string, overrides ...func(*model.Daylily)) *model.Daylily {
	d := &model.Daylily{
		URL:              "https://daylilies.example.org/" + strings.ReplaceAll(strings.ToLower(name), " ", "-"),
		ScrapedAt:        "2024-05-01T10:00:00",
		Name:             name,
		Hybridizer:       "Unknown",
		Year:             "2000",
		ScapeHeight:      "30 inches",
		BloomSize:        "5 inches",
		BloomSeason:      "Midseason",
		Ploidy:           "Diploid",
		FoliageType:      "Dormant",
		BudCount:         "20",
		Branches:         "3",
		ColorDescription: "yellow self",
		Parentage:        "unknown",
		ImageURL:         strings.ReplaceAll(name, " ", "_") + ".jpg",
	}
	for _, o := range overrides {
		o(d)
	}
	return d
}

// Garden is a small, varied record set used across packages.
//
//	0 Stella de Oro     Jablonski 1975 Diploid    Early-Mid  Dormant        2.75 in  rebloom (habit)
//	1 Moon River        Smith     1995 Tetraploid Midseason  Evergreen      6.5 in
//	2 Happy Returns     Apps      1986 Diploid    Extra Early Dormant       3.25 in  rebloom (season)
//	3 Stella Blue       Jones     2010 Tetraploid Late       Semi-Evergreen n/a      rebloom (notes)
//	4 Moonlit Masquerade Salter   1992 Tetraploid Early-Mid  Semi-Evergreen 5.5 in
//	5 Unknown Year      Smithers  unknown Diploid Midseason  Dormant        4 in
func Garden() []*model.Daylily {
	return []*model.Daylily{
		Variety("Stella de Oro", func(d *model.Daylily) {
			d.Hybridizer, d.Year, d.BloomSize, d.ScapeHeight = "Jablonski", "1975", "2.75 inches", "11 inches"
			d.BloomSeason, d.BloomHabit, d.BudCount, d.Branches = "Early-Mid", "Diurnal; Rebloom", "15", "2"
		}),
		Variety("Moon River", func(d *model.Daylily) {
			d.Hybridizer, d.Year, d.Ploidy, d.FoliageType = "Smith", "1995", "Tetraploid", "Evergreen"
			d.BloomSize, d.ScapeHeight, d.BudCount, d.Branches = "6.5 inches", "34 inches", "25", "4"
		}),
		Variety("Happy Returns", func(d *model.Daylily) {
			d.Hybridizer, d.Year, d.BloomSize, d.ScapeHeight = "Apps", "1986", "3.25 inches", "18 inches"
			d.BloomSeason, d.BudCount, d.Branches = "Extra Early Rebloom", "30", "3"
		}),
		Variety("Stella Blue", func(d *model.Daylily) {
			d.Hybridizer, d.Year, d.Ploidy, d.FoliageType = "Jones", "2010", "Tetraploid", "Semi-Evergreen"
			d.BloomSize, d.BloomSeason, d.Notes, d.Branches = "n/a", "Late", "Reliable REBLOOMER in the south", "unknown"
		}),
		Variety("Moonlit Masquerade", func(d *model.Daylily) {
			d.Hybridizer, d.Year, d.Ploidy, d.FoliageType = "Salter", "1992", "Tetraploid", "Semi-Evergreen"
			d.BloomSize, d.ScapeHeight, d.BloomSeason, d.BudCount = "5.5 inches", "26 inches", "Early-Mid", "22"
		}),
		Variety("Unknown Year", func(d *model.Daylily) {
			d.Hybridizer, d.Year, d.BloomSize = "Smithers", "unknown", "4 inches"
		}),
	}
}

// Numbered returns n distinct records named "Variety 001" and so on.
func Numbered(n int) []*model.Daylily {
	records := make([]*model.Daylily, n)
	for i := range records {
		records[i] = Variety(fmt.Sprintf("Variety %03d", i+1))
	}
	return records
}

// Names returns the record names in order.
func Names(records []*model.Daylily) []string {
	names := make([]string, len(records))
	for i, d := range records {
		names[i] = d.Name
	}
	return names
}

// NDJSON encodes records one JSON object per line.
func NDJSON(t *testing.T, records []*model.Daylily) string {
	t.Helper()

	var sb strings.Builder
	for _, d := range records {
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("failed to marshal %s: %v", d.Name, err)
		}
		sb.Write(data)
		sb.WriteByte('\n')
	}
	return sb.String()
}
