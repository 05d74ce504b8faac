package model

import (
	"path"
	"strings"
)

// Daylily is one variety's descriptive data as stored in the dataset.
// Every value is text, including the numeric-looking ones; use
// ParseLeadingInt and ParseLeadingFloat to read them as numbers.
type Daylily struct {
	URL              string `json:"url"`
	ScrapedAt        string `json:"scraped_at"`
	Name             string `json:"name"`
	Hybridizer       string `json:"hybridizer"`
	Year             string `json:"year"`
	ScapeHeight      string `json:"scape_height"`
	BloomSize        string `json:"bloom_size"`
	BloomSeason      string `json:"bloom_season"`
	Ploidy           string `json:"ploidy"`
	FoliageType      string `json:"foliage_type"`
	Fragrance        string `json:"fragrance,omitempty"`
	BloomHabit       string `json:"bloom_habit,omitempty"`
	BudCount         string `json:"bud_count"`
	Branches         string `json:"branches"`
	SeedlingNumber   string `json:"seedling_#,omitempty"`
	ColorDescription string `json:"color_description"`
	Parentage        string `json:"parentage"`
	ImageURL         string `json:"image_url"`
	Form             string `json:"form,omitempty"`
	Sculpting        string `json:"sculpting,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// Bloom seasons in calendar order, as offered by the filter panel.
var BloomSeasons = []string{
	"Extra Early",
	"Early",
	"Early-Mid",
	"Midseason",
	"Mid-Late",
	"Late",
	"Very Late",
}

// FoliageTypes lists the foliage habits offered by the filter panel.
var FoliageTypes = []string{
	"Dormant",
	"Evergreen",
	"Semi-Evergreen",
}

// Ploidies lists the chromosome sets offered by the filter panel.
var Ploidies = []string{
	"Diploid",
	"Tetraploid",
}

const (
	// ImageBasePath is where published variety images are served from.
	ImageBasePath = "/assets/daylilies"
	// PlaceholderImage is used when a variety has no image of its own.
	PlaceholderImage = "placeholder.jpg"
)

// ImagePath resolves an image file name to its published path.
func ImagePath(imageName string) string {
	if imageName == "" {
		return path.Join(ImageBasePath, PlaceholderImage)
	}
	return path.Join(ImageBasePath, imageName)
}

// Field is one labelled value of a detail view.
type Field struct {
	Label string
	Value string
}

// Fields returns the labelled characteristics and details of a variety in
// display order. Optional values that are empty are left out.
func (d *Daylily) Fields() []Field {
	fields := []Field{
		{"Ploidy", d.Ploidy},
		{"Bloom Size", d.BloomSize},
		{"Scape Height", d.ScapeHeight},
		{"Branches", d.Branches},
		{"Bud Count", d.BudCount},
		{"Bloom Season", d.BloomSeason},
		{"Foliage Type", d.FoliageType},
	}
	optional := []Field{
		{"Fragrance", d.Fragrance},
		{"Bloom Habit", d.BloomHabit},
		{"Color", d.ColorDescription},
		{"Parentage", d.Parentage},
		{"Form", d.Form},
		{"Sculpting", d.Sculpting},
		{"Seedling #", d.SeedlingNumber},
		{"Notes", d.Notes},
	}
	for _, f := range optional {
		if strings.TrimSpace(f.Value) != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Values returns the record keyed by its dataset field names.
func (d *Daylily) Values() map[string]string {
	return map[string]string{
		"url":               d.URL,
		"scraped_at":        d.ScrapedAt,
		"name":              d.Name,
		"hybridizer":        d.Hybridizer,
		"year":              d.Year,
		"scape_height":      d.ScapeHeight,
		"bloom_size":        d.BloomSize,
		"bloom_season":      d.BloomSeason,
		"ploidy":            d.Ploidy,
		"foliage_type":      d.FoliageType,
		"fragrance":         d.Fragrance,
		"bloom_habit":       d.BloomHabit,
		"bud_count":         d.BudCount,
		"branches":          d.Branches,
		"seedling_#":        d.SeedlingNumber,
		"color_description": d.ColorDescription,
		"parentage":         d.Parentage,
		"image_url":         d.ImageURL,
		"form":              d.Form,
		"sculpting":         d.Sculpting,
		"notes":             d.Notes,
	}
}

// GetField returns the value of a dataset field, using case-insensitive matching.
func (d *Daylily) GetField(name string) (string, bool) {
	values := d.Values()
	if v, ok := values[name]; ok {
		return v, true
	}
	nameLower := strings.ToLower(name)
	for k, v := range values {
		if k == nameLower {
			return v, true
		}
	}
	return "", false
}

// Subtitle is the "hybridizer (year)" line shown under a card title.
func (d *Daylily) Subtitle() string {
	return d.Hybridizer + " (" + d.Year + ")"
}
