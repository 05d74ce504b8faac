package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stellaLine = `{"url":"https://example.org/stella","scraped_at":"2024-05-01T10:00:00","name":"Stella de Oro","hybridizer":"Jablonski","year":"1975","scape_height":"11 inches","bloom_size":"2.75 inches","bloom_season":"Early-Mid","ploidy":"Diploid","foliage_type":"Dormant","bud_count":"15","branches":"2","color_description":"gold self","parentage":"seedling x seedling","image_url":"stella.jpg","bloom_habit":"Diurnal; Rebloom","seedling_#":"S-73"}`

func TestDaylilyJSON(t *testing.T) {
	t.Run("decodes dataset keys", func(t *testing.T) {
		var d Daylily
		require.NoError(t, json.Unmarshal([]byte(stellaLine), &d))

		assert.Equal(t, "Stella de Oro", d.Name)
		assert.Equal(t, "Jablonski", d.Hybridizer)
		assert.Equal(t, "2.75 inches", d.BloomSize)
		assert.Equal(t, "S-73", d.SeedlingNumber)
		assert.Equal(t, "Diurnal; Rebloom", d.BloomHabit)
		assert.Empty(t, d.Notes)
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		d := Daylily{Name: "Plain"}
		data, err := json.Marshal(&d)
		require.NoError(t, err)

		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Contains(t, m, "name")
		assert.Contains(t, m, "image_url")
		assert.NotContains(t, m, "notes")
		assert.NotContains(t, m, "seedling_#")
	})
}

func TestDaylilyFields(t *testing.T) {
	t.Run("characteristics always listed", func(t *testing.T) {
		d := &Daylily{Ploidy: "Tetraploid"}
		fields := d.Fields()
		require.Len(t, fields, 7)
		assert.Equal(t, Field{"Ploidy", "Tetraploid"}, fields[0])
		assert.Equal(t, "Foliage Type", fields[6].Label)
	})

	t.Run("optional details only when present", func(t *testing.T) {
		d := &Daylily{ColorDescription: "red self", Notes: "strong grower", Form: "  "}
		var labels []string
		for _, f := range d.Fields() {
			labels = append(labels, f.Label)
		}
		assert.Contains(t, labels, "Color")
		assert.Contains(t, labels, "Notes")
		assert.NotContains(t, labels, "Form")
		assert.NotContains(t, labels, "Fragrance")
	})
}

func TestGetField(t *testing.T) {
	d := &Daylily{Name: "Moon River", BloomSeason: "Midseason"}

	v, ok := d.GetField("name")
	assert.True(t, ok)
	assert.Equal(t, "Moon River", v)

	v, ok = d.GetField("Bloom_Season")
	assert.True(t, ok)
	assert.Equal(t, "Midseason", v)

	_, ok = d.GetField("color")
	assert.False(t, ok)
}

func TestImagePath(t *testing.T) {
	assert.Equal(t, "/assets/daylilies/stella.jpg", ImagePath("stella.jpg"))
	assert.Equal(t, "/assets/daylilies/placeholder.jpg", ImagePath(""))
}

func TestSubtitle(t *testing.T) {
	d := &Daylily{Hybridizer: "Stout", Year: "1940"}
	assert.Equal(t, "Stout (1940)", d.Subtitle())
}
