package collab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindField(t *testing.T) {
	t.Run("Registered Fields", func(t *testing.T) {
		for _, kind := range Kinds {
			for _, f := range kind.Fields {
				found, ok := kind.Field(f.Name)
				require.True(t, ok, "%s should resolve on %s", f.Name, kind.Slug)
				assert.Equal(t, f.Column, found.Column)
			}
		}
	})

	t.Run("Unregistered Fields", func(t *testing.T) {
		for _, name := range []string{
			"nonexistent",
			"id",
			"id; DROP TABLE cosmetic_collabs",
			"makeup_brand",
			"MakeupBrand",
			"",
		} {
			_, ok := Cosmetics.Field(name)
			assert.False(t, ok, "%q should not resolve", name)
		}
		// collaborationType only belongs to the cosmetic kind
		_, ok := Videogames.Field("collaborationType")
		assert.False(t, ok)
		_, ok = Cosmetics.Field("collaborationType")
		assert.True(t, ok)
	})
}

func TestKindColumns(t *testing.T) {
	assert.Equal(t, []string{
		"makeup_brand",
		"videogame",
		"collaboration_date",
		"collaboration_type",
		"sales_increase_percent",
		"image_url",
	}, Cosmetics.Columns())

	assert.Equal(t, []string{
		"videogame",
		"makeup_brand",
		"collaboration_date",
		"sales_increase_percent",
		"image_url",
	}, Videogames.Columns())
}

func TestRecordAccessors(t *testing.T) {
	for _, kind := range Kinds {
		var r Record
		for _, f := range kind.Fields {
			r.SetValue(f.Name, f.Name+"-value")
			assert.Equal(t, f.Name+"-value", r.Value(f.Name), "%s round trip", f.Name)
		}
	}

	var r Record
	r.SetValue("nonexistent", "x")
	assert.Equal(t, Record{}, r)
	assert.Equal(t, "", r.Value("nonexistent"))
}
