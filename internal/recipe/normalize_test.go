package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_ByCountryObject(t *testing.T) {
	raw := []byte(`{
		"in": {
			"veg": [{"title": "Dal", "ingredients": ["lentils"], "steps": ["Simmer."]}],
			"nonveg": [{"title": "Chicken Curry", "ingredients": ["chicken"], "steps": ["Cook."]}]
		},
		"FR": {
			"veg": [{"id": "fr-classic", "title": "Ratatouille", "ingredients": ["eggplant"], "steps": ["Stew."]}]
		}
	}`)

	out := Normalize(raw)
	assert.Len(t, out, 3)

	// Countries are sorted; FR before in.
	assert.Equal(t, "FR", out[0].Country)
	assert.Equal(t, DietVeg, out[0].Diet)
	assert.Equal(t, "fr-classic", out[0].ID)

	assert.Equal(t, "IN", out[1].Country)
	assert.Equal(t, DietVeg, out[1].Diet)
	assert.Equal(t, "in-veg-0", out[1].ID)
	assert.Equal(t, "Dal", out[1].Title.Resolve("en"))

	assert.Equal(t, "IN", out[2].Country)
	assert.Equal(t, DietNonVeg, out[2].Diet)
	assert.Equal(t, "in-nonveg-0", out[2].ID)
}

func TestNormalize_FlatArray(t *testing.T) {
	raw := []byte(`[
		{"id": "mx-veg-0", "country": "mx", "diet": "veg", "title": "Tacos de Nopal"},
		{"country": "JP", "diet": "nonveg", "title": "Ramen"}
	]`)

	out := Normalize(raw)
	assert.Len(t, out, 2)
	assert.Equal(t, "mx-veg-0", out[0].ID)
	assert.Equal(t, "MX", out[0].Country)
	assert.Equal(t, DietVeg, out[0].Diet)

	// Missing ID synthesized from country, diet, and position.
	assert.Equal(t, "jp-nonveg-1", out[1].ID)
}

func TestNormalize_MalformedShapes(t *testing.T) {
	cases := map[string]string{
		"number":         `42`,
		"null":           `null`,
		"string":         `"recipes"`,
		"bool":           `true`,
		"malformed":      `{"IN": {"veg": 5}}`,
		"truncated":      `[{"country": "IN"`,
		"object of junk": `{"IN": "nothing"}`,
		"empty input":    ``,
	}

	for name, raw := range cases {
		assert.Empty(t, Normalize([]byte(raw)), name)
	}
}

func TestNormalize_DuplicatePairKeepsFirst(t *testing.T) {
	raw := []byte(`[
		{"country": "IT", "diet": "veg", "title": "Margherita"},
		{"country": "IT", "diet": "veg", "title": "Caprese"}
	]`)

	catalog := NewCatalog(Normalize(raw))
	found := catalog.Find("IT", "veg")
	assert.NotNil(t, found)
	assert.Equal(t, "Margherita", found.Title.Resolve("en"))
}
