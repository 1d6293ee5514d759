package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalText_PlainString(t *testing.T) {
	var r Recipe
	err := json.Unmarshal([]byte(`{"title": "Dal", "country": "in", "diet": "Vegetarian"}`), &r)
	assert.NoError(t, err)

	assert.Equal(t, "Dal", r.Title.Resolve("en"))
	assert.Equal(t, "Dal", r.Title.Resolve("hi"))
	assert.Equal(t, "IN", r.Country)
	assert.Equal(t, DietVeg, r.Diet)
}

func TestLocalText_LanguageMap(t *testing.T) {
	var r Recipe
	err := json.Unmarshal([]byte(`{
		"title": {"en": "Greek Salad", "fr": "Salade grecque"},
		"ingredients": {"en": ["feta", "olives"], "fr": ["feta", "olives noires"]}
	}`), &r)
	assert.NoError(t, err)

	assert.Equal(t, "Salade grecque", r.Title.Resolve("fr"))
	assert.Equal(t, "Greek Salad", r.Title.Resolve("es"))
	assert.Equal(t, []string{"olives noires"}, r.Ingredients.Resolve("fr")[1:])
	assert.Equal(t, []string{"feta", "olives"}, r.Ingredients.Resolve("hi"))
}

func TestLocalText_EmptyFallsThrough(t *testing.T) {
	title := LocalText{"en": "Pho", "fr": ""}
	assert.Equal(t, "Pho", title.Resolve("fr"))

	var empty LocalText
	assert.Equal(t, "", empty.Resolve("en"))

	var noSteps LocalList
	assert.Nil(t, noSteps.Resolve("en"))
}

func TestNormalizeDiet(t *testing.T) {
	assert.Equal(t, DietVeg, NormalizeDiet(" Vegetarian "))
	assert.Equal(t, DietVeg, NormalizeDiet("veg"))
	assert.Equal(t, DietNonVeg, NormalizeDiet("Non-Veg"))
	assert.Equal(t, DietNonVeg, NormalizeDiet("nonvegetarian"))
	assert.Equal(t, "pescatarian", NormalizeDiet("Pescatarian"))
}
