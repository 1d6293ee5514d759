package recipe

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// dietBuckets is the by-country input shape: each country maps to two
// arrays, one per diet category.
type dietBuckets struct {
	Veg    []Recipe `json:"veg"`
	NonVeg []Recipe `json:"nonveg"`
}

// Normalize converts raw recipe JSON of unknown shape into a flat list
// of canonical records. Two shapes are recognized: a flat array of
// records, and an object keyed by country code holding veg/nonveg
// arrays. Anything else normalizes to an empty list rather than
// failing. Records without an ID get one synthesized from country,
// diet, and position.
func Normalize(raw []byte) []Recipe {
	var flat []Recipe
	if err := json.Unmarshal(raw, &flat); err == nil {
		for i := range flat {
			if flat[i].ID == "" {
				flat[i].ID = synthesizeID(flat[i].Country, flat[i].Diet, i)
			}
		}
		return flat
	}

	var byCountry map[string]dietBuckets
	if err := json.Unmarshal(raw, &byCountry); err != nil {
		return nil
	}

	// Country order is undefined in a JSON object; sort for a stable
	// catalog.
	countries := make([]string, 0, len(byCountry))
	for country := range byCountry {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	var out []Recipe
	for _, country := range countries {
		buckets := byCountry[country]
		out = append(out, flattenBucket(country, DietVeg, buckets.Veg)...)
		out = append(out, flattenBucket(country, DietNonVeg, buckets.NonVeg)...)
	}
	return out
}

func flattenBucket(country, diet string, records []Recipe) []Recipe {
	out := make([]Recipe, 0, len(records))
	for i, r := range records {
		r.Country = strings.ToUpper(strings.TrimSpace(country))
		r.Diet = diet
		if r.ID == "" {
			r.ID = synthesizeID(r.Country, r.Diet, i)
		}
		out = append(out, r)
	}
	return out
}

func synthesizeID(country, diet string, index int) string {
	country = strings.ToLower(country)
	if country == "" {
		country = "xx"
	}
	if diet == "" {
		diet = "any"
	}
	return fmt.Sprintf("%s-%s-%d", country, diet, index)
}
