package recipe

import (
	"fmt"
	"os"
	"strings"
)

// Catalog is the canonical recipe set: built once from raw data and
// never mutated afterwards.
type Catalog struct {
	recipes []Recipe
}

// NewCatalog builds a catalog from an already-normalized record list.
func NewCatalog(recipes []Recipe) *Catalog {
	return &Catalog{recipes: recipes}
}

// LoadCatalog reads a recipe data file and normalizes it. A missing or
// unreadable file is an error; malformed JSON yields an empty catalog.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe data: %w", err)
	}
	return NewCatalog(Normalize(raw)), nil
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Find returns the first record matching country and diet, or nil.
// Duplicate (country, diet) pairs are tolerated; only the first is
// ever served.
func (c *Catalog) Find(country, diet string) *Recipe {
	country = strings.ToUpper(strings.TrimSpace(country))
	diet = NormalizeDiet(diet)
	for i := range c.recipes {
		if c.recipes[i].Country == country && c.recipes[i].Diet == diet {
			return &c.recipes[i]
		}
	}
	return nil
}

// Filter returns the records matching the given country and diet, in
// catalog order. Empty arguments match everything.
func (c *Catalog) Filter(country, diet string) []Recipe {
	country = strings.ToUpper(strings.TrimSpace(country))
	if diet != "" {
		diet = NormalizeDiet(diet)
	}
	var out []Recipe
	for _, r := range c.recipes {
		matchCountry := country == "" || r.Country == country
		matchDiet := diet == "" || r.Diet == diet
		if matchCountry && matchDiet {
			out = append(out, r)
		}
	}
	return out
}

// Countries returns the distinct country codes present in the catalog,
// in first-seen order.
func (c *Catalog) Countries() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range c.recipes {
		if r.Country == "" || seen[r.Country] {
			continue
		}
		seen[r.Country] = true
		out = append(out, r.Country)
	}
	return out
}
