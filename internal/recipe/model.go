package recipe

import (
	"encoding/json"
	"strings"
)

// Diet categories. The catalog knows exactly two.
const (
	DietVeg    = "veg"
	DietNonVeg = "nonveg"
)

// defaultLang is the fallback language for localized fields.
const defaultLang = "en"

// LocalText is a localized string. In JSON it is either a plain string
// (treated as the default language) or an object keyed by language code.
type LocalText map[string]string

// UnmarshalJSON implements the json.Unmarshaler interface for LocalText.
func (t *LocalText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = LocalText{defaultLang: s}
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = LocalText(m)
	return nil
}

// Resolve returns the value for lang, falling back to the default
// language, then to the empty string.
func (t LocalText) Resolve(lang string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[defaultLang]
}

// LocalList is a localized list of strings. In JSON it is either a plain
// array (treated as the default language) or an object keyed by language
// code mapping to arrays.
type LocalList map[string][]string

// UnmarshalJSON implements the json.Unmarshaler interface for LocalList.
func (l *LocalList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = LocalList{defaultLang: items}
		return nil
	}
	var m map[string][]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*l = LocalList(m)
	return nil
}

// Resolve returns the list for lang, falling back to the default
// language, then to nil.
func (l LocalList) Resolve(lang string) []string {
	if v, ok := l[lang]; ok && len(v) > 0 {
		return v
	}
	return l[defaultLang]
}

// Recipe represents one canonical recipe record.
type Recipe struct {
	ID             string    `json:"id"`
	Country        string    `json:"country"`
	Diet           string    `json:"diet"`
	Title          LocalText `json:"title"`
	Description    LocalText `json:"description"`
	Ingredients    LocalList `json:"ingredients"`
	Steps          LocalList `json:"steps"`
	ImageURL       string    `json:"image_url"`
	ImageCredit    string    `json:"image_credit"`
	ImageCreditURL string    `json:"image_credit_url"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Recipe.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	type Alias Recipe // Create an alias to avoid infinite recursion
	aux := &struct {
		Country string `json:"country"`
		Diet    string `json:"diet"`
		*Alias
	}{
		Alias: (*Alias)(r),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Country = strings.ToUpper(strings.TrimSpace(aux.Country))
	r.Diet = NormalizeDiet(aux.Diet)

	return nil
}

// NormalizeDiet maps the accepted spellings of the two diet categories
// to their canonical values. Unknown values pass through lowercased.
func NormalizeDiet(diet string) string {
	switch strings.ToLower(strings.TrimSpace(diet)) {
	case "veg", "vegetarian":
		return DietVeg
	case "nonveg", "non-veg", "nonvegetarian", "non-vegetarian":
		return DietNonVeg
	default:
		return strings.ToLower(strings.TrimSpace(diet))
	}
}

// View is a recipe resolved into a single language, ready for display.
type View struct {
	ID             string   `json:"id"`
	Country        string   `json:"country,omitempty"`
	Diet           string   `json:"diet"`
	Lang           string   `json:"lang"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Ingredients    []string `json:"ingredients"`
	Steps          []string `json:"steps"`
	ImageURL       string   `json:"image_url,omitempty"`
	ImageCredit    string   `json:"image_credit,omitempty"`
	ImageCreditURL string   `json:"image_credit_url,omitempty"`
}

// Localize resolves every localized field of the recipe into lang.
func (r *Recipe) Localize(lang string) View {
	return View{
		ID:             r.ID,
		Country:        r.Country,
		Diet:           r.Diet,
		Lang:           lang,
		Title:          r.Title.Resolve(lang),
		Description:    r.Description.Resolve(lang),
		Ingredients:    r.Ingredients.Resolve(lang),
		Steps:          r.Steps.Resolve(lang),
		ImageURL:       r.ImageURL,
		ImageCredit:    r.ImageCredit,
		ImageCreditURL: r.ImageCreditURL,
	}
}
