package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Default is the fallback language for every localized value.
const Default = "en"

var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.Hindi,
}

var codes = []string{"en", "es", "fr", "hi"}

var matcher = language.NewMatcher(supported)

// Normalize resolves an incoming language code to one of the supported
// codes. Unknown or empty codes resolve to the default language.
func Normalize(code string) string {
	if code == "" {
		return Default
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Default
	}
	_, index, _ := matcher.Match(tag)
	return codes[index]
}

// Supported returns the supported language codes in display order.
func Supported() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

var messages = map[string]map[string]string{
	"en": {
		"recipe.missing":    "No recipe found for this selection.",
		"data.unavailable":  "Recipe data could not be loaded. Please try again later.",
		"label.ingredients": "Ingredients",
		"label.steps":       "Steps",
	},
	"es": {
		"recipe.missing":    "No se encontró ninguna receta para esta selección.",
		"data.unavailable":  "No se pudieron cargar los datos de recetas. Inténtalo de nuevo más tarde.",
		"label.ingredients": "Ingredientes",
		"label.steps":       "Pasos",
	},
	"fr": {
		"recipe.missing":    "Aucune recette trouvée pour cette sélection.",
		"data.unavailable":  "Les données de recettes n'ont pas pu être chargées. Veuillez réessayer plus tard.",
		"label.ingredients": "Ingrédients",
		"label.steps":       "Étapes",
	},
	"hi": {
		"recipe.missing":    "इस चयन के लिए कोई रेसिपी नहीं मिली।",
		"data.unavailable":  "रेसिपी डेटा लोड नहीं हो सका। कृपया बाद में पुनः प्रयास करें।",
		"label.ingredients": "सामग्री",
		"label.steps":       "विधि",
	},
}

// T returns the message for key in lang, falling back to the default
// language, then to the key itself.
func T(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := messages[Default][key]; ok {
		return v
	}
	return key
}

var tagByCode = map[string]language.Tag{
	"en": language.English,
	"es": language.Spanish,
	"fr": language.French,
	"hi": language.Hindi,
}

// CountryName returns the display name of an ISO 3166-1 alpha-2 country
// code in the given language, falling back to the code itself.
func CountryName(lang, code string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	namer := display.Regions(tagByCode[Normalize(lang)])
	if namer == nil {
		return code
	}
	if name := namer.Name(region); name != "" {
		return name
	}
	return code
}
