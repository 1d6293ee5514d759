package recipe

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxIngredients caps how many comma-separated ingredients the
// generator reads; extras are dropped.
const MaxIngredients = 8

// StyleAuto asks the generator to pick a dish style by keyword match.
const StyleAuto = "auto"

// Spice levels accepted by the generator.
const (
	SpiceMild   = "mild"
	SpiceMedium = "medium"
	SpiceHot    = "hot"
)

// GeneratorInput is a custom-recipe request.
type GeneratorInput struct {
	Ingredients string `json:"ingredients"`
	Diet        string `json:"diet"`
	Style       string `json:"style"`
	Spice       string `json:"spice"`
}

// dishStyle is one generator category: a fixed ordered step template
// plus the keywords that select it in auto mode.
type dishStyle struct {
	name     string
	display  string
	keywords []string
	steps    []string
}

// Styles in auto-match precedence order. The first style whose keyword
// appears in the ingredient text wins; stir-fry is the default and
// matches nothing on its own.
var styles = []dishStyle{
	{
		name:     "pasta",
		display:  "Pasta",
		keywords: []string{"spaghetti", "pasta", "penne", "macaroni", "linguine", "fettuccine", "noodle"},
		steps: []string{
			"Bring a large pot of salted water to the boil and cook the pasta until al dente.",
			"Warm olive oil in a wide pan and soften the aromatics from {ingredients}.",
			"Add {protein} and cook through.",
			"Toss the drained pasta through the sauce with a splash of cooking water.",
			"Finish with a {spice} pinch of chilli flakes and serve.",
		},
	},
	{
		name:     "curry",
		display:  "Curry",
		keywords: []string{"curry", "masala", "turmeric", "cumin", "coriander", "garam"},
		steps: []string{
			"Chop {ingredients} into even pieces.",
			"Toast the spices in hot oil until fragrant.",
			"Add {protein} and coat in the spice base.",
			"Pour in the liquids and simmer gently until thickened.",
			"Adjust to a {spice} heat and simmer five more minutes.",
			"Serve with rice or flatbread.",
		},
	},
	{
		name:     "soup",
		display:  "Soup",
		keywords: []string{"broth", "stock", "soup", "lentil"},
		steps: []string{
			"Dice {ingredients} into spoon-sized pieces.",
			"Sweat the aromatics in a heavy pot.",
			"Add {protein} and the remaining vegetables.",
			"Cover with stock and simmer until tender.",
			"Season with a {spice} touch of pepper and serve warm.",
		},
	},
	{
		name:     "salad",
		display:  "Salad",
		keywords: []string{"lettuce", "salad", "spinach", "arugula", "kale"},
		steps: []string{
			"Wash and dry {ingredients}.",
			"Chop everything into bite-sized pieces.",
			"Add {protein} for substance.",
			"Whisk a {spice} dressing and toss just before serving.",
		},
	},
	{
		name:    "stirfry",
		display: "Stir-fry",
		steps: []string{
			"Rinse and prep {ingredients}.",
			"Heat oil in a wok over high heat.",
			"Add {protein} and sear until browned.",
			"Toss in the remaining ingredients and stir-fry until crisp-tender.",
			"Season with soy sauce and a {spice} hit of chilli.",
			"Serve hot over steamed rice.",
		},
	},
}

var proteinKeywords = []string{
	"chicken", "beef", "pork", "lamb", "mutton", "turkey",
	"fish", "shrimp", "prawn", "egg",
}

// Generate synthesizes a recipe from freeform ingredient text. The
// output is deterministic for identical inputs aside from the ID.
func Generate(in GeneratorInput) *Recipe {
	ingredients := SplitIngredients(in.Ingredients)
	diet := NormalizeDiet(in.Diet)
	spice := normalizeSpice(in.Spice)
	style := resolveStyle(in.Style, ingredients)

	title := fmt.Sprintf("%s with %s", style.display, titleCase(first(ingredients)))
	description := fmt.Sprintf("A %s %s %s made with %s.",
		spiceWord(spice), dietWord(diet), strings.ToLower(style.display), joinList(ingredients))

	steps := make([]string, len(style.steps))
	for i, step := range style.steps {
		step = strings.ReplaceAll(step, "{ingredients}", joinList(ingredients))
		step = strings.ReplaceAll(step, "{protein}", proteinSuggestion(diet, ingredients))
		step = strings.ReplaceAll(step, "{spice}", spice)
		steps[i] = step
	}

	return &Recipe{
		ID:          uuid.NewString(),
		Diet:        diet,
		Title:       LocalText{defaultLang: title},
		Description: LocalText{defaultLang: description},
		Ingredients: LocalList{defaultLang: ingredients},
		Steps:       LocalList{defaultLang: steps},
	}
}

// RequestHash returns a stable hash of the canonicalized generator
// input, used to dedupe identical requests.
func RequestHash(in GeneratorInput) string {
	canonical := strings.Join([]string{
		strings.Join(SplitIngredients(in.Ingredients), ","),
		NormalizeDiet(in.Diet),
		normalizeStyle(in.Style),
		normalizeSpice(in.Spice),
	}, "|")
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// SplitIngredients parses comma-separated ingredient text, trimming
// whitespace, dropping empties, and capping at MaxIngredients.
func SplitIngredients(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		out = append(out, part)
		if len(out) == MaxIngredients {
			break
		}
	}
	return out
}

func resolveStyle(requested string, ingredients []string) dishStyle {
	requested = normalizeStyle(requested)
	if requested != StyleAuto {
		for _, s := range styles {
			if s.name == requested {
				return s
			}
		}
	}
	text := strings.Join(ingredients, " ")
	for _, s := range styles {
		for _, kw := range s.keywords {
			if strings.Contains(text, kw) {
				return s
			}
		}
	}
	// Default category.
	return styles[len(styles)-1]
}

// normalizeStyle folds empty and unrecognized styles to auto, so the
// request hash canonicalizes the same way the generator resolves.
func normalizeStyle(style string) string {
	style = strings.ToLower(strings.TrimSpace(style))
	for _, s := range styles {
		if s.name == style {
			return style
		}
	}
	return StyleAuto
}

func normalizeSpice(spice string) string {
	switch strings.ToLower(strings.TrimSpace(spice)) {
	case SpiceMild:
		return SpiceMild
	case SpiceHot:
		return SpiceHot
	default:
		return SpiceMedium
	}
}

// proteinSuggestion picks the protein step text: for nonveg, the first
// recognizable protein among the ingredients (chicken when none is
// named); for veg, a fixed substitute.
func proteinSuggestion(diet string, ingredients []string) string {
	if diet != DietNonVeg {
		return "tofu or paneer"
	}
	for _, ing := range ingredients {
		for _, kw := range proteinKeywords {
			if strings.Contains(ing, kw) {
				return ing
			}
		}
	}
	return "chicken"
}

func spiceWord(spice string) string {
	switch spice {
	case SpiceMild:
		return "mildly spiced"
	case SpiceHot:
		return "fiery"
	default:
		return "medium-spiced"
	}
}

func dietWord(diet string) string {
	if diet == DietNonVeg {
		return "non-vegetarian"
	}
	return "vegetarian"
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return "pantry staples"
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func first(items []string) string {
	if len(items) == 0 {
		return "Pantry Staples"
	}
	return items[0]
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
