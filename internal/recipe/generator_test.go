package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_KeywordSelectsPasta(t *testing.T) {
	r := Generate(GeneratorInput{Ingredients: "spaghetti, garlic, basil", Diet: "veg", Style: "auto"})

	assert.Equal(t, "Pasta with Spaghetti", r.Title.Resolve("en"))
	steps := r.Steps.Resolve("en")
	assert.Len(t, steps, 5)
	assert.Contains(t, steps[0], "al dente")
}

func TestGenerate_DefaultStyleExample(t *testing.T) {
	r := Generate(GeneratorInput{Ingredients: "chicken, garlic, onion", Diet: "nonveg", Style: "auto"})

	assert.Equal(t, "Stir-fry with Chicken", r.Title.Resolve("en"))
	assert.Equal(t, DietNonVeg, r.Diet)
	assert.Equal(t, []string{"chicken", "garlic", "onion"}, r.Ingredients.Resolve("en"))
}

func TestGenerate_DietChangesOnlyProteinStep(t *testing.T) {
	nonveg := Generate(GeneratorInput{Ingredients: "garlic, onion, pepper", Diet: "nonveg"})
	veg := Generate(GeneratorInput{Ingredients: "garlic, onion, pepper", Diet: "veg"})

	nonvegSteps := nonveg.Steps.Resolve("en")
	vegSteps := veg.Steps.Resolve("en")
	assert.Equal(t, len(nonvegSteps), len(vegSteps))

	var differing []int
	for i := range nonvegSteps {
		if nonvegSteps[i] != vegSteps[i] {
			differing = append(differing, i)
		}
	}
	assert.Len(t, differing, 1)
	assert.Contains(t, nonvegSteps[differing[0]], "chicken")
	assert.Contains(t, vegSteps[differing[0]], "tofu or paneer")
}

func TestGenerate_ProteinFromIngredients(t *testing.T) {
	r := Generate(GeneratorInput{Ingredients: "garlic, prawn, onion", Diet: "nonveg"})

	steps := r.Steps.Resolve("en")
	assert.Contains(t, steps[2], "prawn")
}

func TestGenerate_ExplicitStyleOverridesKeywords(t *testing.T) {
	r := Generate(GeneratorInput{Ingredients: "spaghetti, lentil", Diet: "veg", Style: "soup"})

	assert.True(t, strings.HasPrefix(r.Title.Resolve("en"), "Soup"))
	assert.Len(t, r.Steps.Resolve("en"), 5)
}

func TestGenerate_Deterministic(t *testing.T) {
	in := GeneratorInput{Ingredients: "chicken, garlic", Diet: "nonveg", Spice: "hot"}
	a := Generate(in)
	b := Generate(in)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Title, b.Title)
	assert.Equal(t, a.Description, b.Description)
	assert.Equal(t, a.Steps, b.Steps)
}

func TestSplitIngredients_CapAndTrim(t *testing.T) {
	out := SplitIngredients(" a , b ,, c , d, e, f, g, h, i, j ")
	assert.Len(t, out, MaxIngredients)
	assert.Equal(t, "a", out[0])
	assert.NotContains(t, out, "i")

	assert.Empty(t, SplitIngredients(" , ,"))
}

func TestRequestHash(t *testing.T) {
	a := RequestHash(GeneratorInput{Ingredients: "Chicken, Garlic", Diet: "non-veg", Spice: ""})
	b := RequestHash(GeneratorInput{Ingredients: " chicken ,garlic ", Diet: "nonveg", Spice: "medium"})
	c := RequestHash(GeneratorInput{Ingredients: "chicken, garlic", Diet: "veg"})

	// Canonicalization makes equivalent requests hash equal.
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRequestHash_UnknownStyleFoldsToAuto(t *testing.T) {
	// An unrecognized style resolves exactly like auto, so it must
	// hash like auto too.
	unknown := RequestHash(GeneratorInput{Ingredients: "chicken, garlic", Diet: "nonveg", Style: "bbq"})
	auto := RequestHash(GeneratorInput{Ingredients: "chicken, garlic", Diet: "nonveg", Style: "auto"})
	blank := RequestHash(GeneratorInput{Ingredients: "chicken, garlic", Diet: "nonveg"})
	explicit := RequestHash(GeneratorInput{Ingredients: "chicken, garlic", Diet: "nonveg", Style: "curry"})

	assert.Equal(t, auto, unknown)
	assert.Equal(t, auto, blank)
	assert.NotEqual(t, auto, explicit)

	bbq := Generate(GeneratorInput{Ingredients: "chicken, garlic", Diet: "nonveg", Style: "bbq"})
	assert.Equal(t, "Stir-fry with Chicken", bbq.Title.Resolve("en"))
}
