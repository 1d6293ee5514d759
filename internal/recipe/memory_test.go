package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_CustomRecipes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	missing, err := store.GetCustomRecipe(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	r := Generate(GeneratorInput{Ingredients: "lentil, carrot", Diet: "veg"})
	assert.NoError(t, store.SaveCustomRecipe(ctx, r, "hash-1"))

	byID, err := store.GetCustomRecipe(ctx, r.ID)
	assert.NoError(t, err)
	assert.Equal(t, r, byID)

	byHash, err := store.GetCustomRecipeByHash(ctx, "hash-1")
	assert.NoError(t, err)
	assert.Equal(t, r, byHash)
}

func TestMemoryStore_Notes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	notes, err := store.GetRecipeNotes(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, "", notes)

	assert.NoError(t, store.SaveRecipeNotes(ctx, "id-1", "Serve with rice."))

	notes, err = store.GetRecipeNotes(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, "Serve with rice.", notes)
}
