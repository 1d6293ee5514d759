package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashabari/Majumdar-WorldRecipes/internal/i18n"
	"github.com/ashabari/Majumdar-WorldRecipes/internal/recipe"
)

// Catalog defines the interface for the canonical recipe set.
type Catalog interface {
	Find(country, diet string) *recipe.Recipe
	Filter(country, diet string) []recipe.Recipe
	Countries() []string
	Len() int
}

// WorldMap defines the interface for the interactive map resource.
type WorldMap interface {
	SVG() []byte
	Countries() []string
	Interactive(code string) bool
}

// RecipeStore defines the interface for custom-recipe persistence.
type RecipeStore interface {
	GetCustomRecipe(ctx context.Context, id string) (*recipe.Recipe, error)
	GetCustomRecipeByHash(ctx context.Context, requestHash string) (*recipe.Recipe, error)
	SaveCustomRecipe(ctx context.Context, recipe *recipe.Recipe, requestHash string) error
	GetRecipeNotes(ctx context.Context, id string) (string, error)
	SaveRecipeNotes(ctx context.Context, id, notes string) error
}

// NotesClient defines the interface for the optional AI notes backend.
type NotesClient interface {
	RecipeNotes(ctx context.Context, v recipe.View) (string, error)
}

// Handler handles HTTP requests.
type Handler struct {
	Catalog     Catalog
	Map         WorldMap
	RecipeStore RecipeStore
	NotesClient NotesClient
}

// NewHandler creates a new Handler. notesClient may be nil when no
// notes backend is configured.
func NewHandler(catalog Catalog, worldMap WorldMap, recipeStore RecipeStore, notesClient NotesClient) *Handler {
	return &Handler{Catalog: catalog, Map: worldMap, RecipeStore: recipeStore, NotesClient: notesClient}
}

// GetMap serves the raw SVG map document.
func (h *Handler) GetMap(c *gin.Context) {
	c.Data(http.StatusOK, "image/svg+xml", h.Map.SVG())
}

// countryEntry is one interactive country in the GetCountries response.
type countryEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// GetCountries returns the interactive country codes with display names
// in the requested language.
func (h *Handler) GetCountries(c *gin.Context) {
	lang := i18n.Normalize(c.Query("lang"))

	codes := h.Map.Countries()
	entries := make([]countryEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, countryEntry{Code: code, Name: i18n.CountryName(lang, code)})
	}

	c.JSON(http.StatusOK, gin.H{"lang": lang, "countries": entries})
}

// GetRecipes returns localized views of the catalog records matching
// the optional country and diet filters.
func (h *Handler) GetRecipes(c *gin.Context) {
	lang := i18n.Normalize(c.Query("lang"))

	records := h.Catalog.Filter(c.Query("country"), c.Query("diet"))
	views := make([]recipe.View, 0, len(records))
	for i := range records {
		views = append(views, records[i].Localize(lang))
	}

	c.JSON(http.StatusOK, views)
}

// GetRecipe resolves a (country, diet) selection into a localized view.
// No match returns the "no recipe" message in the active language.
func (h *Handler) GetRecipe(c *gin.Context) {
	country := c.Param("country")
	diet := c.DefaultQuery("diet", recipe.DietVeg)
	lang := i18n.Normalize(c.Query("lang"))

	// Malformed data normalizes to an empty catalog at startup; report
	// that distinctly from a missing recipe.
	if h.Catalog.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": i18n.T(lang, "data.unavailable")})
		return
	}

	if !h.Map.Interactive(country) {
		log.Printf("Recipe lookup for country outside the map allow-list: %s", country)
	}

	r := h.Catalog.Find(country, diet)
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": i18n.T(lang, "recipe.missing")})
		return
	}

	c.JSON(http.StatusOK, r.Localize(lang))
}

// RenderRecipe resolves a (country, diet) selection and renders it as
// an HTML fragment. Template escaping keeps untrusted recipe text from
// injecting markup.
func (h *Handler) RenderRecipe(c *gin.Context) {
	country := c.Param("country")
	diet := c.DefaultQuery("diet", recipe.DietVeg)
	lang := i18n.Normalize(c.Query("lang"))

	if h.Catalog.Len() == 0 {
		c.String(http.StatusServiceUnavailable, i18n.T(lang, "data.unavailable"))
		return
	}

	r := h.Catalog.Find(country, diet)
	if r == nil {
		c.String(http.StatusNotFound, i18n.T(lang, "recipe.missing"))
		return
	}

	html, err := renderRecipeHTML(r.Localize(lang))
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("render err: %s", err.Error()))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// CreateCustomRecipe runs the deterministic generator. Identical
// requests are deduped through the store by request hash.
func (h *Handler) CreateCustomRecipe(c *gin.Context) {
	var input recipe.GeneratorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("bind err: %s", err.Error()))
		return
	}

	if len(recipe.SplitIngredients(input.Ingredients)) == 0 {
		c.String(http.StatusBadRequest, "At least one ingredient is required.")
		return
	}

	requestHash := recipe.RequestHash(input)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// Identical inputs generate identical recipes, so serve the cached
	// one and keep its ID stable.
	cached, err := h.RecipeStore.GetCustomRecipeByHash(ctx, requestHash)
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("store error: %s", err.Error()))
		return
	}
	if cached != nil {
		log.Printf("Custom recipe found in store for request hash: %s", requestHash)
		c.JSON(http.StatusOK, cached)
		return
	}

	generated := recipe.Generate(input)
	if err := h.RecipeStore.SaveCustomRecipe(ctx, generated, requestHash); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.String(http.StatusRequestTimeout, "Store save timed out after 5 seconds")
			return
		}
		c.String(http.StatusInternalServerError, fmt.Sprintf("failed to save custom recipe: %s", err.Error()))
		return
	}

	c.JSON(http.StatusOK, generated)
}

// GetCustomRecipe retrieves a saved custom recipe by ID.
func (h *Handler) GetCustomRecipe(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	r, err := h.RecipeStore.GetCustomRecipe(ctx, id)
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("store error: %s", err.Error()))
		return
	}

	if r == nil {
		c.String(http.StatusNotFound, "Custom recipe not found")
		return
	}

	c.JSON(http.StatusOK, r)
}

// CustomRecipeNotes returns AI serving notes for a saved custom recipe,
// caching them in the store.
func (h *Handler) CustomRecipeNotes(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 45*time.Second)
	defer cancel()

	notes, err := h.RecipeStore.GetRecipeNotes(ctx, id)
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("store error: %s", err.Error()))
		return
	}

	if notes != "" {
		log.Printf("Recipe notes found in store for recipe: %s", id)
		c.JSON(http.StatusOK, gin.H{"id": id, "notes": notes})
		return
	}

	if h.NotesClient == nil {
		c.String(http.StatusServiceUnavailable, "Recipe notes backend is not configured")
		return
	}

	r, err := h.RecipeStore.GetCustomRecipe(ctx, id)
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("store error: %s", err.Error()))
		return
	}
	if r == nil {
		c.String(http.StatusNotFound, "Custom recipe not found")
		return
	}

	notes, err = h.NotesClient.RecipeNotes(ctx, r.Localize(i18n.Default))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.String(http.StatusRequestTimeout, "Notes backend call timed out after 45 seconds")
			return
		}
		c.String(http.StatusInternalServerError, fmt.Sprintf("notes err: %s", err.Error()))
		return
	}

	if saveErr := h.RecipeStore.SaveRecipeNotes(ctx, id, notes); saveErr != nil {
		log.Printf("failed to save recipe notes: %s", saveErr.Error())
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "notes": notes})
}
