package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ashabari/Majumdar-WorldRecipes/internal/api"
	"github.com/ashabari/Majumdar-WorldRecipes/internal/platform/gemini"
	"github.com/ashabari/Majumdar-WorldRecipes/internal/platform/localllm"
	"github.com/ashabari/Majumdar-WorldRecipes/internal/recipe"
	"github.com/ashabari/Majumdar-WorldRecipes/internal/worldmap"
)

// Config represents the application configuration.
type Config struct {
	ListenAddr   string `json:"listen_addr"`
	RecipeData   string `json:"recipe_data"`
	MapFile      string `json:"map_file"`
	DatabaseURL  string `json:"DATABASE_URL"`
	GeminiAPIKey string `json:"gemini_api_key"`
	LocalLLMURL  string `json:"local_llm_url"`
}

func main() {
	ctx := context.Background()

	// Read configuration from config.json
	configData, err := os.ReadFile("config.json")
	if err != nil {
		panic(fmt.Errorf("failed to read config.json: %w", err))
	}

	var config Config
	if err := json.Unmarshal(configData, &config); err != nil {
		panic(fmt.Errorf("failed to unmarshal config.json: %w", err))
	}
	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.RecipeData == "" {
		config.RecipeData = "data/recipes.json"
	}
	if config.MapFile == "" {
		config.MapFile = "assets/worldmap.svg"
	}

	// The map and the recipe data are the two startup fetches; either
	// failing is unrecoverable for the session.
	worldMap, err := worldmap.Load(config.MapFile)
	if err != nil {
		panic(fmt.Errorf("error loading world map: %w", err))
	}

	catalog, err := recipe.LoadCatalog(config.RecipeData)
	if err != nil {
		panic(fmt.Errorf("error loading recipe catalog: %w", err))
	}
	log.Printf("Loaded %d recipes, %d interactive countries", catalog.Len(), len(worldMap.Countries()))

	var store api.RecipeStore
	if config.DatabaseURL != "" {
		pgStore, err := recipe.NewPostgresStore(config.DatabaseURL)
		if err != nil {
			panic(fmt.Errorf("error creating postgresstore: %w", err))
		}
		store = pgStore
	} else {
		log.Printf("DATABASE_URL not set, custom recipes are kept in memory")
		store = recipe.NewMemoryStore()
	}

	var notes api.NotesClient
	switch {
	case config.GeminiAPIKey != "":
		geminiClient, err := gemini.NewClient(ctx, config.GeminiAPIKey)
		if err != nil {
			panic(fmt.Errorf("error creating gemini client: %w", err))
		}
		notes = geminiClient
	case config.LocalLLMURL != "":
		notes = localllm.NewClient(config.LocalLLMURL)
	}

	handler := api.NewHandler(catalog, worldMap, store, notes)

	r := gin.Default()

	// Configure CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/map", handler.GetMap)
	r.GET("/countries", handler.GetCountries)
	r.GET("/recipes", handler.GetRecipes)
	r.GET("/recipes/:country", handler.GetRecipe)
	r.GET("/recipes/:country/view", handler.RenderRecipe)
	r.POST("/custom-recipes", handler.CreateCustomRecipe)
	r.GET("/custom-recipes/:id", handler.GetCustomRecipe)
	r.POST("/custom-recipes/:id/notes", handler.CustomRecipeNotes)
	r.POST("/recipe-images", handler.UploadRecipeImage)
	r.Static("/images", "./images")
	r.Run(config.ListenAddr)
}
