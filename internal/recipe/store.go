package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Store defines the interface for custom-recipe persistence.
type Store interface {
	GetCustomRecipe(ctx context.Context, id string) (*Recipe, error)
	GetCustomRecipeByHash(ctx context.Context, requestHash string) (*Recipe, error)
	SaveCustomRecipe(ctx context.Context, recipe *Recipe, requestHash string) error
	GetRecipeNotes(ctx context.Context, id string) (string, error)
	SaveRecipeNotes(ctx context.Context, id, notes string) error
}

// PostgresStore implements the Store interface for PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(dataSourceName string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Create custom_recipes table if not exists
	schema := `
	CREATE TABLE IF NOT EXISTS custom_recipes (
		id TEXT PRIMARY KEY,
		request_hash TEXT UNIQUE,
		recipe JSONB
	);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create custom_recipes table: %w", err)
	}

	// Create recipe_notes table if not exists
	schema = `
	CREATE TABLE IF NOT EXISTS recipe_notes (
		recipe_id TEXT PRIMARY KEY,
		notes TEXT
	);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe_notes table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// GetCustomRecipe retrieves a custom recipe by its ID.
func (s *PostgresStore) GetCustomRecipe(ctx context.Context, id string) (*Recipe, error) {
	return s.getRecipe(ctx, "SELECT recipe FROM custom_recipes WHERE id = $1", id)
}

// GetCustomRecipeByHash retrieves a custom recipe by its request hash.
func (s *PostgresStore) GetCustomRecipeByHash(ctx context.Context, requestHash string) (*Recipe, error) {
	return s.getRecipe(ctx, "SELECT recipe FROM custom_recipes WHERE request_hash = $1", requestHash)
}

func (s *PostgresStore) getRecipe(ctx context.Context, query, arg string) (*Recipe, error) {
	var recipeJSON []byte
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&recipeJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Recipe not found
		}
		return nil, fmt.Errorf("failed to get custom recipe: %w", err)
	}

	var r Recipe
	if err := json.Unmarshal(recipeJSON, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal custom recipe: %w", err)
	}
	return &r, nil
}

// SaveCustomRecipe saves a custom recipe keyed by ID and request hash.
func (s *PostgresStore) SaveCustomRecipe(ctx context.Context, recipe *Recipe, requestHash string) error {
	recipeJSON, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal custom recipe: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO custom_recipes (id, request_hash, recipe) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET request_hash = $2, recipe = $3",
		recipe.ID,
		requestHash,
		recipeJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save custom recipe: %w", err)
	}

	return nil
}

// GetRecipeNotes retrieves cached serving notes for a recipe.
func (s *PostgresStore) GetRecipeNotes(ctx context.Context, id string) (string, error) {
	var notes string
	err := s.db.QueryRowContext(ctx, "SELECT notes FROM recipe_notes WHERE recipe_id = $1", id).Scan(&notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil // Notes not found
		}
		return "", fmt.Errorf("failed to get recipe notes: %w", err)
	}
	return notes, nil
}

// SaveRecipeNotes caches serving notes for a recipe.
func (s *PostgresStore) SaveRecipeNotes(ctx context.Context, id, notes string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO recipe_notes (recipe_id, notes) VALUES ($1, $2) ON CONFLICT (recipe_id) DO UPDATE SET notes = $2",
		id,
		notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save recipe notes: %w", err)
	}
	return nil
}
