package recipe

import (
	"context"
	"sync"
)

// MemoryStore implements the Store interface in memory. It backs the
// service when no database is configured and the tests.
type MemoryStore struct {
	mu     sync.Mutex
	byID   map[string]*Recipe
	byHash map[string]*Recipe
	notes  map[string]string
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]*Recipe),
		byHash: make(map[string]*Recipe),
		notes:  make(map[string]string),
	}
}

// GetCustomRecipe retrieves a custom recipe by its ID.
func (s *MemoryStore) GetCustomRecipe(ctx context.Context, id string) (*Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id], nil
}

// GetCustomRecipeByHash retrieves a custom recipe by its request hash.
func (s *MemoryStore) GetCustomRecipeByHash(ctx context.Context, requestHash string) (*Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byHash[requestHash], nil
}

// SaveCustomRecipe saves a custom recipe keyed by ID and request hash.
func (s *MemoryStore) SaveCustomRecipe(ctx context.Context, recipe *Recipe, requestHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[recipe.ID] = recipe
	s.byHash[requestHash] = recipe
	return nil
}

// GetRecipeNotes retrieves cached serving notes for a recipe.
func (s *MemoryStore) GetRecipeNotes(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes[id], nil
}

// SaveRecipeNotes caches serving notes for a recipe.
func (s *MemoryStore) SaveRecipeNotes(ctx context.Context, id, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[id] = notes
	return nil
}
