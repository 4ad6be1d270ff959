package menu

import (
	"context"
	"errors"
	"sync"

	"qr-menu/internal/models"
)

// ErrNotFound marks an id with no matching menu item.
var ErrNotFound = errors.New("menu item not found")

// Store is the repository seam for the menu collection. The in-memory
// implementation backs local development and tests; the Postgres
// implementation backs a real deployment. Items are kept in insertion order.
type Store interface {
	// List returns all items, or only those in the given category.
	List(ctx context.Context, filter *models.Category) ([]models.MenuItem, error)
	// Create assigns the next id (max existing + 1, or 1 when empty) and appends.
	Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	// Update replaces the editable fields of the item with the given id,
	// preserving id, position, isActive and createdAt. Fails with ErrNotFound.
	Update(ctx context.Context, id int, item models.MenuItem) (models.MenuItem, error)
	// Delete hard-removes the item with the given id and returns it.
	// Fails with ErrNotFound.
	Delete(ctx context.Context, id int) (models.MenuItem, error)
	// Ping reports backend health.
	Ping(ctx context.Context) error
}

// MemoryStore holds the menu collection in process memory. State lives for
// the lifetime of the process; a restart resets it to the seed.
type MemoryStore struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededMemoryStore creates an in-memory store preloaded with mock data.
func NewSeededMemoryStore() *MemoryStore {
	return &MemoryStore{items: SeedItems()}
}

func (s *MemoryStore) List(_ context.Context, filter *models.Category) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		if filter != nil && item.Category != *filter {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *MemoryStore) Create(_ context.Context, item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.items {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	item.ID = maxID + 1
	s.items = append(s.items, item)
	return item, nil
}

func (s *MemoryStore) Update(_ context.Context, id int, item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID != id {
			continue
		}
		item.ID = existing.ID
		item.IsActive = existing.IsActive
		item.CreatedAt = existing.CreatedAt
		s.items[i] = item
		return item, nil
	}
	return models.MenuItem{}, ErrNotFound
}

func (s *MemoryStore) Delete(_ context.Context, id int) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return existing, nil
	}
	return models.MenuItem{}, ErrNotFound
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
