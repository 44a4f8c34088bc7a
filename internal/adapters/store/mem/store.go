// Package mem provides an in-memory implementation of ports.Store.
package mem

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bft-labs/itemd/internal/domain"
)

// Store implements ports.Store with a mutex-guarded map.
// It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items map[string]domain.Item
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{items: make(map[string]domain.Item)}
}

// ListIDs returns a snapshot of every stored item id.
func (s *Store) ListIDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	return ids, nil
}

// List returns a snapshot of every stored item.
func (s *Store) List(ctx context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}

// Get retrieves an item by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return item, nil
}

// Save persists an item, assigning a fresh id when none is set.
func (s *Store) Save(ctx context.Context, item domain.Item) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Status == "" {
		item.Status = domain.StatusNew
	}
	s.items[item.ID] = item
	return item, nil
}

// Delete removes an item by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	delete(s.items, id)
	return nil
}
