// Package file provides a JSON-file-backed implementation of ports.Store.
//
// The whole item set is held in memory and flushed to a single JSON file
// after each mutation. Writes are atomic (write to temp file, then rename)
// to prevent corruption on crash.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/bft-labs/itemd/internal/domain"
)

const storeFileName = "items.json"

// Store implements ports.Store backed by a JSON file in dir.
// It is safe for concurrent use.
type Store struct {
	dir string

	mu     sync.Mutex
	items  map[string]domain.Item
	loaded bool
}

// New creates a Store persisting to dir/items.json.
// The file is read lazily on first access; a missing file is an empty store.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the full path to the store file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, storeFileName)
}

// load reads the store file into memory. Caller must hold mu.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}
	s.items = make(map[string]domain.Item)

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = true
			return nil
		}
		return fmt.Errorf("read store file: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decode store file: %w", err)
	}
	for _, item := range items {
		s.items[item.ID] = item
	}
	s.loaded = true
	return nil
}

// flush persists the in-memory items atomically. Caller must hold mu.
func (s *Store) flush() error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	items := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	path := s.Path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return os.Rename(tmp, path)
}

// ListIDs returns a snapshot of every stored item id.
func (s *Store) ListIDs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	return ids, nil
}

// List returns a snapshot of every stored item.
func (s *Store) List(ctx context.Context) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	items := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}

// Get retrieves an item by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return domain.Item{}, err
	}
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

	if err := s.load(); err != nil {
		return domain.Item{}, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Status == "" {
		item.Status = domain.StatusNew
	}
	s.items[item.ID] = item
	if err := s.flush(); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

// Delete removes an item by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	delete(s.items, id)
	return s.flush()
}
