// Package app contains the application layer of itemd: the service facade,
// the batch processor, and the per-item transformer.
//
// The batch processor is the core of the service. Its contract: snapshot
// the stored ids once, transform each item concurrently through a bounded
// worker pool, and either return every processed item or fail the whole
// batch on the first error.
package app

import (
	"context"

	"github.com/bft-labs/itemd/internal/domain"
	"github.com/bft-labs/itemd/internal/ports"
)

// Service is the facade consumed by the transport layer.
// CRUD operations pass through to the store; ProcessAll delegates to the
// batch processor.
type Service struct {
	store     ports.Store
	processor *Processor
}

// NewService creates the service facade.
func NewService(store ports.Store, processor *Processor) *Service {
	return &Service{
		store:     store,
		processor: processor,
	}
}

// List returns every stored item.
func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	return s.store.List(ctx)
}

// Get retrieves one item by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Item, error) {
	return s.store.Get(ctx, id)
}

// Create stores a new item. The store assigns the id; any id supplied by
// the caller is ignored.
func (s *Service) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	item.ID = ""
	if item.Status == "" {
		item.Status = domain.StatusNew
	}
	return s.store.Save(ctx, item)
}

// Update overwrites the item stored under id.
// Returns domain.ErrNotFound when the id does not resolve.
func (s *Service) Update(ctx context.Context, id string, item domain.Item) (domain.Item, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return domain.Item{}, err
	}
	item.ID = id
	return s.store.Save(ctx, item)
}

// Delete removes the item stored under id.
// Returns domain.ErrNotFound when the id does not resolve.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// ProcessAll runs one batch over every stored item.
func (s *Service) ProcessAll(ctx context.Context) ([]domain.Item, error) {
	return s.processor.ProcessAll(ctx)
}
