package ports

import (
	"context"

	"github.com/bft-labs/itemd/internal/domain"
)

// Store provides synchronous, blocking persistence for items.
// Implementations must be safe for concurrent use on independent keys;
// the batch processor touches each id from at most one worker at a time.
type Store interface {
	// ListIDs returns the ids of every stored item.
	// The returned slice is a snapshot; items created or deleted afterwards
	// do not affect it.
	ListIDs(ctx context.Context) ([]string, error)

	// List returns every stored item.
	List(ctx context.Context) ([]domain.Item, error)

	// Get retrieves an item by id.
	// Returns domain.ErrNotFound when the id does not resolve.
	Get(ctx context.Context, id string) (domain.Item, error)

	// Save persists an item and returns the stored value.
	// An item with an empty ID is assigned a fresh one; a non-empty ID
	// overwrites the existing record.
	Save(ctx context.Context, item domain.Item) (domain.Item, error)

	// Delete removes an item by id.
	// Returns domain.ErrNotFound when the id does not resolve.
	Delete(ctx context.Context, id string) error
}
