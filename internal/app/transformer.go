package app

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/itemd/internal/domain"
	"github.com/bft-labs/itemd/internal/ports"
)

// DefaultTransformDelay models the slow per-item I/O of the processing step.
const DefaultTransformDelay = 100 * time.Millisecond

// Transformer performs one unit of work: load an item, mark it processed,
// and save it back. Exactly one store mutation happens per successful call,
// none on failure.
type Transformer struct {
	store  ports.Store
	delay  time.Duration
	logger ports.Logger
}

// NewTransformer creates a transformer reading and writing through store.
// delay is the artificial per-item latency; zero disables it.
func NewTransformer(store ports.Store, delay time.Duration, logger ports.Logger) *Transformer {
	return &Transformer{
		store:  store,
		delay:  delay,
		logger: logger,
	}
}

// Transform processes a single item by id.
// A canceled context is reported as domain.ErrInterrupted; an id that no
// longer resolves is reported as domain.ErrNotFound.
func (t *Transformer) Transform(ctx context.Context, id string) (domain.Item, error) {
	if err := t.wait(ctx); err != nil {
		return domain.Item{}, fmt.Errorf("%w: item %s: %v", domain.ErrInterrupted, id, err)
	}

	item, err := t.store.Get(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}

	saved, err := t.store.Save(ctx, item.Processed())
	if err != nil {
		return domain.Item{}, err
	}

	t.logger.Debug("item processed", ports.String("id", saved.ID))
	return saved, nil
}

// wait blocks for the configured delay or until the context is canceled.
func (t *Transformer) wait(ctx context.Context) error {
	if t.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
