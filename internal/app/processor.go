package app

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/itemd/internal/domain"
	"github.com/bft-labs/itemd/internal/ports"
)

// DefaultWorkers bounds the number of in-flight transformations when no
// explicit pool size is configured.
const DefaultWorkers = 8

// Processor orchestrates one batch run: it snapshots the stored ids, fans
// the transformer out over a bounded worker pool, and collects successes
// into a single result set.
//
// The outcome is all-or-nothing: the first unit failure voids the batch,
// remaining units are awaited and their results discarded.
type Processor struct {
	store       ports.Store
	transformer *Transformer
	workers     int
	logger      ports.Logger
}

// NewProcessor creates a processor with an explicitly sized worker pool.
// workers <= 0 falls back to DefaultWorkers.
func NewProcessor(store ports.Store, transformer *Transformer, workers int, logger ports.Logger) *Processor {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Processor{
		store:       store,
		transformer: transformer,
		workers:     workers,
		logger:      logger,
	}
}

// ProcessAll transforms every item known to the store at call time.
//
// The id snapshot taken here defines the batch: ids created or deleted
// afterwards do not affect this invocation. On success the returned set
// contains exactly one processed item per snapshotted id, in no particular
// order. On failure the result is nil and the error is a *domain.BatchError
// wrapping the first unit failure observed.
func (p *Processor) ProcessAll(ctx context.Context) ([]domain.Item, error) {
	ids, err := p.store.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot ids: %w", err)
	}

	p.logger.Info("batch started",
		ports.Int("items", len(ids)),
		ports.Int("workers", p.workers),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	var mu sync.Mutex
	processed := make([]domain.Item, 0, len(ids))

	for _, id := range ids {
		id := id
		g.Go(func() error {
			item, err := p.transformer.Transform(ctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			processed = append(processed, item)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.logger.Error("batch failed", ports.Err(err))
		return nil, &domain.BatchError{Cause: err}
	}

	p.logger.Info("batch complete", ports.Int("items", len(processed)))
	return processed, nil
}
