package scrape

import (
	"context"

	"github.com/mkaravias/eortologio"
	"golang.org/x/sync/errgroup"
)

// DefaultWarmConcurrency bounds concurrent prefetches during Warm.
const DefaultWarmConcurrency = 4

// Warm primes months by requesting every month of the year through it,
// at most concurrency at a time. Intended for cache-wrapped services
// at startup so the first callers do not pay the upstream latency.
// Returns the first error encountered; callers typically treat a
// partial warm as acceptable.
func Warm(ctx context.Context, months eortologio.MonthService, concurrency int) error {
	if concurrency <= 0 {
		concurrency = DefaultWarmConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for month := 1; month <= 12; month++ {
		g.Go(func() error {
			_, err := months.MonthEntries(gctx, month)
			return err
		})
	}
	return g.Wait()
}
