package scrape

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter bounds the rate of outbound requests to the upstream site
// using a token bucket with a burst of 1. All queries hit a single
// host, so one bucket is enough.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a Limiter allowing rps requests per second.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the rate limit allows another request. A nil
// Limiter never blocks. Returns an error if the context is canceled
// before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
