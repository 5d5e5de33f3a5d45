// Package lru provides caching decorators for the domain services,
// backed by bounded, time-expiring LRU stores. Only successful
// extractions are memoized; failures always pass through.
package lru

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mkaravias/eortologio"
)

// Cache sizing defaults: one slot per month, and enough name slots to
// cover a day's worth of distinct queries comfortably.
const (
	DefaultMonthCapacity = 12
	DefaultNameCapacity  = 200
	DefaultTTL           = 6 * time.Hour
)

var (
	_ eortologio.MonthService = (*MonthService)(nil)
	_ eortologio.NameService  = (*NameService)(nil)
)

// MonthService caches month extractions keyed by month number.
type MonthService struct {
	inner eortologio.MonthService
	cache *expirable.LRU[int, []eortologio.NamedayEntry]
}

// NewMonthService wraps inner with a cache of the given capacity and
// entry lifetime. Zero values fall back to the defaults.
func NewMonthService(inner eortologio.MonthService, capacity int, ttl time.Duration) *MonthService {
	if capacity <= 0 {
		capacity = DefaultMonthCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MonthService{
		inner: inner,
		cache: expirable.NewLRU[int, []eortologio.NamedayEntry](capacity, nil, ttl),
	}
}

// MonthEntries returns the cached entries for month, computing and
// storing them on a miss. Errors from the inner service are never
// cached.
func (s *MonthService) MonthEntries(ctx context.Context, month int) ([]eortologio.NamedayEntry, error) {
	if cached, ok := s.cache.Get(month); ok {
		return cached, nil
	}
	entries, err := s.inner.MonthEntries(ctx, month)
	if err != nil {
		return nil, err
	}
	s.cache.Add(month, entries)
	return entries, nil
}

// NameService caches name lookups keyed by the normalized name.
type NameService struct {
	inner eortologio.NameService
	cache *expirable.LRU[string, []eortologio.CelebrationDate]
}

// NewNameService wraps inner with a cache of the given capacity and
// entry lifetime. Zero values fall back to the defaults.
func NewNameService(inner eortologio.NameService, capacity int, ttl time.Duration) *NameService {
	if capacity <= 0 {
		capacity = DefaultNameCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &NameService{
		inner: inner,
		cache: expirable.NewLRU[string, []eortologio.CelebrationDate](capacity, nil, ttl),
	}
}

// CelebrationDates returns the cached dates for name, computing and
// storing them on a miss. Lookups for "Μαρία" and " μαρία " share a
// cache slot. Errors from the inner service are never cached.
func (s *NameService) CelebrationDates(ctx context.Context, name string) ([]eortologio.CelebrationDate, error) {
	key := eortologio.NormalizeName(name)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}
	dates, err := s.inner.CelebrationDates(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, dates)
	return dates, nil
}
