package counter

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Stats is the set of derived statistics a badge needs for one key.
type Stats struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	ThisMonth int64 `json:"this_month"`
	ThisYear  int64 `json:"this_year"`
}

// Aggregator derives Stats by summing buckets over a set of named ranges,
// each expressed as [start(now), now). Every range is issued as its own
// SumRange query, never derived incrementally from another, so adding or
// removing a range can't double-count.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// StartOfDay returns midnight UTC of now's day.
func StartOfDay(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns the first instant of now's month, UTC.
func StartOfMonth(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// StartOfYear returns the first instant of now's year, UTC.
func StartOfYear(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
}

// Epoch is the unbounded lower range boundary for the all-time total.
func Epoch() time.Time {
	return time.Unix(0, 0).UTC()
}

// Aggregate computes the stats for key as of now. The four range queries
// are independent reads of stored state, so they run concurrently.
func (a *Aggregator) Aggregate(ctx context.Context, key string, now time.Time) (Stats, error) {
	if err := validateKey(key); err != nil {
		return Stats{}, err
	}
	var stats Stats
	ranges := []struct {
		from time.Time
		dst  *int64
	}{
		{Epoch(), &stats.Total},
		{StartOfDay(now), &stats.Today},
		{StartOfMonth(now), &stats.ThisMonth},
		{StartOfYear(now), &stats.ThisYear},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			total, err := a.store.SumRange(ctx, key, r.from, now)
			if err != nil {
				return err
			}
			*r.dst = total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
