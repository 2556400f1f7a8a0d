package batcher

import (
	"context"
	"time"

	"hits/counter"
)

// HitEvent represents one hit on a key, carried through the async ingest
// path before it reaches the counter store.
type HitEvent struct {
	Key       string
	Timestamp time.Time
}

// bucketRef identifies the (key, window) row a batch of events collapses into.
type bucketRef struct {
	Key    string
	Window time.Time
}

// AggregatedDeltas maps buckets to the number of hits collected for them.
type AggregatedDeltas map[bucketRef]int64

// Sink applies a pre-aggregated delta to one bucket. The durable stores
// implement it alongside the plain Increment operation.
type Sink interface {
	IncrementBy(ctx context.Context, key string, ts time.Time, delta int64) (int64, error)
}

func aggregate(events []HitEvent) AggregatedDeltas {
	agg := make(AggregatedDeltas)
	for _, e := range events {
		agg[bucketRef{Key: e.Key, Window: counter.Bucket(e.Timestamp)}]++
	}
	return agg
}
