package batcher

import (
	"context"
	"sync"
	"time"

	"hits/middlewares"
	"hits/utils"
)

// CountBatcher collects HitEvents and flushes whenever count >= threshold.
type CountBatcher struct {
	mu        sync.Mutex
	events    []HitEvent
	threshold int
	sink      Sink
}

// NewCountBatcher returns a CountBatcher that flushes to sink when
// len(events) >= threshold.  Pass threshold=0 to disable.
func NewCountBatcher(sink Sink, threshold int) *CountBatcher {
	return &CountBatcher{
		events:    make([]HitEvent, 0, threshold),
		threshold: threshold,
		sink:      sink,
	}
}

// Enqueue adds an event and triggers flush if the threshold is reached.
func (b *CountBatcher) Enqueue(evt HitEvent) {
	b.mu.Lock()
	b.events = append(b.events, evt)
	var pending []HitEvent
	if b.threshold > 0 && len(b.events) >= b.threshold {
		pending = b.takeLocked()
	}
	b.mu.Unlock()

	if pending != nil {
		applyDeltas(b.sink, pending)
	}
}

// Flush drains whatever is buffered right now.
func (b *CountBatcher) Flush() {
	b.mu.Lock()
	pending := b.takeLocked()
	b.mu.Unlock()

	if pending != nil {
		applyDeltas(b.sink, pending)
	}
}

// takeLocked assumes b.mu is held.
func (b *CountBatcher) takeLocked() []HitEvent {
	if len(b.events) == 0 {
		return nil
	}
	pending := b.events
	b.events = make([]HitEvent, 0, b.threshold)
	return pending
}

// applyDeltas collapses events into per-bucket deltas and upserts them.
// Failed buckets are retried; hits already applied before a retry may count
// twice, which the at-least-once contract accepts.
func applyDeltas(sink Sink, events []HitEvent) {
	agg := aggregate(events)
	for ref, delta := range agg {
		err := utils.RetryWithExponentialBackoff(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, err := sink.IncrementBy(ctx, ref.Key, ref.Window, delta)
			return err
		}, 3, 100*time.Millisecond)
		if err != nil {
			middlewares.ErrorLogger.Printf("batch flush dropped %d hits for key %q window %s: %v",
				delta, ref.Key, ref.Window.Format(time.RFC3339), err)
		}
	}
	middlewares.AuditLogger.Printf("batch flush: %d events into %d buckets", len(events), len(agg))
}
