package batcher

import (
	"sync"
	"time"
)

// TimeBatcher collects HitEvents and flushes every flushInterval.
type TimeBatcher struct {
	mu            sync.Mutex
	events        []HitEvent
	flushInterval time.Duration
	sink          Sink
	stopCh        chan struct{}
}

// NewTimeBatcher returns a TimeBatcher that flushes on the given interval.
// Pass flushInterval=0 to disable time-based flushing.
func NewTimeBatcher(sink Sink, flushInterval time.Duration) *TimeBatcher {
	return &TimeBatcher{
		events:        []HitEvent{},
		flushInterval: flushInterval,
		sink:          sink,
		stopCh:        make(chan struct{}),
	}
}

// Start begins the background ticker.  Call Stop() to end it.
func (b *TimeBatcher) Start() {
	if b.flushInterval <= 0 {
		return
	}
	ticker := time.NewTicker(b.flushInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				b.Flush()
			case <-b.stopCh:
				b.Flush()
				return
			}
		}
	}()
}

// Stop terminates the background ticker after a final flush.
func (b *TimeBatcher) Stop() {
	close(b.stopCh)
}

// Enqueue adds an event; it will be included in the next flush.
func (b *TimeBatcher) Enqueue(evt HitEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
}

// Flush drains whatever is buffered right now.
func (b *TimeBatcher) Flush() {
	b.mu.Lock()
	var pending []HitEvent
	if len(b.events) > 0 {
		pending = b.events
		b.events = nil
	}
	b.mu.Unlock()

	if pending != nil {
		applyDeltas(b.sink, pending)
	}
}
