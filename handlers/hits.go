package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"

	"hits/cache"
	"hits/counter"
	"hits/middlewares"
	"hits/pubsub"
	"hits/queue"
)

// Wired up by main before the router starts serving.
var (
	CounterStore counter.Store
	Agg          *counter.Aggregator
	StatsCache   cache.StatsCache
	PS           *pubsub.PubSub
)

// HitsHandler increments the key's current minute bucket and responds with
// the all-time total as a bare JSON number.
func HitsHandler(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	total, err := recordHit(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(total)
}

// recordHit is the shared write path for the hits, badge and svg routes:
// one upsert on the (key, window) row, then an all-time range sum.
func recordHit(ctx context.Context, key string) (int64, error) {
	now := time.Now()
	if _, err := CounterStore.Increment(ctx, key, now); err != nil {
		return 0, err
	}
	total, err := CounterStore.SumRange(ctx, key, counter.Epoch(), time.Now())
	if err != nil {
		return 0, err
	}
	announceHit(key)
	return total, nil
}

// announceHit pushes the key to WebSocket watchers. With Redis wired the
// publish fans out to every instance and comes back through the hub's
// subscription; without it the local hub is notified directly.
func announceHit(key string) {
	if PS == nil {
		WSHub.Broadcast(key)
		return
	}
	task := func() {
		if err := PS.PublishHit(key); err != nil {
			middlewares.ErrorLogger.Printf("publish hit for %q failed: %v", key, err)
		}
	}
	select {
	case queue.TaskQueue <- task:
	default:
		// Queue saturated; the hit itself is already durable, only the
		// live notification is dropped.
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, counter.ErrInvalidKey):
		http.Error(w, "Invalid key", http.StatusBadRequest)
	case errors.Is(err, counter.ErrStoreUnavailable):
		middlewares.ErrorLogger.Printf("store unavailable: %v", err)
		sentry.CaptureException(err)
		http.Error(w, "Counter store unavailable, please retry", http.StatusServiceUnavailable)
	default:
		middlewares.ErrorLogger.Printf("request failed: %v", err)
		sentry.CaptureException(err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
