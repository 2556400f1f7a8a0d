package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// StatsHandler returns the aggregate statistics for a key without
// incrementing anything. Served from the stats cache when fresh; reads are
// pure functions of stored state so a cached value is never wrong, only
// slightly stale.
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if StatsCache != nil {
		if stats, err := StatsCache.Get(key); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			json.NewEncoder(w).Encode(stats)
			return
		}
	}

	stats, err := Agg.Aggregate(r.Context(), key, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	if StatsCache != nil {
		StatsCache.Set(key, stats)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
