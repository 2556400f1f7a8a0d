package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"hits/batcher"
)

// HitBatcher absorbs pixel traffic; main wires and starts it.
var HitBatcher *batcher.TimeBatcher

// A transparent 1x1 GIF.
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// PixelHandler records a hit asynchronously and responds immediately with a
// tracking pixel. The batcher coalesces bursts into one upsert per bucket;
// a flush that fails after retries drops those hits, which the
// at-least-once ingest contract accepts on this fire-and-forget route.
func PixelHandler(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if HitBatcher != nil {
		HitBatcher.Enqueue(batcher.HitEvent{Key: key, Timestamp: time.Now()})
		announceHit(key)
	}

	setNoCacheHeaders(w)
	w.Header().Set("Content-Type", "image/gif")
	w.Write(pixelGIF)
}
