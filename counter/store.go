package counter

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidKey is returned for a missing or blank key, before any
	// storage access happens.
	ErrInvalidKey = errors.New("invalid counter key")
	// ErrStoreUnavailable wraps transient storage failures. Callers own the
	// retry policy; a retried increment may count twice (at-least-once).
	ErrStoreUnavailable = errors.New("counter store unavailable")
)

// Store is the durable table of (key, minute window) -> count rows.
// Implementations must be safe for concurrent use: they hold no in-process
// mutable counter state, so one Store value is shared across all request
// handlers without extra locking.
type Store interface {
	// Increment records one hit for key in the minute bucket containing ts
	// and returns the bucket count after the increment. Concurrent calls on
	// the same (key, window) are all reflected; calls on different keys do
	// not serialize behind each other beyond the partition they hash to.
	Increment(ctx context.Context, key string, ts time.Time) (int64, error)

	// SumRange returns the sum of counts over all of key's buckets whose
	// window falls in [from, to). A range with no rows yields 0, not an
	// error.
	SumRange(ctx context.Context, key string, from, to time.Time) (int64, error)

	Close() error
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	return nil
}
