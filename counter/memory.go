package counter

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps buckets in a ttlcache-backed map. It is used by tests
// and single-node dev mode; production deployments use SQLiteStore or
// PostgresStore.
type MemoryStore struct {
	cache *ttlcache.Cache[string, *int64]

	mu      sync.Mutex
	windows map[string]map[time.Time]struct{}

	capacity  uint64
	retention time.Duration
}

type MemoryStoreOption func(*MemoryStore)

// MemoryStoreWithCapacity caps the number of live buckets.
func MemoryStoreWithCapacity(capacity uint64) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.capacity = capacity
	}
}

// MemoryStoreWithRetention expires buckets untouched for d. Without it
// buckets are kept forever, matching the durable stores.
func MemoryStoreWithRetention(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.retention = d
	}
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		windows:   make(map[string]map[time.Time]struct{}),
		retention: ttlcache.NoTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	ttlOpts := []ttlcache.Option[string, *int64]{
		ttlcache.WithTTL[string, *int64](s.retention),
	}
	if s.capacity > 0 {
		ttlOpts = append(ttlOpts, ttlcache.WithCapacity[string, *int64](s.capacity))
	}
	s.cache = ttlcache.New[string, *int64](ttlOpts...)
	if s.retention != ttlcache.NoTTL {
		go s.cache.Start()
	}
	return s
}

// Increment records one hit for key in the bucket containing ts.
func (s *MemoryStore) Increment(ctx context.Context, key string, ts time.Time) (int64, error) {
	return s.IncrementBy(ctx, key, ts, 1)
}

// IncrementBy applies a pre-aggregated delta to one bucket. The batcher
// flush path uses it to coalesce bursts into a single update.
func (s *MemoryStore) IncrementBy(_ context.Context, key string, ts time.Time, delta int64) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	window := Bucket(ts)
	zero := int64(0)
	item, existed := s.cache.GetOrSet(bucketKey(key, window), &zero)
	if !existed {
		// A retention-expired bucket can be re-created later; the set keeps
		// the window indexed exactly once either way.
		s.mu.Lock()
		if s.windows[key] == nil {
			s.windows[key] = make(map[time.Time]struct{})
		}
		s.windows[key][window] = struct{}{}
		s.mu.Unlock()
	}
	return atomic.AddInt64(item.Value(), delta), nil
}

// SumRange sums key's buckets whose window falls in [from, to).
func (s *MemoryStore) SumRange(_ context.Context, key string, from, to time.Time) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	s.mu.Lock()
	windows := make([]time.Time, 0, len(s.windows[key]))
	for w := range s.windows[key] {
		windows = append(windows, w)
	}
	s.mu.Unlock()

	var total int64
	for _, w := range windows {
		if w.Before(from) || !w.Before(to) {
			continue
		}
		if item := s.cache.Get(bucketKey(key, w)); item != nil {
			total += atomic.LoadInt64(item.Value())
		}
	}
	return total, nil
}

// Close stops the expiry loop if one was started.
func (s *MemoryStore) Close() error {
	if s.retention != ttlcache.NoTTL {
		s.cache.Stop()
	}
	return nil
}

func bucketKey(key string, window time.Time) string {
	return fmt.Sprintf("%s|%d", key, window.Unix())
}
