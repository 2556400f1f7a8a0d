package cache

import (
	"encoding/json"
	"time"

	"github.com/allegro/bigcache"

	"hits/counter"
)

// StatsCache defines the interface for caching aggregate results on the
// read-only stats route. Increment routes never read from it, so a stale
// entry only delays a badge number, never loses a hit.
type StatsCache interface {
	Set(key string, value counter.Stats) error
	Get(key string) (counter.Stats, error)
	Delete(key string) error
	Close() error
}

// BigCacheStore is an in-process StatsCache backed by BigCache.
type BigCacheStore struct {
	cache *bigcache.BigCache
}

// NewBigCacheStore initializes a new BigCacheStore with the given TTL.
func NewBigCacheStore(ttl time.Duration) (*BigCacheStore, error) {
	config := bigcache.Config{
		Shards:           1024,
		LifeWindow:       ttl,
		CleanWindow:      5 * time.Minute,
		MaxEntrySize:     500,
		HardMaxCacheSize: 8192,
		Verbose:          false,
	}
	bc, err := bigcache.NewBigCache(config)
	if err != nil {
		return nil, err
	}
	return &BigCacheStore{
		cache: bc,
	}, nil
}

// Set stores a value in the cache.
func (b *BigCacheStore) Set(key string, value counter.Stats) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return b.cache.Set(key, data)
}

// Get retrieves a value from the cache.
func (b *BigCacheStore) Get(key string) (counter.Stats, error) {
	data, err := b.cache.Get(key)
	if err != nil {
		return counter.Stats{}, err
	}
	var value counter.Stats
	err = json.Unmarshal(data, &value)
	if err != nil {
		return counter.Stats{}, err
	}
	return value, nil
}

// Delete removes a value from the cache.
func (b *BigCacheStore) Delete(key string) error {
	return b.cache.Delete(key)
}

// Close stops the cache (BigCache doesn't need explicit closing, so we return nil).
func (b *BigCacheStore) Close() error {
	return nil
}
