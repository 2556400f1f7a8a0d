package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"hits/counter"
)

// RedisStore is a StatsCache backed by Redis. Client and Ctx are exported
// because the rate-limit middleware and pubsub reuse the same connection.
type RedisStore struct {
	Client *redis.Client
	Ctx    context.Context
	ttl    time.Duration
}

// NewRedisStore initializes a new RedisStore instance.
func NewRedisStore(addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	// Ping Redis to ensure connectivity.
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		Client: rdb,
		Ctx:    ctx,
		ttl:    ttl,
	}, nil
}

// Set stores a value in Redis with the configured TTL.
func (r *RedisStore) Set(key string, value counter.Stats) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(r.Ctx, "stats:"+key, data, r.ttl).Err()
}

// Get retrieves a value from Redis.
func (r *RedisStore) Get(key string) (counter.Stats, error) {
	var result counter.Stats
	data, err := r.Client.Get(r.Ctx, "stats:"+key).Result()
	if err != nil {
		return result, err
	}
	err = json.Unmarshal([]byte(data), &result)
	return result, err
}

// Delete removes a value from Redis.
func (r *RedisStore) Delete(key string) error {
	return r.Client.Del(r.Ctx, "stats:"+key).Err()
}

// Close closes the Redis client.
func (r *RedisStore) Close() error {
	return r.Client.Close()
}
