package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"hits/cache"
)

var RateLimitRedisStore *cache.RedisStore

// APIRateLimitMiddleware throttles by IP and endpoint with a fixed one
// minute window in Redis. The increment routes sit behind it so a single
// client can't inflate a badge for free.
func APIRateLimitMiddleware(maxRequest int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RateLimitRedisStore == nil {
				next.ServeHTTP(w, r)
				return
			}
			ip := getIPAddress(r)
			endpoint := r.URL.Path
			key := "rate:" + ip + ":" + endpoint

			ctx := RateLimitRedisStore.Ctx

			count, err := RateLimitRedisStore.Client.Incr(ctx, key).Result()
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(int(maxRequest)))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(maxRequest-count)))
			if err != nil {
				// In case of error, let the request pass.
				next.ServeHTTP(w, r)
				return
			}
			// If this is the first request, set an expiry of 1 minute.
			if count == 1 {
				RateLimitRedisStore.Client.Expire(ctx, key, time.Minute)
			}

			// Retrieve the TTL for this key.
			ttl, err := RateLimitRedisStore.Client.TTL(ctx, key).Result()
			if err == nil && ttl > 0 {
				w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(ttl.Seconds())))
			} else {
				// Fallback if TTL is not available.
				w.Header().Set("X-RateLimit-Reset", "60")
			}

			if count > maxRequest {
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte("Rate limit exceeded. Try again later."))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
