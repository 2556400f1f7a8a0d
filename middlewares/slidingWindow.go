package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SlidingWindowMiddleware rate-limits with a Redis sorted set of request
// timestamps. Smoother than the fixed window, used on the SVG route where
// rendering is the expensive part.
func SlidingWindowMiddleware(maxRequests int, windowDuration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RateLimitRedisStore == nil {
				next.ServeHTTP(w, r)
				return
			}
			ip := getIPAddress(r)
			key := "rate:sliding:" + ip + ":" + r.URL.Path

			ctx := RateLimitRedisStore.Ctx

			now := time.Now().UnixNano() / 1e6
			windowStart := now - int64(windowDuration/time.Millisecond)

			// Add current timestamp to the sorted set.
			_, err := RateLimitRedisStore.Client.ZAdd(ctx, key, redis.Z{
				Score:  float64(now),
				Member: strconv.FormatInt(now, 10),
			}).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			// Remove old entries.
			RateLimitRedisStore.Client.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

			// Get the current count.
			count, err := RateLimitRedisStore.Client.ZCard(ctx, key).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			RateLimitRedisStore.Client.Expire(ctx, key, windowDuration*2)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(maxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(maxRequests-int(count)))
			w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(windowDuration.Seconds())))

			if count > int64(maxRequests) {
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte("Rate limit exceeded. Try again later."))
				return
			}

			next.ServeHTTP(w, r)

		})
	}
}
