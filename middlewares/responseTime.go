package middlewares

import (
	"net/http"
	"time"
)

// slowRequestThreshold flags badge renders and counter upserts that took
// long enough for an embedding page to notice.
const slowRequestThreshold = 500 * time.Millisecond

// timedResponseWriter stamps X-Response-Time when the first header goes
// out. Headers are immutable after that point, so the elapsed time covers
// everything up to the handler committing the response.
type timedResponseWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
}

func (t *timedResponseWriter) WriteHeader(statusCode int) {
	if !t.wroteHeader {
		t.ResponseWriter.Header().Set("X-Response-Time", time.Since(t.start).String())
		t.wroteHeader = true
	}
	t.ResponseWriter.WriteHeader(statusCode)
}

func (t *timedResponseWriter) Write(b []byte) (int, error) {
	if !t.wroteHeader {
		t.WriteHeader(http.StatusOK)
	}
	return t.ResponseWriter.Write(b)
}

// ResponseTimeMiddleware reports per-request latency to the caller and
// logs requests that cross slowRequestThreshold.
func ResponseTimeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timedResponseWriter{
			ResponseWriter: w,
			start:          time.Now(),
		}
		next.ServeHTTP(tw, r)

		if elapsed := time.Since(tw.start); elapsed > slowRequestThreshold {
			DebugLogger.Printf("slow request: %s %s took %v", r.Method, r.URL.Path, elapsed)
		}
	})
}
