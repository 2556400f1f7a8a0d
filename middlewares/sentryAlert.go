package middlewares

import (
	"net/http"

	"github.com/getsentry/sentry-go"
)

// SentryTagMiddleware tags the request scope so counter-store failures can
// be grouped by route in Sentry.
func SentryTagMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub := sentry.GetHubFromContext(r.Context())
		if hub != nil {
			hub.Scope().SetTag("route", r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}
