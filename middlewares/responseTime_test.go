package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResponseTimeHeaderSet(t *testing.T) {
	handler := ResponseTimeMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hits/demo", nil))

	v := rec.Header().Get("X-Response-Time")
	if v == "" {
		t.Fatal("X-Response-Time header not set")
	}
	if _, err := time.ParseDuration(v); err != nil {
		t.Errorf("X-Response-Time %q is not a duration: %v", v, err)
	}
}

func TestResponseTimeHeaderSetOnExplicitStatus(t *testing.T) {
	handler := ResponseTimeMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hits/demo", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if rec.Header().Get("X-Response-Time") == "" {
		t.Error("X-Response-Time header not set on explicit status")
	}
}
