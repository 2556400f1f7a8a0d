package cache

import (
	"testing"
	"time"

	"hits/counter"
)

func TestBigCacheStoreRoundTrip(t *testing.T) {
	store, err := NewBigCacheStore(time.Minute)
	if err != nil {
		t.Fatalf("NewBigCacheStore failed: %v", err)
	}
	defer store.Close()

	want := counter.Stats{Total: 42, Today: 3, ThisMonth: 10, ThisYear: 40}
	if err := store.Set("demo", want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := store.Get("demo")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestBigCacheStoreMissAndDelete(t *testing.T) {
	store, err := NewBigCacheStore(time.Minute)
	if err != nil {
		t.Fatalf("NewBigCacheStore failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Get("absent"); err == nil {
		t.Errorf("expected error on cache miss")
	}

	if err := store.Set("demo", counter.Stats{Total: 1}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete("demo"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get("demo"); err == nil {
		t.Errorf("expected error after delete")
	}
}
