package counter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestIncrementCreatesBucketLazily(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC)

	count, err := s.Increment(ctx, "demo", ts)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if count != 1 {
		t.Errorf("first increment count = %d, want 1", count)
	}

	count, err = s.Increment(ctx, "demo", ts)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if count != 2 {
		t.Errorf("second increment count = %d, want 2", count)
	}
}

func TestIncrementEmptyKeyRejected(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if _, err := s.Increment(ctx, "", time.Now()); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Increment with empty key: err = %v, want ErrInvalidKey", err)
	}
	if _, err := s.Increment(ctx, "   ", time.Now()); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Increment with blank key: err = %v, want ErrInvalidKey", err)
	}
	if _, err := s.SumRange(ctx, "", Epoch(), time.Now()); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("SumRange with empty key: err = %v, want ErrInvalidKey", err)
	}
}

func TestConcurrentIncrementsSameBucket(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := s.Increment(ctx, "demo", ts); err != nil {
				t.Errorf("Increment failed: %v", err)
			}
		}()
	}
	wg.Wait()

	total, err := s.SumRange(ctx, "demo", Bucket(ts), Bucket(ts).Add(time.Minute))
	if err != nil {
		t.Fatalf("SumRange failed: %v", err)
	}
	if total != n {
		t.Errorf("after %d concurrent increments, SumRange = %d, want %d", n, total, n)
	}
}

func TestSumRangeSameMinuteBucket(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	for _, sec := range []int{30, 45} {
		if _, err := s.Increment(ctx, "demo", time.Date(2025, 1, 1, 0, 0, sec, 0, time.UTC)); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC)
	total, err := s.SumRange(ctx, "demo", from, to)
	if err != nil {
		t.Fatalf("SumRange failed: %v", err)
	}
	if total != 2 {
		t.Errorf("SumRange over the minute = %d, want 2", total)
	}
}

func TestSumRangeHalfOpenBoundaries(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()
	window := time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC)

	if _, err := s.Increment(ctx, "demo", window); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	// Window equal to `from` is included.
	total, err := s.SumRange(ctx, "demo", window, window.Add(time.Minute))
	if err != nil {
		t.Fatalf("SumRange failed: %v", err)
	}
	if total != 1 {
		t.Errorf("range starting at the window = %d, want 1", total)
	}

	// Window equal to `to` is excluded.
	total, err = s.SumRange(ctx, "demo", window.Add(-time.Minute), window)
	if err != nil {
		t.Fatalf("SumRange failed: %v", err)
	}
	if total != 0 {
		t.Errorf("range ending at the window = %d, want 0", total)
	}
}

func TestSumRangeZeroWidth(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC)

	if _, err := s.Increment(ctx, "demo", ts); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	total, err := s.SumRange(ctx, "demo", ts, ts)
	if err != nil {
		t.Fatalf("SumRange failed: %v", err)
	}
	if total != 0 {
		t.Errorf("zero-width SumRange = %d, want 0", total)
	}
}

func TestSumRangeNoRowsIsZeroNotError(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	total, err := s.SumRange(context.Background(), "never-seen", Epoch(), time.Now())
	if err != nil {
		t.Fatalf("SumRange on unknown key: %v", err)
	}
	if total != 0 {
		t.Errorf("SumRange on unknown key = %d, want 0", total)
	}
}

func TestSumRangeAdditivity(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	// Hits in three different minutes.
	for _, m := range []int{0, 2, 5} {
		if _, err := s.Increment(ctx, "demo", base.Add(time.Duration(m)*time.Minute)); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}

	mid := base.Add(3 * time.Minute)
	end := base.Add(10 * time.Minute)

	first, err := s.SumRange(ctx, "demo", base, mid)
	if err != nil {
		t.Fatalf("SumRange failed: %v", err)
	}
	second, err := s.SumRange(ctx, "demo", mid, end)
	if err != nil {
		t.Fatalf("SumRange failed: %v", err)
	}
	whole, err := s.SumRange(ctx, "demo", base, end)
	if err != nil {
		t.Fatalf("SumRange failed: %v", err)
	}
	if first+second != whole {
		t.Errorf("additivity broken: %d + %d != %d", first, second, whole)
	}
}

func TestSumRangeAfterBucketExpiry(t *testing.T) {
	s := NewMemoryStore(MemoryStoreWithRetention(50 * time.Millisecond))
	defer s.Close()
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC)

	// First hit lands, then the bucket ages out of the cache.
	if _, err := s.Increment(ctx, "demo", ts); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	time.Sleep(150 * time.Millisecond)

	// Re-creating the same minute bucket must not index its window twice.
	for i := 0; i < 2; i++ {
		if _, err := s.Increment(ctx, "demo", ts); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}

	total, err := s.SumRange(ctx, "demo", Bucket(ts), Bucket(ts).Add(time.Minute))
	if err != nil {
		t.Fatalf("SumRange failed: %v", err)
	}
	if total != 2 {
		t.Errorf("SumRange after expiry and re-create = %d, want 2", total)
	}
}

func TestIncrementBySumsDeltas(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	count, err := s.IncrementBy(ctx, "demo", ts, 5)
	if err != nil {
		t.Fatalf("IncrementBy failed: %v", err)
	}
	if count != 5 {
		t.Errorf("IncrementBy count = %d, want 5", count)
	}
	count, err = s.IncrementBy(ctx, "demo", ts, 3)
	if err != nil {
		t.Fatalf("IncrementBy failed: %v", err)
	}
	if count != 8 {
		t.Errorf("IncrementBy count = %d, want 8", count)
	}
}
