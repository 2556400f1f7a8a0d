package utils

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"hits/counter"
)

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := RetryWithExponentialBackoff(func() error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("%w: connection reset", counter.ErrStoreUnavailable)
		}
		return nil
	}, 5, time.Millisecond)
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetryStopsOnNonRecoverableError(t *testing.T) {
	attempts := 0
	wantErr := errors.New("constraint violation")
	err := RetryWithExponentialBackoff(func() error {
		attempts++
		return wantErr
	}, 5, time.Millisecond)
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retry on non-recoverable error)", attempts)
	}
}

func TestRetryTinyInitialDelay(t *testing.T) {
	// A delay under 2ns makes the jitter bound zero; the backoff must not
	// panic on it.
	attempts := 0
	err := RetryWithExponentialBackoff(func() error {
		attempts++
		return fmt.Errorf("%w: down", counter.ErrStoreUnavailable)
	}, 3, time.Nanosecond)
	if !errors.Is(err, counter.ErrStoreUnavailable) {
		t.Fatalf("err = %v, want wrapped ErrStoreUnavailable", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}
