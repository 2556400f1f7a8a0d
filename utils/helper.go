package utils

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"strings"
	"time"

	"hits/counter"
	"hits/middlewares"
)

func isRecoverableError(err error) bool {
	// Store unavailability is transient by contract; a retried increment
	// may count twice, which at-least-once tolerates.
	if errors.Is(err, counter.ErrStoreUnavailable) {
		return true
	}

	// Check if the error is a network error that is temporary or due to a timeout.
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporarily unavailable") {
		return true
	}
	return false
}

// RetryWithExponentialBackoff retries operation with doubling delays and
// jitter. Non-recoverable errors (like an invalid key) fail immediately.
func RetryWithExponentialBackoff(operation func() error, maxRetries int, initialDelay time.Duration) error {
	delay := initialDelay
	var err error

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if !isRecoverableError(err) {
			return err
		}

		middlewares.ErrorLogger.Printf("Attempt %d failed: %v. Retrying in %v...", i+1, err, delay)

		// Apply jitter: add a random duration between 0 and half the current
		// delay. Skip it for sub-2ns delays, where Int63n would panic on a
		// zero bound.
		var jitter time.Duration
		if half := delay / 2; half > 0 {
			jitter = time.Duration(rand.Int63n(int64(half)))
		}
		time.Sleep(delay + jitter)
		delay *= 2 // Exponential backoff.
	}
	// After exhausting retries, return an error wrapping the last failure.
	middlewares.ErrorLogger.Printf("operation failed after %d attempts: %v", maxRetries, err)
	return fmt.Errorf("operation failed after %d attempts: %w", maxRetries, err)
}
