package provider

import (
	"context"
	"fmt"
	"time"
)

// retryPolicy controls exponential backoff for provider calls.
type retryPolicy struct {
	maxRetries    int
	initialDelay  time.Duration
	backoffFactor float64
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		maxRetries:    3,
		initialDelay:  2 * time.Second,
		backoffFactor: 2.0,
	}
}

// withRetry executes fn with exponential backoff. retryable decides whether a
// failure is worth another attempt; context cancellation always stops early.
func (p retryPolicy) withRetry(ctx context.Context, fn func() error, retryable func(error) bool) error {
	delay := p.initialDelay
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !retryable(lastErr) {
			return lastErr
		}

		if attempt < p.maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay = time.Duration(float64(delay) * p.backoffFactor)
			}
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
