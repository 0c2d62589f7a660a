// Package retry runs an operation under a bounded retry policy.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy describes how many times to retry and how long to wait in between.
type Policy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int
	// Backoff returns the wait before retry n (n starts at 1).
	Backoff func(n int) time.Duration
	// Retryable reports whether err is worth another attempt. Nil means every error is.
	Retryable func(err error) bool
	// Sleep waits for d or until ctx is done. Nil uses Wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Linear waits base*n before retry n.
func Linear(base time.Duration) func(n int) time.Duration {
	return func(n int) time.Duration {
		return time.Duration(n) * base
	}
}

// Wait blocks for d unless ctx finishes first.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do calls fn until it succeeds, returns a non-retryable error, or the policy is exhausted.
// It reports how many attempts were made together with the last error.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context, attempt int) error) (int, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = Wait
	}

	var lastErr error
	attempts := 0
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			var delay time.Duration
			if p.Backoff != nil {
				delay = p.Backoff(attempt)
			}
			if err := sleep(ctx, delay); err != nil {
				return attempts, fmt.Errorf("%w (last error: %v)", err, lastErr)
			}
		}

		attempts++
		err := fn(ctx, attempt)
		if err == nil {
			return attempts, nil
		}
		lastErr = err

		if p.Retryable != nil && !p.Retryable(err) {
			return attempts, err
		}
	}

	return attempts, lastErr
}
