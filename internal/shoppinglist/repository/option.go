package repository

import (
	"context"
	"time"
)

// Defaults for the storage adapter.
const (
	DefaultKey             = "@shopping_list_items"
	DefaultMaxPayloadBytes = 10 * 1024 * 1024
	DefaultMaxRetries      = 3
	DefaultRetryBackoff    = 500 * time.Millisecond
)

// Options configures a key-value backed Repository.
// Empty Key, non-positive MaxPayloadBytes and zero RetryBackoff fall back to the defaults;
// MaxRetries is used as given.
type Options struct {
	Key             string
	MaxPayloadBytes int
	MaxRetries      int
	RetryBackoff    time.Duration

	// Sleep replaces the real backoff wait, mainly for tests.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultOptions returns the production retry and size policy.
func DefaultOptions() Options {
	return Options{
		Key:             DefaultKey,
		MaxPayloadBytes: DefaultMaxPayloadBytes,
		MaxRetries:      DefaultMaxRetries,
		RetryBackoff:    DefaultRetryBackoff,
	}
}
