package kv

import (
	"errors"
	"fmt"

	"shopping-list/internal/shoppinglist/repository"
	"shopping-list/pkg/kvstore"
	"shopping-list/pkg/log"
	"shopping-list/pkg/retry"
)

type implRepository struct {
	kv   kvstore.Store
	l    log.Logger
	opts repository.Options
}

// New creates a Repository that keeps the whole list under a single key of kv.
func New(kv kvstore.Store, l log.Logger, opts repository.Options) repository.Repository {
	if kv == nil {
		panic("shoppinglist/repository/kv: kvstore is required")
	}
	if opts.Key == "" {
		opts.Key = repository.DefaultKey
	}
	if opts.MaxPayloadBytes <= 0 {
		opts.MaxPayloadBytes = repository.DefaultMaxPayloadBytes
	}
	if opts.RetryBackoff == 0 {
		opts.RetryBackoff = repository.DefaultRetryBackoff
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &implRepository{kv: kv, l: l, opts: opts}
}

// policy is the shared retry policy; corrupt data is never retried.
func (r *implRepository) policy() retry.Policy {
	return retry.Policy{
		MaxRetries: r.opts.MaxRetries,
		Backoff:    retry.Linear(r.opts.RetryBackoff),
		Retryable: func(err error) bool {
			return !errors.Is(err, repository.ErrCorruptData)
		},
		Sleep: r.opts.Sleep,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("shoppinglist/repository/kv.%s", method)
}
