package kv

import (
	"context"
	"encoding/json"
	"errors"

	"shopping-list/internal/model"
	"shopping-list/internal/shoppinglist/repository"
	"shopping-list/pkg/retry"
)

// Save serializes items and writes them under the configured key.
// Malformed input and oversized payloads fail before any write is attempted.
func (r *implRepository) Save(ctx context.Context, items []model.ShoppingItem) error {
	if err := validateForSave(items); err != nil {
		return &repository.StorageError{Op: repository.OpSave, Kind: repository.KindValidation, Err: err}
	}
	if items == nil {
		items = []model.ShoppingItem{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return &repository.StorageError{Op: repository.OpSave, Kind: repository.KindValidation, Err: err}
	}
	if len(payload) > r.opts.MaxPayloadBytes {
		r.l.Warnf(ctx, "%s: payload of %d bytes exceeds %d", r.dsn("Save"), len(payload), r.opts.MaxPayloadBytes)
		return &repository.StorageError{Op: repository.OpSave, Kind: repository.KindSizeLimit, Err: repository.ErrPayloadTooLarge}
	}

	value := string(payload)
	attempts, err := retry.Do(ctx, r.policy(), func(ctx context.Context, attempt int) error {
		if err := r.kv.Set(ctx, r.opts.Key, value); err != nil {
			r.l.Warnf(ctx, "%s: write attempt %d failed: %v", r.dsn("Save"), attempt+1, err)
			return err
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: giving up after %d attempts: %v", r.dsn("Save"), attempts, err)
		return &repository.StorageError{Op: repository.OpSave, Kind: repository.KindTransient, Attempts: attempts, Err: err}
	}

	r.l.Debugf(ctx, "%s: saved %d items (%d bytes)", r.dsn("Save"), len(items), len(payload))
	return nil
}

// Load reads the stored list. A missing record is an empty list. A corrupt record is
// removed (best effort) and also reported as an empty list.
func (r *implRepository) Load(ctx context.Context) ([]model.ShoppingItem, error) {
	var (
		items []model.ShoppingItem
		reset []string
	)

	attempts, err := retry.Do(ctx, r.policy(), func(ctx context.Context, attempt int) error {
		raw, found, err := r.kv.Get(ctx, r.opts.Key)
		if err != nil {
			r.l.Warnf(ctx, "%s: read attempt %d failed: %v", r.dsn("Load"), attempt+1, err)
			return err
		}
		if !found {
			items = []model.ShoppingItem{}
			return nil
		}
		decoded, unreadable, err := decodeItems(raw)
		if err != nil {
			return err
		}
		items, reset = decoded, unreadable
		return nil
	})

	if errors.Is(err, repository.ErrCorruptData) {
		r.l.Warnf(ctx, "%s: discarding stored items: %v", r.dsn("Load"), err)
		if rmErr := r.kv.Remove(ctx, r.opts.Key); rmErr != nil {
			r.l.Warnf(ctx, "%s: failed to remove corrupt record: %v", r.dsn("Load"), rmErr)
		}
		return []model.ShoppingItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: giving up after %d attempts: %v", r.dsn("Load"), attempts, err)
		return nil, &repository.StorageError{Op: repository.OpLoad, Kind: repository.KindTransient, Attempts: attempts, Err: err}
	}

	if len(reset) > 0 {
		r.l.Warnf(ctx, "%s: %d items had an unreadable createdAt, reset to zero: %v", r.dsn("Load"), len(reset), reset)
	}
	return items, nil
}
