package repository

import (
	"context"

	"shopping-list/internal/model"
)

// Repository is the durable home of the item collection. Each call moves a full snapshot.
type Repository interface {
	// Save persists items, replacing whatever was stored before.
	Save(ctx context.Context, items []model.ShoppingItem) error

	// Load returns the persisted items, or an empty collection when nothing is stored
	// or the stored record was corrupt.
	Load(ctx context.Context) ([]model.ShoppingItem, error)
}
