package shoppinglist

import (
	"context"

	"shopping-list/internal/model"
	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist/projection"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Lifecycle
	Load(ctx context.Context) error
	Close(ctx context.Context) error

	// Item mutations
	Add(ctx context.Context, input AddItemInput) (model.ShoppingItem, error)
	Edit(ctx context.Context, input EditItemInput) (model.ShoppingItem, error)
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) (model.ShoppingItem, error)

	// Markdown checklist exchange
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
	Export(ctx context.Context, input ExportInput) (string, error)

	// Views
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Stats(ctx context.Context) projection.Stats
	State(ctx context.Context) StateOutput
	Notifications(ctx context.Context) []notification.Notification
	DismissNotification(ctx context.Context, id string) error

	DismissError(ctx context.Context)
}
