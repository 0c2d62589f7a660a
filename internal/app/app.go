// Package app assembles the shopping list service from configuration.
package app

import (
	"context"
	"fmt"

	"shopping-list/config"
	"shopping-list/config/storage"
	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/repository"
	kvRepo "shopping-list/internal/shoppinglist/repository/kv"
	"shopping-list/internal/shoppinglist/store"
	"shopping-list/internal/shoppinglist/usecase"
	"shopping-list/pkg/kvstore"
	"shopping-list/pkg/log"
)

// App owns the storage connection and the loaded use case.
type App struct {
	l  log.Logger
	kv kvstore.Store

	UseCase shoppinglist.UseCase
}

// New connects storage, builds the use case and loads the list.
// A failed load is not fatal: the list starts empty and the failure is
// reported through the use case state and notifications.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	kv, err := storage.Connect(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("app.New storage.Connect: %w", err)
	}
	l.Infof(ctx, "Storage backend: %s", cfg.Storage.Backend)

	opts := repository.DefaultOptions()
	opts.Key = cfg.Storage.Key
	opts.MaxRetries = cfg.Persistence.MaxRetries
	opts.RetryBackoff = cfg.Persistence.RetryBackoff
	opts.MaxPayloadBytes = cfg.Persistence.MaxPayloadBytes
	repo := kvRepo.New(kv, l, opts)

	feed := notification.NewFeed(cfg.Notification.Capacity, cfg.Notification.TTL)

	uc, err := usecase.New(l, store.New(), repo, feed, usecase.Config{
		Debounce: cfg.Persistence.Debounce,
	})
	if err != nil {
		_ = storage.Disconnect(kv)
		return nil, fmt.Errorf("app.New usecase.New: %w", err)
	}

	if err := uc.Load(ctx); err != nil {
		l.Warnf(ctx, "app.New: starting with an empty list: %v", err)
	}

	return &App{l: l, kv: kv, UseCase: uc}, nil
}

// Close flushes pending changes and disconnects storage.
func (a *App) Close(ctx context.Context) error {
	flushErr := a.UseCase.Close(ctx)
	if flushErr != nil {
		a.l.Errorf(ctx, "app.Close uc.Close: %v", flushErr)
	}
	if err := storage.Disconnect(a.kv); err != nil {
		a.l.Errorf(ctx, "app.Close storage.Disconnect: %v", err)
		if flushErr == nil {
			return err
		}
	}
	return flushErr
}
