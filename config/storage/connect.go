package storage

import (
	"context"
	"fmt"

	"shopping-list/config"
	"shopping-list/pkg/kvstore"
	kvMongo "shopping-list/pkg/kvstore/mongo"
)

// Connect opens the key-value backend selected by cfg.Backend.
func Connect(ctx context.Context, cfg config.StorageConfig) (kvstore.Store, error) {
	switch cfg.Backend {
	case config.StorageBackendMemory:
		return kvstore.NewMemory(), nil
	case config.StorageBackendFile:
		return kvstore.NewFile(cfg.File.Dir)
	case config.StorageBackendMongo:
		return kvMongo.New(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Disconnect closes the backend, ignoring nil.
func Disconnect(s kvstore.Store) error {
	if s == nil {
		return nil
	}
	return s.Close()
}
