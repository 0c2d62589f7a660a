package storage

import (
	"context"
	"testing"

	"shopping-list/config"
	"shopping-list/pkg/kvstore"
)

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		s, err := Connect(ctx, config.StorageConfig{Backend: config.StorageBackendMemory})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer Disconnect(s)
		if _, ok := s.(*kvstore.Memory); !ok {
			t.Errorf("expected *kvstore.Memory, got %T", s)
		}
	})

	t.Run("File", func(t *testing.T) {
		s, err := Connect(ctx, config.StorageConfig{
			Backend: config.StorageBackendFile,
			File:    config.FileStorageConfig{Dir: t.TempDir()},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := s.(*kvstore.File); !ok {
			t.Errorf("expected *kvstore.File, got %T", s)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if _, err := Connect(ctx, config.StorageConfig{Backend: "tape"}); err == nil {
			t.Error("expected error for unknown backend")
		}
	})
}
