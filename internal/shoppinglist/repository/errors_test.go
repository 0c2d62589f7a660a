package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("wrapped: %w", &StorageError{Op: OpSave, Kind: KindTransient, Attempts: 4, Err: cause})

	if !errors.Is(err, cause) {
		t.Error("expected cause reachable through Unwrap")
	}
	if KindOf(err) != KindTransient {
		t.Errorf("expected transient kind, got %q", KindOf(err))
	}
	if !strings.Contains(err.Error(), "save items to storage after 4 attempts") {
		t.Errorf("unexpected message: %s", err)
	}

	load := &StorageError{Op: OpLoad, Kind: KindTransient, Attempts: 1, Err: cause}
	if load.Error() != "failed to load items from storage: disk full" {
		t.Errorf("unexpected message: %s", load)
	}

	if KindOf(cause) != "" {
		t.Error("plain errors have no kind")
	}
}
