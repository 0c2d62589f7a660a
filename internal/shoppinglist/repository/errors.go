package repository

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidItems    = errors.New("items are not a well-formed collection")
	ErrPayloadTooLarge = errors.New("serialized items exceed the size limit")
	ErrCorruptData     = errors.New("stored items failed validation")
)

// Op names the adapter operation that failed.
type Op string

const (
	OpLoad Op = "load"
	OpSave Op = "save"
)

// Kind classifies a storage failure.
type Kind string

const (
	KindValidation Kind = "validation"
	KindSizeLimit  Kind = "size_limit"
	KindTransient  Kind = "transient"
	KindCorruption Kind = "corruption"
)

// StorageError is the tagged failure returned by the adapter.
type StorageError struct {
	Op       Op
	Kind     Kind
	Attempts int
	Err      error
}

func (e *StorageError) Error() string {
	what := "save items to storage"
	if e.Op == OpLoad {
		what = "load items from storage"
	}
	if e.Attempts > 1 {
		return fmt.Sprintf("failed to %s after %d attempts: %v", what, e.Attempts, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", what, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from err, or "" when err is not a StorageError.
func KindOf(err error) Kind {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
