package kvstore

import "errors"

var (
	ErrEmptyKey = errors.New("kvstore: key is empty")
	ErrClosed   = errors.New("kvstore: store is closed")
)
