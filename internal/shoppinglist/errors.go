package shoppinglist

import "errors"

// Domain-specific errors for the shopping list.
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrNameRequired    = errors.New("item name is required")
	ErrNameTooShort    = errors.New("item name must be at least 2 characters")
	ErrNameTooLong     = errors.New("item name must be at most 100 characters")
	ErrNameInvalid     = errors.New("item name must be a single line without control characters")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 999")
	ErrInvalidWhere    = errors.New("invalid where expression")
	ErrEmptyImport     = errors.New("no checklist items found")

	ErrNotificationNotFound = errors.New("notification not found")
)
