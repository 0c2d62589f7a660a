package usecase

// User-facing notification texts.
const (
	MsgItemAdded   = "Item added successfully"
	MsgItemUpdated = "Item updated successfully"
	MsgItemDeleted = "Item deleted successfully"
	MsgLoadFailed  = "Unable to load your shopping list. Starting with an empty list."
	MsgSaveFailed  = "Unable to save changes. Your data may not persist."
)

// whereCacheSize bounds the number of compiled where expressions kept around.
const whereCacheSize = 128

// msgImported is formatted with the number of imported items.
const msgImported = "Imported %d items"
