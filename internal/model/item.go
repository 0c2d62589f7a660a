package model

import "time"

// ShoppingItem is a single entry on the shopping list.
type ShoppingItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Purchased bool      `json:"purchased"`
	CreatedAt time.Time `json:"createdAt"` // set once at creation
}

// CloneItems returns a copy of items that shares no backing array with the input.
func CloneItems(items []ShoppingItem) []ShoppingItem {
	out := make([]ShoppingItem, len(items))
	copy(out, items)
	return out
}
