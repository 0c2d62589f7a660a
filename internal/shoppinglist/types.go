package shoppinglist

import (
	"shopping-list/internal/checklist"
	"shopping-list/internal/model"
	"shopping-list/internal/shoppinglist/projection"
)

// --- UseCase Inputs ---

type AddItemInput struct {
	Name     string
	Quantity int
}

// EditItemInput changes only the non-nil fields.
type EditItemInput struct {
	ID       string
	Name     *string
	Quantity *int
}

type ListItemsInput struct {
	Query  string
	Filter projection.Filter
	Sort   projection.Sort
	Where  string
}

// ImportInput carries a markdown task list. Replace drops the current items first.
type ImportInput struct {
	Content string
	Replace bool
}

type ExportInput struct {
	Title string
	Sort  projection.Sort // empty keeps list order
}

// --- UseCase Outputs ---

type ListItemsOutput struct {
	Items   []model.ShoppingItem // displayed items, after search/filter/sort
	Total   int                  // size of the whole list
	Loading bool
	Error   string
}

type StateOutput struct {
	Loading   bool
	Error     string
	ItemCount int
	Remaining int
}

type ImportOutput struct {
	Added   []model.ShoppingItem
	Skipped []SkippedLine
	// Checkboxes counts the boxes of the submitted document, valid or not.
	Checkboxes checklist.ChecklistStats
}

// SkippedLine is a checkbox that failed validation.
type SkippedLine struct {
	Line   string
	Reason string
}
