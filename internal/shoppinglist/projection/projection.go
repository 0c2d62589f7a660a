// Package projection derives the displayed list from the canonical collection.
// Every function here is pure: inputs are never modified and a fresh slice is returned.
package projection

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"shopping-list/internal/model"
)

// Filter selects items by purchase status.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterPurchased   Filter = "purchased"
	FilterUnpurchased Filter = "unpurchased"
)

// Sort orders the displayed items.
type Sort string

const (
	SortName      Sort = "name"
	SortDate      Sort = "date"
	SortPurchased Sort = "purchased"
)

// DefaultSort is what a fresh list view starts with.
const DefaultSort = SortDate

// Query is everything that shapes the displayed list.
type Query struct {
	Search string
	Filter Filter
	Sort   Sort
	Where  *Predicate // optional, applied together with Filter
}

// Project runs search, then filter, then sort.
func Project(items []model.ShoppingItem, q Query) []model.ShoppingItem {
	out := SearchItems(items, q.Search)
	out = FilterItems(out, q.Filter)
	if q.Where != nil {
		out = q.Where.Filter(out)
	}
	return SortItems(out, q.Sort)
}

// SearchItems keeps items whose name contains the trimmed query, ignoring case.
// A blank query keeps everything.
func SearchItems(items []model.ShoppingItem, query string) []model.ShoppingItem {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return model.CloneItems(items)
	}
	out := make([]model.ShoppingItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			out = append(out, it)
		}
	}
	return out
}

// FilterItems applies a filter mode. Unknown modes behave like FilterAll.
func FilterItems(items []model.ShoppingItem, f Filter) []model.ShoppingItem {
	switch f {
	case FilterPurchased, FilterUnpurchased:
		want := f == FilterPurchased
		out := make([]model.ShoppingItem, 0, len(items))
		for _, it := range items {
			if it.Purchased == want {
				out = append(out, it)
			}
		}
		return out
	default:
		return model.CloneItems(items)
	}
}

// SortItems returns a sorted copy. Ties keep input order; unknown modes keep input order entirely.
func SortItems(items []model.ShoppingItem, s Sort) []model.ShoppingItem {
	out := model.CloneItems(items)
	switch s {
	case SortName:
		// Collators keep scratch buffers and are not safe to share between goroutines.
		c := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b model.ShoppingItem) int {
			return c.CompareString(a.Name, b.Name)
		})
	case SortDate:
		slices.SortStableFunc(out, func(a, b model.ShoppingItem) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortPurchased:
		slices.SortStableFunc(out, func(a, b model.ShoppingItem) int {
			switch {
			case a.Purchased == b.Purchased:
				return 0
			case a.Purchased:
				return 1
			default:
				return -1
			}
		})
	}
	return out
}

// ParseFilter maps a user-supplied string to a Filter, defaulting to FilterAll.
func ParseFilter(s string) (Filter, bool) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterPurchased, FilterUnpurchased:
		return f, true
	case "":
		return FilterAll, true
	default:
		return FilterAll, false
	}
}

// ParseSort maps a user-supplied string to a Sort, defaulting to DefaultSort.
func ParseSort(s string) (Sort, bool) {
	switch v := Sort(strings.ToLower(strings.TrimSpace(s))); v {
	case SortName, SortDate, SortPurchased:
		return v, true
	case "":
		return DefaultSort, true
	default:
		return DefaultSort, false
	}
}
