package kv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"shopping-list/internal/model"
	"shopping-list/internal/shoppinglist/repository"
)

// maxEpochMillis keeps numeric timestamps within year 9999.
const maxEpochMillis = 253402300799999

func validateForSave(items []model.ShoppingItem) error {
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("%w: item %d has no id", repository.ErrInvalidItems, i)
		}
	}
	return nil
}

// decodeItems parses a stored record. Each element must carry a string id, string name,
// numeric quantity and boolean purchased; anything else about it is tolerated.
// The ids whose createdAt could not be read are returned so the caller can report them.
func decodeItems(raw string) ([]model.ShoppingItem, []string, error) {
	data := bytes.TrimSpace([]byte(raw))
	if len(data) == 0 || data[0] != '[' {
		return nil, nil, fmt.Errorf("%w: record is not an array", repository.ErrCorruptData)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", repository.ErrCorruptData, err)
	}

	var (
		items = make([]model.ShoppingItem, 0, len(elems))
		reset []string
	)
	for i, elem := range elems {
		var fields map[string]any
		if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
			return nil, nil, fmt.Errorf("%w: element %d is not an object", repository.ErrCorruptData, i)
		}

		id, ok := fields["id"].(string)
		if !ok {
			return nil, nil, fmt.Errorf("%w: element %d has no string id", repository.ErrCorruptData, i)
		}
		name, ok := fields["name"].(string)
		if !ok {
			return nil, nil, fmt.Errorf("%w: element %d has no string name", repository.ErrCorruptData, i)
		}
		quantity, ok := fields["quantity"].(float64)
		if !ok {
			return nil, nil, fmt.Errorf("%w: element %d has no numeric quantity", repository.ErrCorruptData, i)
		}
		purchased, ok := fields["purchased"].(bool)
		if !ok {
			return nil, nil, fmt.Errorf("%w: element %d has no boolean purchased", repository.ErrCorruptData, i)
		}

		createdAt, ok := parseCreatedAt(fields["createdAt"])
		if !ok {
			reset = append(reset, id)
		}

		items = append(items, model.ShoppingItem{
			ID:        id,
			Name:      name,
			Quantity:  int(quantity),
			Purchased: purchased,
			CreatedAt: createdAt,
		})
	}
	return items, reset, nil
}

// parseCreatedAt accepts RFC 3339 strings and epoch milliseconds.
// Anything else yields the zero time and false.
func parseCreatedAt(v any) (time.Time, bool) {
	switch v := v.(type) {
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > maxEpochMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(v)).UTC(), true
	default:
		return time.Time{}, false
	}
}
