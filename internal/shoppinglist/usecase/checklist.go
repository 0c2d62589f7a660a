package usecase

import (
	"context"
	"fmt"
	"strings"

	"shopping-list/internal/model"
	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/projection"
	"shopping-list/internal/shoppinglist/store"
)

// Import adds every valid checkbox of a markdown task list as an item,
// keeping its checked state. Invalid lines are reported, not fatal.
func (uc *implUseCase) Import(ctx context.Context, input shoppinglist.ImportInput) (shoppinglist.ImportOutput, error) {
	entries := uc.checklist.Parse(input.Content)
	if len(entries) == 0 {
		return shoppinglist.ImportOutput{}, shoppinglist.ErrEmptyImport
	}

	type valid struct {
		name      string
		quantity  int
		purchased bool
	}
	var (
		accepted []valid
		out      = shoppinglist.ImportOutput{Checkboxes: uc.checklist.GetStats(input.Content)}
	)
	for _, e := range entries {
		name, err := shoppinglist.NormalizeName(e.Name)
		if err != nil {
			out.Skipped = append(out.Skipped, shoppinglist.SkippedLine{Line: strings.TrimSpace(e.RawLine), Reason: err.Error()})
			continue
		}
		quantity := e.Quantity
		if quantity == 0 {
			quantity = store.DefaultQuantity
		}
		if err := shoppinglist.ValidateQuantity(quantity); err != nil {
			out.Skipped = append(out.Skipped, shoppinglist.SkippedLine{Line: strings.TrimSpace(e.RawLine), Reason: err.Error()})
			continue
		}
		accepted = append(accepted, valid{name: name, quantity: quantity, purchased: e.Purchased})
	}

	if input.Replace && len(accepted) > 0 {
		uc.store.SetItems([]model.ShoppingItem{})
	}
	for _, v := range accepted {
		item := uc.store.AddItem(v.name, v.quantity)
		if v.purchased && uc.store.TogglePurchased(item.ID) {
			item.Purchased = true
		}
		out.Added = append(out.Added, item)
	}

	if len(out.Added) > 0 {
		uc.feed.Push(notification.KindSuccess, fmt.Sprintf(msgImported, len(out.Added)))
		uc.persister.enqueue()
	}

	uc.l.Infof(ctx, "uc.Import: added %d, skipped %d of %d checkboxes (%d checked)",
		len(out.Added), len(out.Skipped), out.Checkboxes.Total, out.Checkboxes.Completed)
	return out, nil
}

// Export renders the list as a markdown task list.
func (uc *implUseCase) Export(ctx context.Context, input shoppinglist.ExportInput) (string, error) {
	items := uc.store.Items()
	if input.Sort != "" {
		items = projection.SortItems(items, input.Sort)
	}
	return uc.checklist.Render(input.Title, items), nil
}
