package usecase

import (
	"context"

	"shopping-list/internal/model"
	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/store"
)

// Add validates the input, appends a new item and schedules a save.
func (uc *implUseCase) Add(ctx context.Context, input shoppinglist.AddItemInput) (model.ShoppingItem, error) {
	name, err := shoppinglist.NormalizeName(input.Name)
	if err != nil {
		return model.ShoppingItem{}, err
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = store.DefaultQuantity
	}
	if err := shoppinglist.ValidateQuantity(quantity); err != nil {
		return model.ShoppingItem{}, err
	}

	item := uc.store.AddItem(name, quantity)
	uc.feed.Push(notification.KindSuccess, MsgItemAdded)
	uc.persister.enqueue()

	uc.l.Debugf(ctx, "uc.Add: added %s (%s x%d)", item.ID, item.Name, item.Quantity)
	return item, nil
}

// Edit changes the provided fields of an existing item.
func (uc *implUseCase) Edit(ctx context.Context, input shoppinglist.EditItemInput) (model.ShoppingItem, error) {
	patch := store.EditPatch{Quantity: input.Quantity}
	if input.Name != nil {
		name, err := shoppinglist.NormalizeName(*input.Name)
		if err != nil {
			return model.ShoppingItem{}, err
		}
		patch.Name = &name
	}
	if input.Quantity != nil {
		if err := shoppinglist.ValidateQuantity(*input.Quantity); err != nil {
			return model.ShoppingItem{}, err
		}
	}

	if _, ok := uc.store.Item(input.ID); !ok {
		return model.ShoppingItem{}, shoppinglist.ErrItemNotFound
	}

	uc.store.EditItem(input.ID, patch)
	item, ok := uc.store.Item(input.ID)
	if !ok {
		// Deleted concurrently between the edit and the read.
		return model.ShoppingItem{}, shoppinglist.ErrItemNotFound
	}
	uc.feed.Push(notification.KindSuccess, MsgItemUpdated)
	uc.persister.enqueue()
	return item, nil
}

// Delete removes an item by id.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if !uc.store.DeleteItem(id) {
		return shoppinglist.ErrItemNotFound
	}
	uc.feed.Push(notification.KindSuccess, MsgItemDeleted)
	uc.persister.enqueue()
	return nil
}

// Toggle flips the purchased flag and returns the updated item.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (model.ShoppingItem, error) {
	if !uc.store.TogglePurchased(id) {
		return model.ShoppingItem{}, shoppinglist.ErrItemNotFound
	}
	uc.persister.enqueue()

	item, ok := uc.store.Item(id)
	if !ok {
		return model.ShoppingItem{}, shoppinglist.ErrItemNotFound
	}
	return item, nil
}

// DismissError clears the visible error.
func (uc *implUseCase) DismissError(ctx context.Context) {
	uc.store.ClearError()
}
