package usecase

import (
	"context"

	"shopping-list/internal/model"
	"shopping-list/internal/notification"
)

// Load fills the store from storage. On failure the list starts empty and a
// notification is raised; the returned error is informational only.
func (uc *implUseCase) Load(ctx context.Context) error {
	uc.store.SetLoading(true)
	uc.store.ClearError()

	items, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load repo.Load: %v", err)
		uc.store.SetError(err.Error())
		uc.store.SetLoading(false)
		uc.feed.Push(notification.KindError, MsgLoadFailed)
		uc.store.SetItems([]model.ShoppingItem{})
		uc.persister.markCurrentSaved()
		return err
	}

	uc.store.SetItems(items)
	uc.store.SetLoading(false)
	uc.persister.markCurrentSaved()

	uc.l.Infof(ctx, "uc.Load: loaded %d items", len(items))
	return nil
}
