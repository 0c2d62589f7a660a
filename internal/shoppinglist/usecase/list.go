package usecase

import (
	"context"
	"fmt"

	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/projection"
)

// List returns the displayed items for the given search, filter, sort and optional where expression.
func (uc *implUseCase) List(ctx context.Context, input shoppinglist.ListItemsInput) (shoppinglist.ListItemsOutput, error) {
	where, err := uc.compiler.Compile(input.Where)
	if err != nil {
		return shoppinglist.ListItemsOutput{}, fmt.Errorf("%w: %v", shoppinglist.ErrInvalidWhere, err)
	}

	st := uc.store.State()
	items := projection.Project(st.Items, projection.Query{
		Search: input.Query,
		Filter: input.Filter,
		Sort:   input.Sort,
		Where:  where,
	})

	return shoppinglist.ListItemsOutput{
		Items:   items,
		Total:   len(st.Items),
		Loading: st.Loading,
		Error:   st.Error,
	}, nil
}

// Stats summarises the whole list.
func (uc *implUseCase) Stats(ctx context.Context) projection.Stats {
	return projection.ComputeStats(uc.store.Items())
}

// State reports the transient flags and counts.
func (uc *implUseCase) State(ctx context.Context) shoppinglist.StateOutput {
	st := uc.store.State()
	stats := projection.ComputeStats(st.Items)
	return shoppinglist.StateOutput{
		Loading:   st.Loading,
		Error:     st.Error,
		ItemCount: stats.Total,
		Remaining: stats.Remaining,
	}
}

// Notifications lists the toasts that have not expired yet.
func (uc *implUseCase) Notifications(ctx context.Context) []notification.Notification {
	return uc.feed.Active()
}

// DismissNotification hides a toast before it expires.
func (uc *implUseCase) DismissNotification(ctx context.Context, id string) error {
	if !uc.feed.Dismiss(id) {
		return shoppinglist.ErrNotificationNotFound
	}
	return nil
}
