package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"shopping-list/internal/model"
	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/projection"
	"shopping-list/internal/shoppinglist/store"
	"shopping-list/pkg/log"
)

// fakeRepo records saves and returns canned load results.
type fakeRepo struct {
	mu       sync.Mutex
	loadResp []model.ShoppingItem
	loadErr  error
	saveErr  error
	saves    [][]model.ShoppingItem
	block    chan struct{} // when set, Save waits on it or ctx
}

func (r *fakeRepo) Load(ctx context.Context) ([]model.ShoppingItem, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return model.CloneItems(r.loadResp), nil
}

func (r *fakeRepo) Save(ctx context.Context, items []model.ShoppingItem) error {
	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves = append(r.saves, model.CloneItems(items))
	return nil
}

func (r *fakeRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func (r *fakeRepo) lastSave() []model.ShoppingItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

func newTestUseCase(t *testing.T, repo *fakeRepo, debounce time.Duration) (*implUseCase, *store.Store, *notification.Feed) {
	t.Helper()
	n := 0
	st := store.New(store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	feed := notification.NewFeed(20, time.Minute)
	uc, err := New(log.NewNop(), st, repo, feed, Config{Debounce: debounce})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = uc.Close(context.Background()) })
	return uc, st, feed
}

func messages(feed *notification.Feed) []string {
	var out []string
	for _, n := range feed.Active() {
		out = append(out, n.Message)
	}
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func ptr[T any](v T) *T { return &v }

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Fills The Store", func(t *testing.T) {
		repo := &fakeRepo{loadResp: []model.ShoppingItem{{ID: "a", Name: "Milk", Quantity: 1}}}
		uc, st, feed := newTestUseCase(t, repo, 0)

		if err := uc.Load(ctx); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		got := st.State()
		if len(got.Items) != 1 || got.Loading || got.HasError() {
			t.Fatalf("state = %+v", got)
		}
		if len(feed.Active()) != 0 {
			t.Errorf("unexpected notifications %v", messages(feed))
		}
	})

	t.Run("Failure Starts Empty With A Toast", func(t *testing.T) {
		repo := &fakeRepo{loadErr: errors.New("boom")}
		uc, st, feed := newTestUseCase(t, repo, 0)

		if err := uc.Load(ctx); err == nil {
			t.Fatal("Load() expected error")
		}
		got := st.State()
		if len(got.Items) != 0 || got.Loading {
			t.Fatalf("state = %+v", got)
		}
		msgs := messages(feed)
		if len(msgs) != 1 || msgs[0] != MsgLoadFailed {
			t.Errorf("notifications = %v", msgs)
		}
	})

	t.Run("Loaded List Is Not Saved Back", func(t *testing.T) {
		repo := &fakeRepo{loadResp: []model.ShoppingItem{{ID: "a", Name: "Milk", Quantity: 1}}}
		uc, _, _ := newTestUseCase(t, repo, 0)
		if err := uc.Load(ctx); err != nil {
			t.Fatal(err)
		}
		if err := uc.Close(ctx); err != nil {
			t.Fatal(err)
		}
		if repo.saveCount() != 0 {
			t.Errorf("saves = %d, want 0", repo.saveCount())
		}
	})
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   shoppinglist.AddItemInput
		wantErr error
		want    model.ShoppingItem
	}{
		{"Trims Name", shoppinglist.AddItemInput{Name: "  Milk  ", Quantity: 2}, nil, model.ShoppingItem{Name: "Milk", Quantity: 2}},
		{"Zero Quantity Defaults To One", shoppinglist.AddItemInput{Name: "Eggs"}, nil, model.ShoppingItem{Name: "Eggs", Quantity: 1}},
		{"Blank Name", shoppinglist.AddItemInput{Name: "   ", Quantity: 1}, shoppinglist.ErrNameRequired, model.ShoppingItem{}},
		{"Short Name", shoppinglist.AddItemInput{Name: "a", Quantity: 1}, shoppinglist.ErrNameTooShort, model.ShoppingItem{}},
		{"Quantity Too Large", shoppinglist.AddItemInput{Name: "Milk", Quantity: 1000}, shoppinglist.ErrInvalidQuantity, model.ShoppingItem{}},
		{"Negative Quantity", shoppinglist.AddItemInput{Name: "Milk", Quantity: -1}, shoppinglist.ErrInvalidQuantity, model.ShoppingItem{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, st, feed := newTestUseCase(t, &fakeRepo{}, 0)

			got, err := uc.Add(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if len(st.Items()) != 0 || len(feed.Active()) != 0 {
					t.Error("rejected input must not touch the store or notify")
				}
				return
			}
			if got.Name != tt.want.Name || got.Quantity != tt.want.Quantity || got.Purchased {
				t.Errorf("Add() = %+v", got)
			}
			if msgs := messages(feed); len(msgs) != 1 || msgs[0] != MsgItemAdded {
				t.Errorf("notifications = %v", msgs)
			}
		})
	}
}

func TestEditDeleteToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("Edit Changes Only Given Fields", func(t *testing.T) {
		uc, _, feed := newTestUseCase(t, &fakeRepo{}, 0)
		item, _ := uc.Add(ctx, shoppinglist.AddItemInput{Name: "Milk", Quantity: 2})

		got, err := uc.Edit(ctx, shoppinglist.EditItemInput{ID: item.ID, Quantity: ptr(5)})
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "Milk" || got.Quantity != 5 {
			t.Errorf("Edit() = %+v", got)
		}
		if msgs := messages(feed); msgs[len(msgs)-1] != MsgItemUpdated {
			t.Errorf("notifications = %v", msgs)
		}
	})

	t.Run("Edit Validates Name", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t, &fakeRepo{}, 0)
		item, _ := uc.Add(ctx, shoppinglist.AddItemInput{Name: "Milk", Quantity: 2})

		if _, err := uc.Edit(ctx, shoppinglist.EditItemInput{ID: item.ID, Name: ptr("x")}); !errors.Is(err, shoppinglist.ErrNameTooShort) {
			t.Errorf("Edit() error = %v", err)
		}
	})

	t.Run("Unknown ID", func(t *testing.T) {
		uc, st, _ := newTestUseCase(t, &fakeRepo{}, 0)
		_, before := st.Snapshot()

		if _, err := uc.Edit(ctx, shoppinglist.EditItemInput{ID: "nope", Quantity: ptr(2)}); !errors.Is(err, shoppinglist.ErrItemNotFound) {
			t.Errorf("Edit() error = %v", err)
		}
		if err := uc.Delete(ctx, "nope"); !errors.Is(err, shoppinglist.ErrItemNotFound) {
			t.Errorf("Delete() error = %v", err)
		}
		if _, err := uc.Toggle(ctx, "nope"); !errors.Is(err, shoppinglist.ErrItemNotFound) {
			t.Errorf("Toggle() error = %v", err)
		}
		if _, after := st.Snapshot(); after != before {
			t.Errorf("version moved from %d to %d", before, after)
		}
	})

	t.Run("Toggle And Delete", func(t *testing.T) {
		uc, st, feed := newTestUseCase(t, &fakeRepo{}, 0)
		item, _ := uc.Add(ctx, shoppinglist.AddItemInput{Name: "Milk", Quantity: 2})

		got, err := uc.Toggle(ctx, item.ID)
		if err != nil || !got.Purchased {
			t.Fatalf("Toggle() = %+v, %v", got, err)
		}
		if err := uc.Delete(ctx, item.ID); err != nil {
			t.Fatal(err)
		}
		if len(st.Items()) != 0 {
			t.Error("item not deleted")
		}
		if msgs := messages(feed); msgs[len(msgs)-1] != MsgItemDeleted {
			t.Errorf("notifications = %v", msgs)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUseCase(t, &fakeRepo{}, 0)
	for _, name := range []string{"Bread", "Apples", "Milk"} {
		if _, err := uc.Add(ctx, shoppinglist.AddItemInput{Name: name, Quantity: 1}); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("Search And Sort", func(t *testing.T) {
		out, err := uc.List(ctx, shoppinglist.ListItemsInput{Query: "l", Filter: projection.FilterAll, Sort: projection.SortName})
		if err != nil {
			t.Fatal(err)
		}
		if out.Total != 3 || len(out.Items) != 2 || out.Items[0].Name != "Apples" || out.Items[1].Name != "Milk" {
			t.Errorf("List() = %+v", out)
		}
	})

	t.Run("Where Expression", func(t *testing.T) {
		out, err := uc.List(ctx, shoppinglist.ListItemsInput{Where: `name startsWith "B"`})
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Items) != 1 || out.Items[0].Name != "Bread" {
			t.Errorf("List() = %+v", out.Items)
		}
	})

	t.Run("Invalid Where", func(t *testing.T) {
		if _, err := uc.List(ctx, shoppinglist.ListItemsInput{Where: "quantity +"}); !errors.Is(err, shoppinglist.ErrInvalidWhere) {
			t.Errorf("List() error = %v", err)
		}
	})

	t.Run("Stats And State", func(t *testing.T) {
		stats := uc.Stats(ctx)
		if stats.Total != 3 || stats.Remaining != 3 {
			t.Errorf("Stats() = %+v", stats)
		}
		state := uc.State(ctx)
		if state.ItemCount != 3 || state.Loading || state.Error != "" {
			t.Errorf("State() = %+v", state)
		}
	})
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("Burst Of Changes Saves The Final Snapshot", func(t *testing.T) {
		repo := &fakeRepo{}
		uc, _, _ := newTestUseCase(t, repo, 20*time.Millisecond)

		for _, name := range []string{"Milk", "Eggs", "Bread"} {
			if _, err := uc.Add(ctx, shoppinglist.AddItemInput{Name: name, Quantity: 1}); err != nil {
				t.Fatal(err)
			}
		}
		waitFor(t, func() bool { return len(repo.lastSave()) == 3 })
	})

	t.Run("Close Flushes Pending Change", func(t *testing.T) {
		repo := &fakeRepo{}
		uc, _, _ := newTestUseCase(t, repo, time.Hour)

		if _, err := uc.Add(ctx, shoppinglist.AddItemInput{Name: "Milk", Quantity: 1}); err != nil {
			t.Fatal(err)
		}
		if err := uc.Close(ctx); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if got := repo.lastSave(); len(got) != 1 || got[0].Name != "Milk" {
			t.Errorf("last save = %+v", got)
		}
	})

	t.Run("Empty List Is Saved After Deleting The Last Item", func(t *testing.T) {
		repo := &fakeRepo{loadResp: []model.ShoppingItem{{ID: "a", Name: "Milk", Quantity: 1}}}
		uc, _, _ := newTestUseCase(t, repo, time.Hour)
		if err := uc.Load(ctx); err != nil {
			t.Fatal(err)
		}
		if err := uc.Delete(ctx, "a"); err != nil {
			t.Fatal(err)
		}
		if err := uc.Close(ctx); err != nil {
			t.Fatal(err)
		}
		if repo.saveCount() != 1 || len(repo.lastSave()) != 0 {
			t.Errorf("saves = %d, last = %+v", repo.saveCount(), repo.lastSave())
		}
	})

	t.Run("Save Failure Sets Error And Notifies", func(t *testing.T) {
		repo := &fakeRepo{saveErr: errors.New("disk full")}
		uc, st, feed := newTestUseCase(t, repo, 0)

		if _, err := uc.Add(ctx, shoppinglist.AddItemInput{Name: "Milk", Quantity: 1}); err != nil {
			t.Fatal(err)
		}
		waitFor(t, func() bool { return st.State().HasError() })
		if st.State().Error != "disk full" {
			t.Errorf("error = %q", st.State().Error)
		}
		found := false
		for _, m := range messages(feed) {
			if m == MsgSaveFailed {
				found = true
			}
		}
		if !found {
			t.Errorf("notifications = %v", messages(feed))
		}

		for _, n := range feed.Active() {
			if err := uc.DismissNotification(ctx, n.ID); err != nil {
				t.Errorf("DismissNotification(%s) error = %v", n.ID, err)
			}
		}
		if len(feed.Active()) != 0 {
			t.Error("notifications left after dismissing all")
		}
		if err := uc.DismissNotification(ctx, "missing"); !errors.Is(err, shoppinglist.ErrNotificationNotFound) {
			t.Errorf("DismissNotification(missing) error = %v", err)
		}

		uc.DismissError(ctx)
		if st.State().HasError() {
			t.Error("DismissError() left the error set")
		}
	})

	t.Run("Close Cancels In-Flight Save And Retries With Caller Ctx", func(t *testing.T) {
		repo := &fakeRepo{block: make(chan struct{})}
		uc, _, _ := newTestUseCase(t, repo, 0)

		if _, err := uc.Add(ctx, shoppinglist.AddItemInput{Name: "Milk", Quantity: 1}); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)

		closeCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		if err := uc.Close(closeCtx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Close() error = %v, want deadline exceeded", err)
		}
		if repo.saveCount() != 0 {
			t.Errorf("saves = %d, want 0", repo.saveCount())
		}
	})
}
