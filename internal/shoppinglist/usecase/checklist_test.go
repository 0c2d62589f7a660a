package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"shopping-list/internal/model"
	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/projection"
)

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("Adds Valid Lines And Reports The Rest", func(t *testing.T) {
		uc, st, feed := newTestUseCase(t, &fakeRepo{}, 0)

		out, err := uc.Import(ctx, shoppinglist.ImportInput{Content: "- [ ] Milk x2\n- [x] Bread\n- [ ] A\n- [ ] Rice x1000\n"})
		if err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		if len(out.Added) != 2 || len(out.Skipped) != 2 {
			t.Fatalf("Import() = %+v", out)
		}
		items := st.Items()
		if items[0].Name != "Milk" || items[0].Quantity != 2 || items[0].Purchased {
			t.Errorf("item 0 = %+v", items[0])
		}
		if items[1].Name != "Bread" || items[1].Quantity != 1 || !items[1].Purchased {
			t.Errorf("item 1 = %+v", items[1])
		}
		if c := out.Checkboxes; c.Total != 4 || c.Completed != 1 || c.Pending != 3 {
			t.Errorf("checkboxes = %+v", c)
		}
		if out.Skipped[0].Reason != shoppinglist.ErrNameTooShort.Error() {
			t.Errorf("skip reason = %q", out.Skipped[0].Reason)
		}
		if msgs := messages(feed); len(msgs) != 1 || msgs[0] != "Imported 2 items" {
			t.Errorf("notifications = %v", msgs)
		}
	})

	t.Run("Replace Drops Existing Items", func(t *testing.T) {
		uc, st, _ := newTestUseCase(t, &fakeRepo{}, 0)
		if _, err := uc.Add(ctx, shoppinglist.AddItemInput{Name: "Old", Quantity: 1}); err != nil {
			t.Fatal(err)
		}

		if _, err := uc.Import(ctx, shoppinglist.ImportInput{Content: "- [ ] New", Replace: true}); err != nil {
			t.Fatal(err)
		}
		items := st.Items()
		if len(items) != 1 || items[0].Name != "New" {
			t.Errorf("items = %+v", items)
		}
	})

	t.Run("Replace With Nothing Valid Keeps The List", func(t *testing.T) {
		uc, st, _ := newTestUseCase(t, &fakeRepo{}, 0)
		if _, err := uc.Add(ctx, shoppinglist.AddItemInput{Name: "Old", Quantity: 1}); err != nil {
			t.Fatal(err)
		}

		out, err := uc.Import(ctx, shoppinglist.ImportInput{Content: "- [ ] A", Replace: true})
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Added) != 0 || len(st.Items()) != 1 {
			t.Errorf("out = %+v, items = %+v", out, st.Items())
		}
	})

	t.Run("No Checkboxes", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t, &fakeRepo{}, 0)
		if _, err := uc.Import(ctx, shoppinglist.ImportInput{Content: "just text"}); !errors.Is(err, shoppinglist.ErrEmptyImport) {
			t.Errorf("Import() error = %v", err)
		}
	})

	t.Run("Import Is Persisted", func(t *testing.T) {
		repo := &fakeRepo{}
		uc, _, _ := newTestUseCase(t, repo, 0)
		if _, err := uc.Import(ctx, shoppinglist.ImportInput{Content: "- [ ] Milk\n- [x] Eggs"}); err != nil {
			t.Fatal(err)
		}
		if err := uc.Close(ctx); err != nil {
			t.Fatal(err)
		}
		if got := repo.lastSave(); len(got) != 2 || !got[1].Purchased {
			t.Errorf("last save = %+v", got)
		}
	})
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{loadResp: []model.ShoppingItem{
		{ID: "b", Name: "Bread", Quantity: 1, Purchased: true},
		{ID: "a", Name: "Apples", Quantity: 6},
	}}
	uc, _, _ := newTestUseCase(t, repo, 0)
	if err := uc.Load(ctx); err != nil {
		t.Fatal(err)
	}

	md, err := uc.Export(ctx, shoppinglist.ExportInput{})
	if err != nil {
		t.Fatal(err)
	}
	if md != "# Shopping List\n\n- [x] Bread\n- [ ] Apples x6\n" {
		t.Errorf("Export() = %q", md)
	}

	md, _ = uc.Export(ctx, shoppinglist.ExportInput{Title: "Groceries", Sort: projection.SortName})
	if !strings.HasPrefix(md, "# Groceries\n\n- [ ] Apples x6\n") {
		t.Errorf("sorted Export() = %q", md)
	}
}
