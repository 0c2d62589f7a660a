package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"shopping-list/internal/model"
)

func TestPrintItems(t *testing.T) {
	var buf bytes.Buffer
	items := []model.ShoppingItem{
		{ID: "a", Name: "Milk", Quantity: 2, CreatedAt: time.Now()},
		{ID: "b", Name: "Eggs", Quantity: 12, Purchased: true, CreatedAt: time.Now()},
	}
	if err := printItems(&buf, items); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "Milk") || !strings.Contains(lines[1], "[ ]") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Eggs") || !strings.Contains(lines[2], "[x]") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestPrintItem(t *testing.T) {
	var buf bytes.Buffer
	printItem(&buf, "Added", model.ShoppingItem{ID: "a", Name: "Milk", Quantity: 2})
	if got := buf.String(); got != "Added a (Milk x2)\n" {
		t.Errorf("got %q", got)
	}
}
