package shoppinglist

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"Trimmed", "  Milk  ", "Milk", nil},
		{"Empty", "", "", ErrNameRequired},
		{"Whitespace Only", "   \t", "", ErrNameRequired},
		{"One Char", " a ", "", ErrNameTooShort},
		{"Two Chars", "ab", "ab", nil},
		{"Exactly Max", strings.Repeat("x", 100), strings.Repeat("x", 100), nil},
		{"Over Max", strings.Repeat("x", 101), "", ErrNameTooLong},
		{"Multibyte Counted As Characters", "éé", "éé", nil},
		{"Embedded Newline", "Milk\n- [x] Eggs", "", ErrNameInvalid},
		{"Embedded Tab", "Milk\tEggs", "", ErrNameInvalid},
		{"Trailing Newline Trimmed", "Milk\n", "Milk", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	for _, q := range []int{1, 12, 999} {
		if err := ValidateQuantity(q); err != nil {
			t.Errorf("quantity %d: unexpected error %v", q, err)
		}
	}
	for _, q := range []int{-1, 0, 1000} {
		if err := ValidateQuantity(q); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
}
