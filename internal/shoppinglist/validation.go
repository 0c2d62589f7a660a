package shoppinglist

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input limits enforced before anything reaches the store.
const (
	MinNameLength = 2
	MaxNameLength = 100
	MinQuantity   = 1
	MaxQuantity   = 999
)

// NormalizeName trims name and checks its length in characters.
// Names are single-line: control characters such as newlines are rejected.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	n := utf8.RuneCountInString(trimmed)
	switch {
	case n == 0:
		return "", ErrNameRequired
	case strings.IndexFunc(trimmed, unicode.IsControl) >= 0:
		return "", ErrNameInvalid
	case n < MinNameLength:
		return "", ErrNameTooShort
	case n > MaxNameLength:
		return "", ErrNameTooLong
	}
	return trimmed, nil
}

func ValidateQuantity(q int) error {
	if q < MinQuantity || q > MaxQuantity {
		return ErrInvalidQuantity
	}
	return nil
}
