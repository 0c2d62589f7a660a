package http

import (
	"errors"
	"net/http"

	"shopping-list/internal/shoppinglist"
	pkgErrors "shopping-list/pkg/errors"
)

var (
	errIDRequired      = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidFilter   = pkgErrors.NewHTTPError(http.StatusBadRequest, "filter must be one of all, purchased, unpurchased")
	errInvalidSort     = pkgErrors.NewHTTPError(http.StatusBadRequest, "sort must be one of name, date, purchased")
	errEmptyEdit       = pkgErrors.NewHTTPError(http.StatusBadRequest, "nothing to update")
	errContentRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "content is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, shoppinglist.ErrItemNotFound),
		errors.Is(err, shoppinglist.ErrNotificationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, shoppinglist.ErrNameRequired),
		errors.Is(err, shoppinglist.ErrNameTooShort),
		errors.Is(err, shoppinglist.ErrNameTooLong),
		errors.Is(err, shoppinglist.ErrNameInvalid),
		errors.Is(err, shoppinglist.ErrInvalidQuantity),
		errors.Is(err, shoppinglist.ErrInvalidWhere),
		errors.Is(err, shoppinglist.ErrEmptyImport):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
