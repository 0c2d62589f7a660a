package http

import (
	"shopping-list/internal/shoppinglist"
	"shopping-list/pkg/log"
)

type handler struct {
	l  log.Logger
	uc shoppinglist.UseCase
}

// New creates a new HTTP handler for the shopping list.
func New(l log.Logger, uc shoppinglist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
