package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	shoppingListHTTP "shopping-list/internal/shoppinglist/delivery/http"
)

// setupShoppingListDomain registers /api/v1/shopping-list routes.
// The usecase is built and loaded by the caller so the CLI can share it.
func (srv HTTPServer) setupShoppingListDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := shoppingListHTTP.New(srv.l, srv.shoppingListUC)
	shoppingListHTTP.RegisterRoutes(api.Group("/shopping-list"), h, srv.mw)

	srv.l.Infof(ctx, "Shopping list domain registered")
	return nil
}
