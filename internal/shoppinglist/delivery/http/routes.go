package http

import (
	"github.com/gin-gonic/gin"

	"shopping-list/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	items := rg.Group("/items")
	{
		items.GET("", h.List)
		items.POST("", h.Add)
		items.PUT("/:id", h.Edit)
		items.DELETE("/:id", h.Delete)
		items.POST("/:id/toggle", h.Toggle)
	}

	rg.GET("/stats", h.Stats)
	rg.GET("/state", h.State)
	rg.DELETE("/error", h.DismissError)
	rg.GET("/notifications", h.Notifications)
	rg.DELETE("/notifications/:id", h.DismissNotification)

	rg.POST("/import", h.Import)
	rg.GET("/export", h.Export)
}
