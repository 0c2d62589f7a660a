package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopping-list/pkg/response"
)

// List godoc
// @Summary     List items
// @Description Returns the displayed items after search, filter and sort, plus the loading and error flags.
// @Tags        ShoppingList
// @Produce     json
// @Param       q      query string false "Case-insensitive name search"
// @Param       filter query string false "all, purchased or unpurchased (default: all)"
// @Param       sort   query string false "name, date or purchased (default: date)"
// @Param       where  query string false "Boolean expression over id, name, quantity, purchased, createdAt"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shopping-list/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Add godoc
// @Summary     Add an item
// @Description Adds a new unpurchased item. Quantity defaults to 1.
// @Tags        ShoppingList
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Item data"
// @Success     200 {object} itemEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shopping-list/items [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	item, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemEnvelope(item))
}

// Edit godoc
// @Summary     Edit an item
// @Description Changes the name and/or quantity of an item. Omitted fields are left alone.
// @Tags        ShoppingList
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Item ID"
// @Param       body body editReq true "Fields to update"
// @Success     200 {object} itemEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shopping-list/items/{id} [PUT]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	item, err := h.uc.Edit(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemEnvelope(item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Removes an item by ID.
// @Tags        ShoppingList
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shopping-list/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle purchased
// @Description Flips the purchased flag of an item.
// @Tags        ShoppingList
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shopping-list/items/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	item, err := h.uc.Toggle(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemEnvelope(item))
}

// Stats godoc
// @Summary     List statistics
// @Description Total, purchased and remaining counts with the rounded completion percentage.
// @Tags        ShoppingList
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/shopping-list/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	response.OK(c, h.newStatsResp(h.uc.Stats(c.Request.Context())))
}

// State godoc
// @Summary     List state
// @Description Loading flag, the current error message and item counts.
// @Tags        ShoppingList
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/shopping-list/state [GET]
func (h *handler) State(c *gin.Context) {
	response.OK(c, h.newStateResp(h.uc.State(c.Request.Context())))
}

// DismissError godoc
// @Summary     Dismiss error
// @Description Clears the current error message.
// @Tags        ShoppingList
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/shopping-list/error [DELETE]
func (h *handler) DismissError(c *gin.Context) {
	h.uc.DismissError(c.Request.Context())
	response.OK(c, nil)
}

// Notifications godoc
// @Summary     Active notifications
// @Description Toasts raised in the last few seconds, oldest first.
// @Tags        ShoppingList
// @Produce     json
// @Success     200 {object} notificationsResp
// @Router      /api/v1/shopping-list/notifications [GET]
func (h *handler) Notifications(c *gin.Context) {
	response.OK(c, h.newNotificationsResp(h.uc.Notifications(c.Request.Context())))
}

// DismissNotification godoc
// @Summary     Dismiss a notification
// @Description Hides a toast before it expires.
// @Tags        ShoppingList
// @Produce     json
// @Param       id path string true "Notification ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/shopping-list/notifications/{id} [DELETE]
func (h *handler) DismissNotification(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DismissNotification(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Import godoc
// @Summary     Import a markdown checklist
// @Description Adds every "- [ ] name xN" line as an item. Invalid lines are listed under skipped.
// @Tags        ShoppingList
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Markdown content"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/shopping-list/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Import(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newImportResp(output))
}

// Export godoc
// @Summary     Export as markdown
// @Description Renders the list as a markdown task list.
// @Tags        ShoppingList
// @Produce     plain
// @Param       title query string false "Heading (default: Shopping List)"
// @Param       sort  query string false "name, date or purchased (default: list order)"
// @Success     200 {string} string "Markdown"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/shopping-list/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	md, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}
