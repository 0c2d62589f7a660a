package http

import (
	"strings"
	"time"

	"shopping-list/internal/model"
	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/projection"
)

// timeLayout is ISO-8601 with milliseconds, matching the stored createdAt.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// --- Request DTOs ---

type listReq struct {
	Query  string `form:"q"`
	Filter string `form:"filter"`
	Sort   string `form:"sort"`
	Where  string `form:"where"`

	filter projection.Filter
	sort   projection.Sort
}

func (r *listReq) validate() error {
	var ok bool
	if r.filter, ok = projection.ParseFilter(r.Filter); !ok {
		return errInvalidFilter
	}
	if r.sort, ok = projection.ParseSort(r.Sort); !ok {
		return errInvalidSort
	}
	return nil
}

func (r listReq) toInput() shoppinglist.ListItemsInput {
	return shoppinglist.ListItemsInput{
		Query:  r.Query,
		Filter: r.filter,
		Sort:   r.sort,
		Where:  r.Where,
	}
}

// ---

type addReq struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (r addReq) validate() error { return nil }

func (r addReq) toInput() shoppinglist.AddItemInput {
	return shoppinglist.AddItemInput{
		Name:     r.Name,
		Quantity: r.Quantity,
	}
}

// ---

type editReq struct {
	ID       string  `json:"-"` // populated from URI param
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
}

func (r editReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	if r.Name == nil && r.Quantity == nil {
		return errEmptyEdit
	}
	return nil
}

func (r editReq) toInput() shoppinglist.EditItemInput {
	return shoppinglist.EditItemInput{
		ID:       r.ID,
		Name:     r.Name,
		Quantity: r.Quantity,
	}
}

// ---

type importReq struct {
	Content string `json:"content"`
	Replace bool   `json:"replace"`
}

func (r importReq) validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errContentRequired
	}
	return nil
}

func (r importReq) toInput() shoppinglist.ImportInput {
	return shoppinglist.ImportInput{
		Content: r.Content,
		Replace: r.Replace,
	}
}

// ---

type exportReq struct {
	Title string `form:"title"`
	Sort  string `form:"sort"`

	sort projection.Sort
}

func (r *exportReq) validate() error {
	if r.Sort == "" {
		return nil
	}
	var ok bool
	if r.sort, ok = projection.ParseSort(r.Sort); !ok {
		return errInvalidSort
	}
	return nil
}

func (r exportReq) toInput() shoppinglist.ExportInput {
	return shoppinglist.ExportInput{
		Title: r.Title,
		Sort:  r.sort,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Purchased bool   `json:"purchased"`
	CreatedAt string `json:"createdAt"`
}

func newItemResp(item model.ShoppingItem) itemResp {
	return itemResp{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Purchased: item.Purchased,
		CreatedAt: item.CreatedAt.UTC().Format(timeLayout),
	}
}

type itemEnvelope struct {
	Item itemResp `json:"item"`
}

func (h *handler) newItemEnvelope(item model.ShoppingItem) itemEnvelope {
	return itemEnvelope{Item: newItemResp(item)}
}

type listResp struct {
	Items   []itemResp `json:"items"`
	Total   int        `json:"total"`
	Loading bool       `json:"loading"`
	Error   string     `json:"error,omitempty"`
}

func (h *handler) newListResp(out shoppinglist.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items:   items,
		Total:   out.Total,
		Loading: out.Loading,
		Error:   out.Error,
	}
}

type statsResp struct {
	Total             int `json:"total"`
	Purchased         int `json:"purchased"`
	Remaining         int `json:"remaining"`
	CompletionPercent int `json:"completionPercent"`
}

func (h *handler) newStatsResp(s projection.Stats) statsResp {
	return statsResp{
		Total:             s.Total,
		Purchased:         s.Purchased,
		Remaining:         s.Remaining,
		CompletionPercent: s.CompletionPercent,
	}
}

type stateResp struct {
	Loading   bool   `json:"loading"`
	Error     string `json:"error,omitempty"`
	ItemCount int    `json:"itemCount"`
	Remaining int    `json:"remaining"`
}

func (h *handler) newStateResp(s shoppinglist.StateOutput) stateResp {
	return stateResp{
		Loading:   s.Loading,
		Error:     s.Error,
		ItemCount: s.ItemCount,
		Remaining: s.Remaining,
	}
}

type notificationResp struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type notificationsResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newNotificationsResp(ns []notification.Notification) notificationsResp {
	out := make([]notificationResp, len(ns))
	for i, n := range ns {
		out[i] = notificationResp{
			ID:        n.ID,
			Kind:      string(n.Kind),
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		}
	}
	return notificationsResp{Notifications: out}
}

type skippedResp struct {
	Line   string `json:"line"`
	Reason string `json:"reason"`
}

type checkboxesResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type importResp struct {
	Added      []itemResp     `json:"added"`
	Skipped    []skippedResp  `json:"skipped"`
	Checkboxes checkboxesResp `json:"checkboxes"`
}

func (h *handler) newImportResp(out shoppinglist.ImportOutput) importResp {
	resp := importResp{
		Added:   make([]itemResp, len(out.Added)),
		Skipped: make([]skippedResp, len(out.Skipped)),
		Checkboxes: checkboxesResp{
			Total:     out.Checkboxes.Total,
			Completed: out.Checkboxes.Completed,
			Pending:   out.Checkboxes.Pending,
		},
	}
	for i, item := range out.Added {
		resp.Added[i] = newItemResp(item)
	}
	for i, s := range out.Skipped {
		resp.Skipped[i] = skippedResp{Line: s.Line, Reason: s.Reason}
	}
	return resp
}
