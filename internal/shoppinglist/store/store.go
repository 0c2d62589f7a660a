// Package store holds the canonical shopping list and its transient loading/error flags.
//
// Every operation is a synchronous transition under a single mutex, so handlers
// running on different goroutines observe the same linear history of changes.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"shopping-list/internal/model"
)

// DefaultQuantity is used by AddItem when no quantity is given.
const DefaultQuantity = 1

// State is a snapshot of the store.
type State struct {
	Items   []model.ShoppingItem
	Loading bool
	Error   string // empty means no error
	Version uint64 // bumped on every change to Items
}

// HasError reports whether an unrecovered failure message is set.
func (s State) HasError() bool { return s.Error != "" }

// EditPatch carries the fields EditItem should change. Nil fields are left alone.
type EditPatch struct {
	Name     *string
	Quantity *int
}

// Store owns the item collection. The zero value is not usable; call New.
type Store struct {
	mu    sync.RWMutex
	state State

	newID func() string
	now   func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID-based id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces time.Now for createdAt stamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// New returns an empty store: no items, not loading, no error.
func New(opts ...Option) *Store {
	s := &Store{
		state: State{Items: []model.ShoppingItem{}},
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Items = model.CloneItems(s.state.Items)
	return st
}

// Items returns a snapshot of the collection in insertion order.
func (s *Store) Items() []model.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneItems(s.state.Items)
}

// Snapshot returns the items together with the version they belong to.
func (s *Store) Snapshot() ([]model.ShoppingItem, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneItems(s.state.Items), s.state.Version
}

// Item looks up a single item by id.
func (s *Store) Item(id string) (model.ShoppingItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.state.Items[i], true
	}
	return model.ShoppingItem{}, false
}

// SetItems replaces the whole collection and clears the error.
func (s *Store) SetItems(items []model.ShoppingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = model.CloneItems(items)
	s.state.Error = ""
	s.state.Version++
}

// AddItem appends a new unpurchased item and clears the error.
// name and quantity are stored as given; quantity 0 means DefaultQuantity.
func (s *Store) AddItem(name string, quantity int) model.ShoppingItem {
	if quantity == 0 {
		quantity = DefaultQuantity
	}
	item := model.ShoppingItem{
		ID:        s.newID(),
		Name:      name,
		Quantity:  quantity,
		Purchased: false,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = append(s.state.Items, item)
	s.state.Error = ""
	s.state.Version++
	return item
}

// EditItem applies patch to the item with id. Unknown ids are a no-op.
// The error is cleared either way. It reports whether an item was found.
func (s *Store) EditItem(id string, patch EditPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	if patch.Name == nil && patch.Quantity == nil {
		return true
	}
	if patch.Name != nil {
		s.state.Items[i].Name = *patch.Name
	}
	if patch.Quantity != nil {
		s.state.Items[i].Quantity = *patch.Quantity
	}
	s.state.Version++
	return true
}

// DeleteItem removes the item with id and clears the error.
func (s *Store) DeleteItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	items := make([]model.ShoppingItem, 0, len(s.state.Items)-1)
	items = append(items, s.state.Items[:i]...)
	items = append(items, s.state.Items[i+1:]...)
	s.state.Items = items
	s.state.Version++
	return true
}

// TogglePurchased flips the purchased flag of the item with id.
// Unlike the other mutations it leaves the error untouched, so a pending
// save failure stays visible while the user checks items off.
func (s *Store) TogglePurchased(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.state.Items[i].Purchased = !s.state.Items[i].Purchased
	s.state.Version++
	return true
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	s.mu.Unlock()
}

func (s *Store) SetError(message string) {
	s.mu.Lock()
	s.state.Error = message
	s.mu.Unlock()
}

func (s *Store) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

// indexOf returns the position of the first item with id, or -1. Callers hold mu.
func (s *Store) indexOf(id string) int {
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			return i
		}
	}
	return -1
}
