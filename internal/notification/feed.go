// Package notification keeps short-lived user notifications (toasts).
package notification

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Kind is the visual category of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is a single toast.
type Notification struct {
	ID        string
	Kind      Kind
	Message   string
	CreatedAt time.Time
}

// Notifier is what the use case publishes to.
type Notifier interface {
	Push(kind Kind, message string) Notification
}

// Feed holds notifications until they expire or are pushed out by newer ones.
type Feed struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, Notification]
}

// NewFeed keeps at most capacity notifications, each for ttl.
func NewFeed(capacity int, ttl time.Duration) *Feed {
	return &Feed{
		entries: expirable.NewLRU[string, Notification](capacity, nil, ttl),
	}
}

func (f *Feed) Push(kind Kind, message string) Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}
	f.entries.Add(n.ID, n)
	return n
}

// Active returns unexpired notifications, oldest first.
func (f *Feed) Active() []Notification {
	f.mu.Lock()
	values := f.entries.Values()
	f.mu.Unlock()

	// Values leaves zero entries in place of expired ones that are not purged yet.
	out := make([]Notification, 0, len(values))
	for _, n := range values {
		if n.ID != "" {
			out = append(out, n)
		}
	}
	// Values is oldest-first by insertion already; the sort only matters for equal stamps
	// coming from different goroutines.
	slices.SortStableFunc(out, func(a, b Notification) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

// Dismiss removes a notification before it expires.
func (f *Feed) Dismiss(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries.Remove(id)
}
