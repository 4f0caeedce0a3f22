// Package notify implements the console's toast queue: transient,
// dismissible messages raised by page actions. Callers receive the Center
// by injection and dispatch to it directly; there is no global alert
// channel to intercept.
package notify

import (
	"sync"
	"time"
)

// Variant classifies a notification for display.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
	VariantWarning Variant = "warning"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3500 * time.Millisecond

// Notification is one queued toast.
type Notification struct {
	// ID is a monotonically increasing identifier, unique per Center.
	ID int64 `json:"id"`
	// Message is the user-visible text.
	Message string `json:"message"`
	// Variant selects the display style.
	Variant Variant `json:"variant"`
	// ExpiresAt is when the notification leaves the queue.
	ExpiresAt time.Time `json:"-"`
}

// Center is an append-only queue of notifications with fixed-duration
// expiry. Insertion order is display order.
type Center struct {
	mu     sync.Mutex
	nextID int64
	items  []Notification
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Center.
type Option func(*Center)

// WithTTL overrides the display duration.
func WithTTL(ttl time.Duration) Option {
	return func(c *Center) { c.ttl = ttl }
}

// WithClock overrides the time source. Tests use this to expire
// notifications without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// NewCenter constructs a Center with the default TTL.
func NewCenter(opts ...Option) *Center {
	c := &Center{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Success queues a success toast.
func (c *Center) Success(message string) int64 { return c.push(VariantSuccess, message) }

// Error queues an error toast.
func (c *Center) Error(message string) int64 { return c.push(VariantError, message) }

// Info queues an informational toast.
func (c *Center) Info(message string) int64 { return c.push(VariantInfo, message) }

// Warning queues a warning toast.
func (c *Center) Warning(message string) int64 { return c.push(VariantWarning, message) }

func (c *Center) push(variant Variant, message string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.items = append(c.items, Notification{
		ID:        c.nextID,
		Message:   message,
		Variant:   variant,
		ExpiresAt: c.now().Add(c.ttl),
	})
	return c.nextID
}

// Active returns the not-yet-expired notifications in insertion order and
// prunes the expired ones from the queue.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	kept := c.items[:0]
	for _, n := range c.items {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	c.items = kept

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Dismiss removes a notification before its TTL elapses. Unknown ids are
// ignored.
func (c *Center) Dismiss(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
