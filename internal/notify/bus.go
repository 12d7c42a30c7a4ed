// Package notify implements the transient notification bus feeding the UI
// shell: short-lived messages that auto-dismiss after a fixed display
// duration. Nothing here is persisted; a restart starts with an empty bus.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Valid reports whether the kind is one of the closed set.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindInfo, KindWarning:
		return true
	default:
		return false
	}
}

// Notification is a single transient message.
type Notification struct {
	ID        string
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

// Handle identifies a published notification for early dismissal.
type Handle string

// DefaultDisplayDuration is how long a notification stays active unless
// dismissed early.
const DefaultDisplayDuration = 4 * time.Second

// Bus holds the ordered sequence of active notifications. Each notification
// expires on its own timer measured from publish time; there is no global
// sweep. Publishing the same message twice yields two independent entries.
type Bus struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	active []Notification
	timers map[Handle]*time.Timer
	subs   map[int]func([]Notification)
	nextID int
	closed bool
}

// Option configures a Bus.
type Option func(*Bus)

// WithDisplayDuration overrides the per-notification expiry.
func WithDisplayDuration(d time.Duration) Option {
	return func(b *Bus) {
		if d > 0 {
			b.ttl = d
		}
	}
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Bus) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBus creates an empty notification bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		ttl:    DefaultDisplayDuration,
		now:    time.Now,
		timers: make(map[Handle]*time.Timer),
		subs:   make(map[int]func([]Notification)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish appends a notification and schedules its expiry. Invalid kinds
// collapse to info rather than failing; a toast is never worth an error.
func (b *Bus) Publish(message string, kind Kind) Handle {
	if !kind.Valid() {
		kind = KindInfo
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ""
	}

	n := Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      kind,
		CreatedAt: b.now(),
	}
	handle := Handle(n.ID)
	b.active = append(b.active, n)
	b.timers[handle] = time.AfterFunc(b.ttl, func() {
		b.Dismiss(handle)
	})
	snapshot := b.snapshotLocked()
	subs := b.subscribersLocked()
	b.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return handle
}

// Dismiss removes a notification before its timer fires. Dismissing an
// unknown or already-expired handle is a no-op.
func (b *Bus) Dismiss(handle Handle) {
	b.mu.Lock()
	timer, ok := b.timers[handle]
	if !ok {
		b.mu.Unlock()
		return
	}
	timer.Stop()
	delete(b.timers, handle)
	for i, n := range b.active {
		if Handle(n.ID) == handle {
			b.active = append(b.active[:i], b.active[i+1:]...)
			break
		}
	}
	snapshot := b.snapshotLocked()
	subs := b.subscribersLocked()
	b.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Active returns a copy of the active notifications in publish order.
func (b *Bus) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// Subscribe registers a callback invoked with the active set after every
// change. The returned function unsubscribes.
func (b *Bus) Subscribe(fn func(active []Notification)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Close stops all pending expiry timers and drops the active set. The bus is
// unusable afterwards; it exists for orderly shutdown.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for handle, timer := range b.timers {
		timer.Stop()
		delete(b.timers, handle)
	}
	b.active = nil
	b.subs = make(map[int]func([]Notification))
}

func (b *Bus) snapshotLocked() []Notification {
	out := make([]Notification, len(b.active))
	copy(out, b.active)
	return out
}

func (b *Bus) subscribersLocked() []func([]Notification) {
	out := make([]func([]Notification), 0, len(b.subs))
	for _, fn := range b.subs {
		out = append(out, fn)
	}
	return out
}
