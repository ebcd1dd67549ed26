// Package bus implements the in-process publish/subscribe channel that
// keeps independently mounted components consistent. Delivery is
// synchronous; events addressed to a component that has not registered yet
// are queued until it does.
package bus

import (
	"fmt"
	"sync"

	"go.trai.ch/pantry/internal/core/ports"
)

// Event names a bus channel.
type Event string

// Handler receives an event payload.
type Handler func(payload any)

// pendingRequest is an event held for a target component that is not ready
// yet. It is delivered exactly once, when the target registers.
type pendingRequest struct {
	event   Event
	payload any
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus is the event channel. Construct instances explicitly; there is no
// package-level bus.
type Bus struct {
	mu          sync.Mutex
	subscribers map[Event][]subscriber
	ready       map[string]bool
	pending     map[string][]pendingRequest
	pendingCap  int
	nextID      uint64
	logger      ports.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithPendingCap bounds the pending queue per target component. When the
// queue is full the oldest request is dropped and a warning is logged.
func WithPendingCap(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.pendingCap = n
		}
	}
}

// WithLogger injects the logger used for dropped pending requests.
func WithLogger(logger ports.Logger) Option {
	return func(b *Bus) { b.logger = logger }
}

// defaultPendingCap bounds per-target queues when not configured.
const defaultPendingCap = 32

// New creates an empty Bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		subscribers: make(map[Event][]subscriber),
		ready:       make(map[string]bool),
		pending:     make(map[string][]pendingRequest),
		pendingCap:  defaultPendingCap,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// On subscribes handler to event and returns the unsubscribe function.
// Handlers for one event fire in subscription order.
func (b *Bus) On(event Event, handler Handler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subscribers[event] = append(b.subscribers[event], subscriber{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subscribers[event]
		for i, s := range subs {
			if s.id == id {
				b.subscribers[event] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Emit invokes every current subscriber for event synchronously, in
// subscription order. Subscribers added or removed during emission do not
// affect the in-flight delivery pass.
func (b *Bus) Emit(event Event, payload any) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subscribers[event]))
	copy(subs, b.subscribers[event])
	b.mu.Unlock()

	for _, s := range subs {
		s.handler(payload)
	}
}

// Request emits the event unless targetComponentID names a component that
// is not ready yet, in which case the event is queued and delivered when
// the target registers. An empty target behaves like Emit.
func (b *Bus) Request(event Event, payload any, targetComponentID string) {
	if targetComponentID == "" {
		b.Emit(event, payload)
		return
	}

	b.mu.Lock()
	if b.ready[targetComponentID] {
		b.mu.Unlock()
		b.Emit(event, payload)
		return
	}

	queue := b.pending[targetComponentID]
	if len(queue) >= b.pendingCap {
		// Bounded queue: drop the oldest request rather than grow without
		// limit for a target that may never mount.
		queue = queue[1:]
		if b.logger != nil {
			b.logger.Warn(fmt.Sprintf("pending queue full for component %q, dropping oldest request", targetComponentID))
		}
	}
	b.pending[targetComponentID] = append(queue, pendingRequest{event: event, payload: payload})
	b.mu.Unlock()
}

// RegisterComponent marks id ready, announces it, then flushes every
// pending request addressed to id in enqueue order.
func (b *Bus) RegisterComponent(id string) {
	b.mu.Lock()
	b.ready[id] = true
	queued := b.pending[id]
	delete(b.pending, id)
	b.mu.Unlock()

	b.Emit(EventComponentReady, ComponentReadyPayload{ComponentID: id})

	for _, req := range queued {
		b.Emit(req.event, req.payload)
	}
}

// UnregisterComponent marks id not ready. Requests already delivered are
// unaffected; future Requests targeting id queue again.
func (b *Bus) UnregisterComponent(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.ready, id)
}

// RemoveTarget unregisters id and drains any requests still queued for it.
// Use on permanent unmount so undeliverable requests do not linger.
func (b *Bus) RemoveTarget(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.ready, id)
	delete(b.pending, id)
}

// IsReady reports whether a component has registered.
func (b *Bus) IsReady(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready[id]
}

// Reset clears all subscribers, ready state, and pending queues. For test
// isolation.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = make(map[Event][]subscriber)
	b.ready = make(map[string]bool)
	b.pending = make(map[string][]pendingRequest)
}
