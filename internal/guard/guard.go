// Package guard wraps remote reads and live subscriptions with a
// first-response timeout. The timer fires exactly once if no data arrives in
// time, and is defused exactly once when data does arrive; a single settled
// flag decides the race between the two paths.
package guard

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// WithTimeout races op against a timer. If the timer wins, the returned
// error is a timeout naming label and the elapsed seconds; op's eventual
// result is discarded, never applied.
func WithTimeout[T any](ctx context.Context, timeout time.Duration, label string, op func(context.Context) (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}

	// Buffered so a late op result never blocks its goroutine.
	done := make(chan result, 1)
	go func() {
		value, err := op(ctx)
		done <- result{value: value, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-timer.C:
		return zero, timeoutError(label, timeout)
	}
}

// Source opens a live subscription, delivering snapshots to onData and a
// terminal failure to onError. It matches the subscribe methods of
// ports.ListStore.
type Source[T any] func(onData func(T), onError func(error)) (ports.Unsubscribe, error)

// SubscribeWithTimeout opens source and starts a first-snapshot timer.
//
// If a snapshot arrives before the timer fires, the timer is cancelled and
// never fires again for this handle, however long later snapshots take. If
// the timer fires first, onError is invoked exactly once with a timeout
// error and the subscription is torn down. If subscribing fails to
// establish, the timer is cancelled and onError receives that failure.
//
// The returned teardown cancels the timer and unsubscribes; calling it
// twice is a no-op.
func SubscribeWithTimeout[T any](source Source[T], onData func(T), onError func(error), initialTimeout time.Duration, label string) ports.Unsubscribe {
	h := &handle{}

	h.timer = time.AfterFunc(initialTimeout, func() {
		h.mu.Lock()
		if h.settled {
			h.mu.Unlock()
			return
		}
		h.settled = true
		h.torn = true
		unsub := h.unsub
		h.mu.Unlock()

		if unsub != nil {
			unsub()
		}
		onError(timeoutError(label, initialTimeout))
	})

	wrappedData := func(snapshot T) {
		h.mu.Lock()
		if h.torn {
			// Timer already fired or caller tore down; late snapshots are
			// discarded, never applied.
			h.mu.Unlock()
			return
		}
		if !h.settled {
			h.settled = true
			h.timer.Stop()
		}
		h.mu.Unlock()

		onData(snapshot)
	}

	wrappedError := func(err error) {
		h.mu.Lock()
		if h.torn {
			h.mu.Unlock()
			return
		}
		h.settled = true
		h.torn = true
		h.timer.Stop()
		unsub := h.unsub
		h.mu.Unlock()

		if unsub != nil {
			unsub()
		}
		onError(err)
	}

	unsub, err := source(wrappedData, wrappedError)
	if err != nil {
		h.mu.Lock()
		alreadySettled := h.settled
		h.settled = true
		h.torn = true
		h.timer.Stop()
		h.mu.Unlock()

		if !alreadySettled {
			onError(zerr.With(zerr.Wrap(err, domain.ErrSubscribeFailed.Error()), "subscription", label))
		}
		return func() {}
	}

	h.mu.Lock()
	h.unsub = unsub
	torn := h.torn
	h.mu.Unlock()
	if torn {
		// Timer fired while the subscription was being established.
		unsub()
	}

	return h.teardown
}

// handle carries the timer state for one guarded subscription.
type handle struct {
	mu      sync.Mutex
	settled bool // first snapshot arrived, or timer fired
	torn    bool // subscription is (being) torn down
	timer   *time.Timer
	unsub   ports.Unsubscribe
}

func (h *handle) teardown() {
	h.mu.Lock()
	if h.torn {
		h.mu.Unlock()
		return
	}
	h.settled = true
	h.torn = true
	h.timer.Stop()
	unsub := h.unsub
	h.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func timeoutError(label string, timeout time.Duration) error {
	return zerr.With(zerr.With(domain.ErrLoadTimeout, "operation", label), "seconds", timeout.Seconds())
}
