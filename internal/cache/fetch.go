package cache

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Equaler lets non-serializable values opt into stale-while-revalidate
// change detection with an explicit comparison.
type Equaler interface {
	Equal(other any) bool
}

// Value reads a typed value from the store. Entries rehydrated from a
// storage tier come back as json.RawMessage and are decoded into T here;
// in-memory entries are type-asserted directly.
func Value[T any](s *Store, namespace, id string) (T, bool) {
	var zero T

	data := s.Get(namespace, id)
	if data == nil {
		return zero, false
	}

	if v, ok := data.(T); ok {
		return v, true
	}
	if raw, ok := data.(json.RawMessage); ok {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			s.warn(zerr.Wrap(err, "cached value decode failed"))
			return zero, false
		}
		return v, true
	}
	return zero, false
}

// GetOrFetch returns the cached value if present and valid; otherwise it
// invokes fetch, stores a non-nil result, and returns it. Concurrent callers
// for the same key are not coalesced: both may invoke fetch.
func GetOrFetch[T any](ctx context.Context, s *Store, namespace, id string, fetch func(context.Context) (T, error), opts ...SetOptions) (T, error) {
	if v, ok := Value[T](s, namespace, id); ok {
		return v, nil
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if !isNil(v) {
		s.Set(namespace, v, id, opts...)
	}
	return v, nil
}

// GetStaleWhileRevalidate returns the currently cached value (ok reports
// whether one exists) immediately, then refreshes in the background. When
// the fresh value differs from what was cached at call time, it is stored
// and onUpdate is invoked once. Fetch failures are logged, never surfaced,
// and never invoke onUpdate.
func GetStaleWhileRevalidate[T any](ctx context.Context, s *Store, namespace, id string, fetch func(context.Context) (T, error), onUpdate func(T), opts ...SetOptions) (T, bool) {
	cached, ok := Value[T](s, namespace, id)
	cachedFP, cachedFPOK := fingerprint(cached)

	go func() {
		fresh, err := fetch(ctx)
		if err != nil {
			s.warn(zerr.With(zerr.Wrap(err, "background refresh failed"), "namespace", namespace))
			return
		}
		if isNil(fresh) {
			return
		}
		s.Set(namespace, fresh, id, opts...)

		if ok && equalValues(cached, cachedFP, cachedFPOK, fresh) {
			return
		}
		if onUpdate != nil {
			onUpdate(fresh)
		}
	}()

	return cached, ok
}

// fingerprint hashes the canonical JSON form of a value. The bool is false
// when the value cannot be serialized.
func fingerprint(v any) (uint64, bool) {
	raw, err := json.Marshal(v)
	if err != nil {
		return 0, false
	}
	return xxhash.Sum64(raw), true
}

// equalValues compares a cached value against a fresh one, preferring the
// serialized fingerprint and falling back to an explicit Equal method.
// Values supporting neither are treated as changed.
func equalValues(cached any, cachedFP uint64, cachedFPOK bool, fresh any) bool {
	if cachedFPOK {
		if freshFP, ok := fingerprint(fresh); ok {
			return cachedFP == freshFP
		}
	}
	if eq, ok := cached.(Equaler); ok {
		return eq.Equal(fresh)
	}
	return false
}

// isNil reports whether v is nil or a typed nil pointer/slice/map, which
// must not be stored ("only if non-null").
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
