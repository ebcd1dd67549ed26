// Package storage implements the cache storage tiers: a process-memory tier
// used for session-scoped data and a durable file-backed tier.
package storage

import (
	"strings"
	"sync"

	"go.trai.ch/pantry/internal/core/ports"
)

var _ ports.StorageTier = (*MemoryTier)(nil)

// MemoryTier is an in-process key/value tier. A fresh instance backs each
// session; discarding the instance discards the session's data.
type MemoryTier struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryTier creates an empty memory tier.
func NewMemoryTier() *MemoryTier {
	return &MemoryTier{entries: make(map[string][]byte)}
}

// Read returns the stored bytes for key.
func (t *MemoryTier) Read(key string) ([]byte, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	data, ok := t.entries[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored value.
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Write stores the bytes under key.
func (t *MemoryTier) Write(key string, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	t.entries[key] = stored
	return nil
}

// Delete removes the key.
func (t *MemoryTier) Delete(key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, key)
	return nil
}

// Keys returns every stored key with the given prefix.
func (t *MemoryTier) Keys(prefix string) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var keys []string
	for k := range t.entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Clear removes every key in the tier.
func (t *MemoryTier) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = make(map[string][]byte)
	return nil
}
