// Package config loads the sync layer's tunables from an optional YAML
// file: cache TTL table, subscription timeout budgets, event bus queue cap,
// and the durable storage location. Every field has a built-in default; a
// missing file is not an error.
package config

import "time"

// Settings is the resolved configuration.
type Settings struct {
	// StorageDir is the directory backing the durable storage tier.
	StorageDir string

	// Namespaces overrides the cache TTL table. Keyed by namespace name.
	Namespaces map[string]NamespaceSetting

	// ItemsTimeout is the first-snapshot budget for the item subscription.
	// Deliberately longer than membership lookups: it covers first paint.
	ItemsTimeout time.Duration

	// ListTimeout is the first-snapshot budget for list document and
	// membership reads.
	ListTimeout time.Duration

	// PendingQueueCap bounds the event bus pending queue per target.
	PendingQueueCap int

	// DebounceWindow coalesces external storage change notifications.
	DebounceWindow time.Duration
}

// NamespaceSetting is one namespace's cache policy.
type NamespaceSetting struct {
	// TTL is the entry lifetime; zero means the entry never expires.
	TTL time.Duration
	// Tier is "memory", "session", or "durable".
	Tier string
}

// Defaults mirrored from the built-in tables.
const (
	DefaultItemsTimeout   = 10 * time.Second
	DefaultListTimeout    = 5 * time.Second
	DefaultPendingCap     = 32
	DefaultDebounceWindow = 250 * time.Millisecond
)
