// Package cache implements the tiered key/value cache backing the sync
// layer. Entries live in a process-memory tier and are mirrored to a
// session-scoped or durable storage tier per namespace; reads validate TTL
// and rehydrate the memory tier from storage on a miss.
package cache

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Tier selects which storage tier mirrors a namespace.
type Tier string

const (
	// TierMemory keeps entries in process memory only.
	TierMemory Tier = "memory"
	// TierSession mirrors entries to the session-scoped tier.
	TierSession Tier = "session"
	// TierDurable mirrors entries to the durable tier.
	TierDurable Tier = "durable"
)

// storageKeyPrefix namespaces cache entries inside the storage tiers, so
// clearing the cache never touches unrelated keys (view preferences, the
// current-group marker).
const storageKeyPrefix = "cache_"

// entry is one cached value. TTL zero means the entry never expires.
type entry struct {
	data      any
	timestamp time.Time
	ttl       time.Duration
}

// persistedEntry is the storage-tier form of an entry.
type persistedEntry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // unix ms
	TTL       int64           `json:"ttl"`       // ms, 0 = never expires
}

// Store is the tiered cache. Construct one per application (or per test);
// there is no package-level instance.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	namespaces map[string]NamespaceConfig
	defaults   NamespaceConfig
	session    ports.StorageTier
	durable    ports.StorageTier
	logger     ports.Logger
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNamespace sets the default TTL and storage tier for a namespace.
func WithNamespace(name string, cfg NamespaceConfig) Option {
	return func(s *Store) { s.namespaces[name] = cfg }
}

// WithSessionTier injects the session-scoped storage tier.
func WithSessionTier(tier ports.StorageTier) Option {
	return func(s *Store) { s.session = tier }
}

// WithDurableTier injects the durable storage tier.
func WithDurableTier(tier ports.StorageTier) Option {
	return func(s *Store) { s.durable = tier }
}

// WithLogger injects the logger used for swallowed storage failures.
func WithLogger(logger ports.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a Store with the built-in namespace table, applying opts on
// top.
func New(opts ...Option) *Store {
	s := &Store{
		entries:    make(map[string]entry),
		namespaces: defaultNamespaces(),
		defaults:   NamespaceConfig{TTL: DefaultTTL, Tier: TierMemory},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// key addresses an entry in the memory tier as namespace[:id].
func key(namespace, id string) string {
	if id == "" {
		return namespace
	}
	return namespace + ":" + id
}

// storageKey addresses an entry in a storage tier as cache_<ns>[_<id>].
func storageKey(namespace, id string) string {
	if id == "" {
		return storageKeyPrefix + namespace
	}
	return storageKeyPrefix + namespace + "_" + id
}

func (s *Store) config(namespace string) NamespaceConfig {
	if cfg, ok := s.namespaces[namespace]; ok {
		return cfg
	}
	return s.defaults
}

func (s *Store) tierFor(namespace string) ports.StorageTier {
	switch s.config(namespace).Tier {
	case TierSession:
		return s.session
	case TierDurable:
		return s.durable
	default:
		return nil
	}
}

func (s *Store) valid(e entry) bool {
	if e.ttl == 0 {
		return true
	}
	return s.now().Sub(e.timestamp) < e.ttl
}

// Get returns the cached value for namespace[:id], or nil on a miss.
// Expired entries are evicted and treated as a miss. A memory miss consults
// the namespace's storage tier and, on a valid hit, rehydrates the memory
// tier; rehydrated values are returned as json.RawMessage (see Value).
func (s *Store) Get(namespace, id string) any {
	k := key(namespace, id)

	s.mu.RLock()
	e, ok := s.entries[k]
	s.mu.RUnlock()

	if ok {
		if s.valid(e) {
			return e.data
		}
		s.evict(namespace, id)
		return nil
	}

	return s.rehydrate(namespace, id)
}

// rehydrate loads an entry from the namespace's storage tier into the
// memory tier.
func (s *Store) rehydrate(namespace, id string) any {
	tier := s.tierFor(namespace)
	if tier == nil {
		return nil
	}

	raw, ok, err := tier.Read(storageKey(namespace, id))
	if err != nil {
		s.warn(zerr.Wrap(err, "cache storage read failed"))
		return nil
	}
	if !ok {
		return nil
	}

	var p persistedEntry
	if err := json.Unmarshal(raw, &p); err != nil {
		s.warn(zerr.Wrap(err, "corrupt cache entry dropped"))
		_ = tier.Delete(storageKey(namespace, id))
		return nil
	}

	e := entry{
		data:      p.Data,
		timestamp: time.UnixMilli(p.Timestamp),
		ttl:       time.Duration(p.TTL) * time.Millisecond,
	}
	if !s.valid(e) {
		_ = tier.Delete(storageKey(namespace, id))
		return nil
	}

	s.mu.Lock()
	s.entries[key(namespace, id)] = e
	s.mu.Unlock()

	return e.data
}

// SetOptions overrides the namespace defaults for one write.
type SetOptions struct {
	// TTL overrides the namespace TTL. Use NeverExpires for no expiry.
	TTL time.Duration
	// Tier overrides the namespace storage tier.
	Tier Tier
}

// Set writes a value. The memory tier is always written; the namespace's
// storage tier is mirrored unless it is memory-only. Storage failures are
// swallowed and logged, the memory write always succeeds.
func (s *Store) Set(namespace string, data any, id string, opts ...SetOptions) {
	cfg := s.config(namespace)
	ttl := cfg.TTL
	tier := s.tierFor(namespace)
	if len(opts) > 0 {
		if opts[0].TTL != 0 {
			ttl = opts[0].TTL
		}
		if opts[0].Tier != "" {
			switch opts[0].Tier {
			case TierSession:
				tier = s.session
			case TierDurable:
				tier = s.durable
			default:
				tier = nil
			}
		}
	}
	if ttl == NeverExpires {
		ttl = 0
	}

	now := s.now()

	s.mu.Lock()
	s.entries[key(namespace, id)] = entry{data: data, timestamp: now, ttl: ttl}
	s.mu.Unlock()

	if tier == nil {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		s.warn(zerr.With(zerr.Wrap(err, "cache value not serializable, kept in memory only"), "namespace", namespace))
		return
	}
	p := persistedEntry{Data: raw, Timestamp: now.UnixMilli(), TTL: ttl.Milliseconds()}
	buf, err := json.Marshal(p)
	if err != nil {
		s.warn(zerr.Wrap(err, "cache entry marshal failed"))
		return
	}
	if err := tier.Write(storageKey(namespace, id), buf); err != nil {
		s.warn(zerr.Wrap(err, "cache storage write failed"))
	}
}

// Invalidate removes one entry from all tiers.
func (s *Store) Invalidate(namespace, id string) {
	s.evict(namespace, id)
}

func (s *Store) evict(namespace, id string) {
	s.mu.Lock()
	delete(s.entries, key(namespace, id))
	s.mu.Unlock()

	if tier := s.tierFor(namespace); tier != nil {
		if err := tier.Delete(storageKey(namespace, id)); err != nil {
			s.warn(zerr.Wrap(err, "cache storage delete failed"))
		}
	}
}

// InvalidateNamespace removes every entry in the namespace, across all
// tiers.
func (s *Store) InvalidateNamespace(namespace string) {
	s.mu.Lock()
	for k := range s.entries {
		if k == namespace || strings.HasPrefix(k, namespace+":") {
			delete(s.entries, k)
		}
	}
	s.mu.Unlock()

	tier := s.tierFor(namespace)
	if tier == nil {
		return
	}
	keys, err := tier.Keys(storageKeyPrefix + namespace)
	if err != nil {
		s.warn(zerr.Wrap(err, "cache storage key scan failed"))
		return
	}
	exact := storageKeyPrefix + namespace
	for _, k := range keys {
		if k == exact || strings.HasPrefix(k, exact+"_") {
			if err := tier.Delete(k); err != nil {
				s.warn(zerr.Wrap(err, "cache storage delete failed"))
			}
		}
	}
}

// InvalidateExternal drops memory-tier copies of entries whose storage keys
// changed underneath us (another process wrote the shared cache directory).
// Keys are storage-tier keys, cache_<ns>[_<id>].
func (s *Store) InvalidateExternal(storageKeys []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sk := range storageKeys {
		trimmed, ok := strings.CutPrefix(sk, storageKeyPrefix)
		if !ok {
			continue
		}
		// The first segment is the namespace, the rest is the id.
		ns, id, hasID := strings.Cut(trimmed, "_")
		if hasID {
			delete(s.entries, key(ns, id))
		} else {
			delete(s.entries, ns)
		}
	}
}

// ClearAll removes every entry the store is aware of, across all tiers.
// Used on sign-out.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()

	for _, tier := range []ports.StorageTier{s.session, s.durable} {
		if tier == nil {
			continue
		}
		keys, err := tier.Keys(storageKeyPrefix)
		if err != nil {
			s.warn(zerr.Wrap(err, "cache storage key scan failed"))
			continue
		}
		for _, k := range keys {
			if err := tier.Delete(k); err != nil {
				s.warn(zerr.Wrap(err, "cache storage delete failed"))
			}
		}
	}
}

func (s *Store) warn(err error) {
	if s.logger != nil {
		s.logger.Error(err)
	}
}
