// Package sync implements the list synchronization controller: it owns the
// live, reconciled working set for one open list and keeps it consistent
// with the remote store through guarded subscriptions, the tiered cache,
// and the event bus.
package sync

import (
	"context"
	"time"

	stdsync "sync"

	"go.trai.ch/pantry/internal/bus"
	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/pantry/internal/guard"
)

// Controller owns the view of one open list for one viewer. A controller
// holds at most one live item subscription per (owner, list) pair;
// re-opening the same pair is a no-op.
type Controller struct {
	lists      ports.ListStore
	groups     ports.GroupStore
	categories ports.CategoryStore
	products   ports.ProductStore
	cache      *cache.Store
	bus        *bus.Bus
	durable    ports.StorageTier
	logger     ports.Logger

	itemsTimeout time.Duration
	listTimeout  time.Duration

	mu          stdsync.Mutex
	ownerID     string
	listID      string
	list        *domain.List
	items       []domain.ListItem
	members     []domain.Member
	cats        []domain.Category
	prefs       domain.ListViewPreferences
	loadingPref bool
	loadErr     error
	listUnsub   ports.Unsubscribe
	itemsUnsub  ports.Unsubscribe
	busOff      func()
	onChange    func(Snapshot)

	// catGroupID/catListType track the (group, list type) the loaded
	// categories belong to, so reloads only happen on change.
	catGroupID   string
	catListType  domain.ListType
	catsResolved bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimeouts overrides the first-snapshot budgets. Items get a longer
// budget than membership lookups: they cover first paint.
func WithTimeouts(items, list time.Duration) Option {
	return func(c *Controller) {
		if items > 0 {
			c.itemsTimeout = items
		}
		if list > 0 {
			c.listTimeout = list
		}
	}
}

// Default first-snapshot budgets.
const (
	DefaultItemsTimeout = 10 * time.Second
	DefaultListTimeout  = 5 * time.Second
)

// New creates a Controller over the given collaborators. The durable tier
// persists view preferences and the current-group marker.
func New(
	lists ports.ListStore,
	groups ports.GroupStore,
	categories ports.CategoryStore,
	products ports.ProductStore,
	cacheStore *cache.Store,
	eventBus *bus.Bus,
	durable ports.StorageTier,
	logger ports.Logger,
	opts ...Option,
) *Controller {
	c := &Controller{
		lists:        lists,
		groups:       groups,
		categories:   categories,
		products:     products,
		cache:        cacheStore,
		bus:          eventBus,
		durable:      durable,
		logger:       logger,
		itemsTimeout: DefaultItemsTimeout,
		listTimeout:  DefaultListTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Group switches elsewhere in the app invalidate group-scoped caches so
	// the next member resolution sees fresh data.
	if eventBus != nil {
		c.busOff = eventBus.On(bus.EventGroupChanged, func(any) {
			c.cache.InvalidateNamespace(cache.NamespaceGroup)
			c.cache.InvalidateNamespace(cache.NamespaceMembership)
		})
	}
	return c
}

// SetOnChange installs the callback invoked with a fresh Snapshot after
// every reconciled state change. Must be set before Open.
func (c *Controller) SetOnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Open switches the controller to the given (owner, list) pair. Previous
// subscriptions are torn down first; re-entering with an unchanged pair
// while subscribed is a no-op.
func (c *Controller) Open(ctx context.Context, ownerID, listID string) error {
	c.mu.Lock()
	if c.ownerID == ownerID && c.listID == listID && c.itemsUnsub != nil {
		c.mu.Unlock()
		return nil
	}
	c.teardownLocked()
	c.ownerID = ownerID
	c.listID = listID
	c.list = nil
	c.items = nil
	c.members = nil
	c.cats = nil
	c.catsResolved = false
	c.catGroupID = ""
	c.catListType = ""
	c.loadErr = nil
	c.mu.Unlock()

	c.loadPreferences(listID)
	return c.subscribe(ctx, ownerID, listID)
}

// subscribe opens the guarded list-document and item subscriptions for the
// pair. Both callbacks run on store goroutines.
func (c *Controller) subscribe(ctx context.Context, ownerID, listID string) error {
	listUnsub := guard.SubscribeWithTimeout(
		func(onData func(domain.List), onError func(error)) (ports.Unsubscribe, error) {
			return c.lists.SubscribeList(ownerID, listID, onData, onError)
		},
		func(list domain.List) { c.handleListSnapshot(ctx, list) },
		func(err error) { c.handleListError(err) },
		c.listTimeout,
		"list document",
	)

	itemsUnsub := guard.SubscribeWithTimeout(
		func(onData func([]domain.ListItem), onError func(error)) (ports.Unsubscribe, error) {
			return c.lists.SubscribeItems(ownerID, listID, onData, onError)
		},
		func(items []domain.ListItem) { c.handleItemsSnapshot(items) },
		func(err error) { c.handleItemsError(err) },
		c.itemsTimeout,
		"list items",
	)

	c.mu.Lock()
	if c.ownerID != ownerID || c.listID != listID {
		// The pair changed while we were subscribing; drop these handles.
		c.mu.Unlock()
		listUnsub()
		itemsUnsub()
		return nil
	}
	c.listUnsub = listUnsub
	c.itemsUnsub = itemsUnsub
	c.mu.Unlock()
	return nil
}

// Retry re-opens the subscriptions after a retryable load failure. It is a
// no-op when no failure is pending.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	if c.loadErr == nil {
		c.mu.Unlock()
		return nil
	}
	ownerID, listID := c.ownerID, c.listID
	c.teardownLocked()
	c.ownerID = ownerID
	c.listID = listID
	c.loadErr = nil
	c.mu.Unlock()

	return c.subscribe(ctx, ownerID, listID)
}

// Close tears down all subscriptions and timers. Idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	c.teardownLocked()
	c.ownerID = ""
	c.listID = ""
	off := c.busOff
	c.busOff = nil
	c.mu.Unlock()

	if off != nil {
		off()
	}
}

// teardownLocked releases the subscription handles. Callers hold c.mu.
func (c *Controller) teardownLocked() {
	if c.listUnsub != nil {
		c.listUnsub()
		c.listUnsub = nil
	}
	if c.itemsUnsub != nil {
		c.itemsUnsub()
		c.itemsUnsub = nil
	}
}

// handleListSnapshot reacts to a list-document update: member resolution
// runs on every update (membership is deliberately not cached here), and
// categories reload when the (group, list type) pair changed.
func (c *Controller) handleListSnapshot(ctx context.Context, list domain.List) {
	c.mu.Lock()
	l := list
	c.list = &l
	groupID := ""
	if len(list.SharedWith) > 0 {
		groupID = list.SharedWith[0]
	}
	reloadCats := !c.catsResolved || groupID != c.catGroupID || list.Type != c.catListType
	c.mu.Unlock()

	members := c.resolveMembers(ctx, list.SharedWith)
	c.mu.Lock()
	c.members = members
	c.mu.Unlock()

	if reloadCats {
		cats := c.loadCategories(ctx, groupID, list.Type)
		c.mu.Lock()
		c.cats = cats
		c.catGroupID = groupID
		c.catListType = list.Type
		c.catsResolved = true
		c.mu.Unlock()
	}

	c.notify()
}

func (c *Controller) handleListError(err error) {
	// A failed list-document load degrades member and category data to
	// defaults; it does not block the items from rendering.
	c.logger.Error(err)
	c.notify()
}

func (c *Controller) handleItemsSnapshot(items []domain.ListItem) {
	c.mu.Lock()
	c.items = items
	c.loadErr = nil
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) handleItemsError(err error) {
	c.mu.Lock()
	c.loadErr = err
	c.mu.Unlock()
	c.logger.Error(err)
	c.notify()
}

// LoadError returns the pending retryable load failure, if any.
func (c *Controller) LoadError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

func (c *Controller) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(c.Snapshot())
	}
}

// pair returns the open (owner, list) pair or ErrNoList.
func (c *Controller) pair() (string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listID == "" {
		return "", "", domain.ErrNoList
	}
	return c.ownerID, c.listID, nil
}
