package ports

import (
	"context"

	"go.trai.ch/pantry/internal/core/domain"
)

// Unsubscribe tears down a live subscription. Implementations must make it
// safe to call more than once.
type Unsubscribe func()

// ListStore is the remote document store surface for lists and their items.
// The store delivers eventually consistent snapshots; subscription callbacks
// fire on the store's own goroutines, once per delivered snapshot. Ordering
// across separate subscriptions is not guaranteed.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ListStore interface {
	// GetList reads the list document once. The sync controller watches the
	// document via SubscribeList instead; the one-shot form is here for
	// collaborators that need a read without holding a subscription open.
	GetList(ctx context.Context, ownerID, listID string) (*domain.List, error)

	// TouchList sets the list's UpdatedAt to the server timestamp.
	TouchList(ctx context.Context, ownerID, listID string) error

	// SubscribeList opens a live subscription to the list document.
	SubscribeList(ownerID, listID string, onSnapshot func(domain.List), onError func(error)) (Unsubscribe, error)

	// SubscribeItems opens a live subscription to the list's items, ordered
	// by creation time descending.
	SubscribeItems(ownerID, listID string, onSnapshot func([]domain.ListItem), onError func(error)) (Unsubscribe, error)

	// AddItem creates an item and returns its assigned id.
	AddItem(ctx context.Context, ownerID, listID string, item domain.ListItem) (string, error)

	// UpdateItem replaces the stored item identified by item.ID.
	UpdateItem(ctx context.Context, ownerID, listID string, item domain.ListItem) error

	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, ownerID, listID, itemID string) error

	// BatchUpdateItems writes all items atomically: either every write is
	// applied or none is. Bulk mark/unmark deliberately does not use it —
	// those fire independent per-item writes and accept partial success —
	// so the atomic form is here for collaborators that need all-or-nothing.
	BatchUpdateItems(ctx context.Context, ownerID, listID string, items []domain.ListItem) error
}

// GroupStore reads group documents and their membership.
type GroupStore interface {
	GetGroup(ctx context.Context, groupID string) (*domain.Group, error)
	GetMembers(ctx context.Context, groupID string) ([]domain.Member, error)
}

// CategoryStore reads and writes a group's custom categories per list type.
type CategoryStore interface {
	ListCategories(ctx context.Context, groupID string, listType domain.ListType) ([]domain.Category, error)
	CreateCategory(ctx context.Context, groupID string, listType domain.ListType, category domain.Category) (string, error)
}

// ProductStore is the shared product catalog of a group.
type ProductStore interface {
	// FindProduct looks up a catalog entry by normalized name.
	// Returns nil, nil when no entry matches.
	FindProduct(ctx context.Context, groupID, normalizedName string) (*domain.Product, error)

	// CreateProduct creates a catalog entry and returns its assigned id.
	CreateProduct(ctx context.Context, product domain.Product) (string, error)

	// TouchProduct increments the usage counter and stamps LastUsedAt.
	TouchProduct(ctx context.Context, productID string) error
}
