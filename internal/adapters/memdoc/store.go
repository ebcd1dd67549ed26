// Package memdoc implements the remote store ports in process memory with
// live fan-out subscriptions. It backs the demo command and tests; the real
// remote document database sits behind the same ports.
package memdoc

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ListStore     = (*Store)(nil)
	_ ports.GroupStore    = (*Store)(nil)
	_ ports.CategoryStore = (*Store)(nil)
	_ ports.ProductStore  = (*Store)(nil)
)

// listKey addresses one list document.
type listKey struct {
	ownerID string
	listID  string
}

// listDoc is a list document plus its item collection.
type listDoc struct {
	meta  domain.List
	items map[string]domain.ListItem
}

type listSubscriber struct {
	onSnapshot func(domain.List)
}

type itemSubscriber struct {
	onSnapshot func([]domain.ListItem)
}

// Store holds all documents. Writes are last-writer-wins; every write
// notifies the affected subscriptions asynchronously, mirroring an
// eventually consistent remote store.
type Store struct {
	mu         sync.RWMutex
	lists      map[listKey]*listDoc
	groups     map[string]domain.Group
	categories map[string][]domain.Category // groupID + "|" + listType
	products   map[string]domain.Product

	nextSubID uint64
	listSubs  map[listKey]map[uint64]listSubscriber
	itemSubs  map[listKey]map[uint64]itemSubscriber

	now func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		lists:      make(map[listKey]*listDoc),
		groups:     make(map[string]domain.Group),
		categories: make(map[string][]domain.Category),
		products:   make(map[string]domain.Product),
		listSubs:   make(map[listKey]map[uint64]listSubscriber),
		itemSubs:   make(map[listKey]map[uint64]itemSubscriber),
		now:        time.Now,
	}
}

// SeedGroup installs a group document. For demo and test setup.
func (s *Store) SeedGroup(group domain.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[group.ID] = group
}

// SeedList installs a list document. For demo and test setup.
func (s *Store) SeedList(list domain.List) {
	s.mu.Lock()
	key := listKey{ownerID: list.OwnerID, listID: list.ID}
	doc, ok := s.lists[key]
	if !ok {
		doc = &listDoc{items: make(map[string]domain.ListItem)}
		s.lists[key] = doc
	}
	doc.meta = list
	s.mu.Unlock()

	s.notifyList(key)
}

// SeedCategories installs custom categories for a group and list type.
func (s *Store) SeedCategories(groupID string, listType domain.ListType, categories []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[categoryKey(groupID, listType)] = categories
}

func categoryKey(groupID string, listType domain.ListType) string {
	return groupID + "|" + string(listType)
}

// GetList reads the list document once.
func (s *Store) GetList(_ context.Context, ownerID, listID string) (*domain.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.lists[listKey{ownerID: ownerID, listID: listID}]
	if !ok {
		return nil, zerr.With(domain.ErrNotFound, "list", listID)
	}
	meta := doc.meta
	return &meta, nil
}

// TouchList stamps the list's UpdatedAt with the server time.
func (s *Store) TouchList(_ context.Context, ownerID, listID string) error {
	key := listKey{ownerID: ownerID, listID: listID}

	s.mu.Lock()
	doc, ok := s.lists[key]
	if !ok {
		s.mu.Unlock()
		return zerr.With(domain.ErrNotFound, "list", listID)
	}
	doc.meta.UpdatedAt = s.now()
	s.mu.Unlock()

	s.notifyList(key)
	return nil
}

// SubscribeList opens a live subscription to the list document. The current
// snapshot is delivered asynchronously right after subscribing.
func (s *Store) SubscribeList(ownerID, listID string, onSnapshot func(domain.List), onError func(error)) (ports.Unsubscribe, error) {
	key := listKey{ownerID: ownerID, listID: listID}

	s.mu.Lock()
	doc, ok := s.lists[key]
	if !ok {
		s.mu.Unlock()
		return nil, zerr.With(domain.ErrNotFound, "list", listID)
	}
	s.nextSubID++
	id := s.nextSubID
	if s.listSubs[key] == nil {
		s.listSubs[key] = make(map[uint64]listSubscriber)
	}
	s.listSubs[key][id] = listSubscriber{onSnapshot: onSnapshot}
	snapshot := doc.meta
	s.mu.Unlock()

	go onSnapshot(snapshot)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listSubs[key], id)
	}, nil
}

// SubscribeItems opens a live subscription to the item collection, ordered
// by creation time descending.
func (s *Store) SubscribeItems(ownerID, listID string, onSnapshot func([]domain.ListItem), onError func(error)) (ports.Unsubscribe, error) {
	key := listKey{ownerID: ownerID, listID: listID}

	s.mu.Lock()
	doc, ok := s.lists[key]
	if !ok {
		s.mu.Unlock()
		return nil, zerr.With(domain.ErrNotFound, "list", listID)
	}
	s.nextSubID++
	id := s.nextSubID
	if s.itemSubs[key] == nil {
		s.itemSubs[key] = make(map[uint64]itemSubscriber)
	}
	s.itemSubs[key][id] = itemSubscriber{onSnapshot: onSnapshot}
	snapshot := itemsSnapshot(doc)
	s.mu.Unlock()

	go onSnapshot(snapshot)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.itemSubs[key], id)
	}, nil
}

// AddItem creates an item and returns its assigned id.
func (s *Store) AddItem(_ context.Context, ownerID, listID string, item domain.ListItem) (string, error) {
	key := listKey{ownerID: ownerID, listID: listID}

	s.mu.Lock()
	doc, ok := s.lists[key]
	if !ok {
		s.mu.Unlock()
		return "", zerr.With(domain.ErrNotFound, "list", listID)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := s.now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	doc.items[item.ID] = item
	s.mu.Unlock()

	s.notifyItems(key)
	return item.ID, nil
}

// UpdateItem replaces the stored item. Last writer wins.
func (s *Store) UpdateItem(_ context.Context, ownerID, listID string, item domain.ListItem) error {
	key := listKey{ownerID: ownerID, listID: listID}

	s.mu.Lock()
	doc, ok := s.lists[key]
	if !ok {
		s.mu.Unlock()
		return zerr.With(domain.ErrNotFound, "list", listID)
	}
	stored, ok := doc.items[item.ID]
	if !ok {
		s.mu.Unlock()
		return zerr.With(domain.ErrItemNotFound, "item", item.ID)
	}
	item.CreatedAt = stored.CreatedAt
	item.UpdatedAt = s.now()
	doc.items[item.ID] = item
	s.mu.Unlock()

	s.notifyItems(key)
	return nil
}

// DeleteItem removes an item.
func (s *Store) DeleteItem(_ context.Context, ownerID, listID, itemID string) error {
	key := listKey{ownerID: ownerID, listID: listID}

	s.mu.Lock()
	doc, ok := s.lists[key]
	if !ok {
		s.mu.Unlock()
		return zerr.With(domain.ErrNotFound, "list", listID)
	}
	delete(doc.items, itemID)
	s.mu.Unlock()

	s.notifyItems(key)
	return nil
}

// BatchUpdateItems writes all items atomically under one lock, with a
// single notification after the batch.
func (s *Store) BatchUpdateItems(_ context.Context, ownerID, listID string, items []domain.ListItem) error {
	key := listKey{ownerID: ownerID, listID: listID}

	s.mu.Lock()
	doc, ok := s.lists[key]
	if !ok {
		s.mu.Unlock()
		return zerr.With(domain.ErrNotFound, "list", listID)
	}
	for _, item := range items {
		if _, exists := doc.items[item.ID]; !exists {
			s.mu.Unlock()
			return zerr.With(domain.ErrItemNotFound, "item", item.ID)
		}
	}
	now := s.now()
	for _, item := range items {
		item.CreatedAt = doc.items[item.ID].CreatedAt
		item.UpdatedAt = now
		doc.items[item.ID] = item
	}
	s.mu.Unlock()

	s.notifyItems(key)
	return nil
}

// GetGroup reads a group document.
func (s *Store) GetGroup(_ context.Context, groupID string) (*domain.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups[groupID]
	if !ok {
		return nil, zerr.With(domain.ErrNotFound, "group", groupID)
	}
	return &group, nil
}

// GetMembers reads a group's membership.
func (s *Store) GetMembers(_ context.Context, groupID string) ([]domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups[groupID]
	if !ok {
		return nil, zerr.With(domain.ErrNotFound, "group", groupID)
	}
	members := make([]domain.Member, len(group.Members))
	copy(members, group.Members)
	return members, nil
}

// ListCategories returns a group's custom categories for a list type.
func (s *Store) ListCategories(_ context.Context, groupID string, listType domain.ListType) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.categories[categoryKey(groupID, listType)]
	categories := make([]domain.Category, len(stored))
	copy(categories, stored)
	return categories, nil
}

// CreateCategory appends a custom category and returns its assigned id.
func (s *Store) CreateCategory(_ context.Context, groupID string, listType domain.ListType, category domain.Category) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	key := categoryKey(groupID, listType)
	for _, existing := range s.categories[key] {
		if domain.NormalizeName(existing.Name) == domain.NormalizeName(category.Name) {
			return "", zerr.With(domain.ErrDuplicateCategory, "name", category.Name)
		}
	}
	s.categories[key] = append(s.categories[key], category)
	return category.ID, nil
}

// FindProduct looks up a catalog entry by normalized name.
func (s *Store) FindProduct(_ context.Context, groupID, normalizedName string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.products {
		if product.GroupID == groupID && product.NormalizedName == normalizedName {
			p := product
			return &p, nil
		}
	}
	return nil, nil
}

// CreateProduct creates a catalog entry and returns its assigned id.
func (s *Store) CreateProduct(_ context.Context, product domain.Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.NormalizedName == "" {
		product.NormalizedName = domain.NormalizeName(product.Name)
	}
	product.LastUsedAt = s.now()
	s.products[product.ID] = product
	return product.ID, nil
}

// TouchProduct increments the usage counter and stamps LastUsedAt.
func (s *Store) TouchProduct(_ context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return zerr.With(domain.ErrNotFound, "product", productID)
	}
	product.UsageCount++
	product.LastUsedAt = s.now()
	s.products[productID] = product
	return nil
}

// itemsSnapshot copies the item collection ordered by creation time
// descending, ties broken by id for determinism.
func itemsSnapshot(doc *listDoc) []domain.ListItem {
	items := make([]domain.ListItem, 0, len(doc.items))
	for _, item := range doc.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
	return items
}

func (s *Store) notifyList(key listKey) {
	s.mu.RLock()
	doc, ok := s.lists[key]
	if !ok {
		s.mu.RUnlock()
		return
	}
	snapshot := doc.meta
	subs := make([]listSubscriber, 0, len(s.listSubs[key]))
	for _, sub := range s.listSubs[key] {
		subs = append(subs, sub)
	}
	s.mu.RUnlock()

	for _, sub := range subs {
		go sub.onSnapshot(snapshot)
	}
}

func (s *Store) notifyItems(key listKey) {
	s.mu.RLock()
	doc, ok := s.lists[key]
	if !ok {
		s.mu.RUnlock()
		return
	}
	snapshot := itemsSnapshot(doc)
	subs := make([]itemSubscriber, 0, len(s.itemSubs[key]))
	for _, sub := range s.itemSubs[key] {
		subs = append(subs, sub)
	}
	s.mu.RUnlock()

	for _, sub := range subs {
		go sub.onSnapshot(snapshot)
	}
}
