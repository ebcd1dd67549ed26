package sync

import (
	"context"
	"strings"

	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/zerr"
)

func categoryKey(groupID string, listType domain.ListType) string {
	return "categories:" + groupID + ":" + string(listType)
}

// loadCategories resolves the category set for a (group, list type) pair.
// Shopping lists without a reachable custom set fall back to the built-in
// defaults; non-shopping list types carry no categories at all.
func (c *Controller) loadCategories(ctx context.Context, groupID string, listType domain.ListType) []domain.Category {
	if listType != domain.ListTypeShopping {
		return nil
	}
	if groupID == "" {
		return domain.DefaultCategories(listType)
	}

	cats, err := cache.GetOrFetch(ctx, c.cache, cache.NamespaceGroup, categoryKey(groupID, listType), func(ctx context.Context) ([]domain.Category, error) {
		return c.categories.ListCategories(ctx, groupID, listType)
	})
	if err != nil {
		c.logger.Error(err)
		return domain.DefaultCategories(listType)
	}
	if len(cats) == 0 {
		return domain.DefaultCategories(listType)
	}
	return cats
}

// Categories returns the category set in effect for the open list.
func (c *Controller) Categories() []domain.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Category, len(c.cats))
	copy(out, c.cats)
	return out
}

// CreateCategory adds a custom category to the open list's group and
// refreshes the loaded set. Blank and duplicate names are rejected before
// anything reaches the store.
func (c *Controller) CreateCategory(ctx context.Context, cat domain.Category) error {
	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		return domain.ErrEmptyName
	}

	c.mu.Lock()
	groupID := c.catGroupID
	listType := c.catListType
	normalized := domain.NormalizeName(cat.Name)
	for _, existing := range c.cats {
		if domain.NormalizeName(existing.Name) == normalized {
			c.mu.Unlock()
			return zerr.With(domain.ErrDuplicateCategory, "category", existing.Name)
		}
	}
	c.mu.Unlock()
	if groupID == "" {
		return domain.ErrNoList
	}

	if _, err := c.categories.CreateCategory(ctx, groupID, listType, cat); err != nil {
		return err
	}
	c.cache.Invalidate(cache.NamespaceGroup, categoryKey(groupID, listType))

	cats := c.loadCategories(ctx, groupID, listType)
	c.mu.Lock()
	c.cats = cats
	c.mu.Unlock()
	c.notify()
	return nil
}
