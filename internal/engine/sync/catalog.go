package sync

import (
	"context"

	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/zerr"
)

// syncCatalog links a new shopping item to the group product catalog:
// find-or-create by normalized name, then bump the usage counter. Every
// failure here is non-fatal; the item is simply added without a product
// link and the catalog catches up on a later add.
func (c *Controller) syncCatalog(ctx context.Context, groupID, name, category string) string {
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return ""
	}

	product, err := cache.GetOrFetch(ctx, c.cache, cache.NamespaceProducts, groupID+":"+normalized, func(ctx context.Context) (*domain.Product, error) {
		found, err := c.products.FindProduct(ctx, groupID, normalized)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
		p := domain.Product{
			GroupID:        groupID,
			Name:           name,
			NormalizedName: normalized,
			Category:       category,
		}
		id, err := c.products.CreateProduct(ctx, p)
		if err != nil {
			return nil, err
		}
		p.ID = id
		return &p, nil
	})
	if err != nil {
		c.logger.Error(zerr.Wrap(err, "product catalog sync failed"))
		return ""
	}
	if product == nil {
		return ""
	}

	if err := c.products.TouchProduct(ctx, product.ID); err != nil {
		c.logger.Error(zerr.Wrap(err, "product usage update failed"))
	}
	return product.ID
}
