package sync

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/zerr"
)

// Items returns the current item snapshot for the open list.
func (c *Controller) Items() []domain.ListItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ListItem, len(c.items))
	copy(out, c.items)
	return out
}

// CheckDuplicates returns existing items colliding with the candidate name,
// so the caller can warn before committing an add.
func (c *Controller) CheckDuplicates(name string) []domain.ListItem {
	c.mu.Lock()
	items := c.items
	c.mu.Unlock()
	return domain.FindDuplicates(name, items)
}

// AddItem validates and creates an item on the open list. Shopping-list
// items are linked to the group product catalog on the way in; catalog
// failures are logged and never block the add.
func (c *Controller) AddItem(ctx context.Context, item domain.ListItem) (string, error) {
	if strings.TrimSpace(item.Name) == "" {
		return "", domain.ErrEmptyName
	}
	ownerID, listID, err := c.pair()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	listType := domain.ListType("")
	groupID := ""
	if c.list != nil {
		listType = c.list.Type
		if len(c.list.SharedWith) > 0 {
			groupID = c.list.SharedWith[0]
		}
	}
	c.mu.Unlock()

	if listType == domain.ListTypeShopping && groupID != "" && item.ProductID == "" {
		item.ProductID = c.syncCatalog(ctx, groupID, item.Name, item.Category)
	}

	domain.ApplyChecklistState(&item)
	id, err := c.lists.AddItem(ctx, ownerID, listID, item)
	if err != nil {
		return "", zerr.Wrap(err, "add item failed")
	}
	return id, nil
}

// UpdateItem persists a full item replacement, deriving the checklist parent
// flags immediately before the write.
func (c *Controller) UpdateItem(ctx context.Context, item domain.ListItem) error {
	ownerID, listID, err := c.pair()
	if err != nil {
		return err
	}
	domain.ApplyChecklistState(&item)
	return c.lists.UpdateItem(ctx, ownerID, listID, item)
}

// DeleteItem removes an item from the open list.
func (c *Controller) DeleteItem(ctx context.Context, itemID string) error {
	ownerID, listID, err := c.pair()
	if err != nil {
		return err
	}
	return c.lists.DeleteItem(ctx, ownerID, listID, itemID)
}

// ToggleItem flips an item's checked state. Toggling a checklist parent
// propagates the new state to every child entry, then re-derives the parent
// flags from the children.
func (c *Controller) ToggleItem(ctx context.Context, itemID string) error {
	ownerID, listID, err := c.pair()
	if err != nil {
		return err
	}
	item, err := c.findItem(itemID)
	if err != nil {
		return err
	}

	if item.IsChecklist {
		target := !item.Checked
		for i := range item.Checklist {
			item.Checklist[i].Checked = target
		}
	} else {
		item.Checked = !item.Checked
	}
	domain.ApplyChecklistState(&item)
	return c.lists.UpdateItem(ctx, ownerID, listID, item)
}

// ToggleChecklistEntry flips one child entry of a checklist item.
func (c *Controller) ToggleChecklistEntry(ctx context.Context, itemID string, index int) error {
	return c.mutateChecklist(ctx, itemID, func(item *domain.ListItem) error {
		if index < 0 || index >= len(item.Checklist) {
			return zerr.With(domain.ErrChecklistIndex, "index", index)
		}
		item.Checklist[index].Checked = !item.Checklist[index].Checked
		return nil
	})
}

// AddChecklistEntry appends a child entry to a checklist item.
func (c *Controller) AddChecklistEntry(ctx context.Context, itemID string, entry domain.ChecklistEntry) error {
	if strings.TrimSpace(entry.Text) == "" {
		return domain.ErrEmptyName
	}
	return c.mutateChecklist(ctx, itemID, func(item *domain.ListItem) error {
		item.Checklist = append(item.Checklist, entry)
		return nil
	})
}

// UpdateChecklistEntry replaces a child entry in place.
func (c *Controller) UpdateChecklistEntry(ctx context.Context, itemID string, index int, entry domain.ChecklistEntry) error {
	return c.mutateChecklist(ctx, itemID, func(item *domain.ListItem) error {
		if index < 0 || index >= len(item.Checklist) {
			return zerr.With(domain.ErrChecklistIndex, "index", index)
		}
		item.Checklist[index] = entry
		return nil
	})
}

// RemoveChecklistEntry deletes a child entry.
func (c *Controller) RemoveChecklistEntry(ctx context.Context, itemID string, index int) error {
	return c.mutateChecklist(ctx, itemID, func(item *domain.ListItem) error {
		if index < 0 || index >= len(item.Checklist) {
			return zerr.With(domain.ErrChecklistIndex, "index", index)
		}
		item.Checklist = append(item.Checklist[:index], item.Checklist[index+1:]...)
		return nil
	})
}

// mutateChecklist applies one checklist mutation and persists the item with
// freshly derived parent flags. The derivation happens here, at the write
// boundary, and nowhere else.
func (c *Controller) mutateChecklist(ctx context.Context, itemID string, mutate func(*domain.ListItem) error) error {
	ownerID, listID, err := c.pair()
	if err != nil {
		return err
	}
	item, err := c.findItem(itemID)
	if err != nil {
		return err
	}
	if !item.IsChecklist {
		return zerr.With(domain.ErrItemNotFound, "reason", "not a checklist item")
	}
	if err := mutate(&item); err != nil {
		return err
	}
	domain.ApplyChecklistState(&item)
	return c.lists.UpdateItem(ctx, ownerID, listID, item)
}

// MarkAll checks every item on the open list. UnmarkAll is the inverse.
// Writes fan out concurrently and are independent: partial success is
// accepted, failures are aggregated, and the list is touched once after all
// writes settle.
func (c *Controller) MarkAll(ctx context.Context) error {
	return c.setAll(ctx, true)
}

// UnmarkAll unchecks every item on the open list.
func (c *Controller) UnmarkAll(ctx context.Context) error {
	return c.setAll(ctx, false)
}

func (c *Controller) setAll(ctx context.Context, checked bool) error {
	ownerID, listID, err := c.pair()
	if err != nil {
		return err
	}
	items := c.Items()
	if len(items) == 0 {
		return nil
	}

	var g errgroup.Group
	for _, it := range items {
		item := it
		if item.Checked == checked && !item.PartiallyChecked {
			continue
		}
		g.Go(func() error {
			if item.IsChecklist {
				for i := range item.Checklist {
					item.Checklist[i].Checked = checked
				}
			} else {
				item.Checked = checked
			}
			domain.ApplyChecklistState(&item)
			return c.lists.UpdateItem(ctx, ownerID, listID, item)
		})
	}

	writeErr := g.Wait()
	if writeErr != nil {
		c.logger.Error(zerr.Wrap(writeErr, "bulk update partially failed"))
	}
	if err := c.lists.TouchList(ctx, ownerID, listID); err != nil {
		c.logger.Error(zerr.Wrap(err, "list touch failed"))
	}
	return writeErr
}

// findItem returns a copy of the item by id from the current snapshot.
func (c *Controller) findItem(itemID string) (domain.ListItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ID == itemID {
			cp := item
			cp.Checklist = append([]domain.ChecklistEntry(nil), item.Checklist...)
			return cp, nil
		}
	}
	return domain.ListItem{}, zerr.With(domain.ErrItemNotFound, "item", itemID)
}
