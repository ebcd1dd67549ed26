package sync

import "go.trai.ch/pantry/internal/core/domain"

// Stats summarizes the open list's completion state.
type Stats struct {
	Total   int
	Checked int
}

// Snapshot is one consistent view of the controller's reconciled state,
// ready for rendering: items, the category buckets they fall into, the
// merged visible category order, the resolved member roster, and the view
// preferences in effect.
type Snapshot struct {
	List          *domain.List
	Items         []domain.ListItem
	Groups        []domain.CategoryGroup
	CategoryOrder []string
	Categories    []domain.Category
	Members       []domain.Member
	Preferences   domain.ListViewPreferences
	Stats         Stats
	Err           error
}

// Snapshot assembles the current view. The category order is recomputed
// here from the saved preference order and the populated buckets, so an
// order saved for categories that have since emptied never leaves holes.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.ListItem, len(c.items))
	copy(items, c.items)

	groups := domain.GroupItemsByCategory(items)
	order := domain.MergeCategoryOrder(c.prefs.CategoryOrder, groups)

	stats := Stats{Total: len(items)}
	for _, item := range items {
		if item.Checked {
			stats.Checked++
		}
	}

	var list *domain.List
	if c.list != nil {
		l := *c.list
		list = &l
	}

	members := make([]domain.Member, len(c.members))
	copy(members, c.members)
	cats := make([]domain.Category, len(c.cats))
	copy(cats, c.cats)

	return Snapshot{
		List:          list,
		Items:         items,
		Groups:        groups,
		CategoryOrder: order,
		Categories:    cats,
		Members:       members,
		Preferences:   c.prefs.Clone(),
		Stats:         stats,
		Err:           c.loadErr,
	}
}
