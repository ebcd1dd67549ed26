package domain

// ListViewPreferences is per-list view state persisted in the durable
// storage tier under a list-scoped key. It is keyed by list identity, not by
// user: multiple users sharing a device share preferences for a given list.
type ListViewPreferences struct {
	ShowCompleted       bool            `json:"showCompleted"`
	GroupByCategory     bool            `json:"groupByCategory"`
	ViewMode            string          `json:"viewMode"`
	FilterByAssignee    string          `json:"filterByAssignee,omitempty"` // member id, empty = everyone
	CollapsedCategories map[string]bool `json:"collapsedCategories,omitempty"`
	CategoryOrder       []string        `json:"categoryOrder,omitempty"`
}

// DefaultListViewPreferences returns the preferences a list starts with
// before the user changes anything.
func DefaultListViewPreferences() ListViewPreferences {
	return ListViewPreferences{
		ShowCompleted:   true,
		GroupByCategory: true,
		ViewMode:        "list",
	}
}

// Clone returns a deep copy so a stored snapshot cannot be mutated through
// the returned value.
func (p ListViewPreferences) Clone() ListViewPreferences {
	out := p
	if p.CollapsedCategories != nil {
		out.CollapsedCategories = make(map[string]bool, len(p.CollapsedCategories))
		for k, v := range p.CollapsedCategories {
			out.CollapsedCategories[k] = v
		}
	}
	if p.CategoryOrder != nil {
		out.CategoryOrder = append([]string(nil), p.CategoryOrder...)
	}
	return out
}
