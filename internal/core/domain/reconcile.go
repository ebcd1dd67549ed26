package domain

import "strings"

// ChecklistState is the derived checked state of a checklist item's parent,
// computed from its child entries.
type ChecklistState struct {
	Checked          bool
	PartiallyChecked bool
}

// AggregateChecklist computes the parent state for a set of checklist
// entries: Checked when every entry is checked, PartiallyChecked when some
// but not all are. An empty checklist is neither checked nor partial.
func AggregateChecklist(entries []ChecklistEntry) ChecklistState {
	if len(entries) == 0 {
		return ChecklistState{}
	}
	checked := 0
	for _, e := range entries {
		if e.Checked {
			checked++
		}
	}
	return ChecklistState{
		Checked:          checked == len(entries),
		PartiallyChecked: checked > 0 && checked < len(entries),
	}
}

// ApplyChecklistState writes the derived flags back onto the item. It is the
// single place the parent flags of a checklist item are ever set; every
// checklist mutation must pass through here before the item is persisted.
func ApplyChecklistState(item *ListItem) {
	if !item.IsChecklist {
		return
	}
	state := AggregateChecklist(item.Checklist)
	item.Checked = state.Checked
	item.PartiallyChecked = state.PartiallyChecked
}

// CategoryGroup is one populated category bucket, in the order the category
// was first encountered while grouping.
type CategoryGroup struct {
	CategoryID string
	Items      []ListItem
}

// GroupItemsByCategory buckets items by category id, preserving the order in
// which each category is first encountered. Items without a category land in
// the "" bucket.
func GroupItemsByCategory(items []ListItem) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{CategoryID: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// MergeCategoryOrder combines a saved category ordering with the currently
// populated groups. The result is: every saved id that has items, in saved
// order, followed by every populated id missing from the saved order, in
// first-encounter order. Categories with no items never appear.
func MergeCategoryOrder(saved []string, groups []CategoryGroup) []string {
	populated := make(map[string]bool, len(groups))
	for _, g := range groups {
		populated[g.CategoryID] = true
	}

	order := make([]string, 0, len(groups))
	seen := make(map[string]bool, len(groups))
	for _, id := range saved {
		if populated[id] && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for _, g := range groups {
		if !seen[g.CategoryID] {
			order = append(order, g.CategoryID)
			seen[g.CategoryID] = true
		}
	}
	return order
}

// NormalizeName lowercases and trims a name for comparison. Shared by
// duplicate detection and catalog matching so both agree on identity.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// maxDuplicateMatches caps how many duplicate candidates are surfaced.
const maxDuplicateMatches = 3

// FindDuplicates returns existing items whose names collide with the
// candidate: equal after normalization, or one containing the other as a
// substring. At most three matches are returned, in item order.
func FindDuplicates(candidate string, items []ListItem) []ListItem {
	normalized := NormalizeName(candidate)
	if normalized == "" {
		return nil
	}

	var matches []ListItem
	for _, item := range items {
		existing := NormalizeName(item.Name)
		if existing == "" {
			continue
		}
		if existing == normalized ||
			strings.Contains(existing, normalized) ||
			strings.Contains(normalized, existing) {
			matches = append(matches, item)
			if len(matches) == maxDuplicateMatches {
				break
			}
		}
	}
	return matches
}
