// Package domain contains the core types and reconciliation rules for
// collaborative lists: items, categories, members, and view preferences.
package domain

import "time"

// ListType distinguishes shopping lists from generic task lists.
type ListType string

const (
	// ListTypeShopping is a shopping list with built-in default categories
	// and product catalog integration.
	ListTypeShopping ListType = "shopping"
	// ListTypeGeneric is a plain task list with no built-in categories.
	ListTypeGeneric ListType = "generic"
)

// Priority indicates how urgently an item is needed.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ChecklistEntry is one child line of a checklist item.
type ChecklistEntry struct {
	Text     string  `json:"text"`
	Checked  bool    `json:"checked"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// ListItem is a single entry on a list. A flat item carries its own Checked
// flag; a checklist item derives Checked and PartiallyChecked from its
// children (see AggregateChecklist).
type ListItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category,omitempty"` // category id, empty = uncategorized
	Checked     bool             `json:"checked"`
	Quantity    float64          `json:"quantity,omitempty"`
	Unit        string           `json:"unit,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Priority    Priority         `json:"priority,omitempty"`
	AssignedTo  string           `json:"assignedTo,omitempty"` // member id
	ProductID   string           `json:"productId,omitempty"`  // catalog reference
	IsChecklist bool             `json:"isChecklist,omitempty"`
	Checklist   []ChecklistEntry `json:"checklist,omitempty"`
	// PartiallyChecked is derived state, only meaningful for checklist items.
	PartiallyChecked bool      `json:"partiallyChecked,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// List is the list document itself. SharedWith drives member loading: every
// referenced group contributes its members to the assignment picker.
type List struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"ownerId"`
	Name       string    `json:"name"`
	Type       ListType  `json:"type"`
	SharedWith []string  `json:"sharedWith,omitempty"` // group ids
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Group is a household of members that lists can be shared with.
type Group struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	OwnerID string   `json:"ownerId"`
	Members []Member `json:"members,omitempty"`
}

// Member is one participant of a group.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Product is a catalog entry shared by a group. Items added by name are
// matched against the catalog by normalized name.
type Product struct {
	ID             string    `json:"id"`
	GroupID        string    `json:"groupId"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalizedName"`
	Category       string    `json:"category,omitempty"`
	UsageCount     int       `json:"usageCount"`
	LastUsedAt     time.Time `json:"lastUsedAt"`
}
