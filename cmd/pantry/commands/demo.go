package commands

import (
	"fmt"
	"io"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/engine/sync"
)

// The built-in demo household. The in-memory document store starts empty,
// so the watch and add commands seed a small shared list to work against.
const (
	demoOwnerID = "user-ana"
	demoListID  = "list-groceries"
	demoGroupID = "group-home"
)

func (c *CLI) seedDemo() {
	store := c.app.Store

	store.SeedGroup(domain.Group{
		ID:      demoGroupID,
		Name:    "Home",
		OwnerID: demoOwnerID,
		Members: []domain.Member{
			{ID: demoOwnerID, Name: "Ana", Email: "ana@example.com", Role: "owner"},
			{ID: "user-ben", Name: "Ben", Email: "ben@example.com", Role: "member"},
		},
	})
	store.SeedList(domain.List{
		ID:         demoListID,
		OwnerID:    demoOwnerID,
		Name:       "Groceries",
		Type:       domain.ListTypeShopping,
		SharedWith: []string{demoGroupID},
	})
}

func printSnapshot(w io.Writer, snap sync.Snapshot) {
	name := "(loading)"
	if snap.List != nil {
		name = snap.List.Name
	}
	fmt.Fprintf(w, "%s: %d items, %d checked, %d members\n",
		name, snap.Stats.Total, snap.Stats.Checked, len(snap.Members))

	byID := make(map[string][]domain.ListItem, len(snap.Groups))
	for _, g := range snap.Groups {
		byID[g.CategoryID] = g.Items
	}
	for _, categoryID := range snap.CategoryOrder {
		label := categoryID
		if label == "" {
			label = "uncategorized"
		}
		fmt.Fprintf(w, "  [%s]\n", label)
		for _, item := range byID[categoryID] {
			mark := " "
			switch {
			case item.Checked:
				mark = "x"
			case item.PartiallyChecked:
				mark = "~"
			}
			fmt.Fprintf(w, "    [%s] %s\n", mark, item.Name)
		}
	}
	if snap.Err != nil {
		fmt.Fprintf(w, "  load error: %v\n", snap.Err)
	}
}
