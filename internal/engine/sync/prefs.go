package sync

import (
	"encoding/json"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/zerr"
)

// prefsKey is the durable-tier key for one list's view preferences. Keyed
// by list id alone: preferences follow the list, not the viewer device.
func prefsKey(listID string) string {
	return "prefs_" + listID
}

// loadPreferences reads the persisted view preferences for a list, falling
// back to defaults when nothing is stored or the payload is unreadable.
// Saves are suppressed while the load is applying, so rehydration never
// echoes back into storage.
func (c *Controller) loadPreferences(listID string) {
	c.mu.Lock()
	c.loadingPref = true
	c.prefs = domain.DefaultListViewPreferences()
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loadingPref = false
		c.mu.Unlock()
	}()

	raw, ok, err := c.durable.Read(prefsKey(listID))
	if err != nil {
		c.logger.Error(zerr.Wrap(err, "preference load failed"))
		return
	}
	if !ok {
		return
	}

	var prefs domain.ListViewPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		c.logger.Error(zerr.Wrap(err, "preference decode failed"))
		return
	}
	if prefs.ViewMode == "" {
		prefs.ViewMode = domain.DefaultListViewPreferences().ViewMode
	}

	c.mu.Lock()
	c.prefs = prefs
	c.mu.Unlock()
}

// savePreferences persists the current preferences unless a load is in
// flight. Write failures are logged; the in-memory state stays usable.
func (c *Controller) savePreferences() {
	c.mu.Lock()
	if c.loadingPref || c.listID == "" {
		c.mu.Unlock()
		return
	}
	listID := c.listID
	prefs := c.prefs.Clone()
	c.mu.Unlock()

	raw, err := json.Marshal(prefs)
	if err != nil {
		c.logger.Error(zerr.Wrap(err, "preference encode failed"))
		return
	}
	if err := c.durable.Write(prefsKey(listID), raw); err != nil {
		c.logger.Error(zerr.Wrap(err, "preference save failed"))
	}
}

// Preferences returns the view preferences in effect for the open list.
func (c *Controller) Preferences() domain.ListViewPreferences {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefs.Clone()
}

// SetPreferences replaces the view preferences and persists them.
func (c *Controller) SetPreferences(prefs domain.ListViewPreferences) {
	c.mu.Lock()
	c.prefs = prefs.Clone()
	c.mu.Unlock()
	c.savePreferences()
	c.notify()
}

// UpdateCategoryOrder saves a user-chosen category ordering.
func (c *Controller) UpdateCategoryOrder(order []string) {
	c.mu.Lock()
	c.prefs.CategoryOrder = append([]string(nil), order...)
	c.mu.Unlock()
	c.savePreferences()
	c.notify()
}

// ToggleCategoryCollapsed flips the collapsed state of one category bucket.
func (c *Controller) ToggleCategoryCollapsed(categoryID string) {
	c.mu.Lock()
	if c.prefs.CollapsedCategories == nil {
		c.prefs.CollapsedCategories = make(map[string]bool)
	}
	c.prefs.CollapsedCategories[categoryID] = !c.prefs.CollapsedCategories[categoryID]
	c.mu.Unlock()
	c.savePreferences()
	c.notify()
}
