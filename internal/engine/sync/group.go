package sync

import (
	"context"

	"go.trai.ch/pantry/internal/bus"
	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// currentGroupKey is the durable-tier key holding the active group id.
const currentGroupKey = "current_group"

// ActiveGroup tracks which group the user currently acts in. The marker
// survives restarts via the durable tier; switches are announced on the bus
// so mounted components can react.
type ActiveGroup struct {
	groups  ports.GroupStore
	cache   *cache.Store
	bus     *bus.Bus
	durable ports.StorageTier
	logger  ports.Logger
}

// NewActiveGroup creates the active-group tracker.
func NewActiveGroup(groups ports.GroupStore, cacheStore *cache.Store, eventBus *bus.Bus, durable ports.StorageTier, logger ports.Logger) *ActiveGroup {
	return &ActiveGroup{
		groups:  groups,
		cache:   cacheStore,
		bus:     eventBus,
		durable: durable,
		logger:  logger,
	}
}

// CurrentGroupID returns the persisted active group id, or "" when none has
// been chosen yet.
func (a *ActiveGroup) CurrentGroupID() string {
	raw, ok, err := a.durable.Read(currentGroupKey)
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "current group read failed"))
		return ""
	}
	if !ok {
		return ""
	}
	return string(raw)
}

// CurrentGroup resolves the persisted active group document through the
// cache. Returns nil, nil when no group is active.
func (a *ActiveGroup) CurrentGroup(ctx context.Context) (*domain.Group, error) {
	groupID := a.CurrentGroupID()
	if groupID == "" {
		return nil, nil
	}
	return cache.GetOrFetch(ctx, a.cache, cache.NamespaceGroup, groupID, func(ctx context.Context) (*domain.Group, error) {
		return a.groups.GetGroup(ctx, groupID)
	})
}

// SetCurrentGroup persists the new active group and announces the switch.
// The group document rides along on the event when it can be resolved, so
// subscribers need no extra read.
func (a *ActiveGroup) SetCurrentGroup(ctx context.Context, senderID, groupID string) error {
	if err := a.durable.Write(currentGroupKey, []byte(groupID)); err != nil {
		return zerr.Wrap(err, "current group write failed")
	}

	var group *domain.Group
	if groupID != "" {
		resolved, err := cache.GetOrFetch(ctx, a.cache, cache.NamespaceGroup, groupID, func(ctx context.Context) (*domain.Group, error) {
			return a.groups.GetGroup(ctx, groupID)
		})
		if err != nil {
			a.logger.Error(zerr.Wrap(err, "group resolve failed"))
		} else {
			group = resolved
		}
	}

	a.bus.Emit(bus.EventGroupChanged, bus.GroupChangedPayload{
		SenderID: senderID,
		GroupID:  groupID,
		Group:    group,
	})
	return nil
}
