package sync

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/config"
	"go.trai.ch/pantry/internal/adapters/logger" //nolint:depguard // Wired at node level
	"go.trai.ch/pantry/internal/adapters/memdoc"
	"go.trai.ch/pantry/internal/adapters/storage"
	"go.trai.ch/pantry/internal/bus"
	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the sync controller Graft node.
const NodeID graft.ID = "engine.sync"

// ActiveGroupNodeID identifies the active-group tracker node.
const ActiveGroupNodeID graft.ID = "engine.activegroup"

// SessionNodeID identifies the session node.
const SessionNodeID graft.ID = "engine.session"

func init() {
	graft.Register(graft.Node[*Controller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			memdoc.NodeID,
			cache.NodeID,
			bus.NodeID,
			storage.DurableTierNodeID,
		},
		Run: func(ctx context.Context) (*Controller, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*memdoc.Store](ctx)
			if err != nil {
				return nil, err
			}
			cacheStore, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}
			eventBus, err := graft.Dep[*bus.Bus](ctx)
			if err != nil {
				return nil, err
			}
			durable, err := graft.Dep[*storage.FileTier](ctx)
			if err != nil {
				return nil, err
			}

			return New(
				store, store, store, store,
				cacheStore, eventBus, durable, log,
				WithTimeouts(settings.ItemsTimeout, settings.ListTimeout),
			), nil
		},
	})

	graft.Register(graft.Node[*ActiveGroup]{
		ID:        ActiveGroupNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			memdoc.NodeID,
			cache.NodeID,
			bus.NodeID,
			storage.DurableTierNodeID,
		},
		Run: func(ctx context.Context) (*ActiveGroup, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*memdoc.Store](ctx)
			if err != nil {
				return nil, err
			}
			cacheStore, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}
			eventBus, err := graft.Dep[*bus.Bus](ctx)
			if err != nil {
				return nil, err
			}
			durable, err := graft.Dep[*storage.FileTier](ctx)
			if err != nil {
				return nil, err
			}
			return NewActiveGroup(store, cacheStore, eventBus, durable, log), nil
		},
	})

	graft.Register(graft.Node[*Session]{
		ID:        SessionNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
			cache.NodeID,
			cache.SessionTierNodeID,
			bus.NodeID,
		},
		Run: func(ctx context.Context) (*Session, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			controller, err := graft.Dep[*Controller](ctx)
			if err != nil {
				return nil, err
			}
			cacheStore, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}
			session, err := graft.Dep[*storage.MemoryTier](ctx)
			if err != nil {
				return nil, err
			}
			eventBus, err := graft.Dep[*bus.Bus](ctx)
			if err != nil {
				return nil, err
			}
			return NewSession(controller, cacheStore, session, eventBus, log), nil
		},
	})
}
