package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/pantry/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/pantry/internal/adapters/memdoc"
	"go.trai.ch/pantry/internal/adapters/storage"
	"go.trai.ch/pantry/internal/bus"
	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/pantry/internal/engine/sync"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			memdoc.NodeID,
			cache.NodeID,
			bus.NodeID,
			storage.DurableTierNodeID,
			sync.NodeID,
			sync.ActiveGroupNodeID,
			sync.SessionNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
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
	controller, err := graft.Dep[*sync.Controller](ctx)
	if err != nil {
		return nil, err
	}
	activeGroup, err := graft.Dep[*sync.ActiveGroup](ctx)
	if err != nil {
		return nil, err
	}
	session, err := graft.Dep[*sync.Session](ctx)
	if err != nil {
		return nil, err
	}

	watcher, err := storage.NewTierWatcher(durable, settings.DebounceWindow, func(keys []string) {
		cacheStore.InvalidateExternal(keys)
	}, log)
	if err != nil {
		// The app works without cross-process invalidation; entries then
		// refresh by TTL alone.
		log.Error(err)
		watcher = nil
	}

	return New(controller, activeGroup, session, store, cacheStore, eventBus, log, watcher), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:      application,
		Logger:   log,
		Settings: settings,
	}, nil
}
