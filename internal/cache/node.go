package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/config"
	"go.trai.ch/pantry/internal/adapters/logger" //nolint:depguard // Wired at node level
	"go.trai.ch/pantry/internal/adapters/storage"
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the cache Graft node.
const NodeID graft.ID = "cache.store"

// SessionTierNodeID identifies the session storage tier node.
const SessionTierNodeID graft.ID = "storage.session"

func init() {
	// Session tier: process memory scoped to the running session.
	graft.Register(graft.Node[*storage.MemoryTier]{
		ID:        SessionTierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*storage.MemoryTier, error) {
			return storage.NewMemoryTier(), nil
		},
	})

	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			SessionTierNodeID,
			storage.DurableTierNodeID,
		},
		Run: func(ctx context.Context) (*Store, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			session, err := graft.Dep[*storage.MemoryTier](ctx)
			if err != nil {
				return nil, err
			}
			durable, err := graft.Dep[*storage.FileTier](ctx)
			if err != nil {
				return nil, err
			}

			opts := []Option{
				WithLogger(log),
				WithSessionTier(session),
				WithDurableTier(durable),
			}
			for name, ns := range settings.Namespaces {
				cfg := NamespaceConfig{TTL: ns.TTL, Tier: Tier(ns.Tier)}
				if ns.TTL == 0 {
					cfg.TTL = NeverExpires
				}
				opts = append(opts, WithNamespace(name, cfg))
			}
			return New(opts...), nil
		},
	})
}
