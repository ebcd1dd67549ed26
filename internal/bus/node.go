package bus

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/config"
	"go.trai.ch/pantry/internal/adapters/logger" //nolint:depguard // Wired at node level
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the event bus Graft node.
const NodeID graft.ID = "bus.events"

func init() {
	graft.Register(graft.Node[*Bus]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Bus, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(WithLogger(log), WithPendingCap(settings.PendingQueueCap)), nil
		},
	})
}
