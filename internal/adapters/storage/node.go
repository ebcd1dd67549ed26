package storage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/config"
)

// DurableTierNodeID is the unique identifier for the durable tier Graft
// node.
const DurableTierNodeID graft.ID = "storage.durable"

func init() {
	graft.Register(graft.Node[*FileTier]{
		ID:        DurableTierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*FileTier, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileTier(settings.StorageDir)
		},
	})
}
