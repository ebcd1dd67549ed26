package memdoc

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the in-memory store Graft node.
const NodeID graft.ID = "adapter.memdoc"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Store, error) {
			return New(), nil
		},
	})
}
