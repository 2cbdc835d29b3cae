package inventory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// NodeID is the unique identifier for the inventory client factory Graft node.
const NodeID graft.ID = "adapter.inventory_factory"

func init() {
	graft.Register(graft.Node[ports.UpstreamFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UpstreamFactory, error) {
			return Factory{}, nil
		},
	})
}
