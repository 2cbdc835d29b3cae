package dot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// NodeID is the unique identifier for the DOT renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return Renderer{}, nil
		},
	})
}
