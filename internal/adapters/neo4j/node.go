package neo4j

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// NodeID is the unique identifier for the graph sink factory Graft node.
const NodeID graft.ID = "adapter.graph_sink_factory"

func init() {
	graft.Register(graft.Node[ports.GraphSinkFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphSinkFactory, error) {
			return Factory{}, nil
		},
	})
}
