package neo4j

import (
	"context"

	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// Factory implements ports.GraphSinkFactory.
type Factory struct{}

var _ ports.GraphSinkFactory = Factory{}

// NewGraphSink connects to the database described by cfg.
func (Factory) NewGraphSink(ctx context.Context, cfg domain.Neo4jConfig) (ports.GraphSink, error) {
	sink, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return sink, nil
}
