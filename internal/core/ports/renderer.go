package ports

import (
	"context"

	"go.trai.ch/rolegraph/internal/core/domain"
)

// Renderer writes a finished graph to an output path.
// It only reads the graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	Render(ctx context.Context, g *domain.Graph, path string) error
}

// GraphSink publishes a finished graph to an external graph store.
type GraphSink interface {
	Publish(ctx context.Context, g *domain.Graph) error
	Close(ctx context.Context) error
}
