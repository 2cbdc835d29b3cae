package ports

import (
	"context"

	"go.trai.ch/rolegraph/internal/core/domain"
)

// Adapters that depend on the loaded configuration are built per run through these factories.
//
//go:generate go run go.uber.org/mock/mockgen -source=factory.go -destination=mocks/mock_factory.go -package=mocks

// UpstreamFactory creates an inventory API client.
type UpstreamFactory interface {
	NewUpstream(cfg domain.APIConfig) (Upstream, error)
}

// BlobStoreFactory opens the configured cache backend.
type BlobStoreFactory interface {
	NewBlobStore(ctx context.Context, cfg domain.CacheConfig) (BlobStore, error)
}

// GraphSinkFactory connects to the graph database sink.
type GraphSinkFactory interface {
	NewGraphSink(ctx context.Context, cfg domain.Neo4jConfig) (GraphSink, error)
}
