package blobstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// NodeID is the unique identifier for the blob store factory Graft node.
const NodeID graft.ID = "adapter.blob_store_factory"

func init() {
	graft.Register(graft.Node[ports.BlobStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BlobStoreFactory, error) {
			return Factory{}, nil
		},
	})
}
