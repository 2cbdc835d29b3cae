package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rolegraph/internal/adapters/blobstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/rolegraph/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rolegraph/internal/adapters/dot"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rolegraph/internal/adapters/inventory" //nolint:depguard // Wired in app layer
	"go.trai.ch/rolegraph/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rolegraph/internal/adapters/neo4j"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rolegraph/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			inventory.NodeID,
			blobstore.NodeID,
			neo4j.NodeID,
			dot.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	upstreams, err := graft.Dep[ports.UpstreamFactory](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.BlobStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	sinks, err := graft.Dep[ports.GraphSinkFactory](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, upstreams, stores, sinks, renderer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
