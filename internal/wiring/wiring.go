// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rolegraph/internal/adapters/blobstore"
	_ "go.trai.ch/rolegraph/internal/adapters/config"
	_ "go.trai.ch/rolegraph/internal/adapters/dot"
	_ "go.trai.ch/rolegraph/internal/adapters/inventory"
	_ "go.trai.ch/rolegraph/internal/adapters/logger"
	_ "go.trai.ch/rolegraph/internal/adapters/neo4j"
	// Register app nodes.
	_ "go.trai.ch/rolegraph/internal/app"
)
