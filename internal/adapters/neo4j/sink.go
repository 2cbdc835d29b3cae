// Package neo4j publishes role graphs to a Neo4j database.
package neo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	mergeRoleQuery = "MERGE (:Role {name: $name})"
	mergeEdgeQuery = "MERGE (a:Role {name: $from}) " +
		"MERGE (b:Role {name: $to}) " +
		"MERGE (a)-[:DEPENDS_ON]->(b)"
)

// Sink implements ports.GraphSink with MERGE statements, so publishing
// the same graph twice leaves the database unchanged.
type Sink struct {
	driver   neo4j.DriverWithContext
	database string
}

var _ ports.GraphSink = (*Sink)(nil)

// Connect opens a driver for cfg and verifies connectivity.
func Connect(ctx context.Context, cfg domain.Neo4jConfig) (*Sink, error) {
	if cfg.URI == "" {
		return nil, zerr.With(domain.ErrSinkUnavailable, "reason", "neo4j.uri is not configured")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSinkUnavailable.Error()), "uri", cfg.URI)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSinkUnavailable.Error()), "uri", cfg.URI)
	}
	return &Sink{driver: driver, database: cfg.Database}, nil
}

// Publish writes every node and edge of g in a single transaction.
func (s *Sink) Publish(ctx context.Context, g *domain.Graph) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer func() {
		_ = session.Close(ctx)
	}()

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, stmt := range Statements(g) {
			if _, err := tx.Run(ctx, stmt.Query, stmt.Params); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrSinkWriteFailed.Error())
	}
	return nil
}

// Close closes the driver.
func (s *Sink) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Statement is one parameterized Cypher statement.
type Statement struct {
	Query  string
	Params map[string]any
}

// Statements returns the statements that publish g: one per node, then one per edge.
func Statements(g *domain.Graph) []Statement {
	stmts := make([]Statement, 0, g.NodeCount()+g.EdgeCount())
	for _, n := range g.Nodes() {
		stmts = append(stmts, Statement{
			Query:  mergeRoleQuery,
			Params: map[string]any{"name": n.String()},
		})
	}
	for _, e := range g.Edges() {
		stmts = append(stmts, Statement{
			Query:  mergeEdgeQuery,
			Params: map[string]any{"from": e.From.String(), "to": e.To.String()},
		})
	}
	return stmts
}
