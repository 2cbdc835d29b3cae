package neo4j_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rolegraph/internal/adapters/neo4j"
	"go.trai.ch/rolegraph/internal/core/domain"
)

func TestStatements(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddEdge(domain.NewRole("api"), domain.NewRole("auth")))
	require.NoError(t, g.AddEdge(domain.NewRole("api"), domain.NewRole("billing")))

	stmts := neo4j.Statements(g)
	require.Len(t, stmts, 5)

	for i, name := range []string{"api", "auth", "billing"} {
		assert.Contains(t, stmts[i].Query, "MERGE (:Role")
		assert.Equal(t, name, stmts[i].Params["name"])
	}
	assert.Contains(t, stmts[3].Query, "[:DEPENDS_ON]")
	assert.Equal(t, map[string]any{"from": "api", "to": "auth"}, stmts[3].Params)
	assert.Equal(t, map[string]any{"from": "api", "to": "billing"}, stmts[4].Params)
}

func TestConnect_RequiresURI(t *testing.T) {
	_, err := neo4j.Connect(context.Background(), domain.Neo4jConfig{})
	assert.ErrorContains(t, err, "graph sink unavailable")
}
