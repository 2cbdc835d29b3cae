package dot_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rolegraph/internal/adapters/dot"
	"go.trai.ch/rolegraph/internal/core/domain"
)

func sampleGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.AddEdge(domain.NewRole("checkout"), domain.NewRole("payments")))
	require.NoError(t, g.AddEdge(domain.NewRole("checkout"), domain.NewRole("auth")))
	require.NoError(t, g.AddEdge(domain.NewRole("payments"), domain.NewRole(`ledger"v2`)))
	return g
}

func TestExport_ListsEveryEdge(t *testing.T) {
	out := dot.Export(sampleGraph(t))

	assert.True(t, strings.HasPrefix(out, "digraph roles {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"checkout" -> "auth";`)
	assert.Contains(t, out, `"checkout" -> "payments";`)
	assert.Contains(t, out, `"payments" -> "ledger\"v2";`)
	assert.Equal(t, 3, strings.Count(out, "->"))

	// Deterministic ordering.
	assert.Less(t, strings.Index(out, `"checkout" -> "auth"`), strings.Index(out, `"checkout" -> "payments"`))
}

func TestExport_Empty(t *testing.T) {
	out := dot.Export(domain.NewGraph())
	assert.NotContains(t, out, "->")
}

func TestRenderer_Render(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "roles.dot")
	g := sampleGraph(t)

	require.NoError(t, dot.Renderer{}.Render(context.Background(), g, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dot.Export(g), string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
