package grapher_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports/mocks"
	"go.trai.ch/rolegraph/internal/engine/grapher"
	"go.uber.org/mock/gomock"
)

func newBuilder(t *testing.T, adj *domain.Adjacency) *grapher.Builder {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return grapher.NewBuilder(adj, domain.NewExclusion(domain.DefaultExcludeMarkers...), log)
}

func edgeNames(g *domain.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.From.String()+"->"+e.To.String())
	}
	return out
}

func nodeNames(g *domain.Graph) []string {
	var out []string
	for _, r := range g.Nodes() {
		out = append(out, r.String())
	}
	return out
}

func TestBuild_DirectDependencies(t *testing.T) {
	adj := domain.NewAdjacency()
	adj.Add("main-svc", "first-dep")
	adj.Add("main-svc", "second-dep")

	g := newBuilder(t, adj).Build("main-svc", domain.NewGraph())

	assert.Equal(t, []string{"main-svc->first-dep", "main-svc->second-dep"}, edgeNames(g))
	assert.False(t, g.HasEdge(domain.NewRole("first-dep"), domain.NewRole("main-svc")))
}

func TestBuild_SuppressesAntiParallelEdge(t *testing.T) {
	adj := domain.NewAdjacency()
	adj.Add("A", "B")
	adj.Add("B", "A")

	g := newBuilder(t, adj).Build("A", nil)

	assert.Equal(t, []string{"A->B"}, edgeNames(g))
}

func TestBuild_SkipsExcludedEndpoints(t *testing.T) {
	adj := domain.NewAdjacency()
	adj.Add("api", "orders-mysql")
	adj.Add("api", "session-redis")
	adj.Add("api", "auth")
	adj.Add("cache-redis", "auth")
	adj.Add("auth", "users-mysql-1")

	b := newBuilder(t, adj)
	g := b.Build("api", nil)
	g = b.Build("cache-redis", g)

	assert.Equal(t, []string{"api->auth"}, edgeNames(g))
	for _, node := range nodeNames(g) {
		assert.NotContains(t, node, "mysql")
		assert.NotContains(t, node, "redis")
	}
}

func TestBuild_FollowsTransitiveDependencies(t *testing.T) {
	adj := domain.NewAdjacency()
	adj.Add("checkout-1", "payments-2")
	adj.Add("payments", "ledger")
	adj.Add("ledger", "audit")
	adj.Add("unrelated", "other")

	g := newBuilder(t, adj).Build("checkout-9", nil)

	assert.Equal(t, []string{"checkout->payments", "ledger->audit", "payments->ledger"}, edgeNames(g))
	assert.False(t, g.HasNode(domain.NewRole("unrelated")))
}

func TestBuild_SkipsSelfDependency(t *testing.T) {
	adj := domain.NewAdjacency()
	adj.AddRole(domain.NewRole("api"), domain.NewRole("api"))
	adj.Add("api", "auth")

	g := newBuilder(t, adj).Build("api", nil)

	assert.Equal(t, []string{"api->auth"}, edgeNames(g))
}

func TestBuild_LongChainDoesNotRecurse(t *testing.T) {
	adj := domain.NewAdjacency()
	const depth = 20000
	for i := range depth {
		adj.Add(fmt.Sprintf("svc%dx", i), fmt.Sprintf("svc%dx", i+1))
	}

	g := newBuilder(t, adj).Build("svc0x", nil)

	assert.Equal(t, depth, g.EdgeCount())
	assert.Equal(t, depth+1, g.NodeCount())
}

func TestBuild_LongerCyclesAreKeptAndReported(t *testing.T) {
	adj := domain.NewAdjacency()
	adj.Add("a", "b")
	adj.Add("b", "c")
	adj.Add("c", "a")

	g := newBuilder(t, adj).Build("a", nil)

	assert.Equal(t, 3, g.EdgeCount())
	err := g.FindCycle()
	require.Error(t, err)
	assert.ErrorContains(t, err, "cycle detected")
}

func TestBuild_DescendsBeforeNextSibling(t *testing.T) {
	adj := domain.NewAdjacency()
	adj.Add("a", "b")
	adj.Add("a", "c")
	adj.Add("b", "c")
	adj.Add("c", "a")

	g := newBuilder(t, adj).Build("a", nil)

	// c->a is reached through b before a's own edge to c is considered.
	assert.Equal(t, []string{"a->b", "b->c", "c->a"}, edgeNames(g))
	assert.False(t, g.HasEdge(domain.NewRole("a"), domain.NewRole("c")))
}

func TestBuild_UnknownSeed(t *testing.T) {
	g := newBuilder(t, domain.NewAdjacency()).Build("ghost", nil)
	assert.Zero(t, g.NodeCount())
}

func TestBuildAll_SharesGraphAndDeduplicatesSeeds(t *testing.T) {
	adj := domain.NewAdjacency()
	adj.Add("api", "auth")
	adj.Add("web", "api")
	adj.Add("auth", "web")

	g := newBuilder(t, adj).BuildAll([]string{"api-1", "api-2", "web", "idle"})

	// The second expansion of web finds web->api already present.
	assert.Equal(t, []string{"api->auth", "auth->web", "web->api"}, edgeNames(g))
}

func TestPrune_TwoPasses(t *testing.T) {
	g := domain.NewGraph()
	x, y := domain.NewRole("x"), domain.NewRole("y")
	require.NoError(t, g.AddEdge(x, domain.NewRole("a")))
	require.NoError(t, g.AddEdge(x, domain.NewRole("b")))
	require.NoError(t, g.AddEdge(y, x))
	require.NoError(t, g.AddEdge(domain.NewRole("p"), domain.NewRole("q")))
	require.Equal(t, 3, g.Degree(x))

	pruned, err := grapher.Prune(g, 0, 1)
	require.NoError(t, err)

	assert.False(t, pruned.HasNode(x), "hub removed in pass 1")
	assert.False(t, pruned.HasNode(y), "orphan removed in pass 2")
	assert.Equal(t, []string{"p", "q"}, nodeNames(pruned))
	assert.Equal(t, []string{"p->q"}, edgeNames(pruned))
}

func TestPrune_MinDegree(t *testing.T) {
	g := domain.NewGraph()
	hub := domain.NewRole("hub")
	for _, leaf := range []string{"l1x", "l2x", "l3x"} {
		require.NoError(t, g.AddEdge(hub, domain.NewRole(leaf)))
	}

	pruned, err := grapher.Prune(g, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"hub"}, nodeNames(pruned))
	assert.Zero(t, pruned.EdgeCount())
}

func TestPrune_NegativeMinKeepsOrphans(t *testing.T) {
	g := domain.NewGraph()
	hub := domain.NewRole("hub")
	for _, leaf := range []string{"l1x", "l2x", "l3x"} {
		require.NoError(t, g.AddEdge(hub, domain.NewRole(leaf)))
	}

	pruned, err := grapher.Prune(g, -1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"l1x", "l2x", "l3x"}, nodeNames(pruned))
	assert.Zero(t, pruned.EdgeCount())
}

func TestPrune_InvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"max below min", 3, 2},
		{"both negative and inverted", -1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := grapher.Prune(domain.NewGraph(), tt.min, tt.max)
			require.Error(t, err)
			assert.ErrorContains(t, err, "invalid connection range")
		})
	}
}
