// Package grapher turns the adjacency relation into a directed graph and
// prunes it by node degree.
package grapher

import (
	"strconv"

	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// Builder expands roles into a graph by following their backends.
type Builder struct {
	adj     *domain.Adjacency
	exclude domain.Exclusion
	logger  ports.Logger
}

// NewBuilder creates a Builder over adj. Roles matching exclude never become
// graph endpoints.
func NewBuilder(adj *domain.Adjacency, exclude domain.Exclusion, log ports.Logger) *Builder {
	return &Builder{adj: adj, exclude: exclude, logger: log}
}

// Build adds every dependency reachable from seed to g and returns g.
// A nil g starts a new graph.
//
// Traversal is depth first over an explicit stack of frames. Each added
// edge descends into its target before the next sibling is considered, and
// a role is entered at most once per call. An edge is skipped when it would
// point a role at itself, when the pair is already connected in either
// direction, or when either end is excluded.
func (b *Builder) Build(seed string, g *domain.Graph) *domain.Graph {
	if g == nil {
		g = domain.NewGraph()
	}
	start := domain.RoleOf(seed)
	if start.String() == "" {
		return g
	}

	visited := map[domain.Role]struct{}{start: {}}
	stack := []*frame{b.enter(start)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.backends) {
			stack = stack[:len(stack)-1]
			continue
		}
		dep := top.backends[top.next]
		top.next++

		src := top.role
		if dep == src || g.Connected(src, dep) {
			continue
		}
		if b.exclude.Matches(src.String()) || b.exclude.Matches(dep.String()) {
			continue
		}
		if err := g.AddEdge(src, dep); err != nil {
			continue
		}
		if _, seen := visited[dep]; !seen {
			visited[dep] = struct{}{}
			stack = append(stack, b.enter(dep))
		}
	}
	return g
}

// frame is a role being expanded and the index of its next backend.
type frame struct {
	role     domain.Role
	backends []domain.Role
	next     int
}

func (b *Builder) enter(role domain.Role) *frame {
	backends := b.adj.BackendsOf(role)
	if len(backends) > 0 {
		b.logger.Debug(role.String() + " has " + pluralBackends(len(backends)))
	}
	return &frame{role: role, backends: backends}
}

// BuildAll builds one shared graph from every seed. Seeds are normalized
// and duplicates are expanded once. Seeds without backends are skipped.
func (b *Builder) BuildAll(seeds []string) *domain.Graph {
	g := domain.NewGraph()
	seen := make(map[domain.Role]struct{}, len(seeds))
	for _, seed := range seeds {
		role := domain.RoleOf(seed)
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		if len(b.adj.BackendsOf(role)) == 0 {
			continue
		}
		b.Build(role.String(), g)
	}
	return g
}

func pluralBackends(n int) string {
	if n == 1 {
		return "1 backend"
	}
	return strconv.Itoa(n) + " backends"
}
