// Package domain contains the core domain models for the service dependency graph.
package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Edge is a directed dependency: From depends on To.
type Edge struct {
	From Role
	To   Role
}

// Graph is a directed graph of roles.
// It never holds a self loop or both directions of the same pair.
type Graph struct {
	out map[Role]map[Role]struct{}
	in  map[Role]map[Role]struct{}
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		out: make(map[Role]map[Role]struct{}),
		in:  make(map[Role]map[Role]struct{}),
	}
}

// AddNode adds role to the graph if it is not present yet.
func (g *Graph) AddNode(role Role) {
	if _, ok := g.out[role]; ok {
		return
	}
	g.out[role] = make(map[Role]struct{})
	g.in[role] = make(map[Role]struct{})
}

// AddEdge adds the edge from -> to, creating both nodes as needed.
func (g *Graph) AddEdge(from, to Role) error {
	if from == to {
		return zerr.With(ErrSelfLoop, "role", from.String())
	}
	if g.HasEdge(to, from) {
		err := zerr.With(ErrAntiParallelEdge, "from", from.String())
		return zerr.With(err, "to", to.String())
	}
	g.AddNode(from)
	g.AddNode(to)
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}
	return nil
}

// HasNode reports whether role is in the graph.
func (g *Graph) HasNode(role Role) bool {
	_, ok := g.out[role]
	return ok
}

// HasEdge reports whether the directed edge from -> to exists.
func (g *Graph) HasEdge(from, to Role) bool {
	_, ok := g.out[from][to]
	return ok
}

// Connected reports whether an edge exists between a and b in either direction.
func (g *Graph) Connected(a, b Role) bool {
	return g.HasEdge(a, b) || g.HasEdge(b, a)
}

// RemoveNode deletes role and every edge touching it.
func (g *Graph) RemoveNode(role Role) {
	for to := range g.out[role] {
		delete(g.in[to], role)
	}
	for from := range g.in[role] {
		delete(g.out[from], role)
	}
	delete(g.out, role)
	delete(g.in, role)
}

// Degree returns in-degree plus out-degree of role.
func (g *Graph) Degree(role Role) int {
	return len(g.out[role]) + len(g.in[role])
}

// Successors returns the sorted roles that role depends on.
func (g *Graph) Successors(role Role) []Role {
	out := make([]Role, 0, len(g.out[role]))
	for to := range g.out[role] {
		out = append(out, to)
	}
	SortRoles(out)
	return out
}

// Nodes returns every node sorted by name.
func (g *Graph) Nodes() []Role {
	out := make([]Role, 0, len(g.out))
	for r := range g.out {
		out = append(out, r)
	}
	SortRoles(out)
	return out
}

// Edges returns every edge sorted by source then destination.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for from, set := range g.out {
		for to := range set {
			out = append(out, Edge{From: from, To: to})
		}
	}
	slices.SortFunc(out, func(x, y Edge) int {
		if c := strings.Compare(x.From.String(), y.From.String()); c != 0 {
			return c
		}
		return strings.Compare(x.To.String(), y.To.String())
	})
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.out)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, set := range g.out {
		n += len(set)
	}
	return n
}

// FindCycle looks for a directed cycle and returns ErrCycleDetected
// carrying the cycle path, or nil when the graph is acyclic.
func (g *Graph) FindCycle() error {
	visited := make(map[Role]int, len(g.out)) // 0: unvisited, 1: visiting, 2: visited
	var path []Role

	var visit func(u Role) error
	visit = func(u Role) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.Successors(u) {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for _, name := range g.Nodes() {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []Role, dep Role) error {
	startIdx := slices.Index(path, dep)
	names := make([]string, 0, len(path)-startIdx+1)
	for _, node := range path[startIdx:] {
		names = append(names, node.String())
	}
	names = append(names, dep.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(names, " -> "))
}
