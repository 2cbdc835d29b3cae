package domain

import (
	"bytes"
	"encoding/gob"
	"slices"
	"strings"
)

// Adjacency maps each role to the set of roles it depends on.
// It is not safe for concurrent mutation; the collector funnels all writes
// through a single goroutine.
type Adjacency struct {
	edges map[Role]map[Role]struct{}
}

// NewAdjacency creates an empty Adjacency.
func NewAdjacency() *Adjacency {
	return &Adjacency{edges: make(map[Role]map[Role]struct{})}
}

// Add records that from depends on to. Both names are normalized and
// names that normalize to the empty string are ignored.
func (a *Adjacency) Add(from, to string) {
	f, t := RoleOf(from), RoleOf(to)
	if f.String() == "" || t.String() == "" {
		return
	}
	a.AddRole(f, t)
}

// AddRole records that from depends on to without normalizing.
func (a *Adjacency) AddRole(from, to Role) {
	set, ok := a.edges[from]
	if !ok {
		set = make(map[Role]struct{})
		a.edges[from] = set
	}
	set[to] = struct{}{}
}

// Merge unions every edge of other into a.
func (a *Adjacency) Merge(other *Adjacency) {
	if other == nil {
		return
	}
	for from, set := range other.edges {
		for to := range set {
			a.AddRole(from, to)
		}
	}
}

// Backends returns the sorted dependencies of the normalized role name.
// An unknown role yields an empty slice.
func (a *Adjacency) Backends(name string) []Role {
	return a.BackendsOf(RoleOf(name))
}

// BackendsOf returns the sorted dependencies of role.
func (a *Adjacency) BackendsOf(role Role) []Role {
	set := a.edges[role]
	out := make([]Role, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	SortRoles(out)
	return out
}

// Has reports whether the edge from -> to is present.
func (a *Adjacency) Has(from, to Role) bool {
	_, ok := a.edges[from][to]
	return ok
}

// Roles returns every role that has at least one dependency, sorted.
func (a *Adjacency) Roles() []Role {
	out := make([]Role, 0, len(a.edges))
	for r := range a.edges {
		out = append(out, r)
	}
	SortRoles(out)
	return out
}

// Len returns the number of roles with dependencies.
func (a *Adjacency) Len() int {
	return len(a.edges)
}

// EdgeCount returns the total number of role -> dependency pairs.
func (a *Adjacency) EdgeCount() int {
	n := 0
	for _, set := range a.edges {
		n += len(set)
	}
	return n
}

// Equal reports whether both relations hold the same edges.
func (a *Adjacency) Equal(other *Adjacency) bool {
	if a.Len() != other.Len() || a.EdgeCount() != other.EdgeCount() {
		return false
	}
	for from, set := range a.edges {
		for to := range set {
			if !other.Has(from, to) {
				return false
			}
		}
	}
	return true
}

// toStrings flattens the relation into sorted string slices for encoding.
func (a *Adjacency) toStrings() map[string][]string {
	out := make(map[string][]string, len(a.edges))
	for from := range a.edges {
		deps := a.BackendsOf(from)
		names := make([]string, len(deps))
		for i, d := range deps {
			names[i] = d.String()
		}
		out[from.String()] = names
	}
	return out
}

// GobEncode implements gob.GobEncoder.
// Sets are written as sorted lists so that decoding rebuilds the same sets.
func (a *Adjacency) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(a.toStrings()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (a *Adjacency) GobDecode(data []byte) error {
	var raw map[string][]string
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return err
	}
	a.edges = make(map[Role]map[Role]struct{}, len(raw))
	for from, deps := range raw {
		fromRole := NewRole(from)
		for _, to := range deps {
			a.AddRole(fromRole, NewRole(to))
		}
		if len(deps) == 0 {
			a.edges[fromRole] = make(map[Role]struct{})
		}
	}
	return nil
}

// SortRoles sorts roles by name in place.
func SortRoles(roles []Role) {
	slices.SortFunc(roles, func(x, y Role) int {
		return strings.Compare(x.String(), y.String())
	})
}
