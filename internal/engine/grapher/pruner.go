package grapher

import (
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// ValidateRange checks that minDegree <= maxDegree. A negative minDegree
// disables the second pass.
func ValidateRange(minDegree, maxDegree int) error {
	if maxDegree < minDegree {
		err := zerr.With(domain.ErrInvalidDegreeRange, "min", minDegree)
		return zerr.With(err, "max", maxDegree)
	}
	return nil
}

// Prune removes hubs and then leaves from g in place and returns it.
//
// The first pass drops every node whose degree exceeds maxDegree. Degrees
// are then recomputed and the second pass drops every node whose degree is
// at most minDegree, including nodes orphaned by the first pass.
func Prune(g *domain.Graph, minDegree, maxDegree int) (*domain.Graph, error) {
	if err := ValidateRange(minDegree, maxDegree); err != nil {
		return nil, err
	}

	removeWhere(g, func(degree int) bool { return degree > maxDegree })
	removeWhere(g, func(degree int) bool { return degree <= minDegree })
	return g, nil
}

// removeWhere evaluates drop against the degrees before any removal.
func removeWhere(g *domain.Graph, drop func(degree int) bool) {
	var doomed []domain.Role
	for _, role := range g.Nodes() {
		if drop(g.Degree(role)) {
			doomed = append(doomed, role)
		}
	}
	for _, role := range doomed {
		g.RemoveNode(role)
	}
}
