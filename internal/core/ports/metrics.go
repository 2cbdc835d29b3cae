package ports

import "go.trai.ch/rolegraph/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

// Metrics counts collector activity.
type Metrics interface {
	// PageFetched counts a successfully fetched page of endpoint.
	PageFetched(endpoint string)
	// RuleAttemptFailed counts a failed attempt at fetching a role's rules.
	RuleAttemptFailed()
	// RoleExhausted counts a role whose rules could not be fetched within the retry budget.
	RoleExhausted()
	// CacheLookup counts a cache read of kind as a hit or a miss.
	CacheLookup(kind domain.CacheKind, hit bool)
	// AdjacencySize records the size of the merged relation.
	AdjacencySize(roles, edges int)
	// WriteTextfile exports the collected metrics in the Prometheus text format.
	WriteTextfile(path string) error
}
