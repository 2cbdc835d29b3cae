package metrics

import "go.trai.ch/rolegraph/internal/core/domain"

// NoOp discards every measurement.
type NoOp struct{}

func (NoOp) PageFetched(string) {}
func (NoOp) RuleAttemptFailed() {}
func (NoOp) RoleExhausted() {}
func (NoOp) CacheLookup(domain.CacheKind, bool) {}
func (NoOp) AdjacencySize(int, int) {}
func (NoOp) WriteTextfile(string) error { return nil }
