package domain

import "go.trai.ch/zerr"

var (
	// ErrSelfLoop is returned when an edge would point a role at itself.
	ErrSelfLoop = zerr.New("self loop edge")

	// ErrAntiParallelEdge is returned when an edge would duplicate an existing edge in the opposite direction.
	ErrAntiParallelEdge = zerr.New("edge already exists in the opposite direction")

	// ErrCycleDetected is returned when a cycle is detected in the dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrInvalidDegreeRange is returned when the pruning thresholds are inverted.
	ErrInvalidDegreeRange = zerr.New("invalid connection range, expected min <= max")

	// ErrInvalidCacheKind is returned when a cache operation names an unknown payload kind.
	ErrInvalidCacheKind = zerr.New("invalid cache kind")

	// ErrCacheMiss is returned when a requested blob is not in the store.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrCacheCorrupt is returned when a stored blob fails its checksum.
	ErrCacheCorrupt = zerr.New("cache entry is corrupt")

	// ErrCacheReadFailed is returned when a stored blob cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheWriteFailed is returned when a blob cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheEncodeFailed is returned when a payload cannot be serialized.
	ErrCacheEncodeFailed = zerr.New("failed to encode cache payload")

	// ErrUnknownCacheBackend is returned when the configured cache backend is not supported.
	ErrUnknownCacheBackend = zerr.New("unknown cache backend, expected 'file' or 'redis'")

	// ErrUpstreamRequestFailed is returned when a request to the inventory API fails.
	ErrUpstreamRequestFailed = zerr.New("inventory API request failed")

	// ErrUpstreamParseFailed is returned when an inventory API response cannot be decoded.
	ErrUpstreamParseFailed = zerr.New("failed to parse inventory API response")

	// ErrRoleListFailed is returned when the role list cannot be enumerated.
	ErrRoleListFailed = zerr.New("failed to list roles")

	// ErrRulesUnavailable is returned when firewall rules of some roles could not be fetched
	// after every retry attempt.
	ErrRulesUnavailable = zerr.New("firewall rules unavailable")

	// ErrCollectionTimeout is returned when collection exceeds its deadline.
	ErrCollectionTimeout = zerr.New("collection deadline exceeded")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrRenderFailed is returned when the graph cannot be written to its output.
	ErrRenderFailed = zerr.New("failed to render graph")

	// ErrSinkUnavailable is returned when the graph database sink is not configured or unreachable.
	ErrSinkUnavailable = zerr.New("graph sink unavailable")

	// ErrSinkWriteFailed is returned when the graph cannot be written to the graph database.
	ErrSinkWriteFailed = zerr.New("failed to write graph to sink")
)
