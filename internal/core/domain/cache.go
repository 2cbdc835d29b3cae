package domain

import "time"

// CacheTTL is how long a cached payload stays valid after it was written.
const CacheTTL = 3600 * time.Second

// CacheKind names one of the payload types the result cache holds.
type CacheKind uint8

const (
	// CacheKindRoles is the ordered list of role names.
	CacheKindRoles CacheKind = iota + 1
	// CacheKindAdjacency is the merged role -> dependencies relation.
	CacheKindAdjacency
)

// CacheKinds lists every valid kind.
var CacheKinds = []CacheKind{CacheKindRoles, CacheKindAdjacency}

// Valid reports whether k is a known kind.
func (k CacheKind) Valid() bool {
	return k == CacheKindRoles || k == CacheKindAdjacency
}

// String returns the storage name of the kind.
func (k CacheKind) String() string {
	switch k {
	case CacheKindRoles:
		return "roles"
	case CacheKindAdjacency:
		return "adjacency"
	default:
		return "invalid"
	}
}

// Blob is a raw payload as held by a blob store.
type Blob struct {
	Data      []byte
	WrittenAt time.Time
}

// Fresh reports whether the blob is non-empty and younger than ttl at now.
func (b Blob) Fresh(now time.Time, ttl time.Duration) bool {
	if len(b.Data) == 0 {
		return false
	}
	return now.Sub(b.WrittenAt) < ttl
}
