package domain_test

import (
	"testing"
	"time"

	"go.trai.ch/rolegraph/internal/core/domain"
)

func TestCacheKind(t *testing.T) {
	for _, k := range domain.CacheKinds {
		if !k.Valid() {
			t.Errorf("expected %s to be valid", k)
		}
	}
	if domain.CacheKindRoles.String() != "roles" || domain.CacheKindAdjacency.String() != "adjacency" {
		t.Error("unexpected cache kind names")
	}

	var zero domain.CacheKind
	if zero.Valid() || domain.CacheKind(42).Valid() {
		t.Error("expected unknown kinds to be invalid")
	}
}

func TestBlob_Fresh(t *testing.T) {
	written := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := domain.Blob{Data: []byte("x"), WrittenAt: written}

	if !b.Fresh(written.Add(3000*time.Second), domain.CacheTTL) {
		t.Error("expected blob to be fresh at T+3000s")
	}
	if b.Fresh(written.Add(3700*time.Second), domain.CacheTTL) {
		t.Error("expected blob to be stale at T+3700s")
	}
	if b.Fresh(written.Add(domain.CacheTTL), domain.CacheTTL) {
		t.Error("expected blob to be stale exactly at the TTL")
	}
	if (domain.Blob{WrittenAt: written}).Fresh(written, domain.CacheTTL) {
		t.Error("expected empty blob to never be fresh")
	}
}
