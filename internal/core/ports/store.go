package ports

import (
	"context"

	"go.trai.ch/rolegraph/internal/core/domain"
)

// BlobStore holds one durable blob per cache kind.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BlobStore interface {
	// Load returns the blob stored for kind together with its write time.
	// It returns domain.ErrCacheMiss when nothing is stored.
	Load(ctx context.Context, kind domain.CacheKind) (domain.Blob, error)

	// Save replaces the blob stored for kind, timestamped at write time.
	Save(ctx context.Context, kind domain.CacheKind, data []byte) error

	// Close releases the resources held by the store.
	Close() error
}
