// Package blobstore selects the cache backend named by the configuration.
package blobstore

import (
	"context"

	"go.trai.ch/rolegraph/internal/adapters/cas"
	"go.trai.ch/rolegraph/internal/adapters/rediscache"
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.BlobStoreFactory.
type Factory struct{}

var _ ports.BlobStoreFactory = Factory{}

// NewBlobStore opens the file or Redis store described by cfg.
func (Factory) NewBlobStore(ctx context.Context, cfg domain.CacheConfig) (ports.BlobStore, error) {
	switch cfg.Backend {
	case "", domain.CacheBackendFile:
		dir := cfg.Dir
		if dir == "" {
			dir = domain.DefaultCachePath()
		}
		return cas.NewStore(dir), nil
	case domain.CacheBackendRedis:
		store, err := rediscache.Dial(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, zerr.With(domain.ErrUnknownCacheBackend, "backend", cfg.Backend)
	}
}
