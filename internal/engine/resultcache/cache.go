// Package resultcache gates collected payloads behind a fixed time-to-live.
package resultcache

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"time"

	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache reads and writes the role list and the adjacency relation.
// Every read failure is a miss; only writes can fail a run.
type Cache struct {
	store   ports.BlobStore
	logger  ports.Logger
	metrics ports.Metrics
	ttl     time.Duration
	now     func() time.Time
}

// New creates a Cache over store.
func New(store ports.BlobStore, log ports.Logger, metrics ports.Metrics) *Cache {
	return &Cache{
		store:   store,
		logger:  log,
		metrics: metrics,
		ttl:     domain.CacheTTL,
		now:     time.Now,
	}
}

// WithClock overrides the clock used for the freshness check.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

// ReadRoles returns the cached role list if a fresh entry exists.
func (c *Cache) ReadRoles(ctx context.Context) ([]string, bool, error) {
	var roles []string
	ok, err := c.read(ctx, domain.CacheKindRoles, &roles)
	if !ok || err != nil {
		return nil, false, err
	}
	return roles, true, nil
}

// ReadAdjacency returns the cached adjacency relation if a fresh entry exists.
func (c *Cache) ReadAdjacency(ctx context.Context) (*domain.Adjacency, bool, error) {
	adj := domain.NewAdjacency()
	ok, err := c.read(ctx, domain.CacheKindAdjacency, adj)
	if !ok || err != nil {
		return nil, false, err
	}
	return adj, true, nil
}

// WriteRoles persists the role list.
func (c *Cache) WriteRoles(ctx context.Context, roles []string) error {
	return c.write(ctx, domain.CacheKindRoles, roles)
}

// WriteAdjacency persists the adjacency relation.
func (c *Cache) WriteAdjacency(ctx context.Context, adj *domain.Adjacency) error {
	return c.write(ctx, domain.CacheKindAdjacency, adj)
}

// Read decodes the entry of kind into out.
// It reports false when the entry is absent, empty, stale or unreadable.
func (c *Cache) Read(ctx context.Context, kind domain.CacheKind, out any) (bool, error) {
	return c.read(ctx, kind, out)
}

// Write encodes payload and stores it under kind.
func (c *Cache) Write(ctx context.Context, kind domain.CacheKind, payload any) error {
	return c.write(ctx, kind, payload)
}

func (c *Cache) read(ctx context.Context, kind domain.CacheKind, out any) (bool, error) {
	if !kind.Valid() {
		return false, zerr.With(domain.ErrInvalidCacheKind, "kind", int(kind))
	}

	hit, err := c.load(ctx, kind, out)
	if err != nil {
		c.logger.Warn("ignoring unreadable " + kind.String() + " cache: " + err.Error())
	}
	c.metrics.CacheLookup(kind, hit)
	return hit, nil
}

func (c *Cache) load(ctx context.Context, kind domain.CacheKind, out any) (bool, error) {
	blob, err := c.store.Load(ctx, kind)
	if errors.Is(err, domain.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !blob.Fresh(c.now(), c.ttl) {
		c.logger.Debug(kind.String() + " cache is empty or expired")
		return false, nil
	}
	if err := gob.NewDecoder(bytes.NewReader(blob.Data)).Decode(out); err != nil {
		return false, zerr.Wrap(err, domain.ErrCacheCorrupt.Error())
	}
	return true, nil
}

func (c *Cache) write(ctx context.Context, kind domain.CacheKind, payload any) error {
	if !kind.Valid() {
		return zerr.With(domain.ErrInvalidCacheKind, "kind", int(kind))
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(payload); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error()), "kind", kind.String())
	}
	if err := c.store.Save(ctx, kind, buf.Bytes()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "kind", kind.String())
	}
	return nil
}
