// Package rediscache implements the Redis-backed result cache store.
package rediscache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	keyPrefix      = "rolegraph:cache:"
	fieldData      = "data"
	fieldWrittenAt = "written_at"
)

// Store implements ports.BlobStore with one Redis hash per cache kind.
// Keys expire after the cache TTL so stale entries disappear on their own.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.BlobStore = (*Store)(nil)

// New creates a Store over an existing client.
func New(client *redis.Client) *Store {
	return &Store{client: client, ttl: domain.CacheTTL, now: time.Now}
}

// Dial connects to addr and verifies the connection.
func Dial(ctx context.Context, addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to connect to redis"), "addr", addr)
	}
	return New(client), nil
}

// WithClock overrides the clock used to timestamp writes.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func key(kind domain.CacheKind) string {
	return keyPrefix + kind.String()
}

// Load returns the blob stored for kind.
func (s *Store) Load(ctx context.Context, kind domain.CacheKind) (domain.Blob, error) {
	if !kind.Valid() {
		return domain.Blob{}, zerr.With(domain.ErrInvalidCacheKind, "kind", int(kind))
	}

	fields, err := s.client.HGetAll(ctx, key(kind)).Result()
	if err != nil {
		return domain.Blob{}, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key(kind))
	}
	if len(fields) == 0 {
		return domain.Blob{}, domain.ErrCacheMiss
	}

	data, ok := fields[fieldData]
	if !ok {
		return domain.Blob{}, zerr.With(domain.ErrCacheCorrupt, "key", key(kind))
	}
	nanos, err := strconv.ParseInt(fields[fieldWrittenAt], 10, 64)
	if err != nil {
		return domain.Blob{}, zerr.With(domain.ErrCacheCorrupt, "key", key(kind))
	}

	return domain.Blob{Data: []byte(data), WrittenAt: time.Unix(0, nanos)}, nil
}

// Save replaces the blob stored for kind and refreshes its expiry.
func (s *Store) Save(ctx context.Context, kind domain.CacheKind, data []byte) error {
	if !kind.Valid() {
		return zerr.With(domain.ErrInvalidCacheKind, "kind", int(kind))
	}

	k := key(kind)
	writtenAt := strconv.FormatInt(s.now().UnixNano(), 10)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HSet(ctx, k, fieldData, data, fieldWrittenAt, writtenAt)
		pipe.Expire(ctx, k, s.ttl)
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache entry"), "key", k)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
