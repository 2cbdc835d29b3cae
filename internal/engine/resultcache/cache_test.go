package resultcache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rolegraph/internal/adapters/cas"
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/rolegraph/internal/core/ports/mocks"
	"go.trai.ch/rolegraph/internal/engine/resultcache"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cache   *resultcache.Cache
	logger  *mocks.MockLogger
	metrics *mocks.MockMetrics
	now     time.Time
}

func newFixture(t *testing.T, store ports.BlobStore) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		logger:  mocks.NewMockLogger(ctrl),
		metrics: mocks.NewMockMetrics(ctrl),
		now:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.metrics.EXPECT().CacheLookup(gomock.Any(), gomock.Any()).AnyTimes()
	f.cache = resultcache.New(store, f.logger, f.metrics).WithClock(func() time.Time { return f.now })
	return f
}

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cas.NewStore(t.TempDir()))

	roles := []string{"checkout", "api", "auth"}
	require.NoError(t, f.cache.WriteRoles(ctx, roles))

	adj := domain.NewAdjacency()
	adj.Add("api", "auth")
	adj.Add("checkout", "payments")
	require.NoError(t, f.cache.WriteAdjacency(ctx, adj))

	// cas timestamps writes with the real file mtime.
	f.now = time.Now()

	gotRoles, ok, err := f.cache.ReadRoles(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, roles, gotRoles)

	gotAdj, ok, err := f.cache.ReadAdjacency(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, gotAdj.Equal(adj))
}

func TestCache_TTL(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBlobStore(ctrl)
	f := newFixture(t, store)

	written := f.now
	var saved []byte
	store.EXPECT().Save(ctx, domain.CacheKindRoles, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.CacheKind, data []byte) error {
			saved = data
			return nil
		})
	store.EXPECT().Load(ctx, domain.CacheKindRoles).DoAndReturn(
		func(context.Context, domain.CacheKind) (domain.Blob, error) {
			return domain.Blob{Data: saved, WrittenAt: written}, nil
		}).Times(2)

	require.NoError(t, f.cache.WriteRoles(ctx, []string{"api"}))

	f.now = written.Add(3000 * time.Second)
	roles, ok, err := f.cache.ReadRoles(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"api"}, roles)

	f.now = written.Add(3700 * time.Second)
	roles, ok, err = f.cache.ReadRoles(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, roles)
}

func TestCache_MissesAreNotErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBlobStore(ctrl)
	f := newFixture(t, store)

	gomock.InOrder(
		store.EXPECT().Load(ctx, domain.CacheKindAdjacency).Return(domain.Blob{}, domain.ErrCacheMiss),
		store.EXPECT().Load(ctx, domain.CacheKindAdjacency).Return(domain.Blob{WrittenAt: f.now}, nil),
		store.EXPECT().Load(ctx, domain.CacheKindAdjacency).Return(domain.Blob{Data: []byte("garbage"), WrittenAt: f.now}, nil),
		store.EXPECT().Load(ctx, domain.CacheKindAdjacency).Return(domain.Blob{}, domain.ErrCacheCorrupt),
	)
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	for range 4 {
		adj, ok, err := f.cache.ReadAdjacency(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, adj)
	}
}

func TestCache_WriteFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBlobStore(ctrl)
	f := newFixture(t, store)

	store.EXPECT().Save(ctx, domain.CacheKindAdjacency, gomock.Any()).Return(errors.New("disk full"))

	err := f.cache.WriteAdjacency(ctx, domain.NewAdjacency())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to write cache")
}

func TestCache_InvalidKind(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := newFixture(t, mocks.NewMockBlobStore(ctrl))

	var out []string
	_, err := f.cache.Read(ctx, domain.CacheKind(0), &out)
	assert.ErrorContains(t, err, "invalid cache kind")

	err = f.cache.Write(ctx, domain.CacheKind(7), out)
	assert.ErrorContains(t, err, "invalid cache kind")
}
