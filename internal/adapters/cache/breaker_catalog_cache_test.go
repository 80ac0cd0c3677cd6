package cache

import (
	"context"
	"errors"
	"ride-plan-service/internal/domain"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyCache struct {
	calls int
	err   error
	rides []domain.Ride
}

func (f *flakyCache) Get(ctx context.Context) ([]domain.Ride, bool, error) {
	f.calls++
	if f.err != nil {
		return nil, false, f.err
	}
	return f.rides, f.rides != nil, nil
}

func (f *flakyCache) Set(ctx context.Context, rides []domain.Ride, ttl time.Duration) error {
	f.calls++
	return f.err
}

func (f *flakyCache) Invalidate(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestBreakerCatalogCachePassesThroughWhenHealthy(t *testing.T) {
	ctx := context.Background()
	inner := &flakyCache{rides: sampleRides()}
	b := NewBreakerCatalogCache(inner, DefaultBreakerSettings(), nil)

	rides, ok, err := b.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleRides(), rides)

	require.NoError(t, b.Set(ctx, rides, time.Minute))
	require.NoError(t, b.Invalidate(ctx))
	assert.Equal(t, 3, inner.calls)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerCatalogCacheOpensAfterConsecutiveFailures(t *testing.T) {
	ctx := context.Background()
	inner := &flakyCache{err: errors.New("connection refused")}
	b := NewBreakerCatalogCache(inner, BreakerSettings{FailureThreshold: 3, OpenTimeout: time.Hour}, nil)

	for i := 0; i < 3; i++ {
		_, _, err := b.Get(ctx)
		assert.ErrorIs(t, err, inner.err)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, _, err := b.Get(ctx)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.ErrorIs(t, b.Invalidate(ctx), gobreaker.ErrOpenState)
	assert.Equal(t, 3, inner.calls, "an open breaker must not reach the cache")
}

func TestCachedRideStoreWithOpenBreakerUsesStore(t *testing.T) {
	ctx := context.Background()
	inner := &flakyCache{err: errors.New("connection refused")}
	b := NewBreakerCatalogCache(inner, BreakerSettings{FailureThreshold: 1, OpenTimeout: time.Hour}, nil)

	store := &countingStore{MemoryRideCatalog: newMemoryStore()}
	cached := NewCachedRideStore(store, b, time.Minute, nil)

	for i := 0; i < 3; i++ {
		rides, err := cached.LoadRides(ctx)
		require.NoError(t, err)
		assert.Len(t, rides, 2)
	}
	assert.Equal(t, 3, store.loads)
	assert.Equal(t, 1, inner.calls)
}
