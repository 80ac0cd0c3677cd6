package cache

import (
	"context"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/platform/obs"
	"ride-plan-service/internal/ports"
	"time"

	"go.uber.org/zap"
)

// CachedRideStore serves catalog snapshots from a CatalogCache and falls
// back to the underlying store on a miss. Writes go to the store first and
// then drop the cached snapshot.
//
// Cache failures are logged and never fail a request; the store stays the
// source of truth.
type CachedRideStore struct {
	store ports.RideStore
	cache ports.CatalogCache
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedRideStore(store ports.RideStore, cache ports.CatalogCache, ttl time.Duration, log *zap.Logger) *CachedRideStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedRideStore{store: store, cache: cache, ttl: ttl, log: log}
}

func (c *CachedRideStore) LoadRides(ctx context.Context) (_ []domain.Ride, err error) {
	defer obs.Time(ctx, "catalog.cache.LoadRides")(&err)

	rides, ok, err := c.cache.Get(ctx)
	if err != nil {
		c.log.Warn("catalog cache read failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
	}
	if err == nil && ok {
		obs.CatalogCacheLookups.WithLabelValues("hit").Inc()
		return rides, nil
	}
	obs.CatalogCacheLookups.WithLabelValues("miss").Inc()

	rides, err = c.store.LoadRides(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, rides, c.ttl); err != nil {
		c.log.Warn("catalog cache write failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
	}

	return rides, nil
}

func (c *CachedRideStore) AddRide(ctx context.Context, ride domain.Ride) error {
	if err := c.store.AddRide(ctx, ride); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRideStore) SetRestricted(ctx context.Context, ids []string) error {
	if err := c.store.SetRestricted(ctx, ids); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRideStore) invalidate(ctx context.Context) {
	if err := c.cache.Invalidate(ctx); err != nil {
		c.log.Warn("catalog cache invalidation failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
	}
}
