package cache

import (
	"context"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/ports"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

type BreakerSettings struct {
	// Consecutive failures that open the breaker.
	FailureThreshold uint32
	// How long the breaker stays open before letting a probe through.
	OpenTimeout time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{FailureThreshold: 5, OpenTimeout: 30 * time.Second}
}

type snapshot struct {
	rides []domain.Ride
	ok    bool
}

// BreakerCatalogCache stops calling an unhealthy cache after repeated
// failures. While open, every call fails fast with gobreaker.ErrOpenState and
// CachedRideStore goes straight to the store.
type BreakerCatalogCache struct {
	next ports.CatalogCache
	cb   *gobreaker.CircuitBreaker[snapshot]
}

func NewBreakerCatalogCache(next ports.CatalogCache, st BreakerSettings, log *zap.Logger) *BreakerCatalogCache {
	if log == nil {
		log = zap.NewNop()
	}
	if st.FailureThreshold == 0 {
		st.FailureThreshold = DefaultBreakerSettings().FailureThreshold
	}

	cb := gobreaker.NewCircuitBreaker[snapshot](gobreaker.Settings{
		Name:        "catalog-cache",
		MaxRequests: 1,
		Timeout:     st.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= st.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &BreakerCatalogCache{next: next, cb: cb}
}

func (b *BreakerCatalogCache) Get(ctx context.Context) ([]domain.Ride, bool, error) {
	s, err := b.cb.Execute(func() (snapshot, error) {
		rides, ok, err := b.next.Get(ctx)
		return snapshot{rides: rides, ok: ok}, err
	})
	if err != nil {
		return nil, false, err
	}
	return s.rides, s.ok, nil
}

func (b *BreakerCatalogCache) Set(ctx context.Context, rides []domain.Ride, ttl time.Duration) error {
	_, err := b.cb.Execute(func() (snapshot, error) {
		return snapshot{}, b.next.Set(ctx, rides, ttl)
	})
	return err
}

func (b *BreakerCatalogCache) Invalidate(ctx context.Context) error {
	_, err := b.cb.Execute(func() (snapshot, error) {
		return snapshot{}, b.next.Invalidate(ctx)
	})
	return err
}

// State reports the breaker state, mainly for health output and tests.
func (b *BreakerCatalogCache) State() gobreaker.State {
	return b.cb.State()
}
