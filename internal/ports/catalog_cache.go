package ports

import (
	"context"
	"ride-plan-service/internal/domain"
	"time"
)

// Contract for a shared cache of catalog snapshots.
type CatalogCache interface {
	// Return the cached snapshot and whether it was present.
	Get(ctx context.Context) ([]domain.Ride, bool, error)
	Set(ctx context.Context, rides []domain.Ride, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
