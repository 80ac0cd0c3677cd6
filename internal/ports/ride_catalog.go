package ports

import (
	"context"
	"ride-plan-service/internal/domain"
)

// Port: a boundary for retrieving the ride catalog from a data source.
type RideCatalog interface {
	// Return a snapshot of every ride in catalog order.
	// Callers may keep and reorder the returned slice.
	LoadRides(ctx context.Context) ([]domain.Ride, error)
}
