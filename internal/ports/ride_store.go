package ports

import (
	"context"
	"ride-plan-service/internal/domain"
)

// Optional extension of RideCatalog that supports catalog administration.
type RideStore interface {
	RideCatalog
	// Append a ride to the catalog. Returns domain.ErrDuplicateRide when the ID is taken.
	AddRide(ctx context.Context, ride domain.Ride) error
	// Mark exactly the given rides as restricted and clear the flag on all others.
	SetRestricted(ctx context.Context, ids []string) error
}
