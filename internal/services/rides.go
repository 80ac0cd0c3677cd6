package services

import (
	"context"
	"fmt"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/ports"
	"slices"
	"strings"
)

// DefaultRestrictedRides are closed to all visitors in the default park setup.
var DefaultRestrictedRides = []string{"L007", "L012", "W002", "W010", "K011"}

// AddRide validates ride and appends it to the catalog.
func AddRide(ctx context.Context, ride domain.Ride, store ports.RideStore) error {
	ride.ID = strings.TrimSpace(ride.ID)
	ride.Name = strings.TrimSpace(ride.Name)

	if err := ride.Validate(); err != nil {
		return fmt.Errorf("add ride: %w", err)
	}

	if err := store.AddRide(ctx, ride); err != nil {
		return fmt.Errorf("add ride %q: %w", ride.ID, err)
	}

	return nil
}

// RestrictRides makes ids the complete set of restricted rides and returns
// how many rides are now restricted. Blank and repeated IDs are ignored.
// Unknown IDs are reported with domain.ErrRideNotFound and nothing is changed.
func RestrictRides(ctx context.Context, ids []string, store ports.RideStore) (int, error) {
	rides, err := store.LoadRides(ctx)
	if err != nil {
		return 0, fmt.Errorf("restrict rides: load rides: %w", err)
	}

	known := make(map[string]struct{}, len(rides))
	for _, r := range rides {
		known[r.ID] = struct{}{}
	}

	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(clean, id) {
			continue
		}
		if _, ok := known[id]; !ok {
			return 0, fmt.Errorf("restrict rides: %w: %s", domain.ErrRideNotFound, id)
		}
		clean = append(clean, id)
	}

	if err := store.SetRestricted(ctx, clean); err != nil {
		return 0, fmt.Errorf("restrict rides: %w", err)
	}

	return len(clean), nil
}
