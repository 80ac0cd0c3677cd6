package catalog

import (
	"context"
	"fmt"
	"ride-plan-service/internal/domain"
	"slices"
	"sync"
)

// MemoryRideCatalog is an in-process RideStore. Every LoadRides call returns
// an independent copy, so callers can plan against it while others write.
type MemoryRideCatalog struct {
	mu    sync.RWMutex
	rides []domain.Ride
}

func NewMemoryRideCatalog(rides []domain.Ride) *MemoryRideCatalog {
	return &MemoryRideCatalog{rides: slices.Clone(rides)}
}

func (m *MemoryRideCatalog) LoadRides(ctx context.Context) ([]domain.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.rides), nil
}

func (m *MemoryRideCatalog) AddRide(ctx context.Context, ride domain.Ride) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.rides {
		if r.ID == ride.ID {
			return fmt.Errorf("memory catalog: ride %q: %w", ride.ID, domain.ErrDuplicateRide)
		}
	}
	m.rides = append(m.rides, ride)
	return nil
}

func (m *MemoryRideCatalog) SetRestricted(ctx context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.rides {
		m.rides[i].Restricted = slices.Contains(ids, m.rides[i].ID)
	}
	return nil
}
