package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/platform/db"
	"strings"
)

// LoadSeed returns the rides in seedPath, or the built-in catalog when
// seedPath is empty.
func LoadSeed(seedPath string) ([]domain.Ride, error) {
	if strings.TrimSpace(seedPath) == "" {
		return DefaultRides()
	}
	return LoadSeedFile(seedPath)
}

// InitAndSeed creates the schema and seeds an empty catalog.
// It returns the number of rides seeded, which is zero when rides already exist.
func InitAndSeed(ctx context.Context, conn *sql.DB, dialect db.Dialect, seedPath string) (int, error) {
	if err := InitSchema(ctx, conn, dialect); err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}

	n, err := NewSQLRideRepository(conn, dialect).CountRides(ctx)
	if err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	rides, err := LoadSeed(seedPath)
	if err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}
	if err := SeedRides(ctx, conn, dialect, rides); err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}

	return len(rides), nil
}
