package repositories

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/platform/db"

	"github.com/goccy/go-json"
)

//go:embed seeds/rides.json
var defaultSeedJSON []byte

// RideSeed is the on-disk representation of a catalog entry.
// Missing age and weight bounds fall back to the domain defaults.
type RideSeed struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Thrill            int    `json:"thrill"`
	Duration          int    `json:"duration"`
	QueueTime         int    `json:"queue_time"`
	Fatigue           int    `json:"fatigue"`
	Mandatory         bool   `json:"mandatory"`
	Restricted        bool   `json:"restricted"`
	VIPAccess         bool   `json:"vip_access"`
	AffectedByWeather bool   `json:"affected_by_weather"`
	MinWeight         *int   `json:"min_weight"`
	MaxWeight         *int   `json:"max_weight"`
	MinAge            *int   `json:"min_age"`
	MaxAge            *int   `json:"max_age"`
}

func (s RideSeed) toRide() domain.Ride {
	rideType := domain.RideType(s.Type)
	if t, ok := domain.ParseRideType(s.Type); ok {
		rideType = t
	}
	r := domain.NewRide(s.ID, s.Name, rideType, s.Thrill, s.Duration, s.QueueTime, s.Fatigue)
	r.Mandatory = s.Mandatory
	r.Restricted = s.Restricted
	r.VIPAccess = s.VIPAccess
	r.AffectedByWeather = s.AffectedByWeather
	if s.MinWeight != nil {
		r.MinWeight = *s.MinWeight
	}
	if s.MaxWeight != nil {
		r.MaxWeight = *s.MaxWeight
	}
	if s.MinAge != nil {
		r.MinAge = *s.MinAge
	}
	if s.MaxAge != nil {
		r.MaxAge = *s.MaxAge
	}
	return r
}

// DefaultRides returns the built-in park catalog.
func DefaultRides() ([]domain.Ride, error) {
	rides, err := ParseSeed(defaultSeedJSON)
	if err != nil {
		return nil, fmt.Errorf("default rides: %w", err)
	}
	return rides, nil
}

// LoadSeedFile reads a ride catalog from a JSON file.
func LoadSeedFile(path string) ([]domain.Ride, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	rides, err := ParseSeed(bytes)
	if err != nil {
		return nil, fmt.Errorf("load seed %q: %w", path, err)
	}
	return rides, nil
}

// ParseSeed decodes and validates a JSON array of rides.
func ParseSeed(data []byte) ([]domain.Ride, error) {
	var seeds []RideSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse seed: parse json: %w", err)
	}

	seen := make(map[string]struct{}, len(seeds))
	rides := make([]domain.Ride, 0, len(seeds))
	for i, s := range seeds {
		r := s.toRide()
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("parse seed: item at index %d: %w", i+1, err)
		}
		if _, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("parse seed: item at index %d: %q: %w", i+1, r.ID, domain.ErrDuplicateRide)
		}
		seen[r.ID] = struct{}{}
		rides = append(rides, r)
	}

	return rides, nil
}

// SeedRides upserts rides, assigning catalog positions in slice order.
func SeedRides(ctx context.Context, conn *sql.DB, dialect db.Dialect, rides []domain.Ride) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed rides: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO rides (` + rideColumns + `, catalog_seq)
	VALUES (` + dialect.Placeholders(1, rideColumnCount+1) + `)
	ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		ride_type = excluded.ride_type,
		thrill = excluded.thrill,
		duration = excluded.duration,
		queue_time = excluded.queue_time,
		fatigue = excluded.fatigue,
		mandatory = excluded.mandatory,
		restricted = excluded.restricted,
		vip_access = excluded.vip_access,
		affected_by_weather = excluded.affected_by_weather,
		min_weight = excluded.min_weight,
		max_weight = excluded.max_weight,
		min_age = excluded.min_age,
		max_age = excluded.max_age,
		catalog_seq = excluded.catalog_seq;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed rides: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rides {
		args := append(rideArgs(r), i+1)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("seed rides: insert id=%q: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed rides: commit tx: %w", err)
	}

	return nil
}
