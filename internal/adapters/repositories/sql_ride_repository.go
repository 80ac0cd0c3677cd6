package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/platform/db"
	"ride-plan-service/internal/platform/obs"
)

const rideColumns = `id, name, ride_type, thrill, duration, queue_time, fatigue,
		mandatory, restricted, vip_access, affected_by_weather,
		min_weight, max_weight, min_age, max_age`

const rideColumnCount = 15

func rideArgs(r domain.Ride) []any {
	return []any{
		r.ID, r.Name, string(r.Type), r.Thrill, r.Duration, r.QueueTime, r.Fatigue,
		r.Mandatory, r.Restricted, r.VIPAccess, r.AffectedByWeather,
		r.MinWeight, r.MaxWeight, r.MinAge, r.MaxAge,
	}
}

// SQL-backed implementation of the RideStore port.
// The same queries run on SQLite and Postgres; Dialect only changes placeholders.
type SQLRideRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLRideRepository(conn *sql.DB, dialect db.Dialect) *SQLRideRepository {
	return &SQLRideRepository{DB: conn, Dialect: dialect}
}

// Return every ride, land first, then water, then kids, each in insertion order.
func (s *SQLRideRepository) LoadRides(ctx context.Context) (_ []domain.Ride, err error) {
	defer obs.Time(ctx, "rides.LoadRides")(&err)

	if s.DB == nil {
		return nil, errors.New("sql ride repository: DB is nil")
	}

	query := `
	SELECT ` + rideColumns + `
	FROM rides
	ORDER BY
		CASE ride_type WHEN 'land' THEN 0 WHEN 'water' THEN 1 ELSE 2 END,
		catalog_seq,
		id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load rides: query rides table: %w", err)
	}
	defer rows.Close()

	rides := make([]domain.Ride, 0, 64)
	for rows.Next() {
		var r domain.Ride
		var rideType string
		err := rows.Scan(
			&r.ID, &r.Name, &rideType, &r.Thrill, &r.Duration, &r.QueueTime, &r.Fatigue,
			&r.Mandatory, &r.Restricted, &r.VIPAccess, &r.AffectedByWeather,
			&r.MinWeight, &r.MaxWeight, &r.MinAge, &r.MaxAge,
		)
		if err != nil {
			return nil, fmt.Errorf("load rides: scan row: %w", err)
		}
		r.Type = domain.RideType(rideType)
		rides = append(rides, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load rides: row iteration: %w", err)
	}

	return rides, nil
}

// Insert a new ride at the end of the catalog.
func (s *SQLRideRepository) AddRide(ctx context.Context, ride domain.Ride) error {
	if s.DB == nil {
		return errors.New("sql ride repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("add ride: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rides WHERE id = `+s.Dialect.Placeholder(1), ride.ID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("add ride: check id: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("add ride: id %q: %w", ride.ID, domain.ErrDuplicateRide)
	}

	var seq int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(catalog_seq), 0) FROM rides`).Scan(&seq); err != nil {
		return fmt.Errorf("add ride: next position: %w", err)
	}

	query := `
	INSERT INTO rides (` + rideColumns + `, catalog_seq)
	VALUES (` + s.Dialect.Placeholders(1, rideColumnCount+1) + `);
	`
	args := append(rideArgs(ride), seq+1)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("add ride: insert id=%q: %w", ride.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("add ride: commit tx: %w", err)
	}

	return nil
}

// Make ids the only restricted rides.
func (s *SQLRideRepository) SetRestricted(ctx context.Context, ids []string) error {
	if s.DB == nil {
		return errors.New("sql ride repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("set restricted: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE rides SET restricted = `+s.Dialect.Placeholder(1), false); err != nil {
		return fmt.Errorf("set restricted: clear flags: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE rides SET restricted = `+s.Dialect.Placeholder(1)+` WHERE id = `+s.Dialect.Placeholder(2),
	)
	if err != nil {
		return fmt.Errorf("set restricted: prepare update: %w", err)
	}
	defer stmt.Close()

	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, true, id); err != nil {
			return fmt.Errorf("set restricted: id=%q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("set restricted: commit tx: %w", err)
	}

	return nil
}

// Return the number of rides in the catalog.
func (s *SQLRideRepository) CountRides(ctx context.Context) (int, error) {
	if s.DB == nil {
		return 0, errors.New("sql ride repository: DB is nil")
	}

	var n int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM rides`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rides: %w", err)
	}
	return n, nil
}

// Ping reports whether the database is reachable.
func (s *SQLRideRepository) Ping(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("sql ride repository: DB is nil")
	}
	return s.DB.PingContext(ctx)
}
