package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"ride-plan-service/internal/platform/db"
)

// Initialize the ride catalog schema. Statements are idempotent.
func InitSchema(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRidesQuery := `
	CREATE TABLE IF NOT EXISTS rides (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		ride_type TEXT NOT NULL,
		thrill INTEGER NOT NULL,
		duration INTEGER NOT NULL,
		queue_time INTEGER NOT NULL,
		fatigue INTEGER NOT NULL,
		mandatory BOOLEAN NOT NULL DEFAULT FALSE,
		restricted BOOLEAN NOT NULL DEFAULT FALSE,
		vip_access BOOLEAN NOT NULL DEFAULT FALSE,
		affected_by_weather BOOLEAN NOT NULL DEFAULT FALSE,
		min_weight INTEGER NOT NULL DEFAULT 0,
		max_weight INTEGER NOT NULL DEFAULT 200,
		min_age INTEGER NOT NULL DEFAULT 0,
		max_age INTEGER NOT NULL DEFAULT 100,
		catalog_seq INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_rides_type_seq
	ON rides(ride_type, catalog_seq);
	`

	statements := []string{
		createRidesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d (%s): %w", i+1, dialect, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
