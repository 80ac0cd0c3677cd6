package repositories

import (
	"context"
	"os"
	"path/filepath"
	"ride-plan-service/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndSeedDefaultCatalogOnce(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	n, err := InitAndSeed(ctx, conn, db.DialectSQLite, "")
	require.NoError(t, err)
	assert.Equal(t, 49, n)

	n, err = InitAndSeed(ctx, conn, db.DialectSQLite, "")
	require.NoError(t, err)
	assert.Zero(t, n, "a populated catalog is left alone")

	rides, err := NewSQLRideRepository(conn, db.DialectSQLite).LoadRides(ctx)
	require.NoError(t, err)
	require.Len(t, rides, 49)
	assert.Equal(t, "L001", rides[0].ID)
}

func TestInitAndSeedFromFile(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	path := filepath.Join(t.TempDir(), "rides.json")
	seed := `[
		{"id":"W1","name":"Splash","type":"water","thrill":6,"duration":5,"queue_time":10,"fatigue":4},
		{"id":"L1","name":"Drop","type":"land","thrill":9,"duration":3,"queue_time":20,"fatigue":8,"min_age":12}
	]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	n, err := InitAndSeed(ctx, conn, db.DialectSQLite, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rides, err := NewSQLRideRepository(conn, db.DialectSQLite).LoadRides(ctx)
	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, "L1", rides[0].ID)
	assert.Equal(t, 12, rides[0].MinAge)
}

func TestInitAndSeedMissingFile(t *testing.T) {
	conn := openTestDB(t)

	_, err := InitAndSeed(context.Background(), conn, db.DialectSQLite, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
