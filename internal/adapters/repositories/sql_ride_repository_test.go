package repositories

import (
	"context"
	"database/sql"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(context.Background(), conn, db.DialectSQLite))
	return conn
}

func TestSQLRideRepositoryCatalogOrder(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	repo := NewSQLRideRepository(conn, db.DialectSQLite)

	rides := []domain.Ride{
		domain.NewRide("K001", "Mini Coaster", domain.RideTypeKids, 3, 5, 10, 2),
		domain.NewRide("W001", "Rainbow Loops", domain.RideTypeWater, 8, 4, 25, 7),
		domain.NewRide("L002", "Sky Wheel", domain.RideTypeLand, 3, 5, 10, 2),
		domain.NewRide("L001", "Mission Interstellar", domain.RideTypeLand, 9, 3, 25, 8),
	}
	require.NoError(t, SeedRides(ctx, conn, db.DialectSQLite, rides))

	got, err := repo.LoadRides(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"L002", "L001", "W001", "K001"}, ids)
}

func TestSQLRideRepositoryRoundTripsFields(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	repo := NewSQLRideRepository(conn, db.DialectSQLite)

	want := domain.Ride{
		ID: "W009", Name: "Wavy and Vertical Fall", Type: domain.RideTypeWater,
		Thrill: 9, Duration: 3, QueueTime: 28, Fatigue: 8,
		Mandatory: true, Restricted: false, VIPAccess: true, AffectedByWeather: true,
		MinWeight: 45, MaxWeight: 120, MinAge: 14, MaxAge: 60,
	}
	require.NoError(t, repo.AddRide(ctx, want))

	got, err := repo.LoadRides(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestSQLRideRepositoryAddRideAppendsAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	repo := NewSQLRideRepository(conn, db.DialectSQLite)

	require.NoError(t, SeedRides(ctx, conn, db.DialectSQLite, []domain.Ride{
		domain.NewRide("L001", "Mission Interstellar", domain.RideTypeLand, 9, 3, 25, 8),
	}))
	require.NoError(t, repo.AddRide(ctx, domain.NewRide("L099", "New Coaster", domain.RideTypeLand, 7, 3, 20, 6)))

	err := repo.AddRide(ctx, domain.NewRide("L001", "Copy", domain.RideTypeLand, 7, 3, 20, 6))
	assert.ErrorIs(t, err, domain.ErrDuplicateRide)

	got, err := repo.LoadRides(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "L001", got[0].ID)
	assert.Equal(t, "L099", got[1].ID)

	n, err := repo.CountRides(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSQLRideRepositorySetRestricted(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	repo := NewSQLRideRepository(conn, db.DialectSQLite)

	a := domain.NewRide("L001", "A", domain.RideTypeLand, 5, 3, 5, 3)
	a.Restricted = true
	b := domain.NewRide("L002", "B", domain.RideTypeLand, 5, 3, 5, 3)
	require.NoError(t, SeedRides(ctx, conn, db.DialectSQLite, []domain.Ride{a, b}))

	require.NoError(t, repo.SetRestricted(ctx, []string{"L002"}))

	got, err := repo.LoadRides(ctx)
	require.NoError(t, err)
	assert.False(t, got[0].Restricted)
	assert.True(t, got[1].Restricted)
}

func TestDefaultRidesSeed(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	rides, err := DefaultRides()
	require.NoError(t, err)
	require.Len(t, rides, 49)

	restricted := 0
	for _, r := range rides {
		if r.Restricted {
			restricted++
		}
	}
	assert.Equal(t, 5, restricted)

	require.NoError(t, SeedRides(ctx, conn, db.DialectSQLite, rides))
	// Seeding twice upserts instead of failing.
	require.NoError(t, SeedRides(ctx, conn, db.DialectSQLite, rides))

	n, err := NewSQLRideRepository(conn, db.DialectSQLite).CountRides(ctx)
	require.NoError(t, err)
	assert.Equal(t, 49, n)
}

func TestParseSeedDefaultsAndValidation(t *testing.T) {
	rides, err := ParseSeed([]byte(`[{"id":"K100","name":"Teacups","type":"kids","thrill":2,"duration":3,"queue_time":4,"fatigue":1}]`))
	require.NoError(t, err)
	require.Len(t, rides, 1)
	assert.Equal(t, domain.DefaultMaxWeight, rides[0].MaxWeight)
	assert.Equal(t, domain.DefaultMaxAge, rides[0].MaxAge)

	_, err = ParseSeed([]byte(`[{"id":"K100","name":"Teacups","type":"kids","thrill":20,"duration":3,"queue_time":4,"fatigue":1}]`))
	assert.ErrorIs(t, err, domain.ErrInvalidRide)

	dup := `[{"id":"A","name":"x","type":"land","thrill":1,"duration":1,"queue_time":0,"fatigue":1},
	         {"id":"A","name":"y","type":"land","thrill":1,"duration":1,"queue_time":0,"fatigue":1}]`
	_, err = ParseSeed([]byte(dup))
	assert.ErrorIs(t, err, domain.ErrDuplicateRide)
}

func TestParseSeedNormalizesRideType(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	rides, err := ParseSeed([]byte(`[
		{"id":"K1","name":"Teacups","type":"kids","thrill":2,"duration":3,"queue_time":4,"fatigue":1},
		{"id":"L1","name":"Drop","type":" Land ","thrill":9,"duration":3,"queue_time":4,"fatigue":8}
	]`))
	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, domain.RideTypeLand, rides[1].Type)
	assert.True(t, rides[1].Type.IsDry())

	require.NoError(t, SeedRides(ctx, conn, db.DialectSQLite, rides))
	got, err := NewSQLRideRepository(conn, db.DialectSQLite).LoadRides(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "L1", got[0].ID, "land rides sort ahead of kids rides")
	assert.Equal(t, domain.RideTypeLand, got[0].Type)
}
