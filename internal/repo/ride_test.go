package repo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideshare/rides-api/internal/domain"
	"github.com/rideshare/rides-api/internal/repo"
	"github.com/rideshare/rides-api/testutil"
)

// newTestRepo returns a RideRepo backed by a transaction that is rolled back
// when the test finishes. The table is emptied inside the transaction so
// counts and ordering do not depend on rows other tests committed.
//
// Requires TEST_DATABASE_URL; TestMain applies the migrations.
func newTestRepo(t *testing.T) repo.RideRepo {
	t.Helper()
	tx := testutil.NewTx(t)

	_, err := tx.Exec(context.Background(), "DELETE FROM rides")
	require.NoError(t, err, "empty rides table")

	return repo.NewRideRepo(tx)
}

// rideFixture returns a valid domain.RideCreate. Callers can override
// individual fields after calling this function.
func rideFixture(rider string) domain.RideCreate {
	return domain.RideCreate{
		StartLatitude:  50,
		StartLongitude: 5,
		EndLatitude:    50,
		EndLongitude:   5,
		RiderName:      rider,
		DriverName:     "Driver",
		DriverVehicle:  "Car",
	}
}

func insertN(t *testing.T, r repo.RideRepo, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		id, err := r.Insert(context.Background(), rideFixture("Rider "+string(rune('A'+i))))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func rideIDs(rides []domain.Ride) []int64 {
	out := make([]int64, 0, len(rides))
	for _, r := range rides {
		out = append(out, r.RideID)
	}
	return out
}

func TestRideRepo_InsertAndFindByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	input := domain.RideCreate{
		StartLatitude:  51.5074,
		StartLongitude: -0.1278,
		EndLatitude:    48.8566,
		EndLongitude:   2.3522,
		RiderName:      "Alice",
		DriverName:     "Bob",
		DriverVehicle:  "Blue Prius",
	}

	id, err := r.Insert(ctx, input)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := r.FindByID(ctx, id)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].RideID)
	assert.Equal(t, input.StartLatitude, got[0].StartLatitude)
	assert.Equal(t, input.StartLongitude, got[0].StartLongitude)
	assert.Equal(t, input.EndLatitude, got[0].EndLatitude)
	assert.Equal(t, input.EndLongitude, got[0].EndLongitude)
	assert.Equal(t, "Alice", got[0].RiderName)
	assert.Equal(t, "Bob", got[0].DriverName)
	assert.Equal(t, "Blue Prius", got[0].DriverVehicle)
	assert.False(t, got[0].Created.IsZero(), "Created should be set by DB")
}

func TestRideRepo_InsertAssignsIncreasingIDs(t *testing.T) {
	r := newTestRepo(t)

	ids := insertN(t, r, 3)

	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])
}

// TestRideRepo_InsertStoresTextVerbatim verifies that quotes and SQL-looking
// text are stored as data.
func TestRideRepo_InsertStoresTextVerbatim(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	input := rideFixture(`O'Brien"); DROP TABLE rides; --`)

	id, err := r.Insert(ctx, input)
	require.NoError(t, err)

	got, err := r.FindByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, input.RiderName, got[0].RiderName)
}

func TestRideRepo_FindByID_missing(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.FindByID(context.Background(), 1<<40)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRideRepo_List_all(t *testing.T) {
	r := newTestRepo(t)
	ids := insertN(t, r, 3)

	got, err := r.List(context.Background(), domain.ListParams{})

	require.NoError(t, err)
	assert.Equal(t, ids, rideIDs(got))
}

// TestRideRepo_List_pages walks three rides two at a time: the first page
// holds the first two, the second page the third.
func TestRideRepo_List_pages(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	ids := insertN(t, r, 3)

	first, err := r.List(ctx, domain.ListParams{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, ids[:2], rideIDs(first))

	second, err := r.List(ctx, domain.ListParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, ids[2:], rideIDs(second))
}

func TestRideRepo_List_offsetPastEnd(t *testing.T) {
	r := newTestRepo(t)
	insertN(t, r, 2)

	got, err := r.List(context.Background(), domain.ListParams{Limit: 5, Offset: 5})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRideRepo_List_offsetWithoutLimit(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.List(context.Background(), domain.ListParams{Offset: 1})

	require.ErrorIs(t, err, domain.ErrQuery)
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

// TestRideRepo_storageFault verifies that driver errors come back marked
// with domain.ErrStorage. A cancelled context makes every call fail.
func TestRideRepo_storageFault(t *testing.T) {
	r := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Insert(ctx, rideFixture("Alice"))
	require.ErrorIs(t, err, domain.ErrStorage)
	assert.True(t, strings.HasPrefix(err.Error(), "repo.RideRepo.Insert:"))
}
