package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideshare/rides-api/migrations"
	"github.com/rideshare/rides-api/testutil"
)

// TestMigrations is an integration test that verifies the full migration
// round-trip against a real Postgres database:
//
//  1. Roll back to version 0 and apply all migrations (goose up).
//  2. Assert the rides table exists.
//  3. Roll back all migrations and assert the table is gone.
//  4. Re-apply, leaving the schema in place for other packages.
//
// The test is skipped automatically when TEST_DATABASE_URL is not set.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)

	provider, err := migrations.NewProvider(db)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()

	// Another package's TestMain may already have migrated this shared DB.
	if _, err := provider.DownTo(ctx, 0); err != nil {
		t.Fatalf("TestMigrations: initial reset: %v", err)
	}

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.NotEmpty(t, results, "expected at least one migration to be applied")
	assertTablePresence(t, db, "rides", true)

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	assertTablePresence(t, db, "rides", false)

	n, err := migrations.Up(ctx, db)
	require.NoError(t, err, "re-apply migrations")
	assert.Equal(t, len(results), n)
	assertTablePresence(t, db, "rides", true)
}

// TestMigrations_idempotent verifies that a second Up against an already
// migrated database is a no-op.
func TestMigrations_idempotent(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	_, err := migrations.Up(ctx, db)
	require.NoError(t, err)

	n, err := migrations.Up(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func assertTablePresence(t *testing.T, db *sql.DB, table string, shouldExist bool) {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	err := db.QueryRowContext(context.Background(), q, table).Scan(&exists)
	require.NoError(t, err, "check table existence for %q", table)

	if shouldExist {
		assert.True(t, exists, "expected table %q to exist", table)
	} else {
		assert.False(t, exists, "expected table %q to not exist", table)
	}
}
