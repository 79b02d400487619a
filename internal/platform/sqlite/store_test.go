package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a throwaway in-memory database with the schema applied.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	require.NoError(t, Migrate(db), "failed to apply migrations")

	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return db
}

func testCtx(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}
