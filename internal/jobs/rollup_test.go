package jobs

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/platform/sqlite"
	"github.com/readlex/readlex-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))

	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return db
}

func finishedSession(
	t *testing.T,
	sessions store.StudySessionStore,
	userID uuid.UUID,
	start time.Time,
	studied, correct int,
	duration time.Duration,
) {
	t.Helper()

	ctx := context.Background()
	session, err := domain.NewStudySession(userID, domain.SessionModeReview, start)
	require.NoError(t, err)
	require.NoError(t, sessions.Create(ctx, session))
	require.NoError(t, session.Finish(start.Add(duration), studied, correct, studied-correct))
	require.NoError(t, sessions.Update(ctx, session))
}

func TestAggregate(t *testing.T) {
	day := time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)
	alice := uuid.New()
	bob := uuid.New()

	sessions := []*domain.StudySession{
		{UserID: alice, WordsStudied: 10, WordsCorrect: 8, DurationSeconds: 300},
		{UserID: alice, WordsStudied: 5, WordsCorrect: 5, DurationSeconds: 120},
		{UserID: bob, WordsStudied: 20, WordsCorrect: 10, DurationSeconds: 600},
	}

	rollups := aggregate(sessions, day)
	require.Len(t, rollups, 2)

	byUser := map[uuid.UUID]*domain.DailyStats{}
	for _, r := range rollups {
		byUser[r.UserID] = r
		assert.True(t, r.Day.Equal(day))
	}

	require.Contains(t, byUser, alice)
	assert.Equal(t, 15, byUser[alice].WordsReviewed)
	assert.Equal(t, 13, byUser[alice].WordsCorrect)
	assert.Equal(t, 420, byUser[alice].StudySeconds)
	assert.InDelta(t, 13.0/15.0, byUser[alice].Accuracy, 1e-9)

	require.Contains(t, byUser, bob)
	assert.InDelta(t, 0.5, byUser[bob].Accuracy, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	day := time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, aggregate(nil, day))
}

func TestRunForDay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sessions := sqlite.NewStudySessionStore(db, nil)
	stats := sqlite.NewDailyStatsStore(db, nil)
	job := NewRollupJob(sessions, stats, slog.Default())

	userID := uuid.New()
	day := time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)

	finishedSession(t, sessions, userID, day.Add(8*time.Hour), 10, 8, 10*time.Minute)
	finishedSession(t, sessions, userID, day.Add(20*time.Hour), 6, 6, 5*time.Minute)

	// The next day's session must not leak into the rollup.
	finishedSession(t, sessions, userID, day.Add(25*time.Hour), 99, 99, time.Minute)

	require.NoError(t, job.RunForDay(ctx, day))

	rows, err := stats.ListByUser(ctx, userID, 7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 16, rows[0].WordsReviewed)
	assert.Equal(t, 14, rows[0].WordsCorrect)
	assert.Equal(t, 900, rows[0].StudySeconds)

	// Rerunning the rollup is idempotent.
	require.NoError(t, job.RunForDay(ctx, day))

	rows, err = stats.ListByUser(ctx, userID, 7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 16, rows[0].WordsReviewed)
}
