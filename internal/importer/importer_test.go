package importer

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/platform/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
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

// buildSheet writes an xlsx document with a header and the given data rows.
func buildSheet(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer func() {
		require.NoError(t, f.Close())
	}()

	sheet := f.GetSheetName(0)
	header := []string{"word", "translation", "definition", "example", "source"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportCreatesPristineItems(t *testing.T) {
	db := newTestDB(t)
	vocab := sqlite.NewVocabularyStore(db, nil)
	im := New(vocab, nil)
	userID := uuid.New()

	buf := buildSheet(t, [][]string{
		{"ephemeral", "短暂的", "lasting a very short time", "ephemeral pleasures", "reader"},
		{"tenacious", "顽强的", "", "", ""},
	})

	result, err := im.Import(context.Background(), userID, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)

	items, err := vocab.ListByUser(context.Background(), userID, 50)
	require.NoError(t, err)
	require.Len(t, items, 2)

	for _, item := range items {
		assert.Equal(t, 0, item.IntervalDays)
		assert.Equal(t, 2.5, item.EaseFactor)
		assert.Nil(t, item.NextReview)
	}
}

func TestImportSkipsDuplicatesAndReportsBadRows(t *testing.T) {
	db := newTestDB(t)
	vocab := sqlite.NewVocabularyStore(db, nil)
	im := New(vocab, nil)
	userID := uuid.New()

	existing, err := domain.NewVocabularyItem(userID, "ephemeral")
	require.NoError(t, err)
	require.NoError(t, vocab.Create(context.Background(), existing))

	buf := buildSheet(t, [][]string{
		{"ephemeral", "短暂的"},
		{"   ", "blank word"},
		{"tenacious", "顽强的"},
	})

	result, err := im.Import(context.Background(), userID, buf)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 3")
}

func TestImportEmptySheet(t *testing.T) {
	db := newTestDB(t)
	im := New(sqlite.NewVocabularyStore(db, nil), nil)

	buf := buildSheet(t, nil)

	_, err := im.Import(context.Background(), uuid.New(), buf)
	assert.ErrorIs(t, err, ErrNoRows)
}
