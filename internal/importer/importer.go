// Package importer loads vocabulary in bulk from xlsx spreadsheets. Every
// imported item starts with a pristine review state; import never touches
// scheduling.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/platform/logger"
	"github.com/readlex/readlex-api/internal/store"
	"github.com/xuri/excelize/v2"
)

// ErrNoRows indicates a spreadsheet with no data rows.
var ErrNoRows = errors.New("spreadsheet contains no data rows")

// Expected column layout. The first row is treated as a header and skipped.
//
//	A: word (required)
//	B: translation
//	C: definition
//	D: example
//	E: source
const (
	colWord = iota
	colTranslation
	colDefinition
	colExample
	colSource
)

// Result summarizes one import run.
type Result struct {
	TotalRows int      `json:"total_rows"`
	Created   int      `json:"created"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

// Importer parses spreadsheets and creates vocabulary items.
type Importer struct {
	vocab  store.VocabularyStore
	logger *slog.Logger
}

// New creates an importer. If logger is nil, the default logger is used.
func New(vocab store.VocabularyStore, logger *slog.Logger) *Importer {
	if vocab == nil {
		panic("vocab cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Importer{
		vocab:  vocab,
		logger: logger.With(slog.String("component", "importer")),
	}
}

// Import reads an xlsx document and creates one vocabulary item per data row
// on the first sheet. Rows whose word the user already studies are counted
// as skipped; malformed rows are reported in the result, not fatal.
func (im *Importer) Import(ctx context.Context, userID uuid.UUID, r io.Reader) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, im.logger)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn("failed to close spreadsheet", slog.String("error", cerr.Error()))
		}
	}()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	// Header only, or nothing at all.
	if len(rows) <= 1 {
		return nil, ErrNoRows
	}

	result := &Result{}
	for i, row := range rows[1:] {
		rowNum := i + 2

		result.TotalRows++

		item, err := itemFromRow(userID, row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		if err := im.vocab.Create(ctx, item); err != nil {
			if errors.Is(err, store.ErrWordExists) {
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("failed to create item from row %d: %w", rowNum, err)
		}

		result.Created++
	}

	log.Info("vocabulary import complete",
		slog.String("user_id", userID.String()),
		slog.Int("total_rows", result.TotalRows),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)))

	return result, nil
}

// itemFromRow builds a pristine vocabulary item from one spreadsheet row.
func itemFromRow(userID uuid.UUID, row []string) (*domain.VocabularyItem, error) {
	item, err := domain.NewVocabularyItem(userID, cell(row, colWord))
	if err != nil {
		return nil, err
	}

	item.Translation = cell(row, colTranslation)
	item.Definition = cell(row, colDefinition)
	item.Example = cell(row, colExample)
	item.Source = cell(row, colSource)

	return item, nil
}

// cell returns the trimmed value at idx, tolerating short rows.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
