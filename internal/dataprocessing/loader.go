package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"greenfin/internal/config"
	"greenfin/pkg/contracts/domain"
)

// Loader reads raw tabular exports and produces normalized records.
type Loader struct {
	logger  *slog.Logger
	columns config.ColumnConfig
}

// NewLoader creates a loader for exports laid out per the given column
// configuration.
func NewLoader(logger *slog.Logger, columns config.ColumnConfig) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, columns: columns}
}

// LoadRecords reads a CSV export and normalizes every row: the date column is
// coerced to an issue date and calendar year, the amount column to a float
// with a derived billions value. Cells that fail to parse become explicit
// nulls; the row itself always survives. A missing or unreadable file is a
// fatal error propagated to the caller.
func (l *Loader) LoadRecords(ctx context.Context, path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are coerced, not rejected

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("export %s has no header row", path)
	}

	idx, err := l.columnIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", path, err)
	}

	records := make([]domain.Record, 0, len(rows)-1)
	var nullDates, nullAmounts int

	for _, row := range rows[1:] {
		rec := domain.Record{
			ISIN:          cellAt(row, idx.isin),
			IssuerName:    cellAt(row, idx.issuer),
			IssuerCountry: cellAt(row, idx.country),
		}

		if t, ok := ParseDate(cellAt(row, idx.date)); ok {
			year := t.Year()
			rec.IssueDate = &t
			rec.Year = &year
		} else {
			nullDates++
		}

		if v, ok := ParseAmount(cellAt(row, idx.amount)); ok {
			billions := v / 1e9
			rec.Amount = &v
			rec.AmountBillions = &billions
		} else {
			nullAmounts++
		}

		records = append(records, rec)
	}

	l.logger.InfoContext(ctx, "loaded export",
		slog.String("path", path),
		slog.Int("records", len(records)),
		slog.Int("null_dates", nullDates),
		slog.Int("null_amounts", nullAmounts))

	return records, nil
}

// columnIndexes holds the resolved positions of the configured columns.
// ISIN is optional (-1 when absent); the rest are required.
type columnIndexes struct {
	isin    int
	issuer  int
	country int
	date    int
	amount  int
}

// columnIndex resolves configured header names to column positions.
func (l *Loader) columnIndex(header []string) (columnIndexes, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	idx := columnIndexes{
		isin:    find(l.columns.ISIN),
		issuer:  find(l.columns.Issuer),
		country: find(l.columns.Country),
		date:    find(l.columns.Date),
		amount:  find(l.columns.Amount),
	}

	missing := []string{}
	if idx.issuer < 0 {
		missing = append(missing, l.columns.Issuer)
	}
	if idx.country < 0 {
		missing = append(missing, l.columns.Country)
	}
	if idx.date < 0 {
		missing = append(missing, l.columns.Date)
	}
	if idx.amount < 0 {
		missing = append(missing, l.columns.Amount)
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return idx, nil
}

// cellAt returns the trimmed cell at position i, or "" when the row is too
// short or the column was not found.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
