package dataprocessing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"greenfin/pkg/contracts/domain"
)

// LoadFossilFinance reads the auxiliary NZBA fossil-financing workbook. The
// first sheet is expected to carry a header row with a bank-name column and a
// fossil-finance figure column. On ANY failure — file missing, unreadable,
// wrong shape — the built-in DefaultFossilFinance table is returned instead
// and the run proceeds with reduced fidelity. This is the intended degrade
// path, logged at info level, never an error.
func LoadFossilFinance(ctx context.Context, logger *slog.Logger, path string) []domain.FossilFinanceRow {
	if logger == nil {
		logger = slog.Default()
	}

	rows, ok := readFirstSheet(path)
	if !ok {
		logger.InfoContext(ctx, "fossil finance workbook unavailable, using built-in table",
			slog.String("path", path),
			slog.Int("default_rows", len(DefaultFossilFinance)))
		return DefaultFossilFinance
	}

	parsed := parseFossilRows(rows)
	if len(parsed) == 0 {
		logger.InfoContext(ctx, "fossil finance workbook had no usable rows, using built-in table",
			slog.String("path", path))
		return DefaultFossilFinance
	}

	logger.InfoContext(ctx, "loaded fossil finance workbook",
		slog.String("path", path),
		slog.Int("rows", len(parsed)))
	return parsed
}

// readFirstSheet opens an XLSX workbook and returns the rows of its first
// sheet, or ok=false on any failure.
func readFirstSheet(path string) ([][]string, bool) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, false
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		return nil, false
	}
	return rows, true
}

// parseFossilRows extracts bank/figure pairs from sheet rows. The header row
// locates the columns; rows whose figure cell fails to parse are skipped.
func parseFossilRows(rows [][]string) []domain.FossilFinanceRow {
	bankCol, financeCol := -1, -1
	for i, h := range rows[0] {
		header := strings.ToLower(strings.TrimSpace(h))
		switch {
		case header == "bank":
			bankCol = i
		case strings.Contains(header, "fossil"):
			financeCol = i
		}
	}
	if bankCol < 0 || financeCol < 0 {
		return nil
	}

	var parsed []domain.FossilFinanceRow
	for _, row := range rows[1:] {
		bank := cellAt(row, bankCol)
		if bank == "" {
			continue
		}
		v, ok := ParseAmount(cellAt(row, financeCol))
		if !ok {
			continue
		}
		parsed = append(parsed, domain.FossilFinanceRow{Bank: bank, FossilFinance: v})
	}
	return parsed
}
