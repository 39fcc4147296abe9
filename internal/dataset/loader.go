package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"fundpulse/pkg/contracts/domain"
)

// Sentinel errors for load failures. Both are fatal at startup: the
// process cannot serve queries without a complete dataset.
var (
	// ErrLoad indicates the source file is missing or unreadable.
	ErrLoad = errors.New("dataset: load failed")
	// ErrColumnMissing indicates a required column is absent from the header.
	ErrColumnMissing = errors.New("dataset: required column missing")
)

// Date layouts accepted in the source data, tried in order.
var dateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

// Column keys after header normalization. Synonyms map the header
// variants seen in the known source files onto canonical keys.
const (
	colDate        = "date"
	colStartup     = "startup"
	colVertical    = "vertical"
	colSubvertical = "subvertical"
	colCity        = "city"
	colInvestors   = "investors"
	colRound       = "round"
	colAmount      = "amount"
)

var headerSynonyms = map[string]string{
	"date":            colDate,
	"startup":         colStartup,
	"startup_name":    colStartup,
	"name":            colStartup,
	"vertical":        colVertical,
	"industry":        colVertical,
	"subvertical":     colSubvertical,
	"sub_vertical":    colSubvertical,
	"city":            colCity,
	"city_location":   colCity,
	"investors":       colInvestors,
	"investors_name":  colInvestors,
	"round":           colRound,
	"type":            colRound,
	"round_type":      colRound,
	"investment_type": colRound,
	"amount":          colAmount,
	"amount_in_usd":   colAmount,
}

var requiredColumns = []string{
	colDate, colStartup, colVertical, colSubvertical,
	colCity, colInvestors, colRound, colAmount,
}

// Load reads the funding dataset from the given path and returns an
// immutable Table with year and month derived from each record's date.
// CSV and XLSX sources are supported, selected by file extension.
// A missing file or a header lacking a required column is a fatal
// load error; malformed data rows are skipped.
func Load(path string, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrLoad, path)
	}

	index, err := mapHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records := make([]domain.FundingRecord, 0, len(rows)-1)
	skipped := 0
	for i, row := range rows[1:] {
		rec, ok := parseRow(row, index)
		if !ok {
			skipped++
			logger.Debug("skipping malformed dataset row",
				slog.Int("row", i+2),
				slog.String("path", path))
			continue
		}
		records = append(records, rec)
	}

	logger.Info("dataset loaded",
		slog.String("path", path),
		slog.Int("rows", len(records)),
		slog.Int("skipped", skipped))

	return NewTable(records), nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Quoting problems in a single row should not sink the
			// whole load; the row parser rejects short rows anyway.
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s: no sheets", ErrLoad, path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return rows, nil
}

// mapHeader resolves the header row into a canonical-column → index
// mapping, failing if any required column is absent.
func mapHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(requiredColumns))
	for i, h := range header {
		key := normalizeHeader(h)
		if canonical, ok := headerSynonyms[key]; ok {
			if _, seen := index[canonical]; !seen {
				index[canonical] = i
			}
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrColumnMissing, col)
		}
	}
	return index, nil
}

func normalizeHeader(h string) string {
	key := strings.ToLower(strings.TrimSpace(h))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

// parseRow converts one data row into a FundingRecord. Rows that are
// too short or carry an unparseable date are rejected; a blank or
// non-numeric amount is treated as zero per the data contract.
func parseRow(row []string, index map[string]int) (domain.FundingRecord, bool) {
	cell := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := cell(colStartup)
	if name == "" {
		return domain.FundingRecord{}, false
	}

	date, ok := parseDate(cell(colDate))
	if !ok {
		return domain.FundingRecord{}, false
	}

	amount, err := decimal.NewFromString(cell(colAmount))
	if err != nil || amount.IsNegative() {
		amount = decimal.Zero
	}

	return domain.FundingRecord{
		Date:        date,
		Year:        date.Year(),
		Month:       int(date.Month()),
		StartupName: name,
		Vertical:    cell(colVertical),
		Subvertical: cell(colSubvertical),
		City:        cell(colCity),
		Investors:   cell(colInvestors),
		RoundType:   cell(colRound),
		Amount:      amount,
	}, true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
