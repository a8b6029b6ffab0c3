package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/seetharamanm/layercover/domain/coverage"
)

var stretchPattern = regexp.MustCompile(`^\s*(\d+)\s*-\s*(\d+)\s*$`)

// Date layouts accepted for the optional date column. Two-digit years are
// promoted into the 2000s.
var (
	dateLayouts      = []string{"2.1.2006", "2-1-2006", "2006-01-02"}
	shortDateLayouts = []string{"2.1.06", "2-1-06"}
)

// Dataset is the parse output: the typed records plus the resolved route
// extent used as the percentage denominator.
type Dataset struct {
	Records     []coverage.Record
	RouteExtent int
}

// ParseCSV turns CSV content into coverage records. The first row must be a
// header with resolvable layer and stretch columns, otherwise the whole input
// is rejected with a MissingColumnsError. Rows with an empty layer or stretch
// cell, a malformed stretch, or start > end are skipped silently; if nothing
// survives, coverage.ErrEmptyDataset is returned.
func ParseCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Dataset{}, NewMissingColumnsError("Item (or Layer)", "Stretch (or Chainage)")
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return Dataset{}, err
	}

	var records []coverage.Record
	explicitExtent := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("read csv row: %w", err)
		}

		// Est Length is route metadata, read regardless of whether the row
		// itself yields a record. Last positive value wins.
		if est, ok := parseEstLength(cell(row, cols.est)); ok {
			explicitExtent = est
		}

		layer := strings.TrimSpace(cell(row, cols.layer))
		stretch := cell(row, cols.stretch)
		if layer == "" || strings.TrimSpace(stretch) == "" {
			continue
		}
		start, end, ok := parseStretch(stretch)
		if !ok {
			continue
		}
		rec, err := coverage.NewRecord(layer, start, end)
		if err != nil {
			continue
		}
		if bill := strings.TrimSpace(cell(row, cols.bill)); bill != "" {
			rec = rec.WithBill(bill)
		}
		if month, ok := parseMonth(cell(row, cols.date)); ok {
			rec = rec.WithMonth(month)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return Dataset{}, coverage.ErrEmptyDataset
	}

	return Dataset{
		Records:     records,
		RouteExtent: coverage.ResolveRouteExtent(explicitExtent, records),
	}, nil
}

// parseStretch parses a "<start>-<end>" chainage cell. Whitespace around the
// dash is tolerated; start must not exceed end.
func parseStretch(s string) (start, end int, ok bool) {
	m := stretchPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	start, err1 := strconv.Atoi(m[1])
	end, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || start > end {
		return 0, 0, false
	}
	return start, end, true
}

// parseMonth derives the YYYY-MM month key from a date cell. The day of month
// is dropped on purpose: filtering buckets by month. Unparseable cells leave
// the month absent rather than failing the row.
func parseMonth(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01"), true
		}
	}
	for _, layout := range shortDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Promote two-digit years into the 2000s; Go's pivot would put
		// 69-99 into the 1900s.
		if t.Year() < 2000 {
			t = t.AddDate(100, 0, 0)
		}
		return t.Format("2006-01"), true
	}
	return "", false
}

// parseEstLength parses an Est Length cell, tolerating thousands separators
// like "8,000". Only positive values count.
func parseEstLength(s string) (int, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
