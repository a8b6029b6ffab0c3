// Package tabular adapts uploaded CSV content into coverage records. Header
// resolution, stretch and date parsing, and route-extent resolution live here
// so the coverage engine stays free of input-format concerns.
package tabular

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMissingColumns matches any MissingColumnsError with errors.Is.
var ErrMissingColumns = errors.New("missing required columns")

// MissingColumnsError reports that the required header columns could not be
// resolved. The whole upload is rejected; no rows are processed.
type MissingColumnsError struct {
	missing []string
}

// NewMissingColumnsError creates a MissingColumnsError for the given
// unresolvable canonical fields.
func NewMissingColumnsError(missing ...string) *MissingColumnsError {
	return &MissingColumnsError{missing: missing}
}

// Missing returns the unresolvable canonical field names.
func (e *MissingColumnsError) Missing() []string {
	out := make([]string, len(e.missing))
	copy(out, e.missing)
	return out
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.missing, ", "))
}

// Is makes the error matchable against ErrMissingColumns.
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}

// Header synonym lists, matched case-insensitively. Bill and est-length use
// containment, matching spreadsheets that label them "Bill No" or
// "Est Length (m)".
var (
	layerSynonyms   = []string{"item", "layer"}
	stretchSynonyms = []string{"stretch", "chainage"}
	dateSynonyms    = []string{"date", "end date"}
)

// columns holds the resolved column index per canonical field; -1 means the
// column is absent.
type columns struct {
	layer   int
	stretch int
	bill    int
	est     int
	date    int
}

// resolveColumns maps a header row to canonical fields. Layer and stretch are
// required; bill, est-length, and date are optional.
func resolveColumns(header []string) (columns, error) {
	cols := columns{layer: -1, stretch: -1, bill: -1, est: -1, date: -1}

	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		switch {
		case cols.layer < 0 && slices.Contains(layerSynonyms, name):
			cols.layer = i
		case cols.stretch < 0 && slices.Contains(stretchSynonyms, name):
			cols.stretch = i
		case cols.bill < 0 && strings.Contains(name, "bill"):
			cols.bill = i
		case cols.est < 0 && strings.Contains(name, "est") && strings.Contains(name, "length"):
			cols.est = i
		case cols.date < 0 && slices.Contains(dateSynonyms, name):
			cols.date = i
		}
	}

	var missing []string
	if cols.layer < 0 {
		missing = append(missing, "Item (or Layer)")
	}
	if cols.stretch < 0 {
		missing = append(missing, "Stretch (or Chainage)")
	}
	if len(missing) > 0 {
		return columns{}, NewMissingColumnsError(missing...)
	}
	return cols, nil
}
