package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seetharamanm/layercover/domain/coverage"
)

func parse(t *testing.T, csv string) Dataset {
	t.Helper()
	ds, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	return ds
}

func TestParseCSV_Basic(t *testing.T) {
	ds := parse(t, "Item,Stretch\nSubgrade,100-150\nSubgrade,600-800\nSubgrade,1400-1600\n")

	require.Len(t, ds.Records, 3)
	assert.Equal(t, "Subgrade", ds.Records[0].Layer())
	assert.Equal(t, 100, ds.Records[0].Start())
	assert.Equal(t, 150, ds.Records[0].End())
	// No Est Length column: extent falls back to max(end) - min(start).
	assert.Equal(t, 1500, ds.RouteExtent)
}

func TestParseCSV_HeaderSynonyms(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"canonical", "Item,Stretch\nSubgrade,100-200\n"},
		{"layer and chainage", "Layer,Chainage\nSubgrade,100-200\n"},
		{"case insensitive", "ITEM,STRETCH\nSubgrade,100-200\n"},
		{"reordered with extras", "Date,Stretch,Remarks,Item\n,100-200,,Subgrade\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := parse(t, tt.csv)
			require.Len(t, ds.Records, 1)
			assert.Equal(t, "Subgrade", ds.Records[0].Layer())
		})
	}
}

func TestParseCSV_MissingColumns(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Foo,Bar\na,b\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumns)

	var mce *MissingColumnsError
	require.ErrorAs(t, err, &mce)
	assert.Len(t, mce.Missing(), 2)

	// Only one of the two required columns resolvable.
	_, err = ParseCSV(strings.NewReader("Item,Foo\nSubgrade,100-200\n"))
	require.ErrorIs(t, err, ErrMissingColumns)
}

func TestParseCSV_EmptyInput(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestParseCSV_RowSkipping(t *testing.T) {
	csv := strings.Join([]string{
		"Item,Stretch",
		"Subgrade,100-150",   // valid
		",600-800",           // empty layer
		"Subgrade,",          // empty stretch
		"Subgrade,1000-900",  // start > end
		"Subgrade,abc-100",   // malformed
		"Subgrade,100 - 200", // whitespace around dash is fine
	}, "\n")

	ds := parse(t, csv)

	require.Len(t, ds.Records, 2)
	assert.Equal(t, 100, ds.Records[1].Start())
	assert.Equal(t, 200, ds.Records[1].End())
}

func TestParseCSV_AllRowsSkipped(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Item,Stretch\nSubgrade,nonsense\n,100-200\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, coverage.ErrEmptyDataset)
	assert.Contains(t, err.Error(), "500-1000")
}

func TestParseCSV_EstLength(t *testing.T) {
	ds := parse(t, "Item,Stretch,Est Length\nSubgrade,100-150,8000\nSubgrade,1400-1600,\n")
	assert.Equal(t, 8000, ds.RouteExtent)

	// Thousands separators.
	ds = parse(t, "Item,Stretch,Est Length\nSubgrade,100-150,\"12,500\"\n")
	assert.Equal(t, 12500, ds.RouteExtent)

	// Last positive value wins.
	ds = parse(t, "Item,Stretch,Est Length\nSubgrade,100-150,8000\nSubgrade,600-800,9000\n")
	assert.Equal(t, 9000, ds.RouteExtent)
}

func TestParseCSV_NoSpanNoEstLength(t *testing.T) {
	// A single zero-length record has no observable span, so the fixed
	// fallback applies.
	ds := parse(t, "Item,Stretch\nSubgrade,100-100\n")
	assert.Equal(t, coverage.DefaultRouteExtent, ds.RouteExtent)
}

func TestParseCSV_Bills(t *testing.T) {
	ds := parse(t, "Item,Stretch,Bill No\nSubgrade,100-150,MB-1\nSubgrade,600-800,\n")

	require.Len(t, ds.Records, 2)
	assert.Equal(t, "MB-1", ds.Records[0].Bill())
	assert.Empty(t, ds.Records[1].Bill())
}

func TestParseCSV_Dates(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want string
	}{
		{"dotted full year", "15.3.2024", "2024-03"},
		{"dotted padded", "05.03.2024", "2024-03"},
		{"dotted two-digit year", "15.3.24", "2024-03"},
		{"dashed", "15-3-2024", "2024-03"},
		{"iso", "2024-03-15", "2024-03"},
		{"unparseable", "sometime in march", ""},
		{"absent", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := parse(t, "Item,Stretch,Date\nSubgrade,100-150,"+tt.cell+"\n")
			require.Len(t, ds.Records, 1)
			assert.Equal(t, tt.want, ds.Records[0].Month())
		})
	}
}

func TestParseMonth_TwoDigitYearPromotion(t *testing.T) {
	// 2-digit years map into the 2000s even where Go's own pivot would pick
	// the 1900s.
	month, ok := parseMonth("1.6.99")
	require.True(t, ok)
	assert.Equal(t, "2099-06", month)
}

func TestParseCSV_RaggedRows(t *testing.T) {
	ds := parse(t, "Item,Stretch,Bill No\nSubgrade,100-150\nSubgrade,600-800,MB-1\n")
	require.Len(t, ds.Records, 2)
	assert.Empty(t, ds.Records[0].Bill())
	assert.Equal(t, "MB-1", ds.Records[1].Bill())
}

func TestParseCSV_InvalidCSV(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Item,Stretch\nSubgrade,\"unterminated\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingColumns)
}
