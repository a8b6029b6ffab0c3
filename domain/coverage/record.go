package coverage

import (
	"fmt"
	"sort"
)

// DefaultRouteExtent is the fallback route length in meters when no explicit
// length is supplied and no records resolve one.
const DefaultRouteExtent = 8000

// Record is one coverage row: a layer's completed stretch of chainage,
// optionally attributed to a bill and bucketed into a YYYY-MM month.
// Layer names compare raw: identical strings are the same layer, nothing is
// normalized beyond trimming at parse time.
type Record struct {
	layer string
	start int
	end   int
	bill  string
	month string
}

// NewRecord creates a Record. start must not exceed end.
func NewRecord(layer string, start, end int) (Record, error) {
	if start > end {
		return Record{}, fmt.Errorf("record %q: start %d exceeds end %d", layer, start, end)
	}
	return Record{layer: layer, start: start, end: end}, nil
}

// WithBill returns a copy attributed to the given bill.
func (r Record) WithBill(bill string) Record {
	r.bill = bill
	return r
}

// WithMonth returns a copy bucketed into the given YYYY-MM month key.
func (r Record) WithMonth(month string) Record {
	r.month = month
	return r
}

// Layer returns the layer name.
func (r Record) Layer() string { return r.layer }

// Start returns the stretch start chainage.
func (r Record) Start() int { return r.start }

// End returns the stretch end chainage.
func (r Record) End() int { return r.end }

// Interval returns the record's stretch as an Interval.
func (r Record) Interval() Interval { return Interval{Start: r.start, End: r.end} }

// Bill returns the bill identifier, empty when the record is unbilled.
func (r Record) Bill() string { return r.bill }

// Month returns the YYYY-MM month key, empty when no date was recorded.
func (r Record) Month() string { return r.month }

// Extent returns the minimum start and maximum end over all records.
// ok is false for an empty record set.
func Extent(records []Record) (minStart, maxEnd int, ok bool) {
	if len(records) == 0 {
		return 0, 0, false
	}
	minStart, maxEnd = records[0].start, records[0].end
	for _, r := range records[1:] {
		if r.start < minStart {
			minStart = r.start
		}
		if r.end > maxEnd {
			maxEnd = r.end
		}
	}
	return minStart, maxEnd, true
}

// ResolveRouteExtent resolves the authoritative route length used as the
// percentage denominator: an explicit positive length wins, then the observed
// span of the records, then DefaultRouteExtent.
func ResolveRouteExtent(explicit int, records []Record) int {
	if explicit > 0 {
		return explicit
	}
	if minStart, maxEnd, ok := Extent(records); ok && maxEnd > minStart {
		return maxEnd - minStart
	}
	return DefaultRouteExtent
}

// Layers returns the distinct layer names, sorted.
func Layers(records []Record) []string {
	return distinct(records, Record.Layer)
}

// Bills returns the distinct non-empty bill identifiers, sorted.
func Bills(records []Record) []string {
	return distinct(records, Record.Bill)
}

// Months returns the distinct non-empty YYYY-MM month keys, sorted.
func Months(records []Record) []string {
	return distinct(records, Record.Month)
}

func distinct(records []Record, key func(Record) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func groupByLayer(records []Record) map[string][]Interval {
	byLayer := make(map[string][]Interval)
	for _, r := range records {
		byLayer[r.layer] = append(byLayer[r.layer], r.Interval())
	}
	return byLayer
}
