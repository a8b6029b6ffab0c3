package coverage

// Filter selects records by bill and month with intersection semantics: a
// record passes only if every non-empty dimension accepts it. A record lacking
// a value for a filtered dimension passes that dimension, so unbilled or
// undated rows stay in filtered totals.
type Filter struct {
	bills  map[string]struct{}
	months map[string]struct{}
}

// FilterOption is a functional option for Filter.
type FilterOption func(*Filter)

// WithBills restricts the filter to the given bill identifiers.
func WithBills(bills ...string) FilterOption {
	return func(f *Filter) {
		for _, b := range bills {
			if b != "" {
				f.bills[b] = struct{}{}
			}
		}
	}
}

// WithMonths restricts the filter to the given YYYY-MM month keys.
func WithMonths(months ...string) FilterOption {
	return func(f *Filter) {
		for _, m := range months {
			if m != "" {
				f.months[m] = struct{}{}
			}
		}
	}
}

// NewFilter creates a Filter with options. With no options the filter is
// empty and passes every record.
func NewFilter(opts ...FilterOption) Filter {
	f := Filter{
		bills:  make(map[string]struct{}),
		months: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Empty reports whether the filter passes every record.
func (f Filter) Empty() bool {
	return len(f.bills) == 0 && len(f.months) == 0
}

// Matches reports whether the record passes the filter.
func (f Filter) Matches(r Record) bool {
	if len(f.bills) > 0 && r.Bill() != "" {
		if _, ok := f.bills[r.Bill()]; !ok {
			return false
		}
	}
	if len(f.months) > 0 && r.Month() != "" {
		if _, ok := f.months[r.Month()]; !ok {
			return false
		}
	}
	return true
}

// Apply returns the records passing the filter, preserving order.
func (f Filter) Apply(records []Record) []Record {
	if f.Empty() {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
