package coverage

import "sort"

// LayerProgress is the covered length and percentage for one layer.
type LayerProgress struct {
	Len int
	Pct float64
}

// BillLine is the billed length for one (bill, layer) pair. Unlike the merged
// per-layer figures, Len is a raw sum of stretch lengths: bill-level figures
// reconcile against billed quantities, which may legitimately re-measure the
// same chainage.
type BillLine struct {
	Bill  string
	Layer string
	Len   int
	Pct   float64
}

// Progress is the aggregated completion picture for a (possibly filtered)
// record set. FilteredCount and TotalCount support "N of M records" reporting.
type Progress struct {
	RouteExtent     int
	OverallLen      int
	OverallPct      float64
	PerLayer        map[string]LayerProgress
	PerLayerPerBill []BillLine
	FilteredCount   int
	TotalCount      int
}

// ComputeProgress aggregates covered lengths and percentages over the records
// passing the filter. Overall and per-layer figures deduplicate coverage via
// Merge; per-layer-per-bill figures do not. routeExtent is the percentage
// denominator; a zero extent yields zero percentages.
func ComputeProgress(records []Record, routeExtent int, filter Filter) Progress {
	filtered := filter.Apply(records)

	pct := func(length int) float64 {
		if routeExtent == 0 {
			return 0
		}
		return float64(length) / float64(routeExtent) * 100
	}

	perLayer := make(map[string]LayerProgress)
	for layer, intervals := range groupByLayer(filtered) {
		covered := CoveredLength(intervals)
		perLayer[layer] = LayerProgress{Len: covered, Pct: pct(covered)}
	}

	all := make([]Interval, len(filtered))
	for i, r := range filtered {
		all[i] = r.Interval()
	}
	overall := CoveredLength(all)

	billed := make(map[string]map[string]int)
	for _, r := range filtered {
		if r.Bill() == "" {
			continue
		}
		if billed[r.Bill()] == nil {
			billed[r.Bill()] = make(map[string]int)
		}
		billed[r.Bill()][r.Layer()] += r.End() - r.Start()
	}
	var lines []BillLine
	for bill, layers := range billed {
		for layer, length := range layers {
			lines = append(lines, BillLine{Bill: bill, Layer: layer, Len: length, Pct: pct(length)})
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Bill != lines[j].Bill {
			return lines[i].Bill < lines[j].Bill
		}
		return lines[i].Layer < lines[j].Layer
	})

	return Progress{
		RouteExtent:     routeExtent,
		OverallLen:      overall,
		OverallPct:      pct(overall),
		PerLayer:        perLayer,
		PerLayerPerBill: lines,
		FilteredCount:   len(filtered),
		TotalCount:      len(records),
	}
}
