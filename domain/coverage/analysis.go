package coverage

import "sort"

// OverlapsWithinLayers finds stretches covered more than once within the same
// layer. Every pair of intervals in a layer is intersected and the non-empty
// intersections are merged, so each layer reports its overlapped length as a
// disjoint span list. Pairwise comparison is quadratic in the layer's record
// count, which is fine for manual survey volumes.
func OverlapsWithinLayers(records []Record) map[string][]Span {
	result := make(map[string][]Span)
	for layer, intervals := range groupByLayer(records) {
		var overlaps []Interval
		for i := 0; i < len(intervals); i++ {
			for j := i + 1; j < len(intervals); j++ {
				if o, ok := Overlap(intervals[i], intervals[j]); ok {
					overlaps = append(overlaps, o)
				}
			}
		}
		result[layer] = spans(Merge(overlaps))
	}
	return result
}

// GapsPerLayer finds uncovered stretches per layer, measured against the
// extent observed across ALL records, not the layer's own bounds. extraLayers
// names layers that must be reported even without any records of their own;
// such a layer gets a single gap spanning the whole observed route.
// An empty record set yields no gaps, since no extent is observable.
func GapsPerLayer(records []Record, extraLayers ...string) map[string][]Span {
	minStart, maxEnd, ok := Extent(records)
	if !ok {
		return map[string][]Span{}
	}

	byLayer := groupByLayer(records)
	for _, layer := range extraLayers {
		if _, present := byLayer[layer]; !present {
			byLayer[layer] = nil
		}
	}

	result := make(map[string][]Span, len(byLayer))
	for layer, intervals := range byLayer {
		var gaps []Span
		pos := minStart
		for _, iv := range Merge(intervals) {
			if pos < iv.Start {
				gaps = append(gaps, NewSpan(pos, iv.Start))
			}
			pos = maxInt(pos, iv.End)
		}
		if pos < maxEnd {
			gaps = append(gaps, NewSpan(pos, maxEnd))
		}
		result[layer] = gaps
	}
	return result
}

func spans(intervals []Interval) []Span {
	out := make([]Span, len(intervals))
	for i, iv := range intervals {
		out[i] = NewSpan(iv.Start, iv.End)
	}
	return out
}

// SortedLayers returns the keys of a per-layer span map, sorted. Report
// rendering iterates layers in this order.
func SortedLayers(byLayer map[string][]Span) []string {
	layers := make([]string, 0, len(byLayer))
	for l := range byLayer {
		layers = append(layers, l)
	}
	sort.Strings(layers)
	return layers
}
