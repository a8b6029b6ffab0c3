// Package coverage implements the interval and coverage engine for
// chainage-based construction records: merging, overlap and gap detection,
// chunk segmentation, and progress aggregation.
package coverage

import "sort"

// Interval is a stretch of chainage in meters. Boundaries are closed when
// merging (touching intervals join) and half-open in overlap math, so
// Start == End is zero-length and never a real overlap.
type Interval struct {
	Start int
	End   int
}

// Len returns the interval length.
func (i Interval) Len() int { return i.End - i.Start }

// Empty reports whether the interval covers no length.
func (i Interval) Empty() bool { return i.Start >= i.End }

// Span is an interval with its precomputed length, the shape overlap and gap
// reports are delivered in.
type Span struct {
	Start int
	End   int
	Len   int
}

// NewSpan creates a Span from interval bounds.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end, Len: end - start}
}

// Overlap returns the intersection of a and b. The second return value is
// false when the intervals share no length; touching intervals do not overlap.
func Overlap(a, b Interval) (Interval, bool) {
	o := Interval{Start: maxInt(a.Start, b.Start), End: minInt(a.End, b.End)}
	if o.Start < o.End {
		return o, true
	}
	return Interval{}, false
}

// Merge collapses intervals into a sorted, pairwise disjoint set. Intervals
// whose closed boundaries touch, such as [100,150] and [150,200], merge into
// one. The total length of the result is the covered length every progress and
// gap figure is derived from: double-covered stretches count once.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := make([]Interval, 0, len(sorted))
	merged = append(merged, sorted[0])
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if cur.Start <= last.End {
			if cur.End > last.End {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// CoveredLength returns the total deduplicated length of the intervals.
func CoveredLength(intervals []Interval) int {
	total := 0
	for _, iv := range Merge(intervals) {
		total += iv.Len()
	}
	return total
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
