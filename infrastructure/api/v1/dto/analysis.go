package dto

// SpanSchema is one contiguous chainage range.
type SpanSchema struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Len   int `json:"len"`
}

// LayerSpans is the spans found for one layer.
type LayerSpans struct {
	Layer string       `json:"layer"`
	Spans []SpanSchema `json:"spans"`
}

// OverlapsResponse lists intra-layer overlap spans per layer. Every layer
// appears; a layer without overlaps carries an empty span list.
type OverlapsResponse struct {
	Layers []LayerSpans `json:"layers"`
}

// GapsResponse lists uncovered spans per layer against the recorded extent.
type GapsResponse struct {
	Layers []LayerSpans `json:"layers"`
}

// SegmentSchema is one record's clipped contribution to one display chunk.
// RelStart and RelEnd are offsets on the chunk's 0..1000 axis.
type SegmentSchema struct {
	ChunkStart int    `json:"chunk_start"`
	ChunkLabel string `json:"chunk_label"`
	Layer      string `json:"layer"`
	Color      string `json:"color"`
	RelStart   int    `json:"rel_start"`
	RelEnd     int    `json:"rel_end"`
	AbsStart   int    `json:"abs_start"`
	AbsEnd     int    `json:"abs_end"`
}

// SegmentsResponse is the chunk-aligned segmentation the coverage chart is
// drawn from, with the sorted chunk and layer axes.
type SegmentsResponse struct {
	ChunkSize int             `json:"chunk_size"`
	Chunks    []int           `json:"chunks"`
	Layers    []LayerInfo     `json:"layers"`
	Segments  []SegmentSchema `json:"segments"`
}

// LayerProgressSchema is the deduplicated covered length for one layer.
type LayerProgressSchema struct {
	Layer string  `json:"layer"`
	Len   int     `json:"len"`
	Pct   float64 `json:"pct"`
}

// BillLineSchema is the raw billed length for one (bill, layer) pair.
type BillLineSchema struct {
	Bill  string  `json:"bill"`
	Layer string  `json:"layer"`
	Len   int     `json:"len"`
	Pct   float64 `json:"pct"`
}

// ProgressResponse is the aggregated completion picture under the request's
// bill and month filters.
type ProgressResponse struct {
	RouteExtent     int                   `json:"route_extent"`
	OverallLen      int                   `json:"overall_len"`
	OverallPct      float64               `json:"overall_pct"`
	PerLayer        []LayerProgressSchema `json:"per_layer"`
	PerLayerPerBill []BillLineSchema      `json:"per_layer_per_bill"`
	FilteredCount   int                   `json:"filtered_count"`
	TotalCount      int                   `json:"total_count"`
}
