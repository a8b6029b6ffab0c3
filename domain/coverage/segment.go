package coverage

import "sort"

// ChunkSize is the fixed display window width in meters. Each chart row shows
// one chunk of chainage on a 0..ChunkSize axis.
const ChunkSize = 1000

// Segment is one record's contribution to one chunk, clipped to the chunk
// boundaries. RelStart and RelEnd are offsets from ChunkStart; AbsStart and
// AbsEnd are the clipped chainages.
type Segment struct {
	ChunkStart int
	Layer      string
	RelStart   int
	RelEnd     int
	AbsStart   int
	AbsEnd     int
}

// Segmentation holds the chunk-aligned segments plus the sorted layer and
// chunk-start sets the chart grid axes are built from.
type Segmentation struct {
	Segments []Segment
	Layers   []string
	Chunks   []int
}

// Segmented splits every record across ChunkSize boundaries. A record
// spanning a boundary, such as 950-1050, yields one segment per chunk it
// touches; zero-length clips are dropped. Segments are ordered by
// (ChunkStart, Layer, RelStart), which fixes row placement in the grid: one
// row per (chunk, layer) pair, chunks ascending then layers ascending.
func Segmented(records []Record) Segmentation {
	var segments []Segment
	layerSet := make(map[string]struct{})
	chunkSet := make(map[int]struct{})

	for _, r := range records {
		layerSet[r.Layer()] = struct{}{}
		first := r.Start() / ChunkSize * ChunkSize
		last := r.End() / ChunkSize * ChunkSize
		for c := first; c <= last; c += ChunkSize {
			chunkSet[c] = struct{}{}
			segStart := maxInt(r.Start(), c)
			segEnd := minInt(r.End(), c+ChunkSize)
			if segStart >= segEnd {
				continue
			}
			segments = append(segments, Segment{
				ChunkStart: c,
				Layer:      r.Layer(),
				RelStart:   segStart - c,
				RelEnd:     segEnd - c,
				AbsStart:   segStart,
				AbsEnd:     segEnd,
			})
		}
	}

	sort.Slice(segments, func(i, j int) bool {
		a, b := segments[i], segments[j]
		if a.ChunkStart != b.ChunkStart {
			return a.ChunkStart < b.ChunkStart
		}
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return a.RelStart < b.RelStart
	})

	layers := make([]string, 0, len(layerSet))
	for l := range layerSet {
		layers = append(layers, l)
	}
	sort.Strings(layers)

	chunks := make([]int, 0, len(chunkSet))
	for c := range chunkSet {
		chunks = append(chunks, c)
	}
	sort.Ints(chunks)

	return Segmentation{Segments: segments, Layers: layers, Chunks: chunks}
}
