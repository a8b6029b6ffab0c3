package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/seetharamanm/layercover/domain/coverage"
	"github.com/seetharamanm/layercover/infrastructure/tabular"
)

// Summary describes the currently loaded dataset for the filter UI.
type Summary struct {
	RecordCount int
	RouteExtent int
	Layers      []string
	Bills       []string
	Months      []string
}

// Dataset holds the current in-memory dataset and runs the coverage analyses
// over it. One dataset is live at a time; loading a new one replaces it
// atomically, and a failed load leaves the previous dataset untouched. The
// analyses themselves are pure, so readers never need more than the snapshot
// taken under the read lock.
type Dataset struct {
	mu         sync.RWMutex
	current    *dataset
	samplePath string
	logger     *slog.Logger
}

type dataset struct {
	records []coverage.Record
	extent  int
}

// NewDataset creates a Dataset service. samplePath optionally names a CSV
// file used by LoadSample; the embedded sample is the fallback.
func NewDataset(samplePath string, logger *slog.Logger) *Dataset {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dataset{samplePath: samplePath, logger: logger}
}

// Load parses CSV content and swaps it in as the current dataset.
func (d *Dataset) Load(ctx context.Context, csv string) (Summary, error) {
	parsed, err := tabular.ParseCSV(strings.NewReader(csv))
	if err != nil {
		return Summary{}, err
	}

	d.mu.Lock()
	d.current = &dataset{records: parsed.Records, extent: parsed.RouteExtent}
	d.mu.Unlock()

	d.logger.InfoContext(ctx, "dataset loaded",
		"records", len(parsed.Records),
		"route_extent", parsed.RouteExtent,
	)
	return d.Current()
}

// LoadSample loads the sample dataset: the configured sample file when
// readable, otherwise the embedded literal.
func (d *Dataset) LoadSample(ctx context.Context) (Summary, error) {
	content, fromFile := tabular.LoadSample(d.samplePath)
	if d.samplePath != "" && !fromFile {
		d.logger.WarnContext(ctx, "sample file unreachable, using embedded sample", "path", d.samplePath)
	}
	return d.Load(ctx, content)
}

// Current returns a summary of the loaded dataset, or ErrNoDataset.
func (d *Dataset) Current() (Summary, error) {
	records, extent, err := d.snapshot()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		RecordCount: len(records),
		RouteExtent: extent,
		Layers:      coverage.Layers(records),
		Bills:       coverage.Bills(records),
		Months:      coverage.Months(records),
	}, nil
}

// Segments returns the chunk-aligned segmentation of the loaded dataset.
func (d *Dataset) Segments() (coverage.Segmentation, error) {
	records, _, err := d.snapshot()
	if err != nil {
		return coverage.Segmentation{}, err
	}
	return coverage.Segmented(records), nil
}

// Overlaps returns the intra-layer overlap spans of the loaded dataset.
func (d *Dataset) Overlaps() (map[string][]coverage.Span, error) {
	records, _, err := d.snapshot()
	if err != nil {
		return nil, err
	}
	return coverage.OverlapsWithinLayers(records), nil
}

// Gaps returns the per-layer gap spans of the loaded dataset. extraLayers
// names layers to report even when they have no records of their own.
func (d *Dataset) Gaps(extraLayers ...string) (map[string][]coverage.Span, error) {
	records, _, err := d.snapshot()
	if err != nil {
		return nil, err
	}
	return coverage.GapsPerLayer(records, extraLayers...), nil
}

// Progress aggregates covered lengths and percentages under the given filter.
// Filtering never touches stored state, so the UI can recompute on every
// selection change without re-parsing.
func (d *Dataset) Progress(filter coverage.Filter) (coverage.Progress, error) {
	records, extent, err := d.snapshot()
	if err != nil {
		return coverage.Progress{}, err
	}
	return coverage.ComputeProgress(records, extent, filter), nil
}

func (d *Dataset) snapshot() ([]coverage.Record, int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.current == nil {
		return nil, 0, ErrNoDataset
	}
	return d.current.records, d.current.extent, nil
}
