// Package layercover analyzes construction-layer coverage along a linear
// route. Chainage stretches are parsed into typed records, split into
// chunk-aligned display segments, checked for intra-layer overlaps and
// coverage gaps, and aggregated into progress percentages under optional
// bill and month filters.
//
// Basic usage:
//
//	client, err := layercover.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load a CSV dataset
//	summary, err := client.Datasets.Load(ctx, csvContent)
//
//	// Run the analyses
//	segments, err := client.Datasets.Segments()
//	gaps, err := client.Datasets.Gaps()
//	progress, err := client.Datasets.Progress(coverage.NewFilter(
//	    coverage.WithBills("MB-1"),
//	))
package layercover

import (
	"log/slog"

	"github.com/seetharamanm/layercover/application/service"
	"github.com/seetharamanm/layercover/internal/palette"
)

// Client is the main entry point for the layercover library.
//
// Access the dataset service via the struct field:
//
//	client.Datasets.Load(ctx, csv)
//	client.Datasets.Progress(filter)
type Client struct {
	// Datasets holds the current dataset and runs the analyses.
	Datasets *service.Dataset

	logger  *slog.Logger
	palette palette.Palette
}

// New creates a Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	pal := cfg.palette
	if cfg.paletteFile != "" {
		loaded, err := palette.Load(cfg.paletteFile)
		if err != nil {
			return nil, err
		}
		pal = loaded
	}

	return &Client{
		Datasets: service.NewDataset(cfg.sampleFile, cfg.logger),
		logger:   cfg.logger,
		palette:  pal,
	}, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Palette returns the layer colour palette.
func (c *Client) Palette() palette.Palette {
	return c.palette
}
