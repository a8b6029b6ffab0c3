package layercover

import (
	"log/slog"

	"github.com/seetharamanm/layercover/internal/palette"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	logger      *slog.Logger
	sampleFile  string
	paletteFile string
	palette     palette.Palette
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		logger:  slog.Default(),
		palette: palette.Default(),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSampleFile sets the CSV file served as the sample dataset. The
// embedded sample is used when the file is unreachable.
func WithSampleFile(path string) Option {
	return func(c *clientConfig) {
		c.sampleFile = path
	}
}

// WithPaletteFile sets a YAML file mapping layer names to display colours,
// merged over the built-in palette. Unlike an unreachable sample file, a
// palette file that fails to load is an error: it was configured explicitly.
func WithPaletteFile(path string) Option {
	return func(c *clientConfig) {
		c.paletteFile = path
	}
}

// WithPalette sets the palette directly.
func WithPalette(p palette.Palette) Option {
	return func(c *clientConfig) {
		c.palette = p
	}
}
