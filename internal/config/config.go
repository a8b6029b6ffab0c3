// Package config provides application configuration.
package config

import (
	"fmt"
	"strings"
)

// Default configuration values.
const (
	DefaultHost       = "0.0.0.0"
	DefaultPort       = 8080
	DefaultLogLevel   = "INFO"
	DefaultCORSOrigin = "*"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig is the immutable application configuration. Build one with
// NewAppConfig and AppConfigOption values, or via LoadConfig.
type AppConfig struct {
	host        string
	port        int
	logLevel    string
	logFormat   LogFormat
	corsOrigins []string
	sampleFile  string
	paletteFile string
}

// AppConfigOption configures an AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log output format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithCORSOrigins sets the allowed CORS origins for the browser UI.
func WithCORSOrigins(origins ...string) AppConfigOption {
	return func(c *AppConfig) {
		c.corsOrigins = make([]string, len(origins))
		copy(c.corsOrigins, origins)
	}
}

// WithSampleFile sets the path of the sample dataset file.
func WithSampleFile(path string) AppConfigOption {
	return func(c *AppConfig) { c.sampleFile = path }
}

// WithPaletteFile sets the path of the layer colour palette file.
func WithPaletteFile(path string) AppConfigOption {
	return func(c *AppConfig) { c.paletteFile = path }
}

// NewAppConfig creates an AppConfig with defaults, then applies options.
func NewAppConfig(opts ...AppConfigOption) AppConfig {
	cfg := AppConfig{
		host:        DefaultHost,
		port:        DefaultPort,
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		corsOrigins: []string{DefaultCORSOrigin},
	}
	return cfg.Apply(opts...)
}

// Apply returns a copy with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Host returns the server host.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port listen address.
func (c AppConfig) Addr() string { return fmt.Sprintf("%s:%d", c.host, c.port) }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// CORSOrigins returns the allowed CORS origins.
func (c AppConfig) CORSOrigins() []string {
	out := make([]string, len(c.corsOrigins))
	copy(out, c.corsOrigins)
	return out
}

// SampleFile returns the sample dataset path, empty when unset.
func (c AppConfig) SampleFile() string { return c.sampleFile }

// PaletteFile returns the palette file path, empty when unset.
func (c AppConfig) PaletteFile() string { return c.paletteFile }

func parseLogFormat(s string) LogFormat {
	if strings.EqualFold(s, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}
