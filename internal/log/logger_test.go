package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/seetharamanm/layercover/internal/config"
)

var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiEscapes.ReplaceAllString(s, "")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	logger.Info("dataset loaded", "records", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "dataset loaded" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["records"] != float64(42) {
		t.Errorf("records = %v", entry["records"])
	}
}

func TestLogger_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatPretty, "INFO")

	logger.Warn("sample file unreachable", "path", "/tmp/x.csv")

	out := buf.String()
	if !strings.Contains(out, "WRN") {
		t.Errorf("missing level label in %q", out)
	}
	if !strings.Contains(out, "sample file unreachable") {
		t.Errorf("missing message in %q", out)
	}
	if !strings.Contains(out, "path=") {
		t.Errorf("missing attr in %q", out)
	}
}

func TestLogger_PrettyFormat_QuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatPretty, "INFO")

	logger.Info("dataset loaded", "source", "survey sheet three", "records", 42)

	out := stripANSI(buf.String())
	if !strings.Contains(out, `source="survey sheet three"`) {
		t.Errorf("spaced string value not quoted in %q", out)
	}
	if !strings.Contains(out, "records=42") {
		t.Errorf("numeric value mangled in %q", out)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatPretty, "WARN")

	logger.Info("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("info record written despite WARN level: %q", buf.String())
	}

	logger.Error("should be written")
	if buf.Len() == 0 {
		t.Error("error record dropped")
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatPretty, "INFO").With("component", "api")

	logger.Info("ready")

	if !strings.Contains(buf.String(), "component=") {
		t.Errorf("missing inherited attr in %q", buf.String())
	}
}
