package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := NewAppConfig()

	if cfg.Host() != DefaultHost {
		t.Errorf("Host() = %v, want %v", cfg.Host(), DefaultHost)
	}
	if cfg.Port() != DefaultPort {
		t.Errorf("Port() = %v, want %v", cfg.Port(), DefaultPort)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %v, want 0.0.0.0:8080", cfg.Addr())
	}
	if cfg.LogLevel() != DefaultLogLevel {
		t.Errorf("LogLevel() = %v, want %v", cfg.LogLevel(), DefaultLogLevel)
	}
	if cfg.LogFormat() != LogFormatPretty {
		t.Errorf("LogFormat() = %v, want %v", cfg.LogFormat(), LogFormatPretty)
	}
	if got := cfg.CORSOrigins(); len(got) != 1 || got[0] != DefaultCORSOrigin {
		t.Errorf("CORSOrigins() = %v, want [%v]", got, DefaultCORSOrigin)
	}
	if cfg.SampleFile() != "" {
		t.Errorf("SampleFile() = %v, want empty", cfg.SampleFile())
	}
}

func TestApply_DoesNotMutateReceiver(t *testing.T) {
	base := NewAppConfig()
	changed := base.Apply(WithPort(9090), WithHost("127.0.0.1"))

	if base.Port() != DefaultPort {
		t.Errorf("base Port mutated to %v", base.Port())
	}
	if changed.Port() != 9090 || changed.Host() != "127.0.0.1" {
		t.Errorf("changed = %v:%v, want 127.0.0.1:9090", changed.Host(), changed.Port())
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		in   string
		want LogFormat
	}{
		{"json", LogFormatJSON},
		{"JSON", LogFormatJSON},
		{"pretty", LogFormatPretty},
		{"", LogFormatPretty},
		{"garbage", LogFormatPretty},
	}
	for _, tt := range tests {
		if got := parseLogFormat(tt.in); got != tt.want {
			t.Errorf("parseLogFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnvConfig_ToAppConfig(t *testing.T) {
	env := EnvConfig{
		Host:        "127.0.0.1",
		Port:        9000,
		LogLevel:    "DEBUG",
		LogFormat:   "json",
		CORSOrigins: "https://a.example, https://b.example",
		SampleFile:  "/data/sample.csv",
	}

	cfg := env.ToAppConfig()

	if cfg.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr() = %v", cfg.Addr())
	}
	if cfg.LogFormat() != LogFormatJSON {
		t.Errorf("LogFormat() = %v, want json", cfg.LogFormat())
	}
	origins := cfg.CORSOrigins()
	if len(origins) != 2 || origins[0] != "https://a.example" || origins[1] != "https://b.example" {
		t.Errorf("CORSOrigins() = %v", origins)
	}
	if cfg.SampleFile() != "/data/sample.csv" {
		t.Errorf("SampleFile() = %v", cfg.SampleFile())
	}
}
