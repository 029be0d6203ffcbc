package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "fetch", "status", 200)
	if m["op"] != "fetch" {
		t.Errorf("op = %v", m["op"])
	}
	if m["status"] != 200 {
		t.Errorf("status = %v", m["status"])
	}

	// Odd trailing value is dropped
	m = Fields("only-key")
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("dispatch", errors.New("boom"))
	if m[FieldOperation] != "dispatch" {
		t.Errorf("operation = %v", m[FieldOperation])
	}
	if m[FieldError] != "boom" {
		t.Errorf("error = %v", m[FieldError])
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithLogger(zerolog.New(&buf), "test").WithComponent("fetcher")

	log.Info("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"fetcher"`) {
		t.Errorf("output missing component field: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("output missing message: %s", out)
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithLogger(zerolog.New(&buf), "test").WithFields(map[string]interface{}{"k": "v"})

	log.Info("msg")

	if !strings.Contains(buf.String(), `"k":"v"`) {
		t.Errorf("output missing field: %s", buf.String())
	}
}

func TestGlobalLogger(t *testing.T) {
	if GetGlobalLogger() == nil {
		t.Fatal("expected non-nil global logger")
	}

	var buf bytes.Buffer
	SetGlobalLogger(NewWithLogger(zerolog.New(&buf), "global"))
	Info("ping")
	if !strings.Contains(buf.String(), "ping") {
		t.Errorf("global logger output missing message: %s", buf.String())
	}
}

func TestReporter_ReportError(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(NewWithLogger(zerolog.New(&buf), "test"))

	r.ReportError("E1: bad", errors.New("transport: server (HTTP 500): HTTP 500"))

	out := buf.String()
	if !strings.Contains(out, "E1: bad") {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, "HTTP 500") {
		t.Errorf("output missing error: %s", out)
	}
	if !strings.Contains(out, `"component":"fetcher"`) {
		t.Errorf("output missing component tag: %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("expected error level: %s", out)
	}
}

func TestReporter_NilLoggerFallsBack(t *testing.T) {
	r := NewReporter(nil)
	// Must not panic.
	r.ReportError("msg", errors.New("err"))
}
