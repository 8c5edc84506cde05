package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestConsoleLoggerLevels verifies level filtering behavior.
func TestConsoleLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "warn")

	cl.LogDebug("debug message")
	cl.LogInfo("info message")
	cl.LogWarn("warn message")
	cl.LogError("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Errorf("debug message should be filtered at warn level, got: %q", out)
	}
	if strings.Contains(out, "info message") {
		t.Errorf("info message should be filtered at warn level, got: %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("warn message missing from output: %q", out)
	}
	if !strings.Contains(out, "error message") {
		t.Errorf("error message missing from output: %q", out)
	}
}

// TestConsoleLoggerFormat verifies the [HH:MM:SS] [LEVEL] line format.
func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.LogInfo("hello")

	out := buf.String()
	if !strings.Contains(out, "[INFO] hello") {
		t.Errorf("output missing level prefix: %q", out)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("output missing timestamp prefix: %q", out)
	}
}

// TestConsoleLoggerNilWriter verifies nil writers discard silently.
func TestConsoleLoggerNilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "info")
	// Must not panic.
	cl.LogInfo("discarded")
	cl.LogError("discarded")
}

// TestConsoleLoggerDefaultLevel verifies invalid levels fall back to info.
func TestConsoleLoggerDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "bogus")

	cl.LogDebug("debug message")
	cl.LogInfo("info message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Errorf("debug should be filtered at default info level: %q", out)
	}
	if !strings.Contains(out, "info message") {
		t.Errorf("info message missing: %q", out)
	}
}

// TestConsoleLoggerNoColorForBuffer verifies color output is disabled for
// non-TTY writers.
func TestConsoleLoggerNoColorForBuffer(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	if cl.colorOutput {
		t.Error("color output should be disabled for a bytes.Buffer")
	}

	cl.LogInfo("plain")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected ANSI codes in buffer output: %q", buf.String())
	}
}

func TestNormalizeLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TRACE", "trace"},
		{" Debug ", "debug"},
		{"info", "info"},
		{"", "info"},
		{"verbose", "info"},
	}

	for _, tt := range tests {
		if got := normalizeLogLevel(tt.in); got != tt.want {
			t.Errorf("normalizeLogLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
