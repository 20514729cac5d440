package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if result := tt.level.String(); result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"Info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"ERROR", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if result := ParseLogLevel(tt.input); result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	out := buf.String()
	if strings.Contains(out, "debug") || strings.Contains(out, "info") {
		t.Errorf("low levels were logged: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn") || !strings.Contains(out, "[ERROR] error") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Prefix: "linedit"})

	logger.Info("applied %d intents", 3)

	if !strings.Contains(buf.String(), "[INFO] linedit: applied 3 intents\n") {
		t.Errorf("unexpected format: %q", buf.String())
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Output: &buf}).
		WithField("session", "abc").
		WithFields(map[string]any{"b": 2, "a": 1}).
		WithComponent("loop")

	logger.Info("x")

	if !strings.HasSuffix(buf.String(), "x {a=1, b=2, component=loop, session=abc}\n") {
		t.Errorf("fields = %q", buf.String())
	}
}

func TestLogger_DerivedShareSink(t *testing.T) {
	var first, second bytes.Buffer
	root := NewLogger(LoggerConfig{Output: &first})
	child := root.WithComponent("config")

	root.SetOutput(&second)
	root.SetLevel(LogLevelError)

	child.Warn("dropped")
	child.Error("kept")

	if first.Len() != 0 {
		t.Errorf("old output written: %q", first.String())
	}
	if !strings.Contains(second.String(), "kept") || strings.Contains(second.String(), "dropped") {
		t.Errorf("child ignored parent settings: %q", second.String())
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(LoggerConfig{Output: &buf})
	_ = parent.WithField("k", "v")

	parent.Info("x")
	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent gained child field: %q", buf.String())
	}
}

func TestLogger_Disable(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Output: &buf})
	logger.Disable()
	logger.Error("x")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}
