package logger_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"todoweb/internal/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := logger.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInit_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.Init("warn", false, &buf)

	l.Info("hidden")
	l.Warn("shown", "op", "list")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "op=list") {
		t.Errorf("expected warn record with attrs, got %q", out)
	}
	if logger.Get() != l {
		t.Error("Init should replace the default logger")
	}
}

func TestInit_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.Init("debug", true, &buf)
	l.Debug("hello")

	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
