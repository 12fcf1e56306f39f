package logging

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"text", FormatText},
		{"TINT", FormatText},
		{"human", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"auto", FormatAuto},
		{"", FormatAuto},
		{"garbage", FormatAuto},
	}
	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsTTYNonFile(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Fatal("IsTTY reported true for a bytes.Buffer")
	}
}
