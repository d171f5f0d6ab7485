package logpool_test

import (
	"errors"
	"testing"

	"github.com/arenvale/logpool/pkg/logpool"
)

func TestVerbosityOrder(t *testing.T) {
	ordered := []logpool.Verbosity{
		logpool.LevelSilent,
		logpool.LevelError,
		logpool.LevelWarn,
		logpool.LevelInfo,
		logpool.LevelDebug,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("Expected %s < %s", ordered[i-1], ordered[i])
		}
	}
}

func TestVerbosityString(t *testing.T) {
	tests := []struct {
		level    logpool.Verbosity
		expected string
	}{
		{logpool.LevelSilent, "Silent"},
		{logpool.LevelError, "Error"},
		{logpool.LevelWarn, "Warn"},
		{logpool.LevelInfo, "Info"},
		{logpool.LevelDebug, "Debug"},
		{logpool.Verbosity(99), "Unknown"},
	}
	for _, test := range tests {
		if got := test.level.String(); got != test.expected {
			t.Errorf("For level %d, got %q, want %q", int(test.level), got, test.expected)
		}
	}
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		input    string
		expected logpool.Verbosity
		err      bool
	}{
		{"silent", logpool.LevelSilent, false},
		{"error", logpool.LevelError, false},
		{"warn", logpool.LevelWarn, false},
		{"warning", logpool.LevelWarn, false},
		{"info", logpool.LevelInfo, false},
		{"debug", logpool.LevelDebug, false},
		// Case and surrounding whitespace are forgiven.
		{"Debug", logpool.LevelDebug, false},
		{"ERROR", logpool.LevelError, false},
		{" info ", logpool.LevelInfo, false},
		{"", logpool.LevelSilent, true},
		{"verbose", logpool.LevelSilent, true},
		{"3", logpool.LevelSilent, true},
	}
	for _, test := range tests {
		got, err := logpool.ParseVerbosity(test.input)
		if test.err {
			if !errors.Is(err, logpool.ErrInvalidVerbosity) {
				t.Errorf("Expected ErrInvalidVerbosity for input %q, got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input %q: %v", test.input, err)
			continue
		}
		if got != test.expected {
			t.Errorf("For input %q, got %s, want %s", test.input, got, test.expected)
		}
	}
}
