// Package logpool provides a bounded, concurrency-safe pool of log entries.
// A pool retains the most recent entries in memory, tags each with a
// monotonically increasing id, and optionally echoes messages to a console
// based on a verbosity threshold.
package logpool

import (
	"errors"
	"strings"
)

// Verbosity defines the scope of a log entry and the echo threshold of a
// pool. The order is important: each level admits strictly more entries
// than the one before it.
type Verbosity int

const (
	// LevelSilent is a threshold value that suppresses all echoing. Do not
	// use it as the level of an actual entry: such an entry would pass
	// every threshold and every filter.
	LevelSilent Verbosity = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the display name of a Verbosity. These exact forms appear
// in the console output of PrintLog and PrintLogLevel.
func (v Verbosity) String() string {
	switch v {
	case LevelSilent:
		return "Silent"
	case LevelError:
		return "Error"
	case LevelWarn:
		return "Warn"
	case LevelInfo:
		return "Info"
	case LevelDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// ErrInvalidVerbosity is returned by ParseVerbosity for unrecognized names.
var ErrInvalidVerbosity = errors.New("invalid verbosity level")

// ParseVerbosity converts a level name to a Verbosity. Case-insensitive.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return LevelSilent, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelSilent, ErrInvalidVerbosity
	}
}

// Entry is a single retained log record. Entries are immutable once
// created; the pool hands out copies.
type Entry struct {
	// ID is assigned from the pool's counter. Ids count appends over the
	// pool's lifetime, so after evictions an entry's id no longer matches
	// its position.
	ID      uint32
	Message string
	Level   Verbosity
}
