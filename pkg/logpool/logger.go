package logpool

import (
	"fmt"
	"strings"
)

// Logger is a leveled convenience front for a Pool. Every call appends one
// entry; whether it also reaches the console is decided by the pool's
// verbosity threshold, not by the method used.
type Logger struct {
	pool *Pool
}

// NewLogger creates a logger that appends to pool. A nil pool is replaced
// with NewDefault().
func NewLogger(pool *Pool) *Logger {
	if pool == nil {
		pool = NewDefault()
	}
	return &Logger{pool: pool}
}

// Pool returns the pool this logger appends to.
func (l *Logger) Pool() *Pool {
	return l.pool
}

func (l *Logger) log(level Verbosity, v ...interface{}) error {
	return l.pool.Append(strings.TrimSpace(fmt.Sprintln(v...)), level)
}

func (l *Logger) logf(level Verbosity, format string, v ...interface{}) error {
	return l.pool.Append(fmt.Sprintf(format, v...), level)
}

// Error appends an error-level entry.
func (l *Logger) Error(v ...interface{}) error {
	return l.log(LevelError, v...)
}

// Errorf appends a formatted error-level entry.
func (l *Logger) Errorf(format string, v ...interface{}) error {
	return l.logf(LevelError, format, v...)
}

// Warn appends a warn-level entry.
func (l *Logger) Warn(v ...interface{}) error {
	return l.log(LevelWarn, v...)
}

// Warnf appends a formatted warn-level entry.
func (l *Logger) Warnf(format string, v ...interface{}) error {
	return l.logf(LevelWarn, format, v...)
}

// Info appends an info-level entry.
func (l *Logger) Info(v ...interface{}) error {
	return l.log(LevelInfo, v...)
}

// Infof appends a formatted info-level entry.
func (l *Logger) Infof(format string, v ...interface{}) error {
	return l.logf(LevelInfo, format, v...)
}

// Debug appends a debug-level entry.
func (l *Logger) Debug(v ...interface{}) error {
	return l.log(LevelDebug, v...)
}

// Debugf appends a formatted debug-level entry.
func (l *Logger) Debugf(format string, v ...interface{}) error {
	return l.logf(LevelDebug, format, v...)
}
