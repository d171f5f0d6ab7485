package logpool_test

import (
	"errors"
	"testing"

	"github.com/arenvale/logpool/pkg/logpool"
)

func TestLoggerLevels(t *testing.T) {
	p, _ := newTestPool(t, logpool.LevelSilent, 10)
	l := logpool.NewLogger(p)

	calls := []struct {
		log  func(v ...interface{}) error
		want logpool.Verbosity
	}{
		{l.Error, logpool.LevelError},
		{l.Warn, logpool.LevelWarn},
		{l.Info, logpool.LevelInfo},
		{l.Debug, logpool.LevelDebug},
	}
	for _, call := range calls {
		if err := call.log("message"); err != nil {
			t.Fatalf("Failed to log at %s: %v", call.want, err)
		}
		entry, err := p.GetEntry(0)
		if err != nil {
			t.Fatalf("Failed to get entry: %v", err)
		}
		if entry.Level != call.want {
			t.Errorf("Got level %s, want %s", entry.Level, call.want)
		}
		if entry.Message != "message" {
			t.Errorf("Got message %q, want %q", entry.Message, "message")
		}
	}
}

func TestLoggerMessageAssembly(t *testing.T) {
	p, _ := newTestPool(t, logpool.LevelSilent, 10)
	l := logpool.NewLogger(p)

	tests := []struct {
		name string
		log  func() error
		want string
	}{
		{"Multiple Values", func() error { return l.Info("loaded", 3, "mods") }, "loaded 3 mods"},
		{"Single Value", func() error { return l.Warn("careful") }, "careful"},
		{"Formatted", func() error { return l.Errorf("attempt %d of %d failed", 2, 5) }, "attempt 2 of 5 failed"},
		{"Formatted Verb Types", func() error { return l.Debugf("took %.1fs", 1.25) }, "took 1.2s"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.log(); err != nil {
				t.Fatalf("Failed to log: %v", err)
			}
			entry, err := p.GetEntry(0)
			if err != nil {
				t.Fatalf("Failed to get entry: %v", err)
			}
			if entry.Message != test.want {
				t.Errorf("Got message %q, want %q", entry.Message, test.want)
			}
		})
	}
}

func TestLoggerSurfacesPoolErrors(t *testing.T) {
	p := logpool.New(logpool.LevelDebug, 10)
	p.SetConsole(panicWriter{})
	l := logpool.NewLogger(p)

	func() {
		defer func() { _ = recover() }()
		_ = l.Error("boom")
	}()

	if err := l.Info("after"); !errors.Is(err, logpool.ErrPoisoned) {
		t.Errorf("Got %v from a poisoned pool, want ErrPoisoned", err)
	}
}

func TestLoggerNilPool(t *testing.T) {
	l := logpool.NewLogger(nil)
	if l.Pool() == nil {
		t.Fatal("Expected a default pool for a nil argument")
	}
	if got := l.Pool().GetMaxSize(); got != logpool.DefaultMaxSize {
		t.Errorf("Got max size %d, want %d", got, logpool.DefaultMaxSize)
	}
}
