package logpool_test

import (
	"context"
	"testing"

	"github.com/arenvale/logpool/pkg/logpool"
)

func TestChannelWriterForwardsEchoes(t *testing.T) {
	ch := make(chan []byte, 8)
	cw := logpool.NewChannelWriter(context.Background(), ch)

	p := logpool.New(logpool.LevelDebug, 10)
	p.SetConsole(cw)
	if err := p.Append("hello", logpool.LevelInfo); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}

	select {
	case msg := <-ch:
		if got := string(msg); got != "hello\n" {
			t.Errorf("Got %q, want %q", got, "hello\n")
		}
	default:
		t.Fatal("Expected the echo to reach the channel")
	}
}

func TestChannelWriterDropsWhenFull(t *testing.T) {
	ch := make(chan []byte, 1)
	cw := logpool.NewChannelWriter(context.Background(), ch)

	// The second write finds the channel full and must not block.
	for _, msg := range []string{"first", "second"} {
		n, err := cw.Write([]byte(msg))
		if err != nil {
			t.Fatalf("Failed to write %q: %v", msg, err)
		}
		if n != len(msg) {
			t.Errorf("Got n %d for %q, want %d", n, msg, len(msg))
		}
	}

	if got := string(<-ch); got != "first" {
		t.Errorf("Got %q, want %q", got, "first")
	}
	select {
	case msg := <-ch:
		t.Errorf("Expected the overflow write to be dropped, got %q", string(msg))
	default:
	}
}

func TestChannelWriterStopsAfterCancel(t *testing.T) {
	ch := make(chan []byte, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cw := logpool.NewChannelWriter(ctx, ch)
	cancel()

	if _, err := cw.Write([]byte("late")); err != nil {
		t.Fatalf("Failed to write after cancel: %v", err)
	}
	select {
	case msg := <-ch:
		t.Errorf("Expected no message after cancel, got %q", string(msg))
	default:
	}
}
