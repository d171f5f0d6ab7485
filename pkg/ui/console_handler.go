package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rivo/tview"
)

// ConsoleHandler renders the pool's console stream in the UI. The pool's
// console writer forwards echoes and printed logs to a channel; the handler
// drains it, batches the lines, and flushes them into a text view.
type ConsoleHandler struct {
	app             AppInterface
	consoleTextView *tview.TextView
	consoleChannel  chan []byte
	batch           [][]byte
	shutdownWg      *sync.WaitGroup

	batchMutex   sync.Mutex
	updateTicker *time.Ticker
}

// NewConsoleHandler creates a new handler for the console stream.
func NewConsoleHandler(app AppInterface, consoleChannel chan []byte, wg *sync.WaitGroup) *ConsoleHandler {
	return &ConsoleHandler{
		app:            app,
		consoleChannel: consoleChannel,
		consoleTextView: tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(true).
			SetWrap(true),
		shutdownWg: wg,
	}
}

// TextView returns the underlying tview.TextView for the console stream.
func (h *ConsoleHandler) TextView() *tview.TextView {
	return h.consoleTextView
}

// Start begins the console processing loop.
func (h *ConsoleHandler) Start(ctx context.Context) {
	h.updateTicker = time.NewTicker(100 * time.Millisecond)
	h.shutdownWg.Add(1) // Add to waitgroup for this goroutine

	go func() {
		defer h.shutdownWg.Done()
		for {
			select {
			case <-ctx.Done():
				h.updateTicker.Stop()
				return
			case msg, ok := <-h.consoleChannel:
				if !ok {
					return
				}
				h.batchMutex.Lock()
				h.batch = append(h.batch, msg)
				h.batchMutex.Unlock()
			case <-h.updateTicker.C:
				h.flushBatch()
			}
		}
	}()
}

// flushBatch writes the accumulated console lines in one UI call.
func (h *ConsoleHandler) flushBatch() {
	h.batchMutex.Lock()
	if len(h.batch) == 0 {
		h.batchMutex.Unlock()
		return
	}

	var batchContent strings.Builder
	for _, msg := range h.batch {
		batchContent.Write(msg)
	}
	h.batch = nil
	h.batchMutex.Unlock()

	go h.app.QueueUpdateDraw(func() {
		fmt.Fprint(h.consoleTextView, tview.Escape(batchContent.String()))
		h.consoleTextView.ScrollToEnd()
	})
}
