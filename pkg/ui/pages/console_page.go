package pages

import (
	"github.com/arenvale/logpool/pkg/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ConsolePage is the full-screen view of the pool's console stream: the
// threshold echoes plus anything PrintLog and PrintLogLevel emit.
type ConsolePage struct {
	*tview.Flex
	app        ui.AppInterface
	statusText *tview.TextView
}

// NewConsolePage creates a new ConsolePage around the console text view.
func NewConsolePage(app ui.AppInterface, consoleView *tview.TextView) *ConsolePage {
	if consoleView == nil {
		// This should not happen if app is initialized correctly.
		consoleView = tview.NewTextView().SetText("Error: Console view not initialized.")
	}

	wrapper := tview.NewFlex().SetDirection(tview.FlexRow)
	frame := tview.NewFlex().AddItem(consoleView, 0, 1, true)
	frame.SetBorder(true).SetTitle(" Console ").SetTitleAlign(tview.AlignLeft)
	wrapper.AddItem(frame, 0, 1, true)

	p := &ConsolePage{
		Flex:       wrapper,
		app:        app,
		statusText: tview.NewTextView().SetDynamicColors(true),
	}
	p.statusText.SetText("Console stream: echoes and printed logs.")

	wrapper.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			go app.QueueUpdateDraw(app.Navigation().GoBack)
			return nil
		}
		return event
	})

	return p
}

// GetActionPrompts returns the key actions for the console page.
func (p *ConsolePage) GetActionPrompts() []ui.ActionPrompt {
	return []ui.ActionPrompt{
		{Input: "ESC/Ctrl+L", Action: "Close Console"},
	}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *ConsolePage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}
