package ui

import (
	"github.com/arenvale/logpool/pkg/logpool"
	"github.com/rivo/tview"
)

// AppInterface defines methods the UI layer needs to access from the main App struct.
// It acts as a facade for UI components to interact with the application's core.
type AppInterface interface {
	// --- UI methods & Managers ---
	QueueUpdateDraw(f func()) *tview.Application
	Stop()
	Navigation() *NavigationManager
	Dialogs() *DialogManager
	Layout() *LayoutManager
	GetFocusManager() *FocusManager
	GetFocus() tview.Primitive
	SetFocus(tview.Primitive)

	// --- Core Logic ---
	GetPool() *logpool.Pool
	GetLogger() *logpool.Logger
}

// Focusable is an interface for any primitive that contains child elements
// which can be focused. It's used by the FocusManager to build the focus chain.
type Focusable interface {
	// GetFocusablePrimitives returns a slice of the immediate child primitives
	// that can receive focus.
	GetFocusablePrimitives() []tview.Primitive
}
