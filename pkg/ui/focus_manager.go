package ui

import "github.com/rivo/tview"

// FocusManager handles cycling focus between a page's focusable primitives.
type FocusManager struct {
	app AppInterface
}

// NewFocusManager creates a new focus manager.
func NewFocusManager(app AppInterface) *FocusManager {
	return &FocusManager{app: app}
}

// Cycle moves the focus to the next or previous primitive of the given page.
// Returns false if the page exposes nothing to focus.
func (fm *FocusManager) Cycle(root tview.Primitive, forward bool) bool {
	focusable, ok := root.(Focusable)
	if !ok {
		return false
	}
	chain := focusable.GetFocusablePrimitives()
	if len(chain) == 0 {
		return false
	}

	currentFocus := fm.app.GetFocus()
	currentIndex := -1
	for i, p := range chain {
		if p == currentFocus || p.HasFocus() {
			currentIndex = i
			break
		}
	}

	var nextIndex int
	if currentIndex == -1 {
		nextIndex = 0
	} else if forward {
		nextIndex = (currentIndex + 1) % len(chain)
	} else {
		nextIndex = (currentIndex - 1 + len(chain)) % len(chain)
	}

	fm.app.SetFocus(chain[nextIndex])
	return true
}
