package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type DialogManager struct {
	app AppInterface
}

func NewDialogManager(app AppInterface) *DialogManager {
	return &DialogManager{app: app}
}

// ShowErrorDialog displays a modal dialog with an error message.
func (m *DialogManager) ShowErrorDialog(title, message string, err error, onDismiss func()) {
	text := message
	if err != nil {
		text = fmt.Sprintf("%s\n\n%s", message, tview.Escape(formatErrorChain(err)))
	}
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Dismiss"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			go m.app.QueueUpdateDraw(func() {
				m.app.Navigation().CloseModal()
				if onDismiss != nil {
					onDismiss()
				}
			})
		})
	modal.SetBorderColor(tcell.ColorRed).SetTitle(" " + title + " ").SetTitleAlign(tview.AlignLeft)
	m.app.Navigation().ShowModal("error_dialog", NewModalPage(modal))
}

// ShowQuitDialog displays a confirmation dialog before quitting.
func (m *DialogManager) ShowQuitDialog() {
	modal := tview.NewModal().
		SetText("Are you sure you want to quit? The pool lives in memory only; all entries are lost on exit.").
		AddButtons([]string{"Cancel", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			go m.app.QueueUpdateDraw(func() {
				m.app.Navigation().CloseModal()
				switch buttonLabel {
				case "Quit":
					m.app.GetLogger().Info("App: Quitting.")
					m.app.Stop()
				case "Cancel":
				}
			})
		})
	modal.SetTitle(" Quit ").SetTitleAlign(tview.AlignLeft)
	m.app.Navigation().ShowModal("quit_dialog", NewModalPage(modal))
}

func (m *DialogManager) ShowQuestionDialog(question string, onYes func(), onNo func()) {
	modal := tview.NewModal().
		SetText(question).
		AddButtons([]string{"No", "Yes"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			go m.app.QueueUpdateDraw(func() {
				m.app.Navigation().CloseModal()
				switch buttonLabel {
				case "Yes":
					if onYes != nil {
						onYes()
					}
				case "No":
					if onNo != nil {
						onNo()
					}
				}
			})
		})
	m.app.Navigation().ShowModal("yes_no_dialog", NewModalPage(modal))
}

// ModalPage is a simple wrapper around a tview.Modal to conform to the Page interface.
type ModalPage struct {
	*tview.Modal
}

// NewModalPage creates a new ModalPage.
func NewModalPage(modal *tview.Modal) *ModalPage {
	return &ModalPage{Modal: modal}
}

// GetActionPrompts returns no prompts as modals have their own buttons.
func (p *ModalPage) GetActionPrompts() []ActionPrompt {
	return []ActionPrompt{}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *ModalPage) GetStatusPrimitive() *tview.TextView {
	return nil
}

// formatErrorChain unwraps a chain of Go errors and formats them
// into a multi-line string, with each level of the error on a new line.
// This is ideal for displaying detailed error messages in a UI.
func formatErrorChain(err error) string {
	var b strings.Builder
	indent := ""
	for err != nil {
		next := errors.Unwrap(err)
		msg := err.Error()
		if next != nil {
			nextMsg := next.Error()
			if i := strings.LastIndex(msg, nextMsg); i > 0 {
				msg = strings.TrimSpace(msg[:i])
			}
		}
		fmt.Fprintf(&b, "%s- %s", indent, msg)
		if next != nil {
			b.WriteRune('\n')
		}
		indent += " "
		err = next
	}

	return b.String()
}
