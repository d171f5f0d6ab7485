package pages

import (
	"fmt"

	"github.com/arenvale/logpool/pkg/logpool"
	"github.com/arenvale/logpool/pkg/ui"
	"github.com/arenvale/logpool/pkg/ui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// retrievalFilters is the cycle order for the 'f' key. LevelSilent is a
// legal filter that matches nothing.
var retrievalFilters = []logpool.Verbosity{
	logpool.LevelDebug,
	logpool.LevelInfo,
	logpool.LevelWarn,
	logpool.LevelError,
	logpool.LevelSilent,
}

// windowSize caps the table to the newest entries when window mode is on.
const windowSize = 100

// ViewerPage is the primary view: the retained entries of the pool, with
// controls to append new entries and to narrow what is shown.
type ViewerPage struct {
	*tview.Flex
	app ui.AppInterface

	statusText *tview.TextView
	entryTable *widgets.EntryTable

	messageField *tview.InputField
	levelSelect  *tview.DropDown
	appendButton *tview.Button

	filterIndex int
	exactMatch  bool
	windowed    bool
}

// NewViewerPage creates a new ViewerPage instance.
func NewViewerPage(app ui.AppInterface) *ViewerPage {
	p := &ViewerPage{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		app:        app,
		statusText: tview.NewTextView().SetDynamicColors(true),
	}
	p.setupLayout()
	p.SetInputCapture(p.inputHandler())
	p.Refresh()
	return p
}

// setupLayout initializes and arranges all the UI components of the page.
func (p *ViewerPage) setupLayout() {
	// --- Append Controls ---
	p.messageField = tview.NewInputField().
		SetLabel("Message: ").
		SetFieldWidth(0)
	p.messageField.SetPlaceholder("Text to append to the pool").
		SetFieldTextColor(tcell.ColorBlack).
		SetPlaceholderTextColor(tcell.ColorGray)
	p.messageField.SetFocusFunc(func() {
		p.messageField.SetFieldBackgroundColor(tcell.ColorBlue)
	})
	p.messageField.SetBlurFunc(func() {
		p.messageField.SetFieldBackgroundColor(tcell.ColorSlateGray)
	})
	p.messageField.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			p.appendEntry()
		}
	})

	p.levelSelect = tview.NewDropDown().
		SetLabel("Level: ").
		SetOptions([]string{"Error", "Warn", "Info", "Debug"}, nil).
		SetCurrentOption(2) // Info
	p.levelSelect.SetFieldBackgroundColor(tcell.ColorSlateGray).
		SetFieldTextColor(tcell.ColorBlack)

	p.appendButton = tview.NewButton("Append").SetSelectedFunc(p.appendEntry)
	widgets.DefaultStyleButton(p.appendButton)

	appendFlex := tview.NewFlex().
		AddItem(p.messageField, 0, 1, true).
		AddItem(nil, 1, 0, false).
		AddItem(p.levelSelect, 16, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(p.appendButton, 12, 0, false)
	appendFlex.SetBorderPadding(0, 0, 1, 1)

	// --- Entry Table ---
	p.entryTable = widgets.NewEntryTable()

	tableFrame := tview.NewFlex().AddItem(p.entryTable, 0, 1, true)
	tableFrame.SetBorder(true).SetTitle(" Entries ").SetTitleAlign(tview.AlignLeft)

	p.AddItem(appendFlex, 1, 0, true).
		AddItem(tableFrame, 0, 1, false)
}

func (p *ViewerPage) inputHandler() func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		// Plain letters must keep working as text in the input fields.
		if _, ok := p.app.GetFocus().(*tview.InputField); ok {
			return event
		}
		if _, ok := p.app.GetFocus().(*tview.DropDown); ok {
			return event
		}

		switch event.Rune() {
		case 'f':
			p.filterIndex = (p.filterIndex + 1) % len(retrievalFilters)
			p.Refresh()
			return nil
		case 'e':
			p.exactMatch = !p.exactMatch
			p.Refresh()
			return nil
		case 'w':
			p.windowed = !p.windowed
			p.Refresh()
			return nil
		case 'p':
			if err := p.app.GetPool().PrintLog(); err != nil {
				p.app.Dialogs().ShowErrorDialog("Print Failed", "Could not print the log.", err, nil)
				return nil
			}
			p.app.Navigation().SwitchTo(ui.PageConsoleID)
			return nil
		case 'l':
			if err := p.app.GetPool().PrintLogLevel(p.filter()); err != nil {
				p.app.Dialogs().ShowErrorDialog("Print Failed", "Could not print the log.", err, nil)
				return nil
			}
			p.app.Navigation().SwitchTo(ui.PageConsoleID)
			return nil
		}
		return event
	}
}

func (p *ViewerPage) filter() logpool.Verbosity {
	return retrievalFilters[p.filterIndex]
}

// appendEntry appends the message field's text at the selected level.
func (p *ViewerPage) appendEntry() {
	message := p.messageField.GetText()
	if message == "" {
		return
	}

	_, levelName := p.levelSelect.GetCurrentOption()
	level, err := logpool.ParseVerbosity(levelName)
	if err != nil {
		level = logpool.LevelInfo
	}

	if err := p.app.GetPool().Append(message, level); err != nil {
		p.app.Dialogs().ShowErrorDialog("Append Failed", "The pool no longer accepts entries.", err, nil)
		return
	}
	p.messageField.SetText("")
	p.Refresh()
}

// Refresh re-reads the pool and updates the table and status line.
func (p *ViewerPage) Refresh() {
	pool := p.app.GetPool()
	filter := p.filter()

	var entries []logpool.Entry
	var err error
	if p.windowed {
		size, sizeErr := pool.GetSize()
		if sizeErr != nil {
			err = sizeErr
		} else {
			end := size
			if end > windowSize {
				end = windowSize
			}
			entries, err = pool.GetEntries(0, end, filter)
		}
	} else {
		entries, err = pool.GetLog(filter)
	}
	if err != nil {
		p.statusText.SetText(fmt.Sprintf("[red]Pool unavailable: %v", err))
		return
	}

	if p.exactMatch {
		// Show only entries at exactly the filter level, mirroring what
		// PrintLogLevel would emit.
		exact := entries[:0:0]
		for _, entry := range entries {
			if entry.Level == filter {
				exact = append(exact, entry)
			}
		}
		entries = exact
	}

	p.entryTable.SetEntries(entries)
	p.updateStatus(pool)
}

func (p *ViewerPage) updateStatus(pool *logpool.Pool) {
	size, err := pool.GetSize()
	if err != nil {
		p.statusText.SetText(fmt.Sprintf("[red]Pool unavailable: %v", err))
		return
	}
	counter, err := pool.GetCounter()
	if err != nil {
		p.statusText.SetText(fmt.Sprintf("[red]Pool unavailable: %v", err))
		return
	}

	mode := "<="
	if p.exactMatch {
		mode = "=="
	}
	window := ""
	if p.windowed {
		window = fmt.Sprintf(" | Window: newest %d", windowSize)
	}

	latest := "none"
	if entry, err := pool.GetEntry(0); err == nil {
		latest = fmt.Sprintf("#%d %s", entry.ID, entry.Level)
	}

	p.statusText.SetText(fmt.Sprintf(
		"Filter: %s %s | Threshold: %s | Size: %d/%d | Next id: %d | Latest: %s%s",
		mode, p.filter(), pool.GetVerbosity(), size, pool.GetMaxSize(), counter, latest, window))
}

// OnPageActivated refreshes the view whenever the page becomes visible.
func (p *ViewerPage) OnPageActivated() {
	p.Refresh()
}

// GetFocusablePrimitives returns the focus cycle for the page.
func (p *ViewerPage) GetFocusablePrimitives() []tview.Primitive {
	return []tview.Primitive{p.messageField, p.levelSelect, p.appendButton, p.entryTable}
}

// GetActionPrompts returns the key actions for the viewer page.
func (p *ViewerPage) GetActionPrompts() []ui.ActionPrompt {
	return []ui.ActionPrompt{
		{Input: "f", Action: "Cycle Filter"},
		{Input: "e", Action: "Exact Level"},
		{Input: "w", Action: "Window"},
		{Input: "p", Action: "Print Log"},
		{Input: "l", Action: "Print Level"},
	}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *ViewerPage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}
