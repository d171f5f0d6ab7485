package widgets

import (
	"strconv"
	"strings"

	"github.com/arenvale/logpool/pkg/logpool"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// EntryTable combines a search input field with a table of pool entries.
// The search field narrows the visible rows by message text; the level and
// id columns are fixed.
type EntryTable struct {
	*tview.Flex
	Table  *tview.Table
	Search *tview.InputField

	entries []logpool.Entry
}

var levelColors = map[logpool.Verbosity]tcell.Color{
	logpool.LevelError: tcell.ColorRed,
	logpool.LevelWarn:  tcell.ColorYellow,
	logpool.LevelInfo:  tcell.ColorWhite,
	logpool.LevelDebug: tcell.ColorGray,
}

// NewEntryTable creates a new EntryTable.
func NewEntryTable() *EntryTable {
	et := &EntryTable{
		Flex:   tview.NewFlex().SetDirection(tview.FlexRow),
		Table:  tview.NewTable().SetSelectable(true, false).SetFixed(1, 0),
		Search: tview.NewInputField().SetPlaceholder("Search messages..."),
	}

	et.Table.SetEvaluateAllRows(false).SetBorder(false)

	et.AddItem(et.Search, 1, 0, true).
		AddItem(et.Table, 0, 1, false)

	et.populateHeaders()

	et.Search.SetChangedFunc(func(text string) {
		et.Filter(text)
	})

	searchFocusedStyle := et.Search.GetFieldStyle().Foreground(tcell.ColorBlack)
	searchBlurredStyle := searchFocusedStyle.Background(tcell.ColorDarkSlateGray)

	et.Search.SetFocusFunc(func() {
		et.Search.SetFieldStyle(searchFocusedStyle)
		et.Search.SetPlaceholderStyle(searchFocusedStyle)
		et.updateFocusWithin()
	})
	et.Search.SetBlurFunc(func() {
		et.Search.SetFieldStyle(searchBlurredStyle)
		et.Search.SetPlaceholderStyle(searchBlurredStyle)
		et.updateFocusWithin()
	})
	et.Search.Blur() // Start blurred

	et.Table.SetFocusFunc(func() {
		et.updateFocusWithin()
		et.Table.SetSelectable(true, false)
	})
	et.Table.SetBlurFunc(func() {
		et.updateFocusWithin()
	})
	et.Table.Blur()

	et.updateFocusWithin()

	return et
}

// updateFocusWithin changes styles based on whether the widget has focus.
func (et *EntryTable) updateFocusWithin() {
	if et.HasFocus() {
		et.Table.SetSelectedStyle(tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue))
	} else {
		et.Table.SetSelectedStyle(tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray))
	}
}

// Blur is called when this primitive loses focus.
func (et *EntryTable) Blur() {
	et.Flex.Blur()
	et.Search.Blur()
	et.Table.Blur()
	et.updateFocusWithin()
}

// Focus delegates focus to the search field by default.
func (et *EntryTable) Focus(delegate func(p tview.Primitive)) {
	et.Search.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter || key == tcell.KeyDown {
			if et.Table.GetRowCount() > 1 { // More than just the header
				delegate(et.Table)
			}
		}
	})
	delegate(et.Search)
	et.updateFocusWithin()
}

// SetEntries replaces the displayed entries, preserving the search query.
// The entries are shown in the order given, newest first as the pool
// returns them.
func (et *EntryTable) SetEntries(entries []logpool.Entry) {
	et.entries = entries
	et.Filter(et.Search.GetText())
}

// Count returns the number of entries currently held, before searching.
func (et *EntryTable) Count() int {
	return len(et.entries)
}

func (et *EntryTable) populateHeaders() {
	for col, header := range []string{"ID", "Level", "Message"} {
		cell := tview.NewTableCell("[::b]" + header).
			SetAlign(tview.AlignLeft).
			SetSelectable(false)
		if col < 2 {
			cell.SetMaxWidth(8).SetExpansion(0)
		} else {
			cell.SetExpansion(1)
		}
		et.Table.SetCell(0, col, cell)
	}
}

// Filter re-populates the table with the entries whose message contains
// the query, case-insensitively.
func (et *EntryTable) Filter(query string) {
	// Remember the selected entry so the selection survives a refresh.
	selectedRow, _ := et.Table.GetSelection()
	var selectedID string
	if selectedRow > 0 && selectedRow < et.Table.GetRowCount() {
		selectedID = et.Table.GetCell(selectedRow, 0).Text
	}

	et.Table.Clear()
	et.populateHeaders()

	query = strings.ToLower(query)
	currentRow := 1
	newSelectedRow := 0

	for _, entry := range et.entries {
		if query != "" && !strings.Contains(strings.ToLower(entry.Message), query) {
			continue
		}

		id := strconv.FormatUint(uint64(entry.ID), 10)
		levelColor, ok := levelColors[entry.Level]
		if !ok {
			levelColor = tcell.ColorGray
		}

		et.Table.SetCell(currentRow, 0, tview.NewTableCell(id).
			SetAlign(tview.AlignLeft).
			SetMaxWidth(8).
			SetExpansion(0).
			SetTextColor(tcell.ColorGray))
		et.Table.SetCell(currentRow, 1, tview.NewTableCell(entry.Level.String()).
			SetAlign(tview.AlignLeft).
			SetMaxWidth(8).
			SetExpansion(0).
			SetTextColor(levelColor))
		et.Table.SetCell(currentRow, 2, tview.NewTableCell(tview.Escape(entry.Message)).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		if selectedID != "" && id == selectedID {
			newSelectedRow = currentRow
		}
		currentRow++
	}

	if newSelectedRow > 0 {
		et.Table.Select(newSelectedRow, 0)
	} else if et.Table.GetRowCount() > 1 {
		et.Table.Select(1, 0)
	}
}
