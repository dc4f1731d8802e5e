package ui

import (
	"strings"

	"github.com/atomicstack/pkgpick/internal/event"
	"github.com/atomicstack/pkgpick/internal/logging/events"
	"github.com/atomicstack/pkgpick/internal/tab"
	"github.com/atotto/clipboard"
)

var clipboardWriteFn = clipboard.WriteAll

// apply runs one application command against the model.
func (m *Model) apply(cmd event.Command) {
	if !m.running {
		events.Command.Ignored(cmd.String(), "stopped")
		return
	}
	events.Command.Dispatch(cmd.String(), m.current.String())
	switch cmd {
	case event.Quit:
		m.running = false
	case event.NextTab:
		m.switchTab(m.current.Next())
	case event.PreviousTab:
		m.switchTab(m.current.Previous())
	case event.TrySubmit:
		if m.current != tab.Summary {
			events.Command.Ignored(cmd.String(), "not on summary")
			return
		}
		m.submitted = true
		m.running = false
	case event.CursorUp, event.CursorDown, event.CursorHome, event.CursorEnd:
		m.moveCursor(cmd)
	case event.Toggle:
		m.toggleCurrent()
	case event.StartFilter:
		m.startFilter()
	case event.Copy:
		m.copyInstallCommand()
	}
}

func (m *Model) switchTab(next tab.Tab) {
	if next == m.current {
		return
	}
	prev := m.current
	m.current = next
	m.filtering = false
	m.errMsg = ""
	m.summaryOffset = 0
	events.Tab.Switch(prev.String(), next.String(), next.Index())
}

func (m *Model) moveCursor(cmd event.Command) {
	if m.current == tab.Summary {
		m.scrollSummary(cmd)
		return
	}
	current := m.currentLevel()
	if current == nil {
		return
	}
	var moved bool
	switch cmd {
	case event.CursorUp:
		moved = current.MoveCursorUp()
	case event.CursorDown:
		moved = current.MoveCursorDown()
	case event.CursorHome:
		moved = current.MoveCursorHome()
	case event.CursorEnd:
		moved = current.MoveCursorEnd()
	}
	if moved {
		events.Checklist.Cursor(current.ID, current.Cursor)
	}
}

// scrollSummary moves the Summary list window; the offset never passes the
// point where the last package is on screen.
func (m *Model) scrollSummary(cmd event.Command) {
	total := m.Selection().Len()
	maxOffset := total - m.summaryRoom(m.bodyHeight())
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := m.summaryOffset
	switch cmd {
	case event.CursorUp:
		offset--
	case event.CursorDown:
		offset++
	case event.CursorHome:
		offset = 0
	case event.CursorEnd:
		offset = maxOffset
	}
	offset = clampInt(offset, 0, maxOffset)
	if offset != m.summaryOffset {
		m.summaryOffset = offset
		events.Checklist.Cursor(tab.Summary.String(), offset)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *Model) toggleCurrent() {
	current := m.currentLevel()
	if current == nil {
		return
	}
	item, selected, ok := current.ToggleCurrent()
	if !ok {
		return
	}
	events.Checklist.Toggle(current.ID, item.ID, selected)
}

func (m *Model) startFilter() {
	current := m.currentLevel()
	if current == nil {
		return
	}
	m.filtering = true
	current.FilterCursor = len([]rune(current.Filter))
	events.Filter.Start(current.ID)
}

// copyInstallCommand puts the install command on the clipboard, or just the
// package names when no package manager is known.
func (m *Model) copyInstallCommand() {
	if m.current != tab.Summary {
		return
	}
	sel := m.Selection()
	if sel.Empty() {
		m.setInfo("Nothing selected to copy")
		return
	}
	text := sel.Command
	if text == "" {
		text = strings.Join(sel.Names(), " ")
	}
	if err := clipboardWriteFn(text); err != nil {
		events.Clipboard.Error(err)
		m.errMsg = "Clipboard unavailable: " + err.Error()
		return
	}
	events.Clipboard.Copy(text)
	m.errMsg = ""
	m.setInfo("Copied to clipboard")
}

// syncViewport keeps the cursor of the current tab inside the rows the view
// will draw.
func (m *Model) syncViewport() {
	current := m.currentLevel()
	if current == nil {
		return
	}
	current.EnsureCursorVisible(m.maxVisibleRows())
}
