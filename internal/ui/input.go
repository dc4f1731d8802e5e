package ui

import (
	"unicode"

	"github.com/atomicstack/pkgpick/internal/event"
	"github.com/atomicstack/pkgpick/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg only queues the key; it is interpreted when it comes back out
// of the handler.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.events == nil || !m.running {
		return nil
	}
	m.events.Input(keyMsg)
	return nil
}

// handleInput translates a queued key press into application commands.
func (m *Model) handleInput(msg tea.KeyMsg) {
	if m.filtering {
		m.handleFilterInput(msg)
		return
	}
	if cmd, ok := m.commandFor(msg); ok {
		m.send(cmd)
	}
}

func (m *Model) commandFor(msg tea.KeyMsg) (event.Command, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return event.Quit, true
	case key.Matches(msg, m.keys.Next):
		return event.NextTab, true
	case key.Matches(msg, m.keys.Previous):
		return event.PreviousTab, true
	case key.Matches(msg, m.keys.Submit):
		return event.TrySubmit, true
	case key.Matches(msg, m.keys.Up):
		return event.CursorUp, true
	case key.Matches(msg, m.keys.Down):
		return event.CursorDown, true
	case key.Matches(msg, m.keys.Home):
		return event.CursorHome, true
	case key.Matches(msg, m.keys.End):
		return event.CursorEnd, true
	case key.Matches(msg, m.keys.Toggle):
		return event.Toggle, true
	case key.Matches(msg, m.keys.Filter):
		return event.StartFilter, true
	case key.Matches(msg, m.keys.Copy):
		return event.Copy, true
	}
	return 0, false
}

func (m *Model) send(cmd event.Command) {
	if m.events == nil {
		return
	}
	m.events.Send(cmd)
}

// handleFilterInput edits the filter of the current tab. Ctrl+C still quits.
func (m *Model) handleFilterInput(msg tea.KeyMsg) {
	current := m.currentLevel()
	if current == nil {
		m.filtering = false
		return
	}
	id := current.ID
	switch msg.Type {
	case tea.KeyCtrlC:
		m.send(event.Quit)
	case tea.KeyEsc:
		m.filtering = false
		if current.ClearFilter() {
			events.Filter.Cleared(id)
		}
		events.Filter.Stop(id, current.Filter)
	case tea.KeyEnter:
		m.filtering = false
		events.Filter.Stop(id, current.Filter)
	case tea.KeyUp:
		m.send(event.CursorUp)
	case tea.KeyDown:
		m.send(event.CursorDown)
	case tea.KeyLeft:
		if current.MoveFilterCursorRuneBackward() {
			events.Filter.Cursor(id, current.FilterCursor)
		}
	case tea.KeyRight:
		if current.MoveFilterCursorRuneForward() {
			events.Filter.Cursor(id, current.FilterCursor)
		}
	case tea.KeyBackspace:
		if current.DeleteFilterRuneBackward() {
			events.Filter.Backspace(id, current.Filter)
		}
	case tea.KeyCtrlW:
		if current.DeleteFilterWordBackward() {
			events.Filter.WordBackspace(id, current.Filter)
		}
	case tea.KeyCtrlU:
		if current.ClearFilter() {
			events.Filter.Cleared(id)
		}
	case tea.KeySpace:
		if current.InsertFilterText(" ") {
			events.Filter.Append(id, current.Filter)
		}
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		text := printable(msg.Runes)
		if current.InsertFilterText(text) {
			events.Filter.Append(id, current.Filter)
		}
	}
}

func printable(runes []rune) string {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsPrint(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
