// Package event merges ticks, raw key presses and application commands into a
// single ordered stream consumed one event at a time.
package event

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind represents the origin of an event.
type Kind int

const (
	KindTick Kind = iota
	KindInput
	KindApp
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindInput:
		return "input"
	case KindApp:
		return "app"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Command is an application-level intent produced from input.
type Command int

const (
	Quit Command = iota
	NextTab
	PreviousTab
	TrySubmit
	CursorUp
	CursorDown
	Toggle
	StartFilter
	Copy
	CursorHome
	CursorEnd
)

var commandNames = map[Command]string{
	Quit:        "quit",
	NextTab:     "next-tab",
	PreviousTab: "previous-tab",
	TrySubmit:   "try-submit",
	CursorUp:    "cursor-up",
	CursorDown:  "cursor-down",
	Toggle:      "toggle",
	StartFilter: "start-filter",
	Copy:        "copy",
	CursorHome:  "cursor-home",
	CursorEnd:   "cursor-end",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// Event is one item of the merged stream. Only the field matching Kind is
// meaningful.
type Event struct {
	Kind    Kind
	Command Command
	Key     tea.KeyMsg
	Time    time.Time
}

// TickEvent builds a tick event.
func TickEvent(at time.Time) Event {
	return Event{Kind: KindTick, Time: at}
}

// InputEvent wraps a raw key press.
func InputEvent(key tea.KeyMsg) Event {
	return Event{Kind: KindInput, Key: key}
}

// AppEvent wraps an application command.
func AppEvent(cmd Command) Event {
	return Event{Kind: KindApp, Command: cmd}
}
