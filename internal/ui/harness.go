package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// settleTimeout is how long the harness waits for an outstanding command
// before deciding the model is idle.
const settleTimeout = 50 * time.Millisecond

// Harness drives the UI model programmatically for integration tests. Commands
// run on their own goroutines like they do under a tea.Program, so a command
// blocked on the event handler stays outstanding until an event arrives.
type Harness struct {
	model   *Model
	results chan tea.Msg
	quit    bool
}

// NewHarness creates a harness for the provided model and runs its Init
// command.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model, results: make(chan tea.Msg, 64)}
	if model != nil {
		h.run(model.Init())
		h.settle()
	}
	return h
}

// Send routes a message through the model and delivers every command result
// that arrives before the model goes idle.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || h.quit {
		return
	}
	h.update(msg)
	h.settle()
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

func (h *Harness) update(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.run(cmd)
}

func (h *Harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() { h.results <- cmd() }()
}

func (h *Harness) settle() {
	for !h.quit {
		select {
		case msg := <-h.results:
			h.deliver(msg)
		case <-time.After(settleTimeout):
			return
		}
	}
}

func (h *Harness) deliver(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
	case tea.QuitMsg:
		h.quit = true
	case tea.BatchMsg:
		for _, cmd := range msg {
			h.run(cmd)
		}
	default:
		h.update(msg)
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
