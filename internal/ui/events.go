package ui

import (
	"github.com/atomicstack/pkgpick/internal/event"
	"github.com/atomicstack/pkgpick/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

type eventMsg struct {
	event event.Event
}

type eventErrMsg struct {
	err error
}

// waitForEvent blocks on the handler for exactly one event. Update re-arms
// it after each delivery, so at most one is outstanding.
func (m *Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	handler, ctx := m.events, m.ctx
	return func() tea.Msg {
		ev, err := handler.Next(ctx)
		if err != nil {
			return eventErrMsg{err: err}
		}
		return eventMsg{event: ev}
	}
}

func (m *Model) handleEventMsg(msg tea.Msg) tea.Cmd {
	evMsg, ok := msg.(eventMsg)
	if !ok {
		return nil
	}
	m.dispatch(evMsg.event)
	if !m.running {
		return tea.Quit
	}
	return m.waitForEvent()
}

func (m *Model) handleEventErrMsg(msg tea.Msg) tea.Cmd {
	errMsg, ok := msg.(eventErrMsg)
	if !ok {
		return nil
	}
	if !m.running {
		return nil
	}
	m.fatal = errMsg.err
	m.running = false
	logging.Error(errMsg.err)
	return tea.Quit
}

// dispatch applies one event from the queue.
func (m *Model) dispatch(ev event.Event) {
	switch ev.Kind {
	case event.KindTick:
		m.expireInfo()
	case event.KindInput:
		m.handleInput(ev.Key)
	case event.KindApp:
		m.apply(ev.Command)
	}
	m.syncViewport()
}
