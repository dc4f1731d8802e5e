package events

import "github.com/atomicstack/pkgpick/internal/logging"

type TabTracer struct{}

type ChecklistTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

type ClipboardTracer struct{}

var (
	Tab       = TabTracer{}
	Checklist = ChecklistTracer{}
	Filter    = FilterTracer{}
	Command   = CommandTracer{}
	Clipboard = ClipboardTracer{}
)

func (TabTracer) Switch(from, to string, index int) {
	logging.Trace("tab.switch", map[string]interface{}{"from": from, "to": to, "index": index})
}

func (ChecklistTracer) Cursor(tab string, cursor int) {
	logging.Trace("checklist.cursor", map[string]interface{}{"tab": tab, "cursor": cursor})
}

func (ChecklistTracer) Toggle(tab, name string, selected bool) {
	logging.Trace("checklist.toggle", map[string]interface{}{"tab": tab, "name": name, "selected": selected})
}

func (FilterTracer) Start(tab string) {
	logging.Trace("filter.start", map[string]interface{}{"tab": tab})
}

func (FilterTracer) Stop(tab, filter string) {
	logging.Trace("filter.stop", map[string]interface{}{"tab": tab, "filter": filter})
}

func (FilterTracer) Cleared(tab string) {
	logging.Trace("filter.clear", map[string]interface{}{"tab": tab})
}

func (FilterTracer) Append(tab, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"tab": tab, "filter": filter})
}

func (FilterTracer) Backspace(tab, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"tab": tab, "filter": filter})
}

func (FilterTracer) WordBackspace(tab, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"tab": tab, "filter": filter})
}

func (FilterTracer) Cursor(tab string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"tab": tab, "cursor": pos})
}

func (CommandTracer) Queue(name string) {
	logging.Trace("command.queue", map[string]interface{}{"command": name})
}

func (CommandTracer) Dispatch(name, tab string) {
	logging.Trace("command.dispatch", map[string]interface{}{"command": name, "tab": tab})
}

func (CommandTracer) Ignored(name, reason string) {
	logging.Trace("command.ignored", map[string]interface{}{"command": name, "reason": reason})
}

func (ClipboardTracer) Copy(text string) {
	logging.Trace("clipboard.copy", map[string]interface{}{"text": text})
}

func (ClipboardTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("clipboard.error", map[string]interface{}{"error": err.Error()})
}
