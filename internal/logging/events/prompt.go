package events

import "github.com/atomicstack/pkgpick/internal/logging"

type PromptTracer struct{}

type SourceTracer struct{}

var (
	Prompt = PromptTracer{}
	Source = SourceTracer{}
)

func (PromptTracer) Manager(name string) {
	logging.Trace("prompt.manager", map[string]interface{}{"manager": name})
}

func (PromptTracer) Category(label string, picked int) {
	logging.Trace("prompt.category", map[string]interface{}{"label": label, "picked": picked})
}

func (PromptTracer) Confirm(confirmed bool, packages int) {
	logging.Trace("prompt.confirm", map[string]interface{}{"confirmed": confirmed, "packages": packages})
}

func (SourceTracer) Failed(name string, err error) {
	payload := map[string]interface{}{"source": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("source.failed", payload)
}
