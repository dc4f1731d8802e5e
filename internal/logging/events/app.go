package events

import "github.com/atomicstack/pkgpick/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(submitted bool, packages int) {
	logging.Trace("app.exit", map[string]interface{}{"submitted": submitted, "packages": packages})
}

func (AppTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.error", map[string]interface{}{"error": err.Error()})
}
