package events

import "github.com/atomicstack/cheatmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Selected(command string, copied bool) {
	logging.Trace("app.selected", map[string]interface{}{"command": command, "copied": copied})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
