package events

import "github.com/atomicstack/cheatmenu/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) Screen(screen string, group int) {
	logging.Trace("menu.screen", map[string]interface{}{"screen": screen, "group": group})
}

func (UITracer) Cursor(screen string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (UITracer) Focus(query string, group int) {
	logging.Trace("menu.focus", map[string]interface{}{"query": query, "group": group})
}

func (CommandTracer) Dispatch(msg string) {
	logging.Trace("command.dispatch", map[string]interface{}{"msg": msg})
}

func (CommandTracer) Error(msg string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"msg": msg, "error": err.Error()})
}
