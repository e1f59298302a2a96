package events

import "github.com/atomicstack/cheatmenu/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Load(path string, groups int, missing bool) {
	logging.Trace("store.load", map[string]interface{}{"path": path, "groups": groups, "missing": missing})
}

func (StoreTracer) Save(path string, groups int) {
	logging.Trace("store.save", map[string]interface{}{"path": path, "groups": groups})
}

func (StoreTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"path": path, "error": err.Error()})
}
