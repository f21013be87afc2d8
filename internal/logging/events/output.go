package events

import "github.com/atomicstack/command-dashboard/internal/logging"

// OutputTracer records output pane changes and clipboard copies.
type OutputTracer struct{}

var Output = OutputTracer{}

func (OutputTracer) Display(command string) {
	logging.Trace("output.display", map[string]interface{}{"command": command})
}

func (OutputTracer) Clear() {
	logging.Trace("output.clear", nil)
}

func (OutputTracer) Copy(field string, size int) {
	logging.Trace("output.copy", map[string]interface{}{"field": field, "bytes": size})
}

func (OutputTracer) CopyFailed(field string, err error) {
	if err == nil {
		return
	}
	logging.Trace("output.copy-failed", map[string]interface{}{"field": field, "error": err.Error()})
}
