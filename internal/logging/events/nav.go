package events

import "github.com/atomicstack/command-dashboard/internal/logging"

// NavTracer records navigation transitions.
type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Category(category string) {
	logging.Trace("nav.category", map[string]interface{}{"category": category})
}

func (NavTracer) Subcategory(category, subcategory string) {
	logging.Trace("nav.subcategory", map[string]interface{}{"category": category, "subcategory": subcategory})
}

func (NavTracer) Command(category, subcategory, label string) {
	logging.Trace("nav.command", map[string]interface{}{
		"category":    category,
		"subcategory": subcategory,
		"command":     label,
	})
}

func (NavTracer) Return(from string) {
	logging.Trace("nav.return", map[string]interface{}{"from": from})
}

func (NavTracer) Exit(from string) {
	logging.Trace("nav.exit", map[string]interface{}{"from": from})
}

func (NavTracer) Rejected(action, state string, err error) {
	payload := map[string]interface{}{"action": action, "state": state}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("nav.rejected", payload)
}
