package command

import (
	"github.com/atomicstack/command-dashboard/internal/logging/events"
	"github.com/atomicstack/command-dashboard/internal/output"
	tea "github.com/charmbracelet/bubbletea"
)

// CopyRequest describes one clipboard write. Text is captured when the
// request is built so the command never reads UI state.
type CopyRequest struct {
	Field output.Field
	Text  string
}

// CopyResult is delivered back to the model once the write has finished.
type CopyResult struct {
	Field output.Field
	Text  string
	Err   error
}

// Bus runs clipboard writes off the Bubble Tea event loop.
type Bus struct {
	clipboard output.Clipboard
}

// New returns a bus writing to cb.
func New(cb output.Clipboard) *Bus {
	return &Bus{clipboard: cb}
}

// Copy wraps a clipboard write into a Bubble Tea command while emitting trace
// events for the queue and the outcome.
func (b *Bus) Copy(req CopyRequest) tea.Cmd {
	field := req.Field.String()
	events.Command.Queue(field, req.Text)
	var cb output.Clipboard
	if b != nil {
		cb = b.clipboard
	}
	return func() tea.Msg {
		err := output.CopyText(cb, req.Field, req.Text)
		events.Command.Result(field, req.Text, err)
		return CopyResult{Field: req.Field, Text: req.Text, Err: err}
	}
}
