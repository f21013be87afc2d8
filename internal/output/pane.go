// Package output owns the command/explanation pair shown beneath the menus and
// copies either half to a clipboard.
package output

import (
	"errors"
	"fmt"

	"github.com/atomicstack/command-dashboard/internal/catalog"
)

// ErrNothingToCopy is returned when the requested field is empty.
var ErrNothingToCopy = errors.New("nothing to copy")

// Field selects one half of the output pane.
type Field int

const (
	FieldCommand Field = iota
	FieldExplanation
)

func (f Field) String() string {
	switch f {
	case FieldCommand:
		return "command"
	case FieldExplanation:
		return "explanation"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// State is the text currently on display. The zero value is an empty pane.
type State struct {
	Command     string
	Explanation string
}

// Empty reports whether neither field holds text.
func (s State) Empty() bool {
	return s.Command == "" && s.Explanation == ""
}

// Text returns the text of field.
func (s State) Text(field Field) string {
	switch field {
	case FieldCommand:
		return s.Command
	case FieldExplanation:
		return s.Explanation
	default:
		return ""
	}
}

// Pane holds the output state. It is not safe for concurrent use.
type Pane struct {
	state     State
	clipboard Clipboard
}

// NewPane returns an empty pane that copies into cb. A nil clipboard makes
// every copy fail.
func NewPane(cb Clipboard) *Pane {
	return &Pane{clipboard: cb}
}

// State returns the current output.
func (p *Pane) State() State {
	return p.state
}

// Display replaces the pane contents with entry.
func (p *Pane) Display(entry catalog.Entry) {
	p.state = State{Command: entry.Command, Explanation: entry.Explanation}
}

// Clear empties both fields.
func (p *Pane) Clear() {
	p.state = State{}
}

// Text returns the current text of field.
func (p *Pane) Text(field Field) string {
	return p.state.Text(field)
}

// Clipboard returns the clipboard copies are written to.
func (p *Pane) Clipboard() Clipboard {
	return p.clipboard
}

// Copy writes the text of field to the pane's clipboard.
func (p *Pane) Copy(field Field) error {
	return CopyText(p.clipboard, field, p.Text(field))
}

// CopyText writes text to cb on behalf of field. It is split from Pane.Copy so
// callers can capture the text synchronously and write it later.
func CopyText(cb Clipboard, field Field, text string) error {
	if text == "" {
		return fmt.Errorf("%s: %w", field, ErrNothingToCopy)
	}
	if cb == nil {
		return fmt.Errorf("copy %s: %w", field, ErrNoClipboard)
	}
	if err := cb.WriteAll(text); err != nil {
		return fmt.Errorf("copy %s: %w", field, err)
	}
	return nil
}
