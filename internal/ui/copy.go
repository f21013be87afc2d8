package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/command-dashboard/internal/logging"
	"github.com/atomicstack/command-dashboard/internal/logging/events"
	"github.com/atomicstack/command-dashboard/internal/output"
	"github.com/atomicstack/command-dashboard/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// copyField queues a clipboard write of one output field. The text is read
// here, on the event loop, and handed to the bus by value.
func (m *Model) copyField(field output.Field) tea.Cmd {
	text := m.machine.Output().Text(field)
	return m.bus.Copy(command.CopyRequest{Field: field, Text: text})
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.CopyResult)
	if !ok {
		return nil
	}
	field := result.Field.String()
	switch {
	case result.Err == nil:
		events.Output.Copy(field, len(result.Text))
		m.errMsg = ""
		m.copiedField = result.Field
		m.copiedExpire = time.Now().Add(copiedFlash)
		m.setInfo(fmt.Sprintf("Copied %s to clipboard", field))
	case errors.Is(result.Err, output.ErrNothingToCopy):
		events.Output.CopyFailed(field, result.Err)
		m.setInfo(fmt.Sprintf("Nothing to copy: no %s displayed", field))
	default:
		events.Output.CopyFailed(field, result.Err)
		logging.Error(result.Err)
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
	}
	return nil
}

// copiedActive reports whether field was copied within the flash window and
// its pane should still be highlighted.
func (m *Model) copiedActive(field output.Field) bool {
	if m.copiedExpire.IsZero() || m.copiedField != field {
		return false
	}
	if time.Now().After(m.copiedExpire) {
		m.clearCopied()
		return false
	}
	return true
}

func (m *Model) clearCopied() {
	m.copiedField = output.FieldCommand
	m.copiedExpire = time.Time{}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
