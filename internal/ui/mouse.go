package ui

import (
	"github.com/atomicstack/command-dashboard/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg maps a left click onto the list row or output pane under
// the pointer. A click on a list row activates it; a click on an output pane
// copies that pane's text.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	geo := m.layout()
	if field, ok := geo.paneAt(ev.X, ev.Y); ok {
		events.UI.Click(ev.X, ev.Y, field.String())
		return m.copyField(field)
	}
	if geo.sideList.contains(ev.X, ev.Y) {
		events.UI.Click(ev.X, ev.Y, "menu")
		return m.clickRow(m.side, FocusMenu, ev.Y-geo.sideList.y)
	}
	if m.content != nil && geo.commandList.contains(ev.X, ev.Y) {
		events.UI.Click(ev.X, ev.Y, "commands")
		return m.clickRow(m.content, FocusCommands, ev.Y-geo.commandList.y)
	}
	return nil
}

func (m *Model) clickRow(l *level, focus Focus, row int) tea.Cmd {
	if l == nil {
		return nil
	}
	l.EnsureCursorVisible(m.visibleRows(l))
	idx := l.ViewportOffset + row
	if row < 0 || idx >= len(l.Items) {
		return nil
	}
	l.Cursor = idx
	m.setFocus(focus)
	return m.activate(l)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.syncViewport(m.side)
	m.syncViewport(m.content)
	return nil
}
