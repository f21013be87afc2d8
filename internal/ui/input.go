package ui

import (
	"unicode"

	"github.com/atomicstack/command-dashboard/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// editFilter applies edit to the focused level and reports whether it changed
// anything. Changes to the query reset the status line.
func (m *Model) editFilter(edit func(*level) bool, trace func(*level)) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	query := current.Filter
	if !edit(current) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	if current.Filter != query {
		m.forceClearInfo()
		m.errMsg = ""
		m.syncViewport(current)
	}
	if trace != nil {
		trace(current)
	}
	return true
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		return m.editFilter((*level).ClearFilter, func(l *level) { events.Filter.Cleared(l.ID) })
	case "ctrl+w":
		return m.editFilter((*level).DeleteFilterWordBackward, func(l *level) { events.Filter.WordBackspace(l.ID, l.Filter) })
	case "ctrl+a":
		return m.editFilter((*level).MoveFilterCursorStart, traceFilterCursor)
	case "ctrl+e":
		return m.editFilter((*level).MoveFilterCursorEnd, traceFilterCursor)
	case "alt+b":
		return m.editFilter((*level).MoveFilterCursorWordBackward, traceFilterCursorWord)
	case "alt+f":
		return m.editFilter((*level).MoveFilterCursorWordForward, traceFilterCursorWord)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.editFilter((*level).DeleteFilterRuneBackward, func(l *level) { events.Filter.Backspace(l.ID, l.Filter) })
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		// a leading space would only produce an invisible query
		if current := m.currentLevel(); current == nil || current.Filter == "" {
			return false
		}
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		return m.editFilter((*level).MoveFilterCursorRuneBackward, traceFilterCursor)
	case tea.KeyRight:
		return m.editFilter((*level).MoveFilterCursorRuneForward, traceFilterCursor)
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	return m.editFilter(
		func(l *level) bool { return l.InsertFilterText(text) },
		func(l *level) { events.Filter.Append(l.ID, l.Filter) },
	)
}

func traceFilterCursor(l *level) {
	events.Filter.Cursor(l.ID, l.FilterCursor)
}

func traceFilterCursorWord(l *level) {
	events.Filter.CursorWord(l.ID, l.FilterCursor)
}

func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.FilterPrompt, "» ")
	if current == nil || current.Filter == "" {
		placeholder := []rune("(type to filter)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(placeholder[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	before := render(styles.Filter, string(runes[:pos]))
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
