package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/command-dashboard/internal/logging"
	"github.com/atomicstack/command-dashboard/internal/logging/events"
	"github.com/atomicstack/command-dashboard/internal/menu"
	"github.com/atomicstack/command-dashboard/internal/nav"
	"github.com/atomicstack/command-dashboard/internal/output"
	tea "github.com/charmbracelet/bubbletea"
)

const mainLevelID = "main"

// handleChange is subscribed to the machine and keeps the on-screen lists in
// step with the navigation state.
func (m *Model) handleChange(change nav.Change) {
	traceChange(change)
	if change.NavigationChanged {
		m.rebuildLevels(change)
		if m.verbose {
			m.setInfo(fmt.Sprintf("%s: %s", change.Action, change.To))
		}
	}
	if change.OutputChanged {
		m.clearCopied()
	}
}

func traceChange(change nav.Change) {
	switch act := change.Action.(type) {
	case nav.SelectCategory:
		events.Nav.Category(act.ID)
	case nav.SelectSubcategory:
		events.Nav.Subcategory(change.To.Category, act.Label)
	case nav.SelectCommand:
		events.Nav.Command(change.To.Category, change.To.Subcategory, act.Label)
	case nav.Return:
		events.Nav.Return(change.From.String())
	case nav.Exit:
		events.Nav.Exit(change.From.String())
	}
	if change.OutputChanged {
		if change.Output.Empty() {
			events.Output.Clear()
		} else {
			events.Output.Display(change.Output.Command)
		}
	}
}

func (m *Model) rebuildLevels(change nav.Change) {
	cat := m.machine.Catalog()
	to := change.To
	sideID := sideLevelID(to)
	sideItems := menu.SideItems(cat, to)
	if m.side != nil && m.side.ID == sideID {
		m.side.SetItems(sideItems)
	} else {
		m.side = newLevel(sideID, sideTitle(to), sideItems)
		if to.Kind == nav.MainMenu && change.From.Category != "" {
			m.side.Select("category:" + change.From.Category)
		}
	}
	if to.Kind == nav.CommandList {
		m.side.Select("subcategory:" + to.Subcategory)
		m.content = newLevel(contentLevelID(to), to.Subcategory, menu.ContentItems(cat, to))
		m.setFocus(FocusCommands)
	} else {
		m.content = nil
		m.setFocus(FocusMenu)
	}
	m.syncViewport(m.side)
	m.syncViewport(m.content)
}

func sideLevelID(s nav.State) string {
	if s.Kind == nav.MainMenu {
		return mainLevelID
	}
	return "category:" + s.Category
}

func sideTitle(s nav.State) string {
	if s.Kind == nav.MainMenu {
		return "Main Menu"
	}
	return s.Category
}

func contentLevelID(s nav.State) string {
	return "commands:" + s.Category + "/" + s.Subcategory
}

// dispatch forwards a to the machine. Rejected actions are logged and shown
// on the status line; they never stop the program.
func (m *Model) dispatch(a nav.Action) tea.Cmd {
	from := m.machine.State()
	res, err := m.machine.Dispatch(a)
	if err != nil {
		logging.Error(err)
		events.Nav.Rejected(fmt.Sprint(a), from.String(), err)
		m.errMsg = err.Error()
		m.forceClearInfo()
		return nil
	}
	m.errMsg = ""
	if res.Exited {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) applyStartCategory(requested string) {
	id := strings.TrimSpace(requested)
	if id == "" {
		return
	}
	if err := m.machine.SelectCategory(id); err != nil {
		logging.Error(err)
		m.errMsg = fmt.Sprintf("Unknown category %q", id)
	}
}

func (m *Model) currentLevel() *level {
	if m.focus == FocusCommands && m.content != nil {
		return m.content
	}
	return m.side
}

func (m *Model) setFocus(f Focus) {
	if f == FocusCommands && m.content == nil {
		f = FocusMenu
	}
	if m.focus == f {
		return
	}
	m.focus = f
	if current := m.currentLevel(); current != nil {
		events.UI.Focus(current.ID)
	}
}

func (m *Model) toggleFocus() {
	if m.content == nil {
		return
	}
	if m.focus == FocusCommands {
		m.setFocus(FocusMenu)
	} else {
		m.setFocus(FocusCommands)
	}
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	return m.activate(current)
}

// activate dispatches the action of the item under the cursor of l.
func (m *Model) activate(l *level) tea.Cmd {
	item, ok := l.Current()
	if !ok || item.Action == nil {
		return nil
	}
	events.UI.MenuEnter(l.ID, item.ID, item.Label, l.Filter)
	before := l.FilterCursorPos()
	l.ClearFilter()
	m.noteFilterCursorChange(l, before)
	l.Select(item.ID)
	return m.dispatch(item.Action)
}

func (m *Model) handleEscapeKey() tea.Cmd {
	m.forceClearInfo()
	if m.machine.State().Kind == nav.MainMenu {
		return m.dispatch(nav.Exit{})
	}
	return m.dispatch(nav.Return{})
}

func (m *Model) handleQuitKey() tea.Cmd {
	if cmd := m.dispatch(nav.Exit{}); cmd != nil {
		return cmd
	}
	m.quitting = true
	return tea.Quit
}

func (m *Model) moveCursor(move func(*level) bool) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if move(current) {
		events.UI.MenuCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.visibleRows(l))
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.handleQuitKey()
	case "ctrl+y":
		return m.copyField(output.FieldCommand)
	case "ctrl+o":
		return m.copyField(output.FieldExplanation)
	case "tab", "shift+tab":
		m.toggleFocus()
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursor((*level).MoveCursorUp)
	case "down":
		m.moveCursor((*level).MoveCursorDown)
	case "pgup":
		m.moveCursor(func(l *level) bool { return l.MoveCursorPageUp(m.visibleRows(l)) })
	case "pgdown":
		m.moveCursor(func(l *level) bool { return l.MoveCursorPageDown(m.visibleRows(l)) })
	case "home":
		m.moveCursor((*level).MoveCursorHome)
	case "end":
		m.moveCursor((*level).MoveCursorEnd)
	}
	return nil
}
