package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/command-dashboard/internal/menu"
	"github.com/atomicstack/command-dashboard/internal/nav"
	"github.com/atomicstack/command-dashboard/internal/output"
	"github.com/atomicstack/command-dashboard/internal/theme"
	"github.com/atomicstack/command-dashboard/internal/ui/command"
	uistate "github.com/atomicstack/command-dashboard/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

// Focus names the list that receives cursor keys and filter input.
type Focus int

const (
	FocusMenu Focus = iota
	FocusCommands
)

const (
	WindowTitle = "Command Dashboard"

	menuHeaderSeparator = " → "
	defaultRootTitle    = "main menu"
	infoDuration        = 5 * time.Second
	copiedFlash         = 2 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item) *level {
	return uistate.NewLevel(id, title, items)
}

// Options configures a Model.
type Options struct {
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	StartCategory string

	// FallbackWidth and FallbackHeight size frames drawn before the first
	// tea.WindowSizeMsg when Width or Height is not fixed.
	FallbackWidth  int
	FallbackHeight int
}

// Model implements the Bubble Tea model for the dashboard. It renders the
// state owned by a nav.Machine and dispatches user actions back to it.
type Model struct {
	machine     *nav.Machine
	unsubscribe func()
	bus         *command.Bus

	side    *level
	content *level
	focus   Focus

	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	copiedField  output.Field
	copiedExpire time.Time
	quitting     bool

	width          int
	height         int
	fallbackWidth  int
	fallbackHeight int
	fixedWidth     bool
	fixedHeight    bool
	showFooter     bool
	verbose        bool

	filterCursor      cursor.Model
	filterFocused     bool
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI for machine. Copies are written to the clipboard of
// the machine's output pane.
func NewModel(machine *nav.Machine, opts Options) *Model {
	m := &Model{
		machine:        machine,
		bus:            command.New(machine.Clipboard()),
		showFooter:     opts.ShowFooter,
		verbose:        opts.Verbose,
		fallbackWidth:  opts.FallbackWidth,
		fallbackHeight: opts.FallbackHeight,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.rebuildLevels(nav.Change{To: machine.State()})
	m.unsubscribe = machine.Subscribe(m.handleChange)
	m.applyStartCategory(opts.StartCategory)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.filterFocused = true
	return tea.Batch(tea.SetWindowTitle(WindowTitle), m.filterCursor.Focus())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Close detaches the model from its machine.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(command.CopyResult{}): m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if m.filterFocused {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Machine exposes the navigation machine driving the model.
func (m *Model) Machine() *nav.Machine {
	return m.machine
}

// Focus reports which list has focus.
func (m *Model) Focus() Focus {
	return m.focus
}
