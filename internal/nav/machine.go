// Package nav implements the dashboard's navigation state machine.
//
// The machine owns both the navigation state (main menu, category list or
// command list) and the output pane. Renderers read State/Output, call
// Dispatch for every user action, and subscribe to be told when either half
// changed. Return always leads to the main menu; there is no back stack.
package nav

import (
	"errors"
	"fmt"

	"github.com/atomicstack/command-dashboard/internal/catalog"
	"github.com/atomicstack/command-dashboard/internal/output"
)

var (
	// ErrUnknownCategory means a category id is not in the catalog.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownKey means a subcategory or command label is not in the catalog.
	ErrUnknownKey = errors.New("unknown key")
	// ErrInvalidAction means the action is not defined for the current state.
	ErrInvalidAction = errors.New("invalid action")
)

// Change describes a successful dispatch.
type Change struct {
	Action            Action
	From              State
	To                State
	Output            output.State
	NavigationChanged bool
	OutputChanged     bool
}

// Result reports what a dispatch touched.
type Result struct {
	NavigationChanged bool
	OutputChanged     bool
	Exited            bool
}

// Listener receives a Change after every successful dispatch.
type Listener func(Change)

// Machine is the navigation controller. It is not safe for concurrent use;
// drive it from a single event loop.
type Machine struct {
	catalog   *catalog.Catalog
	state     State
	pane      *output.Pane
	exited    bool
	listeners map[int]Listener
	order     []int
	nextID    int
}

// New starts a machine at the main menu. A nil pane gets an empty pane with
// no clipboard.
func New(cat *catalog.Catalog, pane *output.Pane) *Machine {
	if pane == nil {
		pane = output.NewPane(nil)
	}
	pane.Clear()
	return &Machine{
		catalog:   cat,
		state:     Main(),
		pane:      pane,
		listeners: make(map[int]Listener),
	}
}

// Catalog returns the catalog the machine navigates.
func (m *Machine) Catalog() *catalog.Catalog {
	return m.catalog
}

// State returns the active navigation state.
func (m *Machine) State() State {
	return m.state
}

// Output returns the output pane contents.
func (m *Machine) Output() output.State {
	return m.pane.State()
}

// Exited reports whether Exit has been dispatched.
func (m *Machine) Exited() bool {
	return m.exited
}

// Clipboard returns the clipboard behind the output pane.
func (m *Machine) Clipboard() output.Clipboard {
	return m.pane.Clipboard()
}

// Copy copies one output field to the pane's clipboard.
func (m *Machine) Copy(field output.Field) error {
	return m.pane.Copy(field)
}

// Subscribe registers l and returns a function that removes it.
func (m *Machine) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.order = append(m.order, id)
	return func() {
		if _, ok := m.listeners[id]; !ok {
			return
		}
		delete(m.listeners, id)
		for i, v := range m.order {
			if v == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch applies a to the machine. On error neither the navigation state
// nor the output pane changes and no listener is called.
func (m *Machine) Dispatch(a Action) (Result, error) {
	if m.exited {
		return Result{Exited: true}, fmt.Errorf("%w: %v after exit", ErrInvalidAction, a)
	}
	from := m.state
	before := m.pane.State()

	switch act := a.(type) {
	case SelectCategory:
		if from.Kind != MainMenu {
			return Result{}, invalid(act, from)
		}
		if !m.catalog.HasCategory(act.ID) {
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownCategory, act.ID)
		}
		m.state = InCategory(act.ID)
		m.pane.Clear()
	case SelectSubcategory:
		if from.Kind != CategoryList && from.Kind != CommandList {
			return Result{}, invalid(act, from)
		}
		if !m.catalog.HasSubcategory(from.Category, act.Label) {
			return Result{}, fmt.Errorf("%w: subcategory %q in %q", ErrUnknownKey, act.Label, from.Category)
		}
		m.state = InCommandList(from.Category, act.Label)
		m.pane.Clear()
	case SelectCommand:
		if from.Kind != CommandList {
			return Result{}, invalid(act, from)
		}
		entry, ok := m.catalog.Entry(from.Category, from.Subcategory, act.Label)
		if !ok {
			return Result{}, fmt.Errorf("%w: command %q in %q/%q", ErrUnknownKey, act.Label, from.Category, from.Subcategory)
		}
		m.pane.Display(entry)
	case Return:
		if from.Kind == MainMenu {
			return Result{}, invalid(act, from)
		}
		m.state = Main()
		m.pane.Clear()
	case Exit:
		m.exited = true
	default:
		return Result{}, fmt.Errorf("%w: unsupported action %v", ErrInvalidAction, a)
	}

	change := Change{
		Action:            a,
		From:              from,
		To:                m.state,
		Output:            m.pane.State(),
		NavigationChanged: from != m.state,
		OutputChanged:     before != m.pane.State(),
	}
	m.notify(change)
	return Result{
		NavigationChanged: change.NavigationChanged,
		OutputChanged:     change.OutputChanged,
		Exited:            m.exited,
	}, nil
}

// SelectCategory dispatches SelectCategory{ID: id}.
func (m *Machine) SelectCategory(id string) error {
	_, err := m.Dispatch(SelectCategory{ID: id})
	return err
}

// SelectSubcategory dispatches SelectSubcategory{Label: label}.
func (m *Machine) SelectSubcategory(label string) error {
	_, err := m.Dispatch(SelectSubcategory{Label: label})
	return err
}

// SelectCommand dispatches SelectCommand{Label: label}.
func (m *Machine) SelectCommand(label string) error {
	_, err := m.Dispatch(SelectCommand{Label: label})
	return err
}

// Return dispatches Return{}.
func (m *Machine) Return() error {
	_, err := m.Dispatch(Return{})
	return err
}

// Exit dispatches Exit{}.
func (m *Machine) Exit() error {
	_, err := m.Dispatch(Exit{})
	return err
}

func (m *Machine) notify(change Change) {
	ids := append([]int(nil), m.order...)
	for _, id := range ids {
		if l, ok := m.listeners[id]; ok {
			l(change)
		}
	}
}

func invalid(a Action, s State) error {
	return fmt.Errorf("%w: %v in %v", ErrInvalidAction, a, s)
}
