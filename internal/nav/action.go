package nav

import "fmt"

// Action is a user intent dispatched through Machine.Dispatch. The concrete
// types below are the only implementations.
type Action interface {
	fmt.Stringer
	isAction()
}

// SelectCategory opens a category from the main menu.
type SelectCategory struct {
	ID string
}

// SelectSubcategory opens the command list of a subcategory.
type SelectSubcategory struct {
	Label string
}

// SelectCommand shows a command in the output pane.
type SelectCommand struct {
	Label string
}

// Return goes back to the main menu.
type Return struct{}

// Exit terminates the machine.
type Exit struct{}

func (SelectCategory) isAction()    {}
func (SelectSubcategory) isAction() {}
func (SelectCommand) isAction()     {}
func (Return) isAction()            {}
func (Exit) isAction()              {}

func (a SelectCategory) String() string    { return fmt.Sprintf("selectCategory(%q)", a.ID) }
func (a SelectSubcategory) String() string { return fmt.Sprintf("selectSubcategory(%q)", a.Label) }
func (a SelectCommand) String() string     { return fmt.Sprintf("selectCommand(%q)", a.Label) }
func (Return) String() string              { return "return" }
func (Exit) String() string                { return "exit" }
