package nav

import "fmt"

// Kind identifies which view is active.
type Kind int

const (
	MainMenu Kind = iota
	CategoryList
	CommandList
)

func (k Kind) String() string {
	switch k {
	case MainMenu:
		return "MainMenu"
	case CategoryList:
		return "CategoryList"
	case CommandList:
		return "CommandList"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State is the active navigation view. Category is set for CategoryList and
// CommandList, Subcategory only for CommandList. States are comparable.
type State struct {
	Kind        Kind
	Category    string
	Subcategory string
}

// Main returns the root state.
func Main() State {
	return State{Kind: MainMenu}
}

// InCategory returns the CategoryList state for category.
func InCategory(category string) State {
	return State{Kind: CategoryList, Category: category}
}

// InCommandList returns the CommandList state for category and subcategory.
func InCommandList(category, subcategory string) State {
	return State{Kind: CommandList, Category: category, Subcategory: subcategory}
}

func (s State) String() string {
	switch s.Kind {
	case CategoryList:
		return fmt.Sprintf("CategoryList(%q)", s.Category)
	case CommandList:
		return fmt.Sprintf("CommandList(%q, %q)", s.Category, s.Subcategory)
	default:
		return s.Kind.String()
	}
}
