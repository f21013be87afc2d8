package menu

import (
	"strings"

	"github.com/atomicstack/command-dashboard/internal/catalog"
	"github.com/atomicstack/command-dashboard/internal/nav"
)

const (
	ReturnID = "return"
	ExitID   = "exit"

	categoryPrefix    = "category:"
	subcategoryPrefix = "subcategory:"
	commandPrefix     = "command:"
)

// Item represents a selectable menu entry. Activating it dispatches Action.
type Item struct {
	ID     string
	Label  string
	Detail string
	Action nav.Action
}

// SideItems returns the entries of the left-hand menu for state: the
// categories plus Exit on the main menu, otherwise the subcategories of the
// current category plus Return.
func SideItems(cat *catalog.Catalog, state nav.State) []Item {
	if cat == nil {
		return nil
	}
	switch state.Kind {
	case nav.CategoryList, nav.CommandList:
		labels, ok := cat.Subcategories(state.Category)
		if !ok {
			return []Item{returnItem()}
		}
		items := make([]Item, 0, len(labels)+1)
		for _, label := range labels {
			items = append(items, Item{
				ID:     subcategoryPrefix + label,
				Label:  label,
				Action: nav.SelectSubcategory{Label: label},
			})
		}
		return append(items, returnItem())
	default:
		categories := cat.Categories()
		items := make([]Item, 0, len(categories)+1)
		for _, c := range categories {
			items = append(items, Item{
				ID:     categoryPrefix + c.ID,
				Label:  c.Title,
				Action: nav.SelectCategory{ID: c.ID},
			})
		}
		return append(items, exitItem())
	}
}

// ContentItems returns the command entries shown in the content area. Only a
// command list has any.
func ContentItems(cat *catalog.Catalog, state nav.State) []Item {
	if cat == nil || state.Kind != nav.CommandList {
		return nil
	}
	commands, ok := cat.Commands(state.Category, state.Subcategory)
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(commands))
	for _, cmd := range commands {
		items = append(items, Item{
			ID:     commandPrefix + cmd.Label,
			Label:  cmd.Label,
			Detail: cmd.Entry.Command,
			Action: nav.SelectCommand{Label: cmd.Label},
		})
	}
	return items
}

// Breadcrumb names the levels of state for the header line.
func Breadcrumb(cat *catalog.Catalog, state nav.State) []string {
	switch state.Kind {
	case nav.CategoryList:
		return []string{categoryTitle(cat, state.Category)}
	case nav.CommandList:
		return []string{categoryTitle(cat, state.Category), state.Subcategory}
	default:
		return nil
	}
}

// Key strips the kind prefix from an item id.
func Key(id string) string {
	for _, prefix := range []string{categoryPrefix, subcategoryPrefix, commandPrefix} {
		if strings.HasPrefix(id, prefix) {
			return strings.TrimPrefix(id, prefix)
		}
	}
	return id
}

func categoryTitle(cat *catalog.Catalog, id string) string {
	if cat != nil {
		if c, ok := cat.Category(id); ok {
			return strings.ToLower(c.Title)
		}
	}
	return id
}

func returnItem() Item {
	return Item{ID: ReturnID, Label: "Return", Action: nav.Return{}}
}

func exitItem() Item {
	return Item{ID: ExitID, Label: "Exit", Action: nav.Exit{}}
}
