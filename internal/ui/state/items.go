package state

import "github.com/atomicstack/command-dashboard/internal/menu"

// CloneItems returns a copy of items backed by a new array.
func CloneItems(items []menu.Item) []menu.Item {
	if items == nil {
		return nil
	}
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
