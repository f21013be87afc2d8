// Package catalog holds the static command reference shown by the dashboard.
//
// A Catalog is built once (from the embedded YAML document, a user supplied
// file, or New in tests) and never changes afterwards. Accessors hand out
// copies so callers cannot reach into the shared tables.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedCatalog reports a catalog definition that violates the expected shape.
var ErrMalformedCatalog = errors.New("malformed catalog")

// Entry is the text shown in the output pane for a single command.
type Entry struct {
	Command     string
	Explanation string
}

// Command pairs a menu label with its entry.
type Command struct {
	Label string
	Entry Entry
}

// Subcategory groups commands under a label.
type Subcategory struct {
	Label    string
	Commands []Command
}

// Category is a top-level menu entry.
type Category struct {
	ID            string
	Title         string
	Subcategories []Subcategory
}

// Catalog is an ordered, read-only category -> subcategory -> command table.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// New validates the supplied categories and builds a catalog preserving their order.
func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories defined", ErrMalformedCatalog)
	}
	for _, cat := range categories {
		if err := c.add(cat); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(cat Category) error {
	id := strings.TrimSpace(cat.ID)
	if id == "" {
		return fmt.Errorf("%w: category with empty id", ErrMalformedCatalog)
	}
	if _, ok := c.index[id]; ok {
		return fmt.Errorf("%w: duplicate category %q", ErrMalformedCatalog, id)
	}
	if len(cat.Subcategories) == 0 {
		return fmt.Errorf("%w: category %q has no subcategories", ErrMalformedCatalog, id)
	}
	seenSub := make(map[string]struct{}, len(cat.Subcategories))
	for _, sub := range cat.Subcategories {
		if strings.TrimSpace(sub.Label) == "" {
			return fmt.Errorf("%w: category %q has a subcategory with an empty label", ErrMalformedCatalog, id)
		}
		if _, ok := seenSub[sub.Label]; ok {
			return fmt.Errorf("%w: duplicate subcategory %q in %q", ErrMalformedCatalog, sub.Label, id)
		}
		seenSub[sub.Label] = struct{}{}
		if len(sub.Commands) == 0 {
			return fmt.Errorf("%w: subcategory %q in %q has no commands", ErrMalformedCatalog, sub.Label, id)
		}
		seenCmd := make(map[string]struct{}, len(sub.Commands))
		for _, cmd := range sub.Commands {
			if strings.TrimSpace(cmd.Label) == "" {
				return fmt.Errorf("%w: subcategory %q in %q has a command with an empty label", ErrMalformedCatalog, sub.Label, id)
			}
			if _, ok := seenCmd[cmd.Label]; ok {
				return fmt.Errorf("%w: duplicate command %q in %q/%q", ErrMalformedCatalog, cmd.Label, id, sub.Label)
			}
			seenCmd[cmd.Label] = struct{}{}
			if strings.TrimSpace(cmd.Entry.Command) == "" {
				return fmt.Errorf("%w: command %q in %q/%q has no command text", ErrMalformedCatalog, cmd.Label, id, sub.Label)
			}
		}
	}
	stored := cloneCategory(cat)
	stored.ID = id
	if strings.TrimSpace(stored.Title) == "" {
		stored.Title = strings.ToUpper(id)
	}
	c.index[id] = len(c.categories)
	c.categories = append(c.categories, stored)
	return nil
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// CategoryIDs lists category identifiers in display order.
func (c *Catalog) CategoryIDs() []string {
	ids := make([]string, len(c.categories))
	for i, cat := range c.categories {
		ids[i] = cat.ID
	}
	return ids
}

// Categories returns a copy of every category in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cloneCategory(cat)
	}
	return out
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	cat, ok := c.lookup(id)
	if !ok {
		return Category{}, false
	}
	return cloneCategory(*cat), true
}

// HasCategory reports whether id names a category.
func (c *Catalog) HasCategory(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Subcategories lists subcategory labels of a category in display order.
func (c *Catalog) Subcategories(id string) ([]string, bool) {
	cat, ok := c.lookup(id)
	if !ok {
		return nil, false
	}
	labels := make([]string, len(cat.Subcategories))
	for i, sub := range cat.Subcategories {
		labels[i] = sub.Label
	}
	return labels, true
}

// HasSubcategory reports whether label names a subcategory of category id.
func (c *Catalog) HasSubcategory(id, label string) bool {
	_, ok := c.subcategory(id, label)
	return ok
}

// Commands lists the commands of a subcategory in display order.
func (c *Catalog) Commands(id, subcategory string) ([]Command, bool) {
	sub, ok := c.subcategory(id, subcategory)
	if !ok {
		return nil, false
	}
	out := make([]Command, len(sub.Commands))
	copy(out, sub.Commands)
	return out, true
}

// Entry resolves a single command entry.
func (c *Catalog) Entry(id, subcategory, label string) (Entry, bool) {
	sub, ok := c.subcategory(id, subcategory)
	if !ok {
		return Entry{}, false
	}
	for _, cmd := range sub.Commands {
		if cmd.Label == label {
			return cmd.Entry, true
		}
	}
	return Entry{}, false
}

func (c *Catalog) lookup(id string) (*Category, bool) {
	if c == nil {
		return nil, false
	}
	idx, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.categories[idx], true
}

func (c *Catalog) subcategory(id, label string) (*Subcategory, bool) {
	cat, ok := c.lookup(id)
	if !ok {
		return nil, false
	}
	for i := range cat.Subcategories {
		if cat.Subcategories[i].Label == label {
			return &cat.Subcategories[i], true
		}
	}
	return nil, false
}

func cloneCategory(cat Category) Category {
	dup := cat
	dup.Subcategories = make([]Subcategory, len(cat.Subcategories))
	for i, sub := range cat.Subcategories {
		dup.Subcategories[i] = Subcategory{Label: sub.Label, Commands: append([]Command(nil), sub.Commands...)}
	}
	return dup
}
