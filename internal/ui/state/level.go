package state

import "github.com/atomicstack/command-dashboard/internal/menu"

// Level holds the view state of one on-screen list: its items, the fuzzy
// filter typed against them, the cursor and the scroll offset.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level showing items with the cursor on the first one.
func NewLevel(id, title string, items []menu.Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.SetItems(items)
	return l
}

// SetItems replaces the full item list and reapplies the active filter. The
// cursor stays on the item it pointed at when that item is still visible.
func (l *Level) SetItems(items []menu.Item) {
	prev, hadPrev := l.Current()
	l.Full = CloneItems(items)
	l.applyFilter()
	if hadPrev {
		if idx := l.IndexOf(prev.ID); idx >= 0 {
			l.Cursor = idx
		}
	}
	if l.ViewportOffset < 0 || l.ViewportOffset >= len(l.Items) {
		l.ViewportOffset = 0
	}
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l == nil || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the visible index of the item with id, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Select moves the cursor onto the item with id and reports whether it was found.
func (l *Level) Select(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}
