package state

import (
	"strings"
	"unicode"
)

// SetFilter replaces the filter query and places the filter caret at cursor.
// Starting a filter remembers the list cursor; clearing it restores that
// position.
func (l *Level) SetFilter(query string, cursor int) {
	active := strings.TrimSpace(query) != ""
	wasActive := strings.TrimSpace(l.Filter) != ""
	if active && !wasActive {
		l.LastCursor = l.Cursor
	}
	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))
	l.applyFilter()
	switch {
	case active:
		l.Cursor = max(BestMatchIndex(l.Items, query), 0)
	case wasActive:
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	}
}

// ClearFilter drops the filter query and reports whether there was one.
func (l *Level) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset >= len(l.Items) {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the caret position as a rune offset into Filter.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilterText inserts text at the caret.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the caret.
func (l *Level) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	return l.deleteFilterRange(pos-1, pos)
}

// DeleteFilterWordBackward deletes the word before the caret.
func (l *Level) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	return l.deleteFilterRange(wordStart([]rune(l.Filter), pos), pos)
}

func (l *Level) deleteFilterRange(from, to int) bool {
	runes := []rune(l.Filter)
	if from >= to {
		return false
	}
	updated := append(append([]rune(nil), runes[:from]...), runes[to:]...)
	l.SetFilter(string(updated), from)
	return true
}

// MoveFilterCursorStart moves the caret to the start of the query.
func (l *Level) MoveFilterCursorStart() bool {
	return l.moveFilterCursor(0)
}

// MoveFilterCursorEnd moves the caret to the end of the query.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveFilterCursor(len([]rune(l.Filter)))
}

// MoveFilterCursorRuneBackward moves the caret one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(l.FilterCursorPos() - 1)
}

// MoveFilterCursorRuneForward moves the caret one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(l.FilterCursorPos() + 1)
}

// MoveFilterCursorWordBackward moves the caret to the start of the previous word.
func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the caret past the next word.
func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

func (l *Level) moveFilterCursor(target int) bool {
	pos := l.FilterCursorPos()
	target = clamp(target, 0, len([]rune(l.Filter)))
	if target == pos {
		return false
	}
	l.FilterCursor = target
	return true
}

// wordStart skips spaces then a word leftwards from pos.
func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// wordEnd skips a word then spaces rightwards from pos.
func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}
