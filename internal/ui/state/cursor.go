package state

import "github.com/atomicstack/command-dashboard/internal/menu"

// MoveCursorUp moves the cursor up one item, wrapping to the last.
func (l *Level) MoveCursorUp() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor > 0 && l.Cursor < n {
		l.Cursor--
	} else {
		l.Cursor = n - 1
	}
	return old != l.Cursor
}

// MoveCursorDown moves the cursor down one item, wrapping to the first.
func (l *Level) MoveCursorDown() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor >= 0 && l.Cursor < n-1 {
		l.Cursor++
	} else {
		l.Cursor = 0
	}
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.moveCursorTo(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.moveCursorTo(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by one page of maxVisible rows.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorTo(l.Cursor - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of maxVisible rows.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorTo(l.Cursor + l.pageSize(maxVisible))
}

func (l *Level) moveCursorTo(target int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(target, 0, len(l.Items)-1)
	return old != l.Cursor
}

func (l *Level) pageSize(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(l.Items) {
		return max(len(l.Items), 1)
	}
	return maxVisible
}

// EnsureCursorVisible clamps the cursor and scrolls the viewport so that the
// cursor row is one of the maxVisible rendered rows.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(n-maxVisible, 0)
	l.ViewportOffset = clamp(l.ViewportOffset, 0, maxOffset)
	switch {
	case l.Cursor < l.ViewportOffset:
		l.ViewportOffset = l.Cursor
	case l.Cursor >= l.ViewportOffset+maxVisible:
		l.ViewportOffset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
}

// Visible returns the items inside the viewport and the index of the first.
func (l *Level) Visible(maxVisible int) ([]menu.Item, int) {
	l.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return l.Items, 0
	}
	start := l.ViewportOffset
	return l.Items[start : start+maxVisible], start
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
