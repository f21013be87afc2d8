package ui

import (
	"github.com/atomicstack/command-dashboard/internal/nav"
	"github.com/atomicstack/command-dashboard/internal/output"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	headerRows    = 1
	bottomBarRows = 2 // status line + filter prompt
	footerRows    = 2 // blank + key help
	columnGap     = 1
	sideMinWidth  = 14
	sideMaxWidth  = 34
	paneMaxHeight = 7
	paneMinHeight = 3
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return r.w > 0 && r.h > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout is the screen geometry for one frame. View draws into it and the
// mouse handler hit-tests against it, so both always agree.
type layout struct {
	width, height int
	body          rect
	sideTitle     rect
	sideList      rect
	main          rect
	mainTitle     rect
	commandList   rect
	commandPane   rect
	explainPane   rect
}

func (m *Model) layout() layout {
	w := firstPositive(m.width, m.fallbackWidth, defaultWidth)
	h := firstPositive(m.height, m.fallbackHeight, defaultHeight)
	l := layout{width: w, height: h}

	bodyH := h - headerRows - bottomBarRows
	if m.showFooter {
		bodyH -= footerRows
	}
	bodyH = max(bodyH, 2)
	l.body = rect{x: 0, y: headerRows, w: w, h: bodyH}

	sideW := min(max(w/3, sideMinWidth), sideMaxWidth)
	if sideW >= w {
		sideW = max(w/2, 1)
	}
	l.sideTitle = rect{x: 0, y: l.body.y, w: sideW, h: 1}
	l.sideList = rect{x: 0, y: l.body.y + 1, w: sideW, h: bodyH - 1}

	mainX := sideW + columnGap
	l.main = rect{x: mainX, y: l.body.y, w: max(w-mainX, 1), h: bodyH}
	l.mainTitle = rect{x: mainX, y: l.body.y, w: l.main.w, h: 1}

	if m.machine.State().Kind != nav.CommandList {
		return l
	}
	paneH := min(paneMaxHeight, (bodyH-1)/2)
	if paneH < paneMinHeight {
		paneH = 0
	}
	listH := bodyH - 1 - paneH
	l.commandList = rect{x: mainX, y: l.body.y + 1, w: l.main.w, h: max(listH, 1)}
	if paneH > 0 {
		paneY := l.body.y + bodyH - paneH
		cmdW := l.main.w / 2
		l.commandPane = rect{x: mainX, y: paneY, w: cmdW, h: paneH}
		l.explainPane = rect{x: mainX + cmdW, y: paneY, w: l.main.w - cmdW, h: paneH}
	}
	return l
}

// paneAt returns the output field whose pane covers the cell at x, y.
func (l layout) paneAt(x, y int) (output.Field, bool) {
	switch {
	case l.commandPane.contains(x, y):
		return output.FieldCommand, true
	case l.explainPane.contains(x, y):
		return output.FieldExplanation, true
	default:
		return 0, false
	}
}

// visibleRows is the number of item rows l gets on screen.
func (m *Model) visibleRows(l *level) int {
	if l == nil {
		return -1
	}
	geo := m.layout()
	switch {
	case l == m.content:
		return geo.commandList.h
	case l == m.side:
		return geo.sideList.h
	default:
		return -1
	}
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
