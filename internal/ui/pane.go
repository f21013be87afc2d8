package ui

import (
	"strings"

	"github.com/atomicstack/command-dashboard/internal/output"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	paneCorners = "╭╮╰╯"
	paneHz      = "─"
	paneVt      = "│"

	emptyPaneText = "(select a command)"
)

func (m *Model) renderOutputPanes(geo layout) []string {
	state := m.machine.Output()
	placeholder := ""
	if state.Empty() {
		placeholder = emptyPaneText
	}
	left := renderOutputPane("Command", "ctrl+y", state.Command, placeholder,
		geo.commandPane.w, geo.commandPane.h, m.copiedActive(output.FieldCommand))
	right := renderOutputPane("Explanation", "ctrl+o", state.Explanation, placeholder,
		geo.explainPane.w, geo.explainPane.h, m.copiedActive(output.FieldExplanation))
	joined := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return strings.Split(joined, "\n")
}

// renderOutputPane draws a bordered box of exactly width by height cells with
// the title set into the top border and the copy key into the bottom one.
// Text is word-wrapped; overflow is cut with an ellipsis on the last row.
// placeholder is shown dimmed when text is empty.
func renderOutputPane(title, key, text, placeholder string, width, height int, copied bool) string {
	corners := []rune(paneCorners)
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)
	borderStyle := styles.PaneBorder
	if copied {
		borderStyle = styles.PaneCopied
	}

	titleSeg := " " + title + " "
	if copied {
		titleSeg = " " + title + " ✓ "
	}
	keySeg := " " + key + " to copy "
	if lipgloss.Width(keySeg) > innerW-1 {
		keySeg = ""
	}
	if lipgloss.Width(titleSeg) > innerW-1 {
		titleSeg = truncate.StringWithTail(titleSeg, uint(max(innerW-2, 0)), "…")
	}
	topDashes := max(innerW-1-lipgloss.Width(titleSeg), 0)
	top := render(borderStyle, string(corners[0])+paneHz) +
		render(styles.PaneTitle, titleSeg) +
		render(borderStyle, strings.Repeat(paneHz, topDashes)+string(corners[1]))
	bottom := render(borderStyle, string(corners[2])+strings.Repeat(paneHz, innerW)+string(corners[3]))
	if keySeg != "" {
		bottomDashes := innerW - 1 - lipgloss.Width(keySeg)
		bottom = render(borderStyle, string(corners[2])+strings.Repeat(paneHz, bottomDashes)) +
			render(styles.Hint, keySeg) +
			render(borderStyle, paneHz+string(corners[3]))
	}

	bodyStyle := styles.PaneBody
	lines := paneLines(text, innerW, innerH)
	if text == "" && placeholder != "" {
		bodyStyle = styles.PaneEmpty
		lines = []string{placeholder}
	}

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(lines) {
			content = lines[i]
		}
		rows = append(rows, render(borderStyle, paneVt)+render(bodyStyle, fitLine(content, innerW))+render(borderStyle, paneVt))
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// paneLines wraps text to width and keeps at most height lines, marking a cut
// with a trailing ellipsis.
func paneLines(text string, width, height int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		wrapped := wrap.String(wordwrap.String(para, width), width)
		lines = append(lines, strings.Split(wrapped, "\n")...)
	}
	if len(lines) <= height {
		return lines
	}
	lines = lines[:height]
	last := lines[height-1]
	if lipgloss.Width(last) >= width {
		last = truncate.String(last, uint(max(width-1, 0)))
	}
	lines[height-1] = last + "…"
	return lines
}
