package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/command-dashboard/internal/format/table"
	"github.com/atomicstack/command-dashboard/internal/menu"
	"github.com/atomicstack/command-dashboard/internal/nav"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	itemIndicator = "▌"
	footerHelp    = "↑/↓ move  enter select  tab focus  esc back  ctrl+y/ctrl+o copy  ctrl+c quit"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	geo := m.layout()
	rows := make([]string, 0, geo.height)
	rows = append(rows, fitLine(render(styles.Header, m.menuHeader()), geo.width))

	side := m.renderSide(geo)
	main := m.renderMain(geo)
	gap := strings.Repeat(" ", columnGap)
	for i := 0; i < geo.body.h; i++ {
		rows = append(rows, side[i]+gap+main[i])
	}

	if m.showFooter {
		rows = append(rows, fitLine("", geo.width), fitLine(render(styles.Footer, footerHelp), geo.width))
	}
	rows = append(rows, fitLine(m.statusLine(), geo.width))
	rows = append(rows, fitLine(m.filterPrompt(), geo.width))
	return strings.Join(rows, "\n")
}

func (m *Model) menuHeader() string {
	segments := menu.Breadcrumb(m.machine.Catalog(), m.machine.State())
	if len(segments) == 0 {
		return defaultRootTitle
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return render(styles.Error, fmt.Sprintf("Error: %s", m.errMsg))
	}
	if info := m.currentInfo(); info != "" {
		return render(styles.Info, info)
	}
	return ""
}

// renderSide returns exactly geo.body.h rows of geo.sideList.w columns.
func (m *Model) renderSide(geo layout) []string {
	width := geo.sideList.w
	rows := make([]string, 0, geo.body.h)
	title := "Categories"
	if m.machine.State().Kind != nav.MainMenu {
		title = "Command groups"
	}
	rows = append(rows, render(styles.Header, title))
	rows = append(rows, m.renderList(m.side, geo.sideList.h, width, m.focus == FocusMenu)...)
	return padRows(rows, geo.body.h, width)
}

// renderMain returns exactly geo.body.h rows of geo.main.w columns.
func (m *Model) renderMain(geo layout) []string {
	width := geo.main.w
	state := m.machine.State()
	var rows []string
	switch state.Kind {
	case nav.CommandList:
		rows = append(rows, render(styles.Header, state.Subcategory))
		rows = append(rows, m.renderList(m.content, geo.commandList.h, width, m.focus == FocusCommands)...)
		rows = padRows(rows, geo.body.h-geo.commandPane.h, width)
		if geo.commandPane.h > 0 {
			rows = append(rows, m.renderOutputPanes(geo)...)
		}
	case nav.CategoryList:
		title := state.Category
		if c, ok := m.machine.Catalog().Category(state.Category); ok {
			title = c.Title
		}
		rows = append(rows, render(styles.Welcome, title), "")
		rows = append(rows, wrapText(styles.Hint, "Choose a command group from the menu on the left to list its commands.", width)...)
	default:
		rows = append(rows, render(styles.Welcome, "Welcome to the "+WindowTitle), "")
		rows = append(rows, wrapText(styles.Info, "Pick a category from the menu on the left to browse its reference commands.", width)...)
		rows = append(rows, "")
		rows = append(rows, wrapText(styles.Hint, "Selecting a command shows it with an explanation. Click either pane, or press ctrl+y / ctrl+o, to copy its text.", width)...)
	}
	return padRows(rows, geo.body.h, width)
}

// renderList draws the visible window of l. Command entries show their
// command text in a second aligned column.
func (m *Model) renderList(l *level, rows, width int, focused bool) []string {
	if l == nil {
		return nil
	}
	if len(l.Items) == 0 {
		msg := "(no entries)"
		if l.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", l.Filter)
		}
		return []string{render(styles.Info, msg)}
	}
	items, start := l.Visible(rows)
	labelW := 0
	for _, item := range l.Items {
		if item.Detail != "" {
			labelW = max(labelW, table.Width(item.Label))
		}
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		out = append(out, renderItem(item, start+i == l.Cursor, focused, labelW, width))
	}
	return out
}

func renderItem(item menu.Item, selected, focused bool, labelW, width int) string {
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
		if !focused {
			lineStyle = styles.BlurredSelectedItem
		}
	}
	avail := width - 2
	if avail <= 0 {
		return render(indicatorStyle, itemIndicator)
	}
	head := render(indicatorStyle, itemIndicator) + render(lineStyle, " ")
	if item.Detail == "" || labelW == 0 {
		text := table.Fit(item.Label, avail)
		if selected {
			text = table.Pad(text, avail, table.AlignLeft)
		}
		return head + render(lineStyle, text)
	}
	label := table.Fit(table.Pad(item.Label, labelW, table.AlignLeft), avail)
	detailW := avail - lipgloss.Width(label) - 2
	if detailW <= 0 {
		return head + render(lineStyle, label)
	}
	detail := table.Fit(item.Detail, detailW)
	if selected {
		return head + render(lineStyle, table.Pad(label+"  "+detail, avail, table.AlignLeft))
	}
	return head + render(lineStyle, label+"  ") + render(styles.ItemDetail, detail)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func wrapText(style *lipgloss.Style, text string, width int) []string {
	lines := strings.Split(wordwrap.String(text, max(width, 1)), "\n")
	for i, line := range lines {
		lines[i] = render(style, line)
	}
	return lines
}

// fitLine truncates or pads a rendered line to exactly width columns. It
// measures with ANSI awareness so styled text keeps its escapes intact.
func fitLine(line string, width int) string {
	width = max(width, 0)
	if lipgloss.Width(line) > width {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	return line + strings.Repeat(" ", max(width-lipgloss.Width(line), 0))
}

func padRows(rows []string, height, width int) []string {
	if len(rows) > height {
		rows = rows[:height]
	}
	out := make([]string, 0, height)
	for _, row := range rows {
		out = append(out, fitLine(row, width))
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", width))
	}
	return out
}
