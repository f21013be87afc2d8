// Package table aligns plain-text columns by display width.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format returns rows padded so that every column starts at the same display
// column. Rows may be ragged; missing cells count as empty. Trailing padding
// is trimmed.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			b.WriteString(Pad(cell, widths[c], alignmentAt(alignments, c)))
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// Widths returns the display width of the widest cell in each column.
func Widths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// Width returns the display width of text.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Pad fills text with spaces up to width display columns.
func Pad(text string, width int, align Alignment) string {
	if align == AlignRight {
		return runewidth.FillLeft(text, width)
	}
	return runewidth.FillRight(text, width)
}

// Fit truncates text to width display columns, marking the cut with an
// ellipsis.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

func alignmentAt(alignments []Alignment, col int) Alignment {
	if col < len(alignments) {
		return alignments[col]
	}
	return AlignLeft
}
