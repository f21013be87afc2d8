package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/command-dashboard/internal/catalog"
	"github.com/atomicstack/command-dashboard/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func containsPlain(s, substr string) bool {
	return strings.Contains(ansi.Strip(s), substr)
}

func assertFrame(t *testing.T, view string, width, height int) {
	t.Helper()
	lines := strings.Split(view, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d rows, got %d:\n%s", height, len(lines), view)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("row %d: expected width %d, got %d: %q", i, width, w, line)
		}
	}
}

func TestViewMainMenuShowsWelcomeAndCategories(t *testing.T) {
	m := newTestModel(t, nil, Options{})
	view := m.View()
	for _, want := range []string{"main menu", "Welcome to the Command Dashboard", "LINUX COMMANDS", "SQL COMMANDS", "Exit"} {
		if !containsPlain(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	assertFrame(t, view, 80, 24)
}

func TestViewCommandListShowsOutputPanes(t *testing.T) {
	h := NewHarness(newTestModel(t, nil, Options{ShowFooter: true}))
	openFileOps(t, h)
	view := h.View()
	for _, want := range []string{"linux commands → File Ops", "list files", "du -sh *", "Command", "Explanation", "(select a command)", "ctrl+c quit"} {
		if !containsPlain(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	assertFrame(t, view, 80, 24)

	h.Send(key(tea.KeyEnter))
	view = h.View()
	if !containsPlain(view, "lists files") || !containsPlain(view, "ctrl+y to copy") {
		t.Fatalf("expected output panes filled, got:\n%s", view)
	}
	assertFrame(t, view, 80, 24)
}

func TestViewFitsSmallTerminal(t *testing.T) {
	h := NewHarness(newTestModel(t, nil, Options{Width: 40, Height: 12}))
	openFileOps(t, h)
	h.Send(key(tea.KeyEnter))
	assertFrame(t, h.View(), 40, 12)
}

func TestViewShowsStatusLine(t *testing.T) {
	m := newTestModel(t, nil, Options{})
	m.errMsg = "boom"
	if view := m.View(); !containsPlain(view, "Error: boom") {
		t.Fatalf("expected error line, got:\n%s", view)
	}
	m.errMsg = ""
	m.setInfo("Copied command to clipboard")
	if view := m.View(); !containsPlain(view, "Copied command to clipboard") {
		t.Fatalf("expected info line, got:\n%s", view)
	}
}

func TestViewShowsNoMatches(t *testing.T) {
	h := NewHarness(newTestModel(t, nil, Options{}))
	h.Send(runes("zzz"))
	if view := h.View(); !containsPlain(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
}

func TestViewScrollsLongLists(t *testing.T) {
	h := NewHarness(newTestModel(t, nil, Options{Height: 6}))
	m := h.Model()
	if rows := m.visibleRows(m.side); rows != 2 {
		t.Fatalf("expected 2 visible rows, got %d", rows)
	}
	if view := h.View(); containsPlain(view, "Exit") {
		t.Fatalf("expected Exit outside the viewport, got:\n%s", view)
	}
	h.Send(key(tea.KeyEnd))
	if view := h.View(); !containsPlain(view, "Exit") {
		t.Fatalf("expected Exit visible after scrolling, got:\n%s", view)
	}
}

func TestRenderOutputPaneWrapsAndTruncates(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve"
	pane := renderOutputPane("Explanation", "ctrl+o", text, "", 20, 4, false)
	lines := strings.Split(pane, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Fatalf("row %d: expected width 20, got %d: %q", i, w, line)
		}
	}
	if !containsPlain(lines[2], "…") {
		t.Fatalf("expected ellipsis on the last body row, got %q", lines[2])
	}
	if !containsPlain(lines[0], "Explanation") {
		t.Fatalf("expected title in top border, got %q", lines[0])
	}
}

func TestPaneLinesHardWrapsLongWords(t *testing.T) {
	lines := paneLines("SELECT_EVERYTHING_FROM_EVERYWHERE", 10, 5)
	if len(lines) != 4 {
		t.Fatalf("expected 4 wrapped rows, got %d: %q", len(lines), lines)
	}
	for _, line := range lines {
		if lipgloss.Width(line) > 10 {
			t.Fatalf("expected rows within width, got %q", line)
		}
	}
}

func TestViewUsesFallbackSizeUntilResized(t *testing.T) {
	m := NewModel(nav.New(testCatalog(t), nil), Options{FallbackWidth: 100, FallbackHeight: 30})
	t.Cleanup(m.Close)
	assertFrame(t, m.View(), 100, 30)

	m.Update(tea.WindowSizeMsg{Width: 90, Height: 20})
	assertFrame(t, m.View(), 90, 20)
}

func TestViewPlaceholderOnlyWhenNothingDisplayed(t *testing.T) {
	cat, err := catalog.New(catalog.Category{ID: "git", Subcategories: []catalog.Subcategory{
		{Label: "Basics", Commands: []catalog.Command{
			{Label: "status", Entry: catalog.Entry{Command: "git status"}},
		}},
	}})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	machine := nav.New(cat, nil)
	m := NewModel(machine, Options{Width: 80, Height: 24})
	t.Cleanup(m.Close)
	if err := machine.SelectCategory("git"); err != nil {
		t.Fatalf("select category: %v", err)
	}
	if err := machine.SelectSubcategory("Basics"); err != nil {
		t.Fatalf("select subcategory: %v", err)
	}
	if view := m.View(); strings.Count(ansi.Strip(view), emptyPaneText) != 2 {
		t.Fatalf("expected placeholder in both panes, got:\n%s", view)
	}

	if err := machine.SelectCommand("status"); err != nil {
		t.Fatalf("select command: %v", err)
	}
	view := m.View()
	if containsPlain(view, emptyPaneText) {
		t.Fatalf("expected no placeholder once a command is displayed, got:\n%s", view)
	}
	if !containsPlain(view, "git status") {
		t.Fatalf("expected command text, got:\n%s", view)
	}
}
