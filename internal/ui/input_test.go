package ui

import (
	"testing"

	"github.com/atomicstack/command-dashboard/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingFiltersFocusedList(t *testing.T) {
	h := NewHarness(newTestModel(t, nil, Options{}))
	m := h.Model()
	h.Send(runes("sq"))
	if m.side.Filter != "sq" {
		t.Fatalf("expected filter sq, got %q", m.side.Filter)
	}
	if len(m.side.Items) != 1 || m.side.Items[0].ID != "category:sql" {
		t.Fatalf("expected only sql to match, got %v", itemLabels(m.side.Items))
	}
	h.Send(key(tea.KeyEnter))
	if got := m.machine.State(); got != nav.InCategory("sql") {
		t.Fatalf("expected CategoryList(sql), got %v", got)
	}
}

func TestFilterMatchesCommandText(t *testing.T) {
	h := NewHarness(newTestModel(t, nil, Options{}))
	openFileOps(t, h)
	m := h.Model()
	h.Send(runes("du"))
	if len(m.content.Items) != 1 || m.content.Items[0].Label != "disk usage" {
		t.Fatalf("expected disk usage to match, got %v", itemLabels(m.content.Items))
	}
	if m.side.Filter != "" {
		t.Fatalf("expected side menu filter untouched, got %q", m.side.Filter)
	}
	h.Send(key(tea.KeyEnter))
	if got := m.machine.Output().Command; got != "du -sh *" {
		t.Fatalf("expected du command displayed, got %q", got)
	}
	if m.content.Filter != "" || len(m.content.Items) != 2 {
		t.Fatalf("expected filter cleared after activation, got %q with %d items", m.content.Filter, len(m.content.Items))
	}
	if item, _ := m.content.Current(); item.Label != "disk usage" {
		t.Fatalf("expected cursor kept on disk usage, got %q", item.Label)
	}
}

func TestBackspaceAndClearFilter(t *testing.T) {
	h := NewHarness(newTestModel(t, nil, Options{}))
	m := h.Model()
	h.Send(runes("lin"))
	h.Send(key(tea.KeyBackspace))
	if m.side.Filter != "li" {
		t.Fatalf("expected filter li, got %q", m.side.Filter)
	}
	h.Send(key(tea.KeyLeft))
	if m.side.FilterCursor != 1 {
		t.Fatalf("expected caret 1, got %d", m.side.FilterCursor)
	}
	h.Send(key(tea.KeyCtrlU))
	if m.side.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", m.side.Filter)
	}
	if len(m.side.Items) != 3 {
		t.Fatalf("expected every item back, got %d", len(m.side.Items))
	}
}

func TestLeadingSpaceIsIgnored(t *testing.T) {
	h := NewHarness(newTestModel(t, nil, Options{}))
	m := h.Model()
	h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.side.Filter != "" {
		t.Fatalf("expected no filter from a leading space, got %q", m.side.Filter)
	}
	h.Send(runes("sql"))
	h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.side.Filter != "sql " {
		t.Fatalf("expected trailing space kept, got %q", m.side.Filter)
	}
}

func TestFilterEditClearsError(t *testing.T) {
	m := newTestModel(t, nil, Options{})
	m.errMsg = "previous error"
	m.Update(runes("x"))
	if m.errMsg != "" {
		t.Fatalf("expected error cleared, got %q", m.errMsg)
	}
}

func TestFilterPromptShowsPlaceholder(t *testing.T) {
	m := newTestModel(t, nil, Options{})
	if prompt := m.filterPrompt(); !containsPlain(prompt, "type to filter") {
		t.Fatalf("expected placeholder, got %q", prompt)
	}
	m.Update(runes("sql"))
	if prompt := m.filterPrompt(); !containsPlain(prompt, "sql") {
		t.Fatalf("expected query in prompt, got %q", prompt)
	}
}
