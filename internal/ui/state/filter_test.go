package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/command-dashboard/internal/menu"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.FilterCursor != len("two") {
		t.Fatalf("expected caret at end, got %d", level.FilterCursor)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Items) != 1 || level.Items[0].Label != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", level.Items)
	}

	if !level.ClearFilter() {
		t.Fatalf("expected clear to report a change")
	}
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
	if level.ClearFilter() {
		t.Fatalf("expected clearing an empty filter to be a no-op")
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}
	if level.InsertFilterText("") {
		t.Fatal("expected empty insert to be rejected")
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" || level.FilterCursor != 2 {
		t.Fatalf("expected azb with caret 2, got %q/%d", level.Filter, level.FilterCursor)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("tar xz", len("tar xz"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "tar " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() || level.DeleteFilterWordBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if !level.MoveFilterCursorWordBackward() || level.FilterCursor != 4 {
		t.Fatalf("expected caret at 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorWordForward() || level.FilterCursor != len("one two") {
		t.Fatalf("expected caret restored to end, got %d", level.FilterCursor)
	}
	if level.MoveFilterCursorRuneForward() {
		t.Fatal("expected no movement past the end")
	}
	if !level.MoveFilterCursorRuneBackward() || level.FilterCursor != len("one two")-1 {
		t.Fatalf("expected caret len-1, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorStart() || level.FilterCursor != 0 {
		t.Fatalf("expected caret at 0, got %d", level.FilterCursor)
	}
	if level.MoveFilterCursorRuneBackward() {
		t.Fatal("expected no movement before the start")
	}
	if !level.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestFilterItemsMatchesLabelsAndCommands(t *testing.T) {
	items := []menu.Item{
		{ID: "command:list files", Label: "list files", Detail: "ls -la"},
		{ID: "command:disk usage", Label: "disk usage", Detail: "du -sh *"},
		{ID: menu.ReturnID, Label: "Return"},
	}
	filtered := FilterItems(items, "list")
	if len(filtered) != 1 || filtered[0].Label != "list files" {
		t.Fatalf("expected label match, got %#v", filtered)
	}
	filtered = FilterItems(items, "du -sh")
	if len(filtered) != 1 || filtered[0].Label != "disk usage" {
		t.Fatalf("expected command text match, got %#v", filtered)
	}
	if len(FilterItems(items, "qqq")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
	all := FilterItems(items, "  ")
	if !reflect.DeepEqual(all, items) {
		t.Fatalf("expected blank query to keep every item, got %#v", all)
	}
	all[0].Label = "changed"
	if items[0].Label != "list files" {
		t.Fatal("expected original slice to remain unchanged")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []menu.Item{
		{ID: "subcategory:File Ops", Label: "File Ops"},
		{ID: "subcategory:Text", Label: "Text"},
		{ID: "subcategory:Processes", Label: "Processes"},
	}

	if idx := BestMatchIndex(items, "text"); idx != 1 {
		t.Fatalf("expected exact label match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "pro"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "ops"); idx != 0 {
		t.Fatalf("expected substring match index 0, got %d", idx)
	}
	if idx := BestMatchIndex(items, "prcs"); idx != 2 {
		t.Fatalf("expected fuzzy match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}
