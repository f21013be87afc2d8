package main

import (
	"testing"

	"github.com/atomicstack/command-dashboard/internal/app"
	"github.com/atomicstack/command-dashboard/internal/catalog"
	"github.com/atomicstack/command-dashboard/internal/config"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		catalog.Category{ID: "linux", Subcategories: []catalog.Subcategory{
			{Label: "File Ops", Commands: []catalog.Command{
				{Label: "list files", Entry: catalog.Entry{Command: "ls -la"}},
				{Label: "disk usage", Entry: catalog.Entry{Command: "du -sh *"}},
			}},
			{Label: "Text", Commands: []catalog.Command{
				{Label: "count lines", Entry: catalog.Entry{Command: "wc -l"}},
			}},
		}},
		catalog.Category{ID: "sql", Subcategories: []catalog.Subcategory{
			{Label: "Queries", Commands: []catalog.Command{
				{Label: "select all", Entry: catalog.Entry{Command: "SELECT * FROM t;"}},
			}},
		}},
	)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func TestProbeTerminalReportsEveryDescriptor(t *testing.T) {
	report := probeTerminal(standardDescriptors())
	expected := []string{"stdout", "stderr", "stdin"}
	if len(report.Descriptors) != len(expected) {
		t.Fatalf("expected %d probe entries, got %d", len(expected), len(report.Descriptors))
	}
	for i, name := range expected {
		if report.Descriptors[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, report.Descriptors[i].Name)
		}
	}
}

func TestProbeTerminalSkipsInvalidDescriptors(t *testing.T) {
	report := probeTerminal([]descriptor{{"closed", -1}})
	if report.Frame != nil {
		t.Fatalf("expected no frame size, got %#v", report.Frame)
	}
	if report.Descriptors[0].IsTerminal {
		t.Fatalf("expected invalid descriptor not to be a terminal")
	}
}

func TestWithFrameFallbackUsesProbedSize(t *testing.T) {
	cfg := app.Config{Width: 100}
	got := withFrameFallback(cfg, terminalReport{})
	if got != cfg {
		t.Fatalf("expected config unchanged without a terminal, got %#v", got)
	}
	got = withFrameFallback(cfg, terminalReport{Frame: &frameSize{Source: "stdout", Width: 132, Height: 43}})
	if got.FallbackWidth != 132 || got.FallbackHeight != 43 {
		t.Fatalf("expected fallback 132x43, got %dx%d", got.FallbackWidth, got.FallbackHeight)
	}
	if got.Width != 100 {
		t.Fatalf("expected fixed width kept, got %d", got.Width)
	}
}

func TestSummarizeCatalogCountsEntries(t *testing.T) {
	cat := testCatalog(t)
	embedded := summarizeCatalog("", cat)
	want := catalogSummary{Source: "embedded", Categories: 2, Subcategories: 3, Commands: 4}
	if embedded != want {
		t.Fatalf("expected %#v, got %#v", want, embedded)
	}
	file := summarizeCatalog("cmds.yaml", cat)
	if file.Source != "file" || file.Path != "cmds.yaml" {
		t.Fatalf("expected file source cmds.yaml, got %#v", file)
	}
}

func TestStartupTracePayloadIncludesFlagsAndCatalog(t *testing.T) {
	cfg, err := config.LoadArgs(
		[]string{"--catalog", "cmds.yaml", "--width", "80", "--footer", "--category", "sql", "--log-file", "trace.log", "--trace"},
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	terminal := terminalReport{Frame: &frameSize{Source: "stdout", Width: 120, Height: 40}}
	payload := startupTracePayload(cfg, testCatalog(t), terminal)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["catalog"] != "cmds.yaml" {
		t.Fatalf("expected catalog flag %q, got %v", "cmds.yaml", flagsValue["catalog"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["category"] != "sql" {
		t.Fatalf("expected category sql, got %v", flagsValue["category"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	summary, ok := payload["catalog"].(catalogSummary)
	if !ok {
		t.Fatalf("expected catalog summary in payload")
	}
	if summary.Source != "file" || summary.Commands != 4 {
		t.Fatalf("expected file catalog with 4 commands, got %#v", summary)
	}
	if got, ok := payload["terminal"].(terminalReport); !ok || got.Frame.Width != 120 {
		t.Fatalf("expected terminal report in payload, got %#v", payload["terminal"])
	}
	want := app.Config{CatalogPath: "cmds.yaml", Width: 80, ShowFooter: true, StartCategory: "sql"}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != want {
		t.Fatalf("expected app config %#v, got %#v", want, cfgValue.App)
	}
}
