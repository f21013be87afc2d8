package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/command-dashboard/internal/app"
	"github.com/atomicstack/command-dashboard/internal/catalog"
	"github.com/atomicstack/command-dashboard/internal/config"
	"github.com/atomicstack/command-dashboard/internal/logging"
	"github.com/atomicstack/command-dashboard/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	cat, err := app.LoadCatalog(runtimeCfg.App.CatalogPath)
	if err != nil {
		events.App.Exit(err)
		fail(err)
	}

	terminal := probeTerminal(standardDescriptors())
	runtimeCfg.App = withFrameFallback(runtimeCfg.App, terminal)
	events.App.Start(startupTracePayload(runtimeCfg, cat, terminal))

	err = app.Run(runtimeCfg.App, cat)
	events.App.Exit(err)
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// startupTracePayload records what the dashboard is about to show and where it
// will draw it.
func startupTracePayload(cfg config.Config, cat *catalog.Catalog, terminal terminalReport) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"catalog":  summarizeCatalog(cfg.App.CatalogPath, cat),
		"terminal": terminal,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	return payload
}

type catalogSummary struct {
	Source        string `json:"source"`
	Path          string `json:"path,omitempty"`
	Categories    int    `json:"categories"`
	Subcategories int    `json:"subcategories"`
	Commands      int    `json:"commands"`
}

func summarizeCatalog(path string, cat *catalog.Catalog) catalogSummary {
	summary := catalogSummary{Source: "embedded"}
	if path != "" {
		summary.Source = "file"
		summary.Path = path
	}
	if cat == nil {
		return summary
	}
	for _, category := range cat.Categories() {
		summary.Categories++
		summary.Subcategories += len(category.Subcategories)
		for _, sub := range category.Subcategories {
			summary.Commands += len(sub.Commands)
		}
	}
	return summary
}

// terminalReport describes the descriptors the dashboard may draw on. Frame is
// the size of the first one attached to a terminal.
type terminalReport struct {
	Frame       *frameSize        `json:"frame,omitempty"`
	Descriptors []descriptorProbe `json:"descriptors"`
}

type frameSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptorProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

type descriptor struct {
	name string
	fd   int
}

// standardDescriptors lists stdout first since that is where frames are drawn.
func standardDescriptors() []descriptor {
	return []descriptor{
		{"stdout", int(os.Stdout.Fd())},
		{"stderr", int(os.Stderr.Fd())},
		{"stdin", int(os.Stdin.Fd())},
	}
}

func probeTerminal(descriptors []descriptor) terminalReport {
	report := terminalReport{Descriptors: make([]descriptorProbe, 0, len(descriptors))}
	for _, d := range descriptors {
		probe := descriptorProbe{Name: d.name}
		if d.fd >= 0 && term.IsTerminal(d.fd) {
			probe.IsTerminal = true
			if width, height, err := term.GetSize(d.fd); err == nil {
				probe.Width = width
				probe.Height = height
				if report.Frame == nil && width > 0 && height > 0 {
					report.Frame = &frameSize{Source: d.name, Width: width, Height: height}
				}
			} else {
				probe.Error = err.Error()
			}
		}
		report.Descriptors = append(report.Descriptors, probe)
	}
	return report
}

// withFrameFallback sizes the frames drawn before Bubble Tea reports the
// window size from the probed terminal.
func withFrameFallback(cfg app.Config, terminal terminalReport) app.Config {
	if terminal.Frame == nil {
		return cfg
	}
	cfg.FallbackWidth = terminal.Frame.Width
	cfg.FallbackHeight = terminal.Frame.Height
	return cfg
}
