package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/command-dashboard/internal/catalog"
	"github.com/atomicstack/command-dashboard/internal/format/table"
	"github.com/atomicstack/command-dashboard/internal/nav"
	"github.com/atomicstack/command-dashboard/internal/output"
	"github.com/atomicstack/command-dashboard/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath   string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	StartCategory string
	List          bool

	// FallbackWidth and FallbackHeight size the frames drawn before the
	// terminal reports its size. Zero keeps the built-in 80x24.
	FallbackWidth  int
	FallbackHeight int
}

// ErrNoCatalog is returned by Run when it is not given a catalog.
var ErrNoCatalog = errors.New("no catalog loaded")

// Run executes the Bubble Tea program over cat, or prints cat when cfg.List
// is set.
func Run(cfg Config, cat *catalog.Catalog) error {
	if cat == nil {
		return ErrNoCatalog
	}
	if cfg.List {
		return List(os.Stdout, cat)
	}

	machine := nav.New(cat, output.NewPane(output.DefaultClipboard()))
	model := ui.NewModel(machine, ui.Options{
		Width:          cfg.Width,
		Height:         cfg.Height,
		FallbackWidth:  cfg.FallbackWidth,
		FallbackHeight: cfg.FallbackHeight,
		ShowFooter:     cfg.ShowFooter,
		Verbose:        cfg.Verbose,
		StartCategory:  cfg.StartCategory,
	})
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// LoadCatalog reads the catalog at path, or the built-in one when path is
// empty.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// List writes every category, subcategory and command in catalog order. The
// commands of each subcategory are aligned into label, command and
// explanation columns.
func List(w io.Writer, cat *catalog.Catalog) error {
	for i, category := range cat.Categories() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s [%s]\n", category.Title, category.ID); err != nil {
			return err
		}
		for _, sub := range category.Subcategories {
			if _, err := fmt.Fprintf(w, "  %s\n", sub.Label); err != nil {
				return err
			}
			rows := make([][]string, 0, len(sub.Commands))
			for _, cmd := range sub.Commands {
				rows = append(rows, []string{cmd.Label, oneLine(cmd.Entry.Command), oneLine(cmd.Entry.Explanation)})
			}
			for _, line := range table.Format(rows, nil) {
				if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func oneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
