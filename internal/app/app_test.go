package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/command-dashboard/internal/catalog"
)

const listDocument = `
version: 1
categories:
  linux:
    title: LINUX COMMANDS
    subcategories:
      File Ops:
        list files:
          command: ls -la
          explanation: lists files
        disk usage:
          command: du -sh *
          explanation: |
            summarises disk usage
            per entry
  sql:
    subcategories:
      Queries:
        select all: {command: "SELECT * FROM t;"}
`

func writeCatalog(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadCatalogDefaultsToBuiltIn(t *testing.T) {
	cat, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() == 0 {
		t.Fatalf("expected built-in catalog to have categories")
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	cat, err := LoadCatalog(writeCatalog(t, listDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(cat.CategoryIDs(), ","); got != "linux,sql" {
		t.Fatalf("expected linux,sql, got %s", got)
	}
}

func TestLoadCatalogMalformed(t *testing.T) {
	_, err := LoadCatalog(writeCatalog(t, "categories: [1, 2]\n"))
	if !errors.Is(err, catalog.ErrMalformedCatalog) {
		t.Fatalf("expected malformed catalog error, got %v", err)
	}
}

func TestLoadCatalogReportsMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}

func TestRunRequiresCatalog(t *testing.T) {
	if err := Run(Config{List: true}, nil); !errors.Is(err, ErrNoCatalog) {
		t.Fatalf("expected ErrNoCatalog, got %v", err)
	}
}

func TestListAlignsCommands(t *testing.T) {
	cat, err := LoadCatalog(writeCatalog(t, listDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := List(&buf, cat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"LINUX COMMANDS [linux]",
		"  File Ops",
		"    list files  ls -la    lists files",
		"    disk usage  du -sh *  summarises disk usage per entry",
		"",
		"SQL [sql]",
		"  Queries",
		"    select all  SELECT * FROM t;",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("expected listing:\n%s\ngot:\n%s", want, got)
	}
}
