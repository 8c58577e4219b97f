package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tabpick/internal/picker"
)

func TestRunReportsMissingCatalog(t *testing.T) {
	err := Run(Config{CatalogPath: filepath.Join(t.TempDir(), "absent.yaml")})
	if err == nil {
		t.Fatal("expected error for missing catalog file")
	}
	if !strings.Contains(err.Error(), "read catalog") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestRunReportsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("categories:\n  - name: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Run(Config{CatalogPath: path})
	if err == nil || !strings.Contains(err.Error(), "has no name") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveMaxVisibleHonoursExplicitHeight(t *testing.T) {
	if got := resolveMaxVisible(7); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestResolveMaxVisibleFallsBackWithoutTerminal(t *testing.T) {
	// Test processes have no controlling terminal on stdout, so auto-fit
	// lands on the default.
	if got := resolveMaxVisible(0); got < 1 {
		t.Fatalf("expected a positive row count, got %d", got)
	}
	if got := resolveMaxVisible(0); got != picker.DefaultMaxVisible {
		t.Skipf("stdout is a terminal here, fit picked %d", got)
	}
}
