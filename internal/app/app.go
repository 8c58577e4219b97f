package app

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tabpick/internal/catalog"
	"github.com/atomicstack/tabpick/internal/logging/events"
	"github.com/atomicstack/tabpick/internal/picker"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	Message     string
	Height      int
	Preselect   []string
	ShowFooter  bool
	Verbose     bool
}

// chromeRows is the screen estate the prompt uses around the option list:
// header, search row, tab bar, two scroll indicators, and a blank line.
const chromeRows = 6

// Run loads the catalog, runs the prompt, and writes the accepted values to
// stdout one per line. A cancelled prompt returns picker.ErrCancelled with
// nothing written.
func Run(cfg Config) error {
	return run(cfg, os.Stdout, os.Stderr)
}

func run(cfg Config, stdout, stderr io.Writer) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	known, unknown := cat.SplitPreselect(cfg.Preselect)
	for _, v := range unknown {
		events.Selection.UnknownPreselect(v)
		if cfg.Verbose {
			fmt.Fprintf(stderr, "tabpick: ignoring unknown preselect %q\n", v)
		}
	}

	message := cfg.Message
	if message == "" {
		message = cat.Message
	}

	values, err := picker.Run(picker.Prompt[string]{
		Message:    message,
		Groups:     cat.Groups(),
		Initial:    known,
		MaxVisible: resolveMaxVisible(cfg.Height),
		ShowFooter: cfg.ShowFooter,
	})
	if err != nil {
		events.App.Finish(false, 0)
		return err
	}

	events.App.Finish(true, len(values))
	for _, v := range values {
		fmt.Fprintln(stdout, v)
	}
	if cfg.Verbose {
		fmt.Fprintf(stderr, "tabpick: accepted %d option(s)\n", len(values))
	}
	return nil
}

// resolveMaxVisible turns the configured height into a viewport row count.
// Zero means fit the terminal; a tiny or undetectable terminal falls back to
// the default.
func resolveMaxVisible(height int) int {
	if height > 0 {
		return height
	}
	if _, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if fit := rows - chromeRows; fit >= 1 {
			return fit
		}
	}
	return picker.DefaultMaxVisible
}
