package picker

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func plainView(h *Harness[string]) string {
	return ansi.Strip(h.View())
}

func TestViewRendersHeaderSearchAndTabs(t *testing.T) {
	h := newTestHarness(toolGroups(), 5)
	view := plainView(h)

	if !strings.Contains(view, "? Pick tools") {
		t.Fatalf("expected header message, got:\n%s", view)
	}
	if !strings.Contains(view, "0 selected") {
		t.Fatalf("expected selection indicator, got:\n%s", view)
	}
	if !strings.Contains(view, "(type to search)") {
		t.Fatalf("expected search placeholder, got:\n%s", view)
	}
	for _, label := range []string{"All", "Python", "JS"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected tab %q, got:\n%s", label, view)
		}
	}
	if !strings.Contains(view, "pylint") || !strings.Contains(view, "jshint") {
		t.Fatalf("expected aggregate tab to list every option, got:\n%s", view)
	}
}

func TestViewRendersBadgesDuringSearch(t *testing.T) {
	h := newTestHarness(toolGroups(), 5)
	h.SendKeys("p", "y")
	view := plainView(h)

	if !strings.Contains(view, "Python (2)") {
		t.Fatalf("expected Python badge, got:\n%s", view)
	}
	if !strings.Contains(view, "JS (0)") {
		t.Fatalf("expected JS badge, got:\n%s", view)
	}
	if !strings.Contains(view, "» py") {
		t.Fatalf("expected echoed search term, got:\n%s", view)
	}
	if strings.Contains(view, "jshint") {
		t.Fatalf("expected jshint filtered out, got:\n%s", view)
	}
}

func TestViewRendersSelectionMarkers(t *testing.T) {
	h := newTestHarness(toolGroups(), 5)
	h.SendKeys("space")
	view := plainView(h)

	if !strings.Contains(view, "[✓] pylint") {
		t.Fatalf("expected selection marker on pylint, got:\n%s", view)
	}
	if !strings.Contains(view, "[ ] pytest") {
		t.Fatalf("expected pytest unmarked, got:\n%s", view)
	}
	if !strings.Contains(view, "1 selected") {
		t.Fatalf("expected updated header count, got:\n%s", view)
	}
}

func TestViewRendersScrollIndicators(t *testing.T) {
	h := newTestHarness(manyOptions(12), 5)
	for i := 0; i < 7; i++ {
		h.SendKeys("down")
	}
	view := plainView(h)

	if !strings.Contains(view, "↑ 3 more") {
		t.Fatalf("expected above indicator, got:\n%s", view)
	}
	if !strings.Contains(view, "↓ 4 more") {
		t.Fatalf("expected below indicator, got:\n%s", view)
	}
	if !strings.Contains(view, "opt-07") {
		t.Fatalf("expected cursor row visible, got:\n%s", view)
	}
	if strings.Contains(view, "opt-00") || strings.Contains(view, "opt-11") {
		t.Fatalf("expected rows outside the window hidden, got:\n%s", view)
	}
}

func TestViewRendersNoMatchesMessage(t *testing.T) {
	h := newTestHarness(toolGroups(), 5)
	h.SendKeys("z", "z")
	view := plainView(h)
	if !strings.Contains(view, `No matches for "zz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
}

func TestViewRendersFlashIndicator(t *testing.T) {
	h := newTestHarness(toolGroups(), 5)
	h.SendKeys("p", "ctrl+u")
	view := plainView(h)
	if !strings.Contains(view, "cleared") {
		t.Fatalf("expected flash indicator, got:\n%s", view)
	}

	h.Send(flashExpiredMsg{seq: h.Model().flashSeq})
	if strings.Contains(plainView(h), "cleared") {
		t.Fatalf("expected flash gone after expiry")
	}
}

func TestViewRendersFooterWhenEnabled(t *testing.T) {
	m := NewModel(Prompt[string]{Groups: toolGroups(), ShowFooter: true})
	h := NewHarness(m)
	if !strings.Contains(plainView(h), "space mark") {
		t.Fatal("expected footer hints")
	}
}

func TestViewRendersHintsDimmed(t *testing.T) {
	h := newTestHarness(toolGroups(), 5)
	view := plainView(h)
	if !strings.Contains(view, "linter") {
		t.Fatalf("expected hint text rendered, got:\n%s", view)
	}
}
