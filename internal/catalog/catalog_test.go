package catalog

import (
	"reflect"
	"strings"
	"testing"
)

const sampleCatalog = `
message: Pick your tools
categories:
  - name: Python
    options:
      - value: p1
        label: pylint
        hint: linter
      - value: p2
        label: pytest
  - name: JS
    options:
      - value: j1
        label: jshint
  - name: Empty
`

func TestParseSample(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if c.Message != "Pick your tools" {
		t.Fatalf("unexpected message %q", c.Message)
	}
	if len(c.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(c.Categories))
	}
	if c.TotalOptions() != 3 {
		t.Fatalf("expected 3 options total, got %d", c.TotalOptions())
	}
	if len(c.Categories[2].Options) != 0 {
		t.Fatalf("expected empty category to stay empty, got %d options", len(c.Categories[2].Options))
	}
}

func TestParseDefaultsLabelToValue(t *testing.T) {
	c, err := Parse([]byte("categories:\n  - name: X\n    options:\n      - value: only-value\n"))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got := c.Categories[0].Options[0].Label; got != "only-value" {
		t.Fatalf("expected label defaulted to value, got %q", got)
	}
}

func TestParseRejectsDuplicateValues(t *testing.T) {
	src := `
categories:
  - name: A
    options:
      - value: dup
  - name: B
    options:
      - value: dup
`
	if _, err := Parse([]byte(src)); err == nil || !strings.Contains(err.Error(), "duplicate option value") {
		t.Fatalf("expected duplicate value error, got %v", err)
	}
}

func TestParseRejectsReservedCategoryName(t *testing.T) {
	if _, err := Parse([]byte("categories:\n  - name: All\n")); err == nil || !strings.Contains(err.Error(), "reserved") {
		t.Fatalf("expected reserved name error, got %v", err)
	}
}

func TestParseRejectsMissingNamesAndValues(t *testing.T) {
	if _, err := Parse([]byte("categories:\n  - options: []\n")); err == nil {
		t.Fatal("expected error for unnamed category")
	}
	if _, err := Parse([]byte("categories:\n  - name: A\n    options:\n      - label: no value\n")); err == nil {
		t.Fatal("expected error for option without value")
	}
}

func TestGroupsPrecomputeHaystacks(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	groups := c.Groups()
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	opt := groups[0].Options[0]
	if opt.Haystack() != "pylint linter" {
		t.Fatalf("unexpected haystack %q", opt.Haystack())
	}
	if !opt.Matches("lint") {
		t.Fatal("expected haystack substring match")
	}
}

func TestSplitPreselect(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	known, unknown := c.SplitPreselect([]string{"j1", "ghost", "p2"})
	if !reflect.DeepEqual(known, []string{"j1", "p2"}) {
		t.Fatalf("unexpected known values %v", known)
	}
	if !reflect.DeepEqual(unknown, []string{"ghost"}) {
		t.Fatalf("unexpected unknown values %v", unknown)
	}
}
