package state

import "testing"

func newTestEngine() (*Engine[string], *Tabs[string]) {
	tabs := BuildTabs(testGroups(), 5)
	return NewEngine(tabs), tabs
}

func TestFilteredBySubstring(t *testing.T) {
	engine, _ := newTestEngine()

	filtered := engine.Filtered(AllTabID, "py")
	if len(filtered) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "py", len(filtered))
	}
	if filtered[0].Value != "p1" || filtered[1].Value != "p2" {
		t.Fatalf("unexpected match order %#v", filtered)
	}

	if got := engine.Filtered("Python", "LINT"); len(got) != 1 || got[0].Value != "p1" {
		t.Fatalf("expected case-insensitive hint match, got %#v", got)
	}

	if got := engine.Filtered("JS", "py"); len(got) != 0 {
		t.Fatalf("expected no matches on JS tab, got %#v", got)
	}
}

func TestFilteredUnknownTabDegradesToEmpty(t *testing.T) {
	engine, _ := newTestEngine()
	if got := engine.Filtered("Ruby", ""); len(got) != 0 {
		t.Fatalf("expected empty list for unknown tab, got %#v", got)
	}
}

func TestFilteredCacheStability(t *testing.T) {
	engine, _ := newTestEngine()

	first := engine.Filtered(AllTabID, "py")
	second := engine.Filtered(AllTabID, "py")
	if len(first) == 0 || &first[0] != &second[0] {
		t.Fatal("expected identical slice reference while the cache key is unchanged")
	}

	other := engine.Filtered("Python", "py")
	if len(other) == 0 || &other[0] == &first[0] {
		t.Fatal("expected tab change to recompute the filtered list")
	}

	again := engine.Filtered(AllTabID, "py")
	if &again[0] == &first[0] {
		t.Fatal("expected single-entry cache to have been replaced")
	}
}

func TestMatchCountsEmptyTermEqualsCatalogSizes(t *testing.T) {
	engine, _ := newTestEngine()
	counts := engine.MatchCounts("")
	if counts[AllTabID] != 3 {
		t.Fatalf("expected total option count 3, got %d", counts[AllTabID])
	}
	if counts["Python"] != 2 || counts["JS"] != 1 {
		t.Fatalf("unexpected per-group counts %#v", counts)
	}
}

func TestMatchCountsMemoizedOnTermAlone(t *testing.T) {
	engine, _ := newTestEngine()
	first := engine.MatchCounts("py")
	second := engine.MatchCounts("py")
	// Mutation visibility proves both calls returned the same map.
	first["probe"] = 99
	if second["probe"] != 99 {
		t.Fatal("expected memoized map to be returned for a repeated term")
	}
	third := engine.MatchCounts("js")
	if _, ok := third["probe"]; ok {
		t.Fatal("expected a fresh map after the term changed")
	}
}

func TestUpdateTabsForSearchSetsBadgesAndDisables(t *testing.T) {
	engine, tabs := newTestEngine()

	engine.UpdateTabsForSearch("py")
	if got := tabs.Lookup("Python").Badge; got != 2 {
		t.Fatalf("expected Python badge 2, got %d", got)
	}
	if got := tabs.Lookup("JS").Badge; got != 0 {
		t.Fatalf("expected JS badge 0, got %d", got)
	}
	if !tabs.Lookup("JS").Disabled {
		t.Fatal("expected zero-match JS tab disabled")
	}
	if tabs.Lookup(AllTabID).Disabled {
		t.Fatal("aggregate tab must never be disabled")
	}
	if filtered := engine.Filtered(AllTabID, "py"); len(filtered) != 2 {
		t.Fatalf("expected filtered aggregate [p1 p2], got %#v", filtered)
	}

	engine.UpdateTabsForSearch("")
	for _, tab := range tabs.All() {
		if tab.Badge != BadgeNone {
			t.Fatalf("expected badge cleared on %q, got %d", tab.ID, tab.Badge)
		}
		if tab.Disabled {
			t.Fatalf("expected %q re-enabled", tab.ID)
		}
	}
}

func TestUpdateTabsForSearchReclampsActiveCursor(t *testing.T) {
	engine, tabs := newTestEngine()
	tabs.NavigateContent(1, 3)
	tabs.NavigateContent(1, 3)
	if tabs.ActiveListState().Cursor != 2 {
		t.Fatalf("setup: expected cursor 2, got %d", tabs.ActiveListState().Cursor)
	}

	engine.UpdateTabsForSearch("lint")
	if got := tabs.ActiveListState().Cursor; got != 1 {
		t.Fatalf("expected cursor clamped to 1 for 2 matches, got %d", got)
	}

	engine.UpdateTabsForSearch("no-such-thing")
	if got := tabs.ActiveListState(); got.Cursor != 0 || got.Offset != 0 {
		t.Fatalf("expected zeroed list for no matches, got %+v", got)
	}
}
