package state

import "strings"

// filterKey is the composite cache key for filtered item lookups.
type filterKey struct {
	term  string
	tabID string
}

// Engine computes and memoizes the filtered option list for the pair
// (search term, tab) and the per-tab match counts for a term. Both caches
// hold a single last-key/last-value entry and are recomputed lazily on key
// mismatch, never invalidated up front.
type Engine[T comparable] struct {
	tabs *Tabs[T]

	filteredKey filterKey
	filtered    []Option[T]
	hasFiltered bool

	countsTerm string
	counts     map[string]int
	hasCounts  bool
}

// NewEngine creates an Engine over the supplied tab set.
func NewEngine[T comparable](tabs *Tabs[T]) *Engine[T] {
	return &Engine[T]{tabs: tabs}
}

// Filtered returns the options of the given tab whose haystack contains the
// lowercased term as a substring. An empty term returns the whole tab; an
// unknown tab id degrades to an empty list. The returned slice is stable
// while the (term, tab) pair is unchanged, so callers can compare references
// to detect that nothing moved.
func (e *Engine[T]) Filtered(tabID, term string) []Option[T] {
	key := filterKey{term: term, tabID: tabID}
	if e.hasFiltered && key == e.filteredKey {
		return e.filtered
	}
	var result []Option[T]
	if tab := e.tabs.Lookup(tabID); tab != nil {
		if term == "" {
			result = tab.Options
		} else {
			lower := strings.ToLower(term)
			result = make([]Option[T], 0, len(tab.Options))
			for _, opt := range tab.Options {
				if opt.Matches(lower) {
					result = append(result, opt)
				}
			}
		}
	}
	e.filteredKey = key
	e.filtered = result
	e.hasFiltered = true
	return result
}

// MatchCounts returns the number of matching options per tab id for the given
// term. The count for the aggregate tab is the sum over all real groups. An
// empty term yields full group sizes.
func (e *Engine[T]) MatchCounts(term string) map[string]int {
	if e.hasCounts && term == e.countsTerm {
		return e.counts
	}
	lower := strings.ToLower(term)
	counts := make(map[string]int, len(e.tabs.All()))
	total := 0
	for _, tab := range e.tabs.All() {
		if tab.ID == AllTabID {
			continue
		}
		n := 0
		for _, opt := range tab.Options {
			if opt.Matches(lower) {
				n++
			}
		}
		counts[tab.ID] = n
		total += n
	}
	counts[AllTabID] = total
	e.countsTerm = term
	e.counts = counts
	e.hasCounts = true
	return counts
}

// UpdateTabsForSearch refreshes badges and disabled flags for the term and
// re-clamps the active tab's cursor and scroll offset against its filtered
// item count, so the visible window always holds a valid cursor position
// immediately after any filter change.
func (e *Engine[T]) UpdateTabsForSearch(term string) {
	if term == "" {
		for _, tab := range e.tabs.All() {
			tab.Badge = BadgeNone
			tab.Disabled = false
		}
	} else {
		counts := e.MatchCounts(term)
		for _, tab := range e.tabs.All() {
			tab.Badge = counts[tab.ID]
			tab.Disabled = tab.ID != AllTabID && counts[tab.ID] == 0
		}
	}
	active := e.tabs.Active()
	if active == nil {
		return
	}
	list := e.tabs.ActiveListState()
	list.Reset(len(e.Filtered(active.ID, term)))
	e.tabs.SetActiveListState(list)
}
