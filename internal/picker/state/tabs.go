package state

// AllTabID identifies the synthetic tab aggregating every group. It is never
// disabled, so tab navigation always has a landing spot.
const AllTabID = "all"

// BadgeNone marks a tab without a match-count badge.
const BadgeNone = -1

// Tab is a named partition of the option catalog with its own independent
// cursor/scroll state.
type Tab[T comparable] struct {
	ID       string
	Label    string
	Badge    int
	Disabled bool
	List     List
	Options  []Option[T]
}

// Group is an ordered, named set of options used to build the tab set.
type Group[T comparable] struct {
	Name    string
	Options []Option[T]
}

// Tabs holds the ordered tab set and tracks which tab is active.
type Tabs[T comparable] struct {
	tabs   []*Tab[T]
	active int
}

// BuildTabs creates the aggregate "all" tab followed by one tab per group, in
// the order the groups were supplied. Each tab owns a viewport of maxVisible
// rows.
func BuildTabs[T comparable](groups []Group[T], maxVisible int) *Tabs[T] {
	total := 0
	for _, g := range groups {
		total += len(g.Options)
	}
	all := &Tab[T]{
		ID:      AllTabID,
		Label:   "All",
		Badge:   BadgeNone,
		List:    NewList(maxVisible),
		Options: make([]Option[T], 0, total),
	}
	tabs := make([]*Tab[T], 0, len(groups)+1)
	tabs = append(tabs, all)
	for _, g := range groups {
		all.Options = append(all.Options, g.Options...)
		tabs = append(tabs, &Tab[T]{
			ID:      g.Name,
			Label:   g.Name,
			Badge:   BadgeNone,
			List:    NewList(maxVisible),
			Options: CloneOptions(g.Options),
		})
	}
	return &Tabs[T]{tabs: tabs}
}

// Active returns the currently active tab.
func (t *Tabs[T]) Active() *Tab[T] {
	if len(t.tabs) == 0 {
		return nil
	}
	if t.active < 0 || t.active >= len(t.tabs) {
		t.active = 0
	}
	return t.tabs[t.active]
}

// All returns every tab in display order.
func (t *Tabs[T]) All() []*Tab[T] {
	return t.tabs
}

// Lookup returns the tab with the given id, or nil when no such tab exists.
// Callers treat the nil case as an empty item list.
func (t *Tabs[T]) Lookup(id string) *Tab[T] {
	for _, tab := range t.tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// Next activates the next enabled tab, wrapping past the end. Disabled tabs
// are skipped; when every other tab is disabled the active tab is unchanged.
func (t *Tabs[T]) Next() bool {
	return t.cycle(1)
}

// Prev activates the previous enabled tab, wrapping past the start.
func (t *Tabs[T]) Prev() bool {
	return t.cycle(-1)
}

func (t *Tabs[T]) cycle(direction int) bool {
	n := len(t.tabs)
	if n < 2 {
		return false
	}
	idx := t.active
	for i := 0; i < n-1; i++ {
		idx = ((idx+direction)%n + n) % n
		if !t.tabs[idx].Disabled {
			if idx == t.active {
				return false
			}
			t.active = idx
			return true
		}
	}
	return false
}

// NavigateContent moves the active tab's cursor one step over itemCount items.
func (t *Tabs[T]) NavigateContent(direction, itemCount int) {
	if tab := t.Active(); tab != nil {
		tab.List.Navigate(direction, itemCount)
	}
}

// NavigateContentPage moves the active tab's cursor a full page.
func (t *Tabs[T]) NavigateContentPage(direction, itemCount int) {
	if tab := t.Active(); tab != nil {
		tab.List.NavigatePage(direction, itemCount)
	}
}

// ActiveListState exposes the active tab's list state.
func (t *Tabs[T]) ActiveListState() List {
	if tab := t.Active(); tab != nil {
		return tab.List
	}
	return List{}
}

// SetActiveListState replaces the active tab's list state, used after a
// filter change to re-clamp cursor and offset.
func (t *Tabs[T]) SetActiveListState(l List) {
	if tab := t.Active(); tab != nil {
		tab.List = l
	}
}
