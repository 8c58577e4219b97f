package state

// List tracks the cursor and scroll window for one scrollable item list.
// Every operation clamps rather than erroring, so the invariants
// 0 <= Cursor < max(itemCount,1) and 0 <= Offset <= max(0, itemCount-MaxVisible)
// hold after any call regardless of input.
type List struct {
	Cursor     int
	Offset     int
	MaxVisible int
}

// NewList constructs a List for a viewport of maxVisible rows.
func NewList(maxVisible int) List {
	if maxVisible < 1 {
		maxVisible = 1
	}
	return List{MaxVisible: maxVisible}
}

// Navigate moves the cursor one step in the given direction (-1 up, +1 down),
// clamped to [0, itemCount-1]. It is a no-op for an empty list.
func (l *List) Navigate(direction, itemCount int) {
	l.moveCursor(step(direction), itemCount)
}

// NavigatePage moves the cursor a full viewport in the given direction.
func (l *List) NavigatePage(direction, itemCount int) {
	l.moveCursor(step(direction)*l.MaxVisible, itemCount)
}

func (l *List) moveCursor(delta, itemCount int) {
	if itemCount <= 0 {
		return
	}
	next := l.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next > itemCount-1 {
		next = itemCount - 1
	}
	l.SetCursorScrolled(next)
}

// SetCursorScrolled sets the cursor and drags the scroll offset along so the
// cursor stays inside the visible window.
func (l *List) SetCursorScrolled(cursor int) {
	if cursor < 0 {
		cursor = 0
	}
	l.Cursor = cursor
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+l.MaxVisible {
		l.Offset = l.Cursor - l.MaxVisible + 1
	}
}

// Reset clamps the cursor into the new item count and recomputes the scroll
// offset from the top, re-applying the window adjustment when the clamped
// cursor falls outside the first page.
func (l *List) Reset(itemCount int) {
	if itemCount <= 0 {
		l.Cursor = 0
		l.Offset = 0
		return
	}
	if l.Cursor > itemCount-1 {
		l.Cursor = itemCount - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Offset = 0
	if l.Cursor >= l.MaxVisible {
		l.Offset = l.Cursor - l.MaxVisible + 1
	}
}

// VisibleRange returns the half-open window [start, end) of item indices
// currently inside the viewport.
func (l *List) VisibleRange(itemCount int) (int, int) {
	start := l.Offset
	if start > itemCount {
		start = itemCount
	}
	end := l.Offset + l.MaxVisible
	if end > itemCount {
		end = itemCount
	}
	return start, end
}

// Indicators reports how many items sit above and below the visible window.
func (l *List) Indicators(itemCount int) (above, below int) {
	above = l.Offset
	below = itemCount - l.Offset - l.MaxVisible
	if below < 0 {
		below = 0
	}
	return above, below
}

func step(direction int) int {
	if direction < 0 {
		return -1
	}
	return 1
}
