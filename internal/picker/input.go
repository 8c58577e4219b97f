package picker

import (
	"time"
	"unicode"

	"github.com/atomicstack/tabpick/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// allowedSearchRune reports whether a typed rune may join the search term.
// Space is the selection toggle key and control runes never reach the term.
func allowedSearchRune(r rune) bool {
	return !unicode.IsControl(r) && !unicode.IsSpace(r)
}

func (m *Model[T]) appendSearch(runes []rune) {
	appended := false
	for _, r := range runes {
		if !allowedSearchRune(r) {
			continue
		}
		if len([]rune(m.term)) >= maxTermRunes {
			break
		}
		m.term += string(r)
		appended = true
	}
	if !appended {
		return
	}
	m.searchCursorDirty = true
	m.engine.UpdateTabsForSearch(m.term)
	events.Search.Append(m.term)
}

func (m *Model[T]) backspaceSearch() {
	runes := []rune(m.term)
	if len(runes) == 0 {
		return
	}
	m.term = string(runes[:len(runes)-1])
	m.searchCursorDirty = true
	m.engine.UpdateTabsForSearch(m.term)
	events.Search.Backspace(m.term)
}

// clearSearch wipes the term and refreshes tab badges. When flash is set a
// short visual indicator is armed; a previously armed flash is cancelled
// first by bumping the sequence token.
func (m *Model[T]) clearSearch(flash bool) tea.Cmd {
	m.term = ""
	m.searchCursorDirty = true
	m.engine.UpdateTabsForSearch(m.term)
	events.Search.Cleared(flash)
	if !flash {
		return nil
	}
	m.flashSeq++
	m.flashOn = true
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}
