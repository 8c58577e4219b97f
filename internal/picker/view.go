package picker

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tabpick/internal/picker/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerHint = "↑/↓ move  ←/→/tab switch  space mark  backspace erase  ctrl+u clear  enter accept  esc cancel"

// View implements tea.Model: a pure function from controller state to a text
// frame. It mutates nothing; all clamping happened during dispatch.
func (m *Model[T]) View() string {
	lines := make([]string, 0, 16)
	lines = append(lines, m.headerLine())
	lines = append(lines, m.searchLine())
	lines = append(lines, m.tabBarLine())
	lines = append(lines, m.itemLines()...)
	if m.showFooter {
		lines = append(lines, "", render(styles.Footer, footerHint))
	}
	return strings.Join(fitWidth(lines, m.width), "\n")
}

func (m *Model[T]) headerLine() string {
	indicator := fmt.Sprintf("%d selected", m.selection.Len())
	switch m.phase {
	case PhaseSubmitted:
		indicator = "done"
	case PhaseCancelled:
		indicator = "cancelled"
	}
	return render(styles.Header, "? "+m.message) + "  " + render(styles.HeaderState, indicator)
}

func (m *Model[T]) searchLine() string {
	prompt := render(styles.SearchPrompt, "» ")
	flash := ""
	if m.flashOn {
		flash = "  " + render(styles.SearchFlash, "cleared")
	}
	if m.term == "" {
		placeholder := []rune("(type to search)")
		caret := m.renderSearchCaret(string(placeholder[0]), styles.SearchPlaceholder)
		return prompt + caret + render(styles.SearchPlaceholder, string(placeholder[1:])) + flash
	}
	caret := m.renderSearchCaret(" ", styles.Search)
	return prompt + render(styles.Search, m.term) + caret + flash
}

// renderSearchCaret draws the caret over the given character, honouring the
// blink state of the underlying cursor model.
func (m *Model[T]) renderSearchCaret(char string, textStyle *lipgloss.Style) string {
	if char == "" {
		char = " "
	}
	base := lipgloss.NewStyle().Inline(true)
	if textStyle != nil {
		base = textStyle.Inline(true)
	}
	if m.searchCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

func (m *Model[T]) tabBarLine() string {
	parts := make([]string, 0, len(m.tabs.All()))
	active := m.tabs.Active()
	for _, tab := range m.tabs.All() {
		label := tab.Label
		if tab.Badge != state.BadgeNone {
			label += render(styles.TabBadge, fmt.Sprintf(" (%d)", tab.Badge))
		}
		switch {
		case tab == active:
			label = render(styles.TabActive, " "+label+" ")
		case tab.Disabled:
			label = render(styles.TabDisabled, " "+label+" ")
		default:
			label = render(styles.Tab, " "+label+" ")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m *Model[T]) itemLines() []string {
	active := m.tabs.Active()
	if active == nil {
		return nil
	}
	filtered := m.engine.Filtered(active.ID, m.term)
	n := len(filtered)
	if n == 0 {
		msg := "(no options)"
		if m.term != "" {
			msg = fmt.Sprintf("No matches for %q", m.term)
		}
		return []string{render(styles.Info, msg)}
	}
	lines := make([]string, 0, active.List.MaxVisible+2)
	above, below := active.List.Indicators(n)
	if above > 0 {
		lines = append(lines, render(styles.ScrollIndicator, fmt.Sprintf("↑ %d more", above)))
	}
	start, end := active.List.VisibleRange(n)
	for i := start; i < end; i++ {
		lines = append(lines, m.buildItemLine(filtered[i], i == active.List.Cursor))
	}
	if below > 0 {
		lines = append(lines, render(styles.ScrollIndicator, fmt.Sprintf("↓ %d more", below)))
	}
	return lines
}

func (m *Model[T]) buildItemLine(opt state.Option[T], underCursor bool) string {
	indicator := "  "
	labelStyle := styles.Item
	if underCursor {
		indicator = render(styles.ItemCursor, "▌") + " "
		labelStyle = styles.ItemCursor
	}
	mark := render(styles.Item, "[ ]")
	if m.selection.Has(opt.Value) {
		mark = render(styles.SelectionMark, "[✓]")
	}
	line := indicator + mark + " " + m.highlightLabel(opt.Label, labelStyle)
	if opt.Hint != "" {
		line += "  " + render(styles.Hint, opt.Hint)
	}
	return line
}

// highlightLabel styles the first occurrence of the search term inside the
// label, case-insensitively. Terms matching only the hint leave the label
// unmarked.
func (m *Model[T]) highlightLabel(label string, base *lipgloss.Style) string {
	if m.term == "" {
		return render(base, label)
	}
	lowerLabel := strings.ToLower(label)
	lowerTerm := strings.ToLower(m.term)
	idx := strings.Index(lowerLabel, lowerTerm)
	// Byte offsets into the lowered string only map back onto the original
	// when folding kept the encoding length.
	if idx < 0 || len(lowerLabel) != len(label) || len(lowerTerm) != len(m.term) {
		return render(base, label)
	}
	end := idx + len(lowerTerm)
	return render(base, label[:idx]) +
		render(styles.ItemMatch, label[idx:end]) +
		render(base, label[end:])
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// fitWidth truncates rendered lines to the terminal width using ANSI-aware
// measurement.
func fitWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.StringWithTail(line, uint(width-1), "…")
		}
	}
	return lines
}
