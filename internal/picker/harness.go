package picker

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the picker model programmatically for tests. Returned
// commands are handed back rather than executed: the model's commands are
// all timer-driven (caret blink, flash expiry) or terminal (quit), and
// invoking them would block on real clocks. Tests inject the corresponding
// messages directly instead.
type Harness[T comparable] struct {
	model *Model[T]
}

// NewHarness creates a harness for the provided model.
func NewHarness[T comparable](model *Model[T]) *Harness[T] {
	return &Harness[T]{model: model}
}

// Send routes a message through the model and returns any resulting command.
func (h *Harness[T]) Send(msg tea.Msg) tea.Cmd {
	if h.model == nil {
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model[T]); ok {
		h.model = updated
	}
	return cmd
}

// SendKeys sends one key message per entry; plain words become rune input.
func (h *Harness[T]) SendKeys(keys ...string) {
	for _, key := range keys {
		h.Send(keyMsgFor(key))
	}
}

func keyMsgFor(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// View returns the current view string.
func (h *Harness[T]) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness[T]) Model() *Model[T] {
	return h.model
}
