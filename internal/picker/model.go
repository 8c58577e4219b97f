package picker

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/tabpick/internal/logging/events"
	"github.com/atomicstack/tabpick/internal/picker/state"
	"github.com/atomicstack/tabpick/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

// Phase is the controller lifecycle state. Submitted and Cancelled are
// terminal; no transition leaves them.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseSubmitted
	PhaseCancelled
)

// flashDuration is how long the "search cleared" indicator stays lit.
const flashDuration = 900 * time.Millisecond

// flashExpiredMsg signals that an armed search flash ran out. The sequence
// number acts as a cancellation token: arming a new flash (or shutting down)
// bumps the model's sequence, so a stale expiry is ignored.
type flashExpiredMsg struct {
	seq int
}

type msgHandler func(tea.Msg) tea.Cmd

// Model owns every piece of mutable prompt state and is the single dispatcher
// for parsed key events. It implements tea.Model.
type Model[T comparable] struct {
	message    string
	tabs       *state.Tabs[T]
	engine     *state.Engine[T]
	selection  *state.Selection[T]
	term       string
	phase      Phase
	showFooter bool

	flashSeq int
	flashOn  bool

	searchCursor      cursor.Model
	searchCursorDirty bool
	width             int
	cleanedUp         bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the prompt state machine from the supplied prompt. All
// catalog-derived structures are constructed here and are read-only for the
// rest of the session.
func NewModel[T comparable](p Prompt[T]) *Model[T] {
	maxVisible := p.MaxVisible
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	tabs := state.BuildTabs(p.Groups, maxVisible)
	m := &Model[T]{
		message:    p.Message,
		tabs:       tabs,
		engine:     state.NewEngine(tabs),
		selection:  state.NewSelection(p.Initial),
		showFooter: p.ShowFooter,
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Search != nil {
		c.TextStyle = *styles.Search
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model[T]) Init() tea.Cmd {
	return m.searchCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateSearchCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model[T]) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(flashExpiredMsg{}):   m.handleFlashExpiredMsg,
	}
}

func (m *Model[T]) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model[T]) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty {
		m.searchCursorDirty = false
		m.searchCursor.Blink = false
		if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model[T]) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

// handleKeyMsg is the single key dispatcher: one logical effect per physical
// key press.
func (m *Model[T]) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.phase != PhaseActive {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.cancel()
	case "enter":
		return m.submit()
	case "esc":
		if m.term != "" {
			m.clearSearch(false)
			return nil
		}
		return m.cancel()
	case "tab":
		m.switchTab(1)
	case " ":
		m.toggleUnderCursor()
	case "up":
		m.navigateContent(-1, false)
	case "down":
		m.navigateContent(1, false)
	case "left":
		m.switchTab(-1)
	case "right":
		m.switchTab(1)
	case "pgup":
		m.navigateContent(-1, true)
	case "pgdown":
		m.navigateContent(1, true)
	case "backspace":
		m.backspaceSearch()
	case "ctrl+u":
		if cmd := m.clearSearch(true); cmd != nil {
			return cmd
		}
	default:
		if keyMsg.Type == tea.KeyRunes && !keyMsg.Alt {
			m.appendSearch(keyMsg.Runes)
		}
	}
	return nil
}

func (m *Model[T]) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	return nil
}

// handleFlashExpiredMsg clears the flash indicator, but only when the expiry
// belongs to the most recently armed flash and the prompt is still active.
func (m *Model[T]) handleFlashExpiredMsg(msg tea.Msg) tea.Cmd {
	expiry, ok := msg.(flashExpiredMsg)
	if !ok {
		return nil
	}
	if m.phase != PhaseActive || expiry.seq != m.flashSeq {
		return nil
	}
	m.flashOn = false
	return nil
}

func (m *Model[T]) switchTab(direction int) {
	var moved bool
	if direction < 0 {
		moved = m.tabs.Prev()
	} else {
		moved = m.tabs.Next()
	}
	if !moved {
		return
	}
	active := m.tabs.Active()
	events.UI.TabSwitch(active.ID)
	// A search on another tab may have shrunk this tab's filtered list since
	// it was last active; re-clamp only when the remembered position no
	// longer fits, so an in-range cursor/scroll pair survives the round trip.
	n := len(m.engine.Filtered(active.ID, m.term))
	list := active.List
	maxOffset := n - list.MaxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if list.Cursor >= n || list.Offset > maxOffset {
		list.Reset(n)
		active.List = list
	}
}

func (m *Model[T]) navigateContent(direction int, page bool) {
	active := m.tabs.Active()
	if active == nil {
		return
	}
	n := len(m.engine.Filtered(active.ID, m.term))
	if page {
		m.tabs.NavigateContentPage(direction, n)
	} else {
		m.tabs.NavigateContent(direction, n)
	}
	events.UI.Cursor(active.ID, active.List.Cursor)
}

func (m *Model[T]) toggleUnderCursor() {
	active := m.tabs.Active()
	if active == nil {
		return
	}
	filtered := m.engine.Filtered(active.ID, m.term)
	idx := active.List.Cursor
	if idx < 0 || idx >= len(filtered) {
		return
	}
	value := filtered[idx].Value
	selected := m.selection.Toggle(value)
	events.Selection.Toggle(fmt.Sprint(value), selected, m.selection.Len())
}

func (m *Model[T]) submit() tea.Cmd {
	m.phase = PhaseSubmitted
	events.UI.Submit(m.selection.Len())
	m.shutdown()
	return tea.Quit
}

func (m *Model[T]) cancel() tea.Cmd {
	m.phase = PhaseCancelled
	events.UI.Cancel()
	m.shutdown()
	return tea.Quit
}

// shutdown releases session resources. It is safe to call more than once:
// the pending flash token is invalidated and the search caret detached only
// on the first pass.
func (m *Model[T]) shutdown() {
	if m.cleanedUp {
		return
	}
	m.cleanedUp = true
	m.flashSeq++
	m.flashOn = false
	m.searchCursor.Blur()
}

// Phase exposes the controller lifecycle state.
func (m *Model[T]) Phase() Phase {
	return m.phase
}

// Selected returns the chosen values in first-selected-first order.
func (m *Model[T]) Selected() []T {
	return m.selection.Values()
}

// SearchTerm returns the live search term.
func (m *Model[T]) SearchTerm() string {
	return m.term
}
