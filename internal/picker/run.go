package picker

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is the cancellation marker: Run returns it when the user
// aborts the prompt, which keeps an aborted session distinguishable from a
// submitted empty selection.
var ErrCancelled = errors.New("selection cancelled")

// IsCancelled reports whether err marks a user-cancelled prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// Run drives the prompt until it reaches a terminal state. It returns the
// selected values in first-selected-first order (possibly empty) on submit,
// or ErrCancelled on abort. The result is never partial: the model is only
// read after the program has stopped.
func Run[T comparable](p Prompt[T]) ([]T, error) {
	model := NewModel(p)
	opts := make([]tea.ProgramOption, 0, 2)
	if p.Input != nil {
		opts = append(opts, tea.WithInput(p.Input))
	}
	if p.Output != nil {
		opts = append(opts, tea.WithOutput(p.Output))
	}
	program := tea.NewProgram(model, opts...)
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, ErrCancelled
		}
		return nil, err
	}
	finished, ok := final.(*Model[T])
	if !ok || finished.Phase() != PhaseSubmitted {
		return nil, ErrCancelled
	}
	return finished.Selected(), nil
}
