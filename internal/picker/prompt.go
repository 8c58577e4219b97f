package picker

import (
	"io"

	"github.com/atomicstack/tabpick/internal/picker/state"
)

const (
	// DefaultMaxVisible is the viewport row count used when the prompt does
	// not specify one.
	DefaultMaxVisible = 10

	// maxTermRunes caps the search term length.
	maxTermRunes = 64
)

// Prompt describes one picker session: the message shown in the header, the
// ordered option groups, an optional initial selection, and the fixed number
// of option rows visible at once. Input and Output override the terminal
// streams, which is how tests drive the prompt.
type Prompt[T comparable] struct {
	Message    string
	Groups     []state.Group[T]
	Initial    []T
	MaxVisible int
	ShowFooter bool

	Input  io.Reader
	Output io.Writer
}
