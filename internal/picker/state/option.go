package state

import "strings"

// Option is one selectable catalog entry. The value is owned by the caller;
// the label, hint, and search haystack are fixed at construction.
type Option[T comparable] struct {
	Value    T
	Label    string
	Hint     string
	haystack string
}

// NewOption builds an Option whose lowercase haystack is derived from the
// label and hint.
func NewOption[T comparable](value T, label, hint string) Option[T] {
	hay := strings.ToLower(label)
	if hint != "" {
		hay += " " + strings.ToLower(hint)
	}
	return Option[T]{Value: value, Label: label, Hint: hint, haystack: hay}
}

// Matches reports whether the already-lowercased term occurs in the haystack.
// The empty term matches every option.
func (o Option[T]) Matches(lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(o.haystack, lowerTerm)
}

// Haystack exposes the precomputed lowercase search text.
func (o Option[T]) Haystack() string {
	return o.haystack
}

// CloneOptions produces a shallow copy of the provided options.
func CloneOptions[T comparable](options []Option[T]) []Option[T] {
	dup := make([]Option[T], len(options))
	copy(dup, options)
	return dup
}
