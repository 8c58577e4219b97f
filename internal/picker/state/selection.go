package state

// Selection is an insertion-ordered set of chosen option values. Membership
// changes only through Toggle; filtering and tab switches never touch it.
type Selection[T comparable] struct {
	members map[T]struct{}
	order   []T
}

// NewSelection creates a Selection seeded with the initial values in order.
// Duplicate seeds collapse to their first occurrence.
func NewSelection[T comparable](initial []T) *Selection[T] {
	s := &Selection[T]{members: make(map[T]struct{}, len(initial))}
	for _, v := range initial {
		if _, ok := s.members[v]; ok {
			continue
		}
		s.members[v] = struct{}{}
		s.order = append(s.order, v)
	}
	return s
}

// Toggle flips membership for the value and reports whether it is now
// selected.
func (s *Selection[T]) Toggle(v T) bool {
	if _, ok := s.members[v]; ok {
		delete(s.members, v)
		for i, existing := range s.order {
			if existing == v {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.members[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Has reports whether the value is currently selected.
func (s *Selection[T]) Has(v T) bool {
	_, ok := s.members[v]
	return ok
}

// Len returns the number of selected values.
func (s *Selection[T]) Len() int {
	return len(s.order)
}

// Values returns the selected values in first-selected-first order.
func (s *Selection[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
