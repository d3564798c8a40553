package stack

// Stack is an ordered collection of unique elements with a designated focus.
// Iteration order is the tiling order used by layout algorithms; the focused
// element may sit anywhere in that order. The zero value is not useful:
// construct stacks with [New].
//
// A Stack is owned and mutated by a single caller. Layout algorithms only
// ever read it.
type Stack[T comparable] struct {
	items []T
	focus int
}

// New creates a stack from the given elements, focusing the first one.
// Duplicate elements are dropped, keeping the first occurrence. An empty
// argument list yields an empty stack.
func New[T comparable](items ...T) *Stack[T] {
	s := &Stack[T]{}
	seen := make(map[T]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		s.items = append(s.items, it)
	}
	return s
}

// Len returns the number of elements. Safe to call on a nil stack.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// IsEmpty reports whether the stack holds no elements. Safe on nil.
func (s *Stack[T]) IsEmpty() bool { return s.Len() == 0 }

// Items returns the elements in tiling order. The slice is a copy; mutating
// it does not affect the stack. Safe to call on a nil stack.
func (s *Stack[T]) Items() []T {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Focused returns the focused element, or false when the stack is empty.
func (s *Stack[T]) Focused() (T, bool) {
	var zero T
	if s.Len() == 0 {
		return zero, false
	}
	return s.items[s.focus], true
}

// FocusIndex returns the position of the focused element in tiling order.
// Returns -1 for an empty stack.
func (s *Stack[T]) FocusIndex() int {
	if s.Len() == 0 {
		return -1
	}
	return s.focus
}

// Contains reports whether the stack holds the given element.
func (s *Stack[T]) Contains(item T) bool {
	return s.indexOf(item) >= 0
}

// FocusNext moves focus to the next element in tiling order, wrapping to the
// first element past the end. No-op on an empty stack.
func (s *Stack[T]) FocusNext() {
	if s.Len() == 0 {
		return
	}
	s.focus = (s.focus + 1) % len(s.items)
}

// FocusPrev moves focus to the previous element in tiling order, wrapping to
// the last element before the start. No-op on an empty stack.
func (s *Stack[T]) FocusPrev() {
	if s.Len() == 0 {
		return
	}
	s.focus = (s.focus - 1 + len(s.items)) % len(s.items)
}

// FocusOn moves focus to the given element. Returns false (focus unchanged)
// when the element is not present.
func (s *Stack[T]) FocusOn(item T) bool {
	i := s.indexOf(item)
	if i < 0 {
		return false
	}
	s.focus = i
	return true
}

// Insert adds a new element directly after the focused one and focuses it.
// Returns false (stack unchanged) when the element is already present.
func (s *Stack[T]) Insert(item T) bool {
	if s.Contains(item) {
		return false
	}
	if len(s.items) == 0 {
		s.items = append(s.items, item)
		s.focus = 0
		return true
	}
	at := s.focus + 1
	s.items = append(s.items, item)
	copy(s.items[at+1:], s.items[at:])
	s.items[at] = item
	s.focus = at
	return true
}

// Remove deletes the given element. When the focused element is removed,
// focus moves to the element that followed it, or to the new last element
// when the removed one was last. Returns false when the element is absent.
func (s *Stack[T]) Remove(item T) bool {
	i := s.indexOf(item)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	switch {
	case len(s.items) == 0:
		s.focus = 0
	case s.focus > i:
		s.focus--
	case s.focus >= len(s.items):
		s.focus = len(s.items) - 1
	}
	return true
}

// RotateUp moves the last element to the front of the tiling order. Focus
// stays on the same element. No-op for stacks shorter than two.
func (s *Stack[T]) RotateUp() {
	n := len(s.items)
	if n < 2 {
		return
	}
	last := s.items[n-1]
	copy(s.items[1:], s.items[:n-1])
	s.items[0] = last
	s.focus = (s.focus + 1) % n
}

// RotateDown moves the first element to the back of the tiling order. Focus
// stays on the same element. No-op for stacks shorter than two.
func (s *Stack[T]) RotateDown() {
	n := len(s.items)
	if n < 2 {
		return
	}
	first := s.items[0]
	copy(s.items[:n-1], s.items[1:])
	s.items[n-1] = first
	s.focus = (s.focus - 1 + n) % n
}

// Clone returns an independent copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	if s == nil {
		return nil
	}
	out := &Stack[T]{focus: s.focus}
	if len(s.items) > 0 {
		out.items = make([]T, len(s.items))
		copy(out.items, s.items)
	}
	return out
}

func (s *Stack[T]) indexOf(item T) int {
	if s == nil {
		return -1
	}
	for i, it := range s.items {
		if it == item {
			return i
		}
	}
	return -1
}
