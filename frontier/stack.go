package frontier

// Stack is a last-in-first-out container.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push appends item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() T {
	if len(s.items) == 0 {
		panic(ErrEmpty)
	}
	n := len(s.items) - 1
	item := s.items[n]
	var zero T
	s.items[n] = zero // release reference for GC
	s.items = s.items[:n]

	return item
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() T {
	if len(s.items) == 0 {
		panic(ErrEmpty)
	}

	return s.items[len(s.items)-1]
}

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Items returns the items bottom to top.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
