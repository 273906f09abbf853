package frontier

import "errors"

// ErrEmpty is the panic value of Pop and Peek on an empty container.
var ErrEmpty = errors.New("frontier: pop from empty container")

// Frontier is the uniform push/pop contract shared by Stack, Queue and Priority.
type Frontier[T any] interface {
	// Push inserts item.
	Push(item T)
	// Pop removes and returns the next item in container order.
	// It panics with ErrEmpty when the container is empty.
	Pop() T
	// Peek returns the next item without removing it.
	// It panics with ErrEmpty when the container is empty.
	Peek() T
	// Empty reports whether there is nothing left to pop.
	Empty() bool
	// Len returns the number of stored items.
	Len() int
	// Items returns a copy of the stored items in storage order.
	Items() []T
}

// Compile-time interface checks.
var (
	_ Frontier[int] = (*Stack[int])(nil)
	_ Frontier[int] = (*Queue[int])(nil)
	_ Frontier[int] = (*Priority[int])(nil)
)
