package frontier

// compactMin is the smallest consumed prefix worth reclaiming.
const compactMin = 64

// Queue is a first-in-first-out container backed by a slice with a moving
// head. The consumed prefix is reclaimed once it outgrows the live part.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item at the back of the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the oldest item.
func (q *Queue[T]) Pop() T {
	if q.head == len(q.items) {
		panic(ErrEmpty)
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		// drained: reuse the backing array from the start
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactMin && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item
}

// Peek returns the oldest item without removing it.
func (q *Queue[T]) Peek() T {
	if q.head == len(q.items) {
		panic(ErrEmpty)
	}

	return q.items[q.head]
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.head == len(q.items) }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Items returns the items front to back.
func (q *Queue[T]) Items() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])

	return out
}
