package frontier

import "container/heap"

// Priority is a min-heap ordered by a caller-supplied less function.
// Items with equal keys pop in insertion order.
type Priority[T any] struct {
	h entryHeap[T]
	// seq numbers every push; used only to order equal keys.
	seq uint64
}

// NewPriority returns an empty Priority that pops the smallest item under less.
func NewPriority[T any](less func(a, b T) bool) *Priority[T] {
	return &Priority[T]{h: entryHeap[T]{less: less}}
}

// Push inserts item in O(log n).
func (p *Priority[T]) Push(item T) {
	p.seq++
	heap.Push(&p.h, entry[T]{item: item, seq: p.seq})
}

// Pop removes and returns the smallest item in O(log n).
func (p *Priority[T]) Pop() T {
	if len(p.h.entries) == 0 {
		panic(ErrEmpty)
	}

	return heap.Pop(&p.h).(entry[T]).item
}

// Peek returns the smallest item without removing it.
func (p *Priority[T]) Peek() T {
	if len(p.h.entries) == 0 {
		panic(ErrEmpty)
	}

	return p.h.entries[0].item
}

// Empty reports whether the heap holds no items.
func (p *Priority[T]) Empty() bool { return len(p.h.entries) == 0 }

// Len returns the number of items in the heap.
func (p *Priority[T]) Len() int { return len(p.h.entries) }

// Items returns the items in heap (array) order, not pop order.
func (p *Priority[T]) Items() []T {
	out := make([]T, len(p.h.entries))
	for i, e := range p.h.entries {
		out[i] = e.item
	}

	return out
}

// entry pairs an item with its insertion sequence number.
type entry[T any] struct {
	item T
	seq  uint64
}

// entryHeap implements heap.Interface over entries.
type entryHeap[T any] struct {
	entries []entry[T]
	less    func(a, b T) bool
}

func (h entryHeap[T]) Len() int { return len(h.entries) }

func (h entryHeap[T]) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if h.less(a.item, b.item) {
		return true
	}
	if h.less(b.item, a.item) {
		return false
	}

	return a.seq < b.seq
}

func (h entryHeap[T]) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *entryHeap[T]) Push(x any) { h.entries = append(h.entries, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{}
	h.entries = old[:n-1]

	return e
}
