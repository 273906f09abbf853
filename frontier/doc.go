// Package frontier provides the three "next item to expand" containers used
// by the search package: a LIFO Stack, a FIFO Queue and a min-heap Priority.
//
// What
//
//   - Stack:    Push/Pop at the tail, O(1).
//   - Queue:    Push at the tail, Pop at the head, O(1) amortized.
//   - Priority: Push/Pop in O(log n), ordered by a caller-supplied less func.
//
// All three satisfy Frontier[T], so a search loop can be written once and
// parameterized by the container it drains.
//
// Why
//
//	Depth-first and breadth-first search are the same loop over a Stack or a
//	Queue; A* is that loop over a Priority ordered by cost plus estimate.
//
// Preconditions
//
//	Pop and Peek on an empty container are programming errors and panic with
//	ErrEmpty. Check Empty() first.
//
// Determinism
//
//	Priority pops equal keys in insertion order. This is an implementation
//	detail: callers must not depend on tie order.
package frontier
