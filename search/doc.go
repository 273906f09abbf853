// Package search implements uninformed depth-first and breadth-first search
// and informed A* search over any comparable state type.
//
// What
//
//   - DFS(initial, goal, successors, opts...)            LIFO frontier
//   - BFS(initial, goal, successors, opts...)            FIFO frontier
//   - AStar(initial, goal, successors, heuristic, opts...) min-heap on Cost+Heuristic
//   - Path(node)                                          start-to-goal states
//
// Every search returns the terminal *Node on success. Parents are linked
// backwards only, so a solution path is recovered by walking Parent links
// from the returned node (Path does exactly that); no partial paths are
// copied while searching.
//
// No path is a normal outcome: the search returns (nil, nil). Errors are
// reserved for invalid input (ErrNilGoal, ErrNilSuccessors, ErrNilHeuristic),
// invalid options (ErrOptionViolation), context cancellation and
// WithMaxExpansions (ErrExpansionLimit).
//
// Bookkeeping
//
//	DFS and BFS keep a set of discovered states. A state is marked when it is
//	generated, not when it is expanded, so it is queued at most once. BFS
//	therefore returns a path with the fewest edges.
//
//	A* keeps the best known cost per state and pushes a successor whenever it
//	is new or strictly cheaper than recorded (edge cost is 1). Superseded
//	entries stay in the heap and are skipped when popped. The returned path
//	is optimal when the heuristic never overestimates the remaining cost.
//
// Observers
//
//	WithObserver(fn) installs a synchronous callback that receives a Step
//	after every expansion: the expanded state, a snapshot of the frontier and
//	the last successor generated. The search does not continue until fn
//	returns. Recorder collects steps; LogSteps forwards them to a logger.
//
// Complexity (V = states discovered, E = successor calls' output)
//
//   - DFS/BFS: Time O(V + E), Memory O(V)
//   - A*:      Time O(E log E), Memory O(V + E) with lazy deletion
//
// Concurrency
//
//	A search runs synchronously on the calling goroutine and owns all of its
//	state. Separate calls may run concurrently as long as the goal,
//	successor and heuristic functions are safe for that.
package search
