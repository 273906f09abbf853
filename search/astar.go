package search

import "github.com/katalvlaran/pathseek/frontier"

// AStar runs best-first search ordered by Cost + heuristic(state), with a
// unit cost per edge. It returns the terminal node, or (nil, nil) when the
// frontier is exhausted.
//
// Bookkeeping: the best known cost per state starts as {initial: 0}. A
// successor is pushed when it is unseen or reached strictly cheaper than
// recorded ("lazy decrease-key": the older entry stays in the heap). When a
// superseded entry is popped later it is skipped without counting as an
// expansion.
//
// The result is a cheapest path whenever heuristic never overestimates the
// remaining cost. With an inadmissible heuristic a path is still returned,
// but it may be longer than necessary.
//
// Errors: ErrNilGoal, ErrNilSuccessors, ErrNilHeuristic,
// ErrOptionViolation, ErrExpansionLimit, or the context's error.
func AStar[S comparable](
	initial S,
	goal GoalFunc[S],
	successors SuccessorFunc[S],
	heuristic HeuristicFunc[S],
	opts ...Option,
) (*Node[S], error) {
	if heuristic == nil {
		return nil, ErrNilHeuristic
	}
	w, err := newWalker("astar", goal, successors, opts)
	if err != nil {
		return nil, err
	}
	w.estimate = heuristic
	w.frontier = frontier.NewPriority(func(a, b *Node[S]) bool { return a.Less(b) })
	w.explored = make(bestCost[S])

	return w.run(initial)
}
