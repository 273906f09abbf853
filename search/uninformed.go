package search

import "github.com/katalvlaran/pathseek/frontier"

// DFS runs depth-first search from initial until goal accepts a popped
// state. It returns the terminal node, or (nil, nil) when every reachable
// state has been tried. DFS makes no claim about path length.
//
// Errors: ErrNilGoal, ErrNilSuccessors, ErrOptionViolation,
// ErrExpansionLimit, or the context's error.
func DFS[S comparable](initial S, goal GoalFunc[S], successors SuccessorFunc[S], opts ...Option) (*Node[S], error) {
	w, err := newWalker("dfs", goal, successors, opts)
	if err != nil {
		return nil, err
	}
	w.frontier = frontier.NewStack[*Node[S]]()
	w.explored = make(seenSet[S])

	return w.run(initial)
}

// BFS runs breadth-first search from initial. All states one edge further
// away are enqueued before any of them is expanded, so the returned node
// ends a path with the fewest edges. Returns (nil, nil) when no path exists.
//
// Errors: as for DFS.
func BFS[S comparable](initial S, goal GoalFunc[S], successors SuccessorFunc[S], opts ...Option) (*Node[S], error) {
	w, err := newWalker("bfs", goal, successors, opts)
	if err != nil {
		return nil, err
	}
	w.frontier = frontier.NewQueue[*Node[S]]()
	w.explored = make(seenSet[S])

	return w.run(initial)
}
