package search

// Path walks the Parent chain from node back to the root and returns the
// states in start-to-goal order, both endpoints included.
// Path(nil) returns nil, so the result of a failed search can be passed
// straight through.
//
// Complexity: O(depth) time and memory; no side effects.
func Path[S comparable](node *Node[S]) []S {
	if node == nil {
		return nil
	}
	// build reversed path
	path := make([]S, 0, node.Depth()+1)
	for cur := node; cur != nil; cur = cur.Parent {
		path = append(path, cur.State)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
