package search

// Node links a state to the node that discovered it.
//
// Nodes form a tree through Parent back-references only: a node never knows
// its children, and no node is modified after creation, so many descendants
// may safely share one ancestor.
type Node[S comparable] struct {
	// State is the wrapped search state.
	State S
	// Parent is the node this one was generated from; nil for the root.
	Parent *Node[S]
	// Cost is the accumulated path cost from the root (edges, for unit cost).
	Cost float64
	// Heuristic is the estimated remaining cost to the goal (0 for DFS/BFS).
	Heuristic float64
}

// Priority returns Cost + Heuristic, the A* ordering key.
func (n *Node[S]) Priority() float64 {
	return n.Cost + n.Heuristic
}

// Less orders nodes by Priority ascending.
func (n *Node[S]) Less(other *Node[S]) bool {
	return n.Priority() < other.Priority()
}

// Depth returns the number of Parent links between n and the root.
func (n *Node[S]) Depth() int {
	d := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		d++
	}

	return d
}

// Path returns the states from the root to n inclusive.
func (n *Node[S]) Path() []S {
	return Path(n)
}
