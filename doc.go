// Package pathseek is a small toolkit of generic state-space search
// algorithms plus a grid domain to run them on.
//
// 🚀 What is pathseek?
//
//	A library that finds a route from an initial state to a goal state,
//	given nothing but a goal test and a successor function:
//		• Uninformed search: DFS (stack frontier), BFS (queue frontier)
//		• Informed search: A* with any heuristic
//		• Path reconstruction from the returned node chain
//		• Per-expansion observer hooks and structured debug logging
//		• A grid/maze domain with 4-, 8-connected and knight moves
//
// ✨ Why choose pathseek?
//
//   - Generic: any comparable type is a state
//   - Honest results: "no path" is (nil, nil), never an error
//   - Bounded: context cancellation and expansion budgets as options
//   - Inspectable: observers see every expansion with a frontier snapshot
//
// Layout:
//
//	frontier/ : Stack, Queue and Priority containers behind one interface
//	search/   : DFS, BFS, AStar, Node, Path, observers and options
//	grid/     : Location, Bounds, MoveSet, Maze, heuristics, text and TOML input
//	knight/   : minimum knight jumps between two squares around obstacles
//
// Quick example:
//
//	m, _ := grid.Parse("S *\n  E", grid.WithMoves(grid.Conn4))
//	node, _ := search.BFS(m.Start(), m.IsGoal, m.Successors)
//	fmt.Println(search.Path(node)) // [(0,0) (0,1) (1,1) (1,2)]
//
//	go get github.com/katalvlaran/pathseek
package pathseek
