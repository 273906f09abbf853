// Package grid models locations on an unbounded 2D grid as search states and
// generates their successors, either by 4/8-neighbour adjacency or by knight
// jumps, around a set of blocked cells.
//
// What:
//
//   - Location: comparable (Row, Col) pair, the state type for package search.
//   - Bounds:   inclusive rectangle; derived from start, goal and obstacles
//     or supplied with WithBounds.
//   - MoveSet:  Conn4, Conn8 or Knight relative offsets.
//   - Maze:     immutable start/goal/obstacles/bounds; its Successors method
//     drops blocked cells and cells outside Bounds padded by Padding.
//   - Heuristics: Euclidean (in longest-move units), KnightEstimate (closed
//     form knight distance) and KnightRecursive (obstacle-free sub-search).
//   - Parse / String: the textual form, 'S' start, 'E' goal, '*' blocked.
//   - Config: TOML problem files.
//
// Why the padding:
//
//	A route may have to leave the tight rectangle around start, goal and
//	obstacles (a knight jumping around a wall). Padding widens the window by a
//	fixed margin while keeping the search space finite.
//
// Errors:
//
//   - ErrConfiguration   every construction failure wraps it.
//   - ErrMissingStart    no start given or found in the text.
//   - ErrMissingGoal     no goal given or found in the text.
//   - ErrDuplicateMarker more than one 'S' or 'E' in the text.
//   - ErrUnknownMoveSet  move set name not recognised.
//   - ErrBadPadding      negative padding.
//
// Usage:
//
//	m, err := grid.Parse(text, grid.WithMoves(grid.Knight))
//	if err != nil {
//	    // errors.Is(err, grid.ErrConfiguration)
//	}
//	node, err := search.AStar(m.Start(), m.IsGoal, m.Successors, m.Euclidean())
//	fmt.Println(search.Path(node))
package grid
