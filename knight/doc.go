// Package knight answers the chess-knight routing question on an unbounded
// board with blocked squares: how many jumps does a knight need to get from
// one square to another?
//
// It is a thin layer over grid and search: the board is a grid.Maze with
// Knight moves and its default padding, and the route is found with A*
// guided by the closed-form knight distance, so the answer is always the
// minimum number of jumps.
//
//	n, ok, err := knight.Moves(grid.Location{}, grid.Location{Row: 13, Col: 13}, nil)
//	// n == 10, ok == true
//
// FromText reads the start, goal and blocked squares from the textual maze
// form ('S', 'E', '*').
package knight
