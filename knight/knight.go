package knight

import (
	"github.com/katalvlaran/pathseek/grid"
	"github.com/katalvlaran/pathseek/search"
)

// Route returns the shortest knight route from start to dest avoiding
// obstacles, both ends included. It returns nil when dest cannot be reached
// inside the padded window around start, dest and obstacles.
// Search errors (cancellation, expansion limit, bad options) are returned
// unchanged.
func Route(start, dest grid.Location, obstacles []grid.Location, opts ...search.Option) ([]grid.Location, error) {
	m, err := grid.NewMaze(start, dest, obstacles, grid.WithMoves(grid.Knight))
	if err != nil {
		return nil, err
	}
	node, err := search.AStar(m.Start(), m.IsGoal, m.Successors, m.KnightEstimate(), opts...)
	if err != nil {
		return nil, err
	}

	return search.Path(node), nil
}

// Moves returns the minimum number of knight jumps from start to dest and
// whether dest is reachable at all.
func Moves(start, dest grid.Location, obstacles []grid.Location, opts ...search.Option) (int, bool, error) {
	path, err := Route(start, dest, obstacles, opts...)
	if err != nil || path == nil {
		return 0, false, err
	}

	return len(path) - 1, true, nil
}

// FromText extracts the start, goal and blocked squares from a textual maze.
// Obstacles come back sorted by row, then column.
// Errors are those of grid.Parse.
func FromText(text string) (start, goal grid.Location, obstacles []grid.Location, err error) {
	m, err := grid.Parse(text, grid.WithMoves(grid.Knight))
	if err != nil {
		return start, goal, nil, err
	}

	return m.Start(), m.Goal(), m.Obstacles(), nil
}
