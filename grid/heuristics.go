package grid

import (
	"math"

	"github.com/katalvlaran/pathseek/search"
)

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Location) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// Euclidean returns a heuristic measuring the straight-line distance to the
// goal in units of the longest single move (see MoveSet.Reach). No move
// covers more ground than Reach, so the estimate never exceeds the true
// number of moves for any move set. For Conn4 it is the plain distance.
func (m *Maze) Euclidean() search.HeuristicFunc[Location] {
	goal, reach := m.goal, m.moves.Reach()

	return func(l Location) float64 {
		return Euclidean(l, goal) / reach
	}
}

// KnightDistance returns the minimum number of knight moves between a and b
// on an unbounded, empty board.
//
// Piecewise closed form over the sorted deltas x ≥ y ≥ 0:
//
//	(1,0) → 3, (2,2) → 4 (the corner cases), otherwise with d = x−y:
//	y > d: d − 2·⌊(d−y)/3⌋
//	else:  d − 2·⌊(d−y)/4⌋
//
// Obstacles and a finite window only remove moves, so on any Maze this is a
// lower bound on the true distance.
func KnightDistance(a, b Location) int {
	x, y := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if x < y {
		x, y = y, x
	}
	switch {
	case x == 1 && y == 0:
		return 3
	case x == 2 && y == 2:
		return 4
	}
	d := x - y
	if y > d {
		return d - 2*floorDiv(d-y, 3)
	}

	return d - 2*floorDiv(d-y, 4)
}

// KnightEstimate returns KnightDistance to the goal as a heuristic.
// It is exact for knight moves on an open board and never overestimates.
func (m *Maze) KnightEstimate() search.HeuristicFunc[Location] {
	goal := m.goal

	return func(l Location) float64 {
		return float64(KnightDistance(l, goal))
	}
}

// KnightRecursive returns a heuristic that solves a relaxed problem per
// call: an obstacle-free A* search (with m.Euclidean) from the candidate to
// the goal inside Window. The move count it returns is exact for the relaxed
// problem, hence never above the true distance. It returns +Inf when the
// goal cannot be reached inside Window.
//
// Each evaluation costs a full sub-search; use it where accuracy matters
// more than speed.
func (m *Maze) KnightRecursive() search.HeuristicFunc[Location] {
	estimate := m.Euclidean()

	return func(l Location) float64 {
		node, err := search.AStar(l, m.IsGoal, m.SuccessorsIgnoringObstacles, estimate)
		if err != nil || node == nil {
			return math.Inf(1)
		}

		return node.Cost
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
