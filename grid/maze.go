package grid

import (
	"slices"
)

// Maze is an immutable search domain: a start, a goal, blocked cells, a
// bounding box and a move set. Start and goal are never treated as blocked,
// even if they appear in the obstacle list.
type Maze struct {
	start, goal Location
	obstacles   map[Location]struct{}
	bounds      Bounds
	window      Bounds // bounds widened by padding
	moves       MoveSet
	offsets     [][2]int
	padding     int
}

// NewMaze builds a Maze from explicit values.
// The bounding box is derived once from start, goal and obstacles unless
// WithBounds supplies it.
// Returns ErrUnknownMoveSet or ErrBadPadding for invalid options.
// Complexity: O(len(obstacles)).
func NewMaze(start, goal Location, obstacles []Location, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	blocked := make(map[Location]struct{}, len(obstacles))
	for _, l := range obstacles {
		if l == start || l == goal {
			continue
		}
		blocked[l] = struct{}{}
	}

	var bounds Bounds
	if o.Bounds != nil {
		bounds = *o.Bounds
	} else {
		bounds = BoundsOf(start, goal)
		for l := range blocked {
			bounds = bounds.Include(l)
		}
	}

	pad := o.Padding
	if pad < 0 {
		pad = o.Moves.DefaultPadding()
	}

	return &Maze{
		start:     start,
		goal:      goal,
		obstacles: blocked,
		bounds:    bounds,
		window:    bounds.Pad(pad),
		moves:     o.Moves,
		offsets:   o.Moves.Offsets(),
		padding:   pad,
	}, nil
}

// Start returns the initial location.
func (m *Maze) Start() Location { return m.start }

// Goal returns the target location.
func (m *Maze) Goal() Location { return m.goal }

// Bounds returns the bounding box before padding.
func (m *Maze) Bounds() Bounds { return m.bounds }

// Window returns the region successors may enter: Bounds padded by Padding.
func (m *Maze) Window() Bounds { return m.window }

// Moves returns the move set.
func (m *Maze) Moves() MoveSet { return m.moves }

// Padding returns the margin between Bounds and Window.
func (m *Maze) Padding() int { return m.padding }

// IsObstacle reports whether l is blocked.
func (m *Maze) IsObstacle(l Location) bool {
	_, ok := m.obstacles[l]

	return ok
}

// Obstacles returns the blocked cells sorted by row, then column.
func (m *Maze) Obstacles() []Location {
	out := make([]Location, 0, len(m.obstacles))
	for l := range m.obstacles {
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b Location) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})

	return out
}

// IsGoal reports whether l is the goal. Pass m.IsGoal as the goal test.
func (m *Maze) IsGoal(l Location) bool { return l == m.goal }

// Successors returns the locations one move away from l that are neither
// blocked nor outside Window, in the move set's fixed order.
func (m *Maze) Successors(l Location) []Location {
	return m.successors(l, true)
}

// SuccessorsIgnoringObstacles is Successors without the obstacle check.
// It only respects Window. Used for relaxed distance estimates.
func (m *Maze) SuccessorsIgnoringObstacles(l Location) []Location {
	return m.successors(l, false)
}

func (m *Maze) successors(l Location, avoidObstacles bool) []Location {
	out := make([]Location, 0, len(m.offsets))
	for _, d := range m.offsets {
		next := l.Offset(d[0], d[1])
		if avoidObstacles && m.IsObstacle(next) {
			continue
		}
		if !m.window.Contains(next) {
			continue
		}
		out = append(out, next)
	}

	return out
}
