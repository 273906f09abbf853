package grid

import (
	"fmt"
	"strings"
)

// Cell symbols of the textual maze form.
const (
	CellEmpty   = ' '
	CellStart   = 'S'
	CellGoal    = 'E'
	CellBlocked = '*'
)

// Parse builds a Maze from its textual form. Rows are separated by '\n'
// (a trailing '\r' is dropped); the row index is the line number and the
// column index the character position, both from 0. 'S' marks the start,
// 'E' the goal, '*' a blocked cell; every other character is open.
//
// Returns ErrMissingStart or ErrMissingGoal when a marker is absent and
// ErrDuplicateMarker when one appears twice; all wrap ErrConfiguration.
func Parse(text string, opts ...Option) (*Maze, error) {
	start, goal, obstacles, err := scan(text)
	if err != nil {
		return nil, err
	}

	return NewMaze(start, goal, obstacles, opts...)
}

// scan extracts the markers and blocked cells from text.
func scan(text string) (start, goal Location, obstacles []Location, err error) {
	var haveStart, haveGoal bool
	for r, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		c := 0
		for _, ch := range line {
			here := Location{Row: r, Col: c}
			switch ch {
			case CellStart:
				if haveStart {
					return start, goal, nil, fmt.Errorf("%w: second 'S' at %v", ErrDuplicateMarker, here)
				}
				start, haveStart = here, true
			case CellGoal:
				if haveGoal {
					return start, goal, nil, fmt.Errorf("%w: second 'E' at %v", ErrDuplicateMarker, here)
				}
				goal, haveGoal = here, true
			case CellBlocked:
				obstacles = append(obstacles, here)
			}
			c++
		}
	}
	if !haveStart {
		return start, goal, nil, ErrMissingStart
	}
	if !haveGoal {
		return start, goal, nil, ErrMissingGoal
	}

	return start, goal, obstacles, nil
}

// String renders the maze over Bounds in the textual form accepted by Parse,
// one line per row, each line ending in '\n'.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.bounds.Rows() * (m.bounds.Cols() + 1))
	for r := m.bounds.Min.Row; r <= m.bounds.Max.Row; r++ {
		for c := m.bounds.Min.Col; c <= m.bounds.Max.Col; c++ {
			l := Location{Row: r, Col: c}
			switch {
			case l == m.start:
				sb.WriteRune(CellStart)
			case l == m.goal:
				sb.WriteRune(CellGoal)
			case m.IsObstacle(l):
				sb.WriteRune(CellBlocked)
			default:
				sb.WriteRune(CellEmpty)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
