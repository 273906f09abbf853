// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/pathseek.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for grid construction. All of them match ErrConfiguration
// under errors.Is.
var (
	// ErrConfiguration indicates a maze cannot be built from the given data.
	ErrConfiguration = errors.New("grid: invalid maze configuration")
	// ErrMissingStart indicates no start location was supplied.
	ErrMissingStart = fmt.Errorf("%w: start is missing", ErrConfiguration)
	// ErrMissingGoal indicates no goal location was supplied.
	ErrMissingGoal = fmt.Errorf("%w: goal is missing", ErrConfiguration)
	// ErrDuplicateMarker indicates a start or goal marker appears twice.
	ErrDuplicateMarker = fmt.Errorf("%w: duplicate start or goal marker", ErrConfiguration)
	// ErrUnknownMoveSet indicates an unrecognised move set name.
	ErrUnknownMoveSet = fmt.Errorf("%w: unknown move set", ErrConfiguration)
	// ErrBadPadding indicates a negative padding.
	ErrBadPadding = fmt.Errorf("%w: padding must be non-negative", ErrConfiguration)
)

// Location is a (row, column) pair. Equality is by value, so Location can
// be used directly as a search state and as a map key.
type Location struct {
	Row, Col int
}

// String formats l as "(row,col)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// Offset returns l moved by dr rows and dc columns.
func (l Location) Offset(dr, dc int) Location {
	return Location{Row: l.Row + dr, Col: l.Col + dc}
}

// Bounds is an inclusive rectangle of locations.
type Bounds struct {
	Min, Max Location
}

// BoundsOf returns the smallest Bounds containing first and every rest location.
func BoundsOf(first Location, rest ...Location) Bounds {
	b := Bounds{Min: first, Max: first}
	for _, l := range rest {
		b = b.Include(l)
	}

	return b
}

// Include returns b grown to contain l.
func (b Bounds) Include(l Location) Bounds {
	b.Min.Row = min(b.Min.Row, l.Row)
	b.Min.Col = min(b.Min.Col, l.Col)
	b.Max.Row = max(b.Max.Row, l.Row)
	b.Max.Col = max(b.Max.Col, l.Col)

	return b
}

// Pad returns b widened by n cells on every side.
func (b Bounds) Pad(n int) Bounds {
	return Bounds{
		Min: b.Min.Offset(-n, -n),
		Max: b.Max.Offset(n, n),
	}
}

// Contains reports whether l lies inside b, edges included.
func (b Bounds) Contains(l Location) bool {
	return l.Row >= b.Min.Row && l.Row <= b.Max.Row &&
		l.Col >= b.Min.Col && l.Col <= b.Max.Col
}

// Rows returns the number of rows covered by b.
func (b Bounds) Rows() int { return b.Max.Row - b.Min.Row + 1 }

// Cols returns the number of columns covered by b.
func (b Bounds) Cols() int { return b.Max.Col - b.Min.Col + 1 }

// MoveSet selects the relative offsets a single move may take.
type MoveSet int

const (
	// Conn4 moves one cell N, E, S or W.
	Conn4 MoveSet = iota
	// Conn8 adds the four diagonals to Conn4.
	Conn8
	// Knight jumps like a chess knight: two cells one way, one cell across.
	Knight
)

// offsets per move set, in generation order (row delta, column delta).
var moveOffsets = map[MoveSet][][2]int{
	Conn4:  {{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
	Conn8:  {{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}},
	Knight: {{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}},
}

var moveNames = map[MoveSet]string{Conn4: "conn4", Conn8: "conn8", Knight: "knight"}

// Offsets returns a copy of the move deltas in generation order.
func (m MoveSet) Offsets() [][2]int {
	src := moveOffsets[m]
	out := make([][2]int, len(src))
	copy(out, src)

	return out
}

// Reach returns the straight-line length of the longest single move:
// 1 for Conn4, √2 for Conn8, √5 for Knight.
func (m MoveSet) Reach() float64 {
	switch m {
	case Conn8:
		return math.Sqrt2
	case Knight:
		return math.Sqrt(5)
	default:
		return 1
	}
}

// DefaultPadding returns the window margin used when WithPadding is not
// given: 3 for Knight, 1 for adjacency moves.
func (m MoveSet) DefaultPadding() int {
	if m == Knight {
		return 3
	}

	return 1
}

// String returns the lower-case name used in config files.
func (m MoveSet) String() string {
	if s, ok := moveNames[m]; ok {
		return s
	}

	return fmt.Sprintf("MoveSet(%d)", int(m))
}

// valid reports whether m is one of the declared move sets.
func (m MoveSet) valid() bool {
	_, ok := moveOffsets[m]

	return ok
}

// ParseMoveSet maps "conn4", "conn8" or "knight" (case-insensitive) to a MoveSet.
func ParseMoveSet(name string) (MoveSet, error) {
	for m, s := range moveNames {
		if strings.EqualFold(strings.TrimSpace(name), s) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMoveSet, name)
}

// Option configures maze construction.
type Option func(*Options)

// Options holds the tunable parameters of a Maze.
type Options struct {
	// Moves selects the successor offsets. Default Knight.
	Moves MoveSet
	// Padding widens Bounds on every side; negative means MoveSet default.
	Padding int
	// Bounds, if non-nil, replaces the derived bounding box.
	Bounds *Bounds

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with knight moves, the move set's default
// padding and derived bounds.
func DefaultOptions() Options {
	return Options{
		Moves:   Knight,
		Padding: -1,
		Bounds:  nil,
	}
}

// WithMoves selects the move set.
func WithMoves(m MoveSet) Option {
	return func(o *Options) {
		if !m.valid() {
			o.err = fmt.Errorf("%w: %v", ErrUnknownMoveSet, m)

			return
		}
		o.Moves = m
	}
}

// WithPadding sets the window margin around Bounds. n must be ≥ 0.
func WithPadding(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadPadding, n)

			return
		}
		o.Padding = n
	}
}

// WithBounds supplies the bounding box directly instead of deriving it from
// start, goal and obstacles. Corners may be given in any order.
func WithBounds(a, b Location) Option {
	return func(o *Options) {
		bb := BoundsOf(a, b)
		o.Bounds = &bb
	}
}
