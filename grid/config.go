package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the TOML form of a maze problem:
//
//	moves     = "knight"          # conn4 | conn8 | knight (default knight)
//	padding   = 3                 # optional, >= 0
//	start     = [0, 0]
//	goal      = [13, 13]
//	obstacles = [[5, 5], [6, 7]]
//	bounds    = { min = [0, 0], max = [20, 20] }   # optional
//
// Instead of start, goal and obstacles a textual maze may be given:
//
//	maze = """
//	*****
//	*S E*
//	*****"""
type Config struct {
	Moves     string        `toml:"moves"`
	Padding   *int          `toml:"padding"`
	Start     []int         `toml:"start"`
	Goal      []int         `toml:"goal"`
	Obstacles [][]int       `toml:"obstacles"`
	Bounds    *BoundsConfig `toml:"bounds"`
	Text      string        `toml:"maze"`
}

// BoundsConfig is the TOML form of Bounds.
type BoundsConfig struct {
	Min []int `toml:"min"`
	Max []int `toml:"max"`
}

// DecodeConfig reads a Config from r. Unknown keys are rejected.
// Every failure wraps ErrConfiguration.
func DecodeConfig(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig reads a Config from the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfiguration, path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: unknown keys %s", ErrConfiguration, strings.Join(names, ", "))
}

// Options translates the move set, padding and bounds of c into Options.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.Moves != "" {
		m, err := ParseMoveSet(c.Moves)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMoves(m))
	}
	if c.Padding != nil {
		opts = append(opts, WithPadding(*c.Padding))
	}
	if c.Bounds != nil {
		lo, err := pair("bounds.min", c.Bounds.Min)
		if err != nil {
			return nil, err
		}
		hi, err := pair("bounds.max", c.Bounds.Max)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithBounds(lo, hi))
	}

	return opts, nil
}

// Build constructs the Maze described by c. A non-empty maze text takes
// precedence over start, goal and obstacles.
// Returns ErrMissingStart/ErrMissingGoal when either is absent.
func (c *Config) Build() (*Maze, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.Text) != "" {
		return Parse(c.Text, opts...)
	}

	if c.Start == nil {
		return nil, ErrMissingStart
	}
	if c.Goal == nil {
		return nil, ErrMissingGoal
	}
	start, err := pair("start", c.Start)
	if err != nil {
		return nil, err
	}
	goal, err := pair("goal", c.Goal)
	if err != nil {
		return nil, err
	}
	obstacles := make([]Location, 0, len(c.Obstacles))
	for i, o := range c.Obstacles {
		l, err := pair(fmt.Sprintf("obstacles[%d]", i), o)
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, l)
	}

	return NewMaze(start, goal, obstacles, opts...)
}

// pair converts a [row, col] array into a Location.
func pair(field string, v []int) (Location, error) {
	if len(v) != 2 {
		return Location{}, fmt.Errorf("%w: %s must be [row, col], got %v", ErrConfiguration, field, v)
	}

	return Location{Row: v[0], Col: v[1]}, nil
}
