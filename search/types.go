// Package search defines the callback types, options and sentinel errors
// shared by DFS, BFS and AStar.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors for search execution.
var (
	// ErrNilGoal is returned when no goal test is supplied.
	ErrNilGoal = errors.New("search: goal test is nil")

	// ErrNilSuccessors is returned when no successor function is supplied.
	ErrNilSuccessors = errors.New("search: successor function is nil")

	// ErrNilHeuristic is returned when AStar is called without a heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exhausted
	// before the goal is reached or the frontier runs dry.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// GoalFunc reports whether a state satisfies the goal.
type GoalFunc[S comparable] func(state S) bool

// SuccessorFunc returns the states reachable from state in one step.
type SuccessorFunc[S comparable] func(state S) []S

// HeuristicFunc estimates the remaining cost from state to the goal.
// It must be non-negative; A* is optimal only if it never overestimates.
type HeuristicFunc[S comparable] func(state S) float64

// Option configures a search via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per loop
	// iteration.
	Ctx context.Context

	// Logger receives debug records when a search finishes.
	Logger *log.Logger

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many nodes have been expanded. 0 means no limit.
	MaxExpansions int

	// observer holds an Observer[S]; its S is checked against the search.
	observer any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - no expansion limit
//   - no observer
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        log.New(io.Discard),
		MaxExpansions: 0,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes the search's debug records to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: explicit "no limit"
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithObserver installs fn to be called synchronously after every expansion.
// The observer's state type must match the search's state type, otherwise
// the search fails with ErrOptionViolation.
func WithObserver[S comparable](fn Observer[S]) Option {
	return func(o *Options) {
		if fn != nil {
			o.observer = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and resolves the observer
// for state type S.
func buildOptions[S comparable](opts []Option) (Options, Observer[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, nil, o.err
	}
	if o.observer == nil {
		return o, nil, nil
	}
	fn, ok := o.observer.(Observer[S])
	if !ok {
		return o, nil, fmt.Errorf("%w: observer %T does not match state type %T",
			ErrOptionViolation, o.observer, *new(S))
	}

	return o, fn, nil
}
