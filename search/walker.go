package search

import (
	"fmt"

	"github.com/katalvlaran/pathseek/frontier"
)

// explored decides which generated successors enter the frontier.
type explored[S comparable] interface {
	// admit records state reached at cost and reports whether it should be pushed.
	admit(state S, cost float64) bool
	// stale reports whether a popped node has been superseded.
	stale(n *Node[S]) bool
}

// seenSet marks states on generation; each state is pushed at most once.
type seenSet[S comparable] map[S]struct{}

func (s seenSet[S]) admit(state S, _ float64) bool {
	if _, ok := s[state]; ok {
		return false
	}
	s[state] = struct{}{}

	return true
}

func (s seenSet[S]) stale(*Node[S]) bool { return false }

// bestCost keeps the cheapest known cost per state and admits a state again
// whenever a strictly cheaper path to it shows up.
type bestCost[S comparable] map[S]float64

func (b bestCost[S]) admit(state S, cost float64) bool {
	if prev, ok := b[state]; ok && prev <= cost {
		return false
	}
	b[state] = cost

	return true
}

// stale skips heap entries left behind by a later relaxation.
func (b bestCost[S]) stale(n *Node[S]) bool {
	return n.Cost > b[n.State]
}

// walker encapsulates the mutable state of one search.
type walker[S comparable] struct {
	name       string
	opts       Options
	observer   Observer[S]
	goal       GoalFunc[S]
	successors SuccessorFunc[S]
	estimate   HeuristicFunc[S] // nil for uninformed search
	frontier   frontier.Frontier[*Node[S]]
	explored   explored[S]
	expansions int
}

// newWalker validates the callbacks and options shared by every algorithm.
func newWalker[S comparable](name string, goal GoalFunc[S], successors SuccessorFunc[S], opts []Option) (*walker[S], error) {
	if goal == nil {
		return nil, ErrNilGoal
	}
	if successors == nil {
		return nil, ErrNilSuccessors
	}
	o, obs, err := buildOptions[S](opts)
	if err != nil {
		return nil, err
	}

	return &walker[S]{
		name:       name,
		opts:       o,
		observer:   obs,
		goal:       goal,
		successors: successors,
	}, nil
}

// heuristic returns the estimate for state, or 0 for uninformed search.
func (w *walker[S]) heuristic(state S) float64 {
	if w.estimate == nil {
		return 0
	}

	return w.estimate(state)
}

// run seeds the frontier with initial and drains it until the goal is
// popped, the frontier is exhausted, the context ends or the expansion
// budget runs out. Exhaustion returns (nil, nil).
func (w *walker[S]) run(initial S) (*Node[S], error) {
	w.explored.admit(initial, 0)
	w.frontier.Push(&Node[S]{State: initial, Heuristic: w.heuristic(initial)})

	for !w.frontier.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		current := w.frontier.Pop()
		if w.explored.stale(current) {
			continue
		}
		if w.opts.MaxExpansions > 0 && w.expansions >= w.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %s stopped after %d expansions",
				ErrExpansionLimit, w.name, w.expansions)
		}
		w.expansions++

		if w.goal(current.State) {
			w.opts.Logger.Debug("goal reached", "algorithm", w.name,
				"expansions", w.expansions, "cost", current.Cost)

			return current, nil
		}

		last, hasLast := w.expand(current)
		if w.observer != nil {
			w.notify(current.State, last, hasLast)
		}
	}

	w.opts.Logger.Debug("frontier exhausted", "algorithm", w.name, "expansions", w.expansions)

	return nil, nil
}

// expand pushes every admitted successor of current with unit edge cost and
// returns the last successor generated.
func (w *walker[S]) expand(current *Node[S]) (last S, hasLast bool) {
	cost := current.Cost + 1
	for _, child := range w.successors(current.State) {
		last, hasLast = child, true
		if !w.explored.admit(child, cost) {
			continue
		}
		w.frontier.Push(&Node[S]{
			State:     child,
			Parent:    current,
			Cost:      cost,
			Heuristic: w.heuristic(child),
		})
	}

	return last, hasLast
}

// notify hands a Step snapshot to the observer.
func (w *walker[S]) notify(current, last S, hasLast bool) {
	nodes := w.frontier.Items()
	states := make([]S, len(nodes))
	for i, n := range nodes {
		states[i] = n.State
	}
	w.observer(Step[S]{
		Index:    w.expansions,
		Current:  current,
		Frontier: states,
		Last:     last,
		HasLast:  hasLast,
	})
}
