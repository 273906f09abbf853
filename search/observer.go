package search

import "github.com/charmbracelet/log"

// Step describes one expansion, as delivered to an Observer.
type Step[S comparable] struct {
	// Index is the 1-based expansion counter.
	Index int
	// Current is the state that was just expanded.
	Current S
	// Frontier is a snapshot of the states waiting in the frontier, in
	// storage order.
	Frontier []S
	// Last is the last successor generated for Current; valid if HasLast.
	Last S
	// HasLast is false when Current had no successors.
	HasLast bool
}

// Observer is called synchronously after every expansion.
type Observer[S comparable] func(step Step[S])

// Recorder is an Observer that keeps every Step it is given.
type Recorder[S comparable] struct {
	Steps []Step[S]
}

// Observe appends step. Pass r.Observe to WithObserver.
func (r *Recorder[S]) Observe(step Step[S]) {
	r.Steps = append(r.Steps, step)
}

// Len returns the number of recorded steps.
func (r *Recorder[S]) Len() int { return len(r.Steps) }

// Expanded returns the expanded states in expansion order.
func (r *Recorder[S]) Expanded() []S {
	out := make([]S, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Current
	}

	return out
}

// LogSteps returns an Observer that writes each step to l at debug level.
func LogSteps[S comparable](l *log.Logger) Observer[S] {
	return func(step Step[S]) {
		kv := []interface{}{"step", step.Index, "state", step.Current, "frontier", len(step.Frontier)}
		if step.HasLast {
			kv = append(kv, "last", step.Last)
		}
		l.Debug("expand", kv...)
	}
}
