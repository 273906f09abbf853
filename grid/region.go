package grid

// Region returns every location reachable from `from` by repeated
// Successors moves, from included, in breadth-first discovery order.
// It answers "can anything in here reach the goal" without a search per
// target: the goal is reachable from the start iff it is in Region(Start()).
//
// A blocked or out-of-window `from` yields just {from}.
//
// Time:   O(W·d) where W is the window area and d the move count.
// Memory: O(W).
func (m *Maze) Region(from Location) []Location {
	seen := map[Location]struct{}{from: {}}
	queue := []Location{from}
	if m.IsObstacle(from) || !m.window.Contains(from) {
		return queue
	}

	for qi := 0; qi < len(queue); qi++ {
		for _, next := range m.Successors(queue[qi]) {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return queue
}

// Connected reports whether the goal lies in the start's Region.
func (m *Maze) Connected() bool {
	for _, l := range m.Region(m.start) {
		if l == m.goal {
			return true
		}
	}

	return false
}
