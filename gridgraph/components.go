package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// according to gg.Conn. Components are ordered by their first cell in
// row-major order; cells within a component are in BFS order from it.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	_, comps := gg.label()

	return comps
}

// Reachable reports whether b can be reached from a. Walls may be left but
// never entered, so a wall target is reachable only from itself.
// Returns ErrOutOfBounds if either cell lies outside the grid.
func (gg *GridGraph) Reachable(a, b Cell) (bool, error) {
	if !gg.InBounds(a) || !gg.InBounds(b) {
		return false, ErrOutOfBounds
	}
	if a == b {
		return true, nil
	}
	if !gg.Passable(b) {
		return false, nil
	}

	labels, _ := gg.label()
	target := labels[gg.index(b)]
	if gg.Passable(a) {
		return labels[gg.index(a)] == target, nil
	}
	for _, d := range gg.offsets {
		n := Cell{X: a.X + d[0], Y: a.Y + d[1]}
		if gg.Passable(n) && labels[gg.index(n)] == target {
			return true, nil
		}
	}

	return false, nil
}

// label numbers each passable cell by component (walls get -1) and collects
// the components in discovery order.
func (gg *GridGraph) label() ([]int, [][]Cell) {
	labels := make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}

	var comps [][]Cell
	for i := range labels {
		c := gg.Coordinate(i)
		if labels[i] >= 0 || !gg.Passable(c) {
			continue
		}
		id := len(comps)
		labels[i] = id
		queue := []Cell{c}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range gg.offsets {
				v := Cell{X: u.X + d[0], Y: u.Y + d[1]}
				if !gg.Passable(v) || labels[gg.index(v)] >= 0 {
					continue
				}
				labels[gg.index(v)] = id
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}

	return labels, comps
}
