package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bearmaps/astar"
)

var _ astar.Graph[Cell] = (*GridGraph)(nil)

// Neighbors returns the moves out of c into passable cells, in N-clockwise
// order. Walls may be left but never entered.
func (gg *GridGraph) Neighbors(c Cell) ([]astar.WeightedEdge[Cell], error) {
	if !gg.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	out := make([]astar.WeightedEdge[Cell], 0, len(gg.offsets))
	for _, d := range gg.offsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !gg.Passable(n) {
			continue
		}
		out = append(out, astar.NewEdge(c, n, gg.stepCost(c, n)))
	}

	return out, nil
}

// EstimatedDistanceToGoal is the Manhattan (Conn4) or octile (Conn8) distance
// from c to goal times the cheapest passable cost.
func (gg *GridGraph) EstimatedDistanceToGoal(c, goal Cell) (float64, error) {
	if !gg.InBounds(c) || !gg.InBounds(goal) {
		return 0, fmt.Errorf("%w: %v → %v", ErrOutOfBounds, c, goal)
	}

	dx := math.Abs(float64(c.X - goal.X))
	dy := math.Abs(float64(c.Y - goal.Y))
	if gg.Conn == Conn8 {
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)
		return (hi + (math.Sqrt2-1)*lo) * gg.minCost, nil
	}

	return (dx + dy) * gg.minCost, nil
}
