package streetmap

import (
	"fmt"

	"github.com/katalvlaran/bearmaps/astar"
)

// Route returns the node IDs of the shortest street path between the
// navigable nodes closest to the two coordinates.
//
// Returns ErrNoNodes if nothing is navigable, ErrNoRoute (naming the
// outcome) if the search is UNSOLVABLE or times out, or any error from
// astar.Solve.
func Route(a *Augmented, startLon, startLat, destLon, destLat float64, opts ...astar.Option) ([]int64, error) {
	src, err := a.Closest(startLon, startLat)
	if err != nil {
		return nil, err
	}
	dst, err := a.Closest(destLon, destLat)
	if err != nil {
		return nil, err
	}

	res, err := astar.Solve[int64](a.Graph, src, dst, opts...)
	if err != nil {
		return nil, err
	}
	if res.Outcome != astar.Solved {
		return nil, fmt.Errorf("%w: %d → %d: %s", ErrNoRoute, src, dst, res.Outcome)
	}

	return res.Solution, nil
}
