package gridgraph

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// NewTerrain builds a w×h grid whose costs are sampled from OpenSimplex
// noise. The noise in [-1, 1] is mapped linearly onto [0, MaxCost] and
// rounded; with the default threshold the zero cells become walls.
//
// Returns ErrEmptyGrid if w or h is not positive.
// Panics if Scale or MaxCost is not positive.
// Complexity: O(W×H).
func NewTerrain(w, h int, opts TerrainOptions) (*GridGraph, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Scale <= 0 {
		panic("gridgraph: terrain scale must be positive")
	}
	if opts.MaxCost <= 0 {
		panic("gridgraph: terrain max cost must be positive")
	}

	noise := opensimplex.New(opts.Seed)
	values := make([][]int, h)
	for y := 0; y < h; y++ {
		values[y] = make([]int, w)
		for x := 0; x < w; x++ {
			n := noise.Eval2(float64(x)*opts.Scale, float64(y)*opts.Scale)
			n = math.Max(-1, math.Min(1, n))
			values[y][x] = int(math.Round((n + 1) / 2 * float64(opts.MaxCost)))
		}
	}

	return NewGridGraph(values, opts.Grid)
}
