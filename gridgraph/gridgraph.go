package gridgraph

import (
	"math"

	"github.com/katalvlaran/bearmaps/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	minCost := math.Inf(1)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v >= opts.PassableThreshold && float64(v) < minCost {
				minCost = float64(v)
			}
		}
	}
	if math.IsInf(minCost, 1) || minCost < 0 {
		minCost = 0
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		PassableThreshold: opts.PassableThreshold,
		offsets:           offsets,
		minCost:           minCost,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// Passable reports whether c is inside the grid and not a wall.
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c) && gg.CellValues[c.Y][c.X] >= gg.PassableThreshold
}

// Value returns the cost of entering c, or ErrOutOfBounds.
func (gg *GridGraph) Value(c Cell) (int, error) {
	if !gg.InBounds(c) {
		return 0, ErrOutOfBounds
	}

	return gg.CellValues[c.Y][c.X], nil
}

// stepCost is the price of moving from a into its neighbor b.
func (gg *GridGraph) stepCost(a, b Cell) float64 {
	cost := float64(gg.CellValues[b.Y][b.X])
	if a.X != b.X && a.Y != b.Y {
		cost *= math.Sqrt2
	}

	return cost
}

// ToCoreGraph exports the grid as a directed, weighted *core.Graph.
// Each passable cell becomes a vertex named by Cell.String; an edge u→v
// carries the cost of stepping from u into v.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := Cell{X: x, Y: y}
			if !gg.Passable(u) {
				continue
			}
			if err := g.AddVertex(u.String()); err != nil {
				return nil, err
			}
			for _, d := range gg.offsets {
				v := Cell{X: x + d[0], Y: y + d[1]}
				if !gg.Passable(v) {
					continue
				}
				if _, err := g.AddEdge(u.String(), v.String(), gg.stepCost(u, v)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// index maps c to a row-major index: y*Width + x.
func (gg *GridGraph) index(c Cell) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}
