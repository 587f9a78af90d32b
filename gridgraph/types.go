package gridgraph

import (
	"errors"
	"strconv"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell addresses a grid position. It is the vertex type of GridGraph.
type Cell struct {
	X, Y int
}

// String renders c as "x,y", the vertex ID used by ToCoreGraph.
func (c Cell) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// PassableThreshold is the minimum cell value that can be entered.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns PassableThreshold=1 (zero cells are walls) and Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
	}
}

// TerrainOptions configures NewTerrain.
type TerrainOptions struct {
	// Seed selects the noise field; equal seeds give equal grids.
	Seed int64
	// Scale is the noise frequency per cell. Smaller values give smoother maps.
	Scale float64
	// MaxCost is the largest generated cell value. Values span [0, MaxCost].
	MaxCost int
	// Grid carries the threshold and connectivity of the resulting GridGraph.
	Grid GridOptions
}

// DefaultTerrainOptions returns Seed=1, Scale=0.15, MaxCost=9 and DefaultGridOptions.
func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Seed:    1,
		Scale:   0.15,
		MaxCost: 9,
		Grid:    DefaultGridOptions(),
	}
}

// GridGraph is an immutable cost grid. CellValues[y][x] holds the cost of
// entering (x, y).
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	PassableThreshold int

	offsets [][2]int
	minCost float64 // cheapest passable value, 0 if none
}
