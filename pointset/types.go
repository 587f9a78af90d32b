package pointset

import (
	"errors"
	"math"
)

// ErrEmptySet indicates a nearest-neighbor query on an empty set.
var ErrEmptySet = errors.New("pointset: set has no points")

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// distance2 is the squared distance; it orders like Distance without the sqrt.
func distance2(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx + dy*dy
}

// PointSet finds the stored point closest to a target.
type PointSet interface {
	// Nearest returns the point closest to (x, y), or ErrEmptySet.
	Nearest(x, y float64) (Point, error)
}
