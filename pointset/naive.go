package pointset

// NaivePointSet answers queries by a linear scan. On ties the earliest point wins.
type NaivePointSet struct {
	points []Point
}

var _ PointSet = (*NaivePointSet)(nil)

// NewNaivePointSet copies points into a new set.
func NewNaivePointSet(points []Point) *NaivePointSet {
	return &NaivePointSet{points: append([]Point(nil), points...)}
}

// Nearest returns the point closest to (x, y).
func (s *NaivePointSet) Nearest(x, y float64) (Point, error) {
	if len(s.points) == 0 {
		return Point{}, ErrEmptySet
	}

	goal := Point{X: x, Y: y}
	best, bestD := s.points[0], distance2(s.points[0], goal)
	for _, p := range s.points[1:] {
		if d := distance2(p, goal); d < bestD {
			best, bestD = p, d
		}
	}

	return best, nil
}
