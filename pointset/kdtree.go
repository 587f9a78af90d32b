package pointset

import "math"

// KDTree is a 2-d tree over distinct points. It is not safe for concurrent
// Insert; concurrent Nearest calls are fine once building is done.
type KDTree struct {
	root *node
	size int
}

type node struct {
	p           Point
	left, right *node
}

var _ PointSet = (*KDTree)(nil)

// NewKDTree inserts points in order. Order affects shape, not answers.
func NewKDTree(points []Point) *KDTree {
	t := &KDTree{}
	for _, p := range points {
		t.Insert(p)
	}

	return t
}

// Len returns the number of distinct points stored.
func (t *KDTree) Len() int { return t.size }

// Insert adds p. A point already present is ignored.
func (t *KDTree) Insert(p Point) {
	link := &t.root
	splitX := true
	for *link != nil {
		n := *link
		if n.p == p {
			return
		}
		if less(p, n.p, splitX) {
			link = &n.left
		} else {
			link = &n.right
		}
		splitX = !splitX
	}
	*link = &node{p: p}
	t.size++
}

// less compares a to b on the splitting axis; equal keys are not less.
func less(a, b Point, splitX bool) bool {
	if splitX {
		return a.X < b.X
	}

	return a.Y < b.Y
}

// Nearest returns the stored point closest to (x, y).
func (t *KDTree) Nearest(x, y float64) (Point, error) {
	if t.root == nil {
		return Point{}, ErrEmptySet
	}

	s := search{goal: Point{X: x, Y: y}, best: t.root, bestD: math.Inf(1)}
	s.visit(t.root, true)

	return s.best.p, nil
}

// search carries the running best across the recursive descent.
type search struct {
	goal  Point
	best  *node
	bestD float64 // squared
}

func (s *search) visit(n *node, splitX bool) {
	if n == nil {
		return
	}
	if d := distance2(n.p, s.goal); d < s.bestD {
		s.best, s.bestD = n, d
	}

	diff := s.goal.Y - n.p.Y
	if splitX {
		diff = s.goal.X - n.p.X
	}
	good, bad := n.left, n.right
	if diff >= 0 {
		good, bad = n.right, n.left
	}

	s.visit(good, !splitX)
	// The bad side lies entirely beyond the splitting line.
	if diff*diff < s.bestD {
		s.visit(bad, !splitX)
	}
}
