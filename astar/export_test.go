package astar

import "github.com/katalvlaran/bearmaps/minpq"

// Stepper exposes a runner's state to tests so single relaxation steps can be
// observed without running a full solve.
type Stepper[V comparable] struct {
	r *runner[V]
}

// NewStepper seeds a runner over g with start at distance 0 in the fringe.
func NewStepper[V comparable](g Graph[V], start, goal V) *Stepper[V] {
	r := &runner[V]{
		g:      g,
		goal:   goal,
		distTo: map[V]float64{start: 0},
		edgeTo: make(map[V]V),
		fringe: minpq.New[V](),
	}
	_ = r.fringe.Insert(start, 0)

	return &Stepper[V]{r: r}
}

// Relax runs one relaxation of the edge cur → w.
func (p *Stepper[V]) Relax(cur, w V, weight float64) error { return p.r.relax(cur, w, weight) }

// DistTo returns the recorded distance of v.
func (p *Stepper[V]) DistTo(v V) (float64, bool) {
	d, ok := p.r.distTo[v]
	return d, ok
}

// EdgeTo returns the recorded predecessor of v.
func (p *Stepper[V]) EdgeTo(v V) (V, bool) {
	u, ok := p.r.edgeTo[v]
	return u, ok
}

// Priority returns the fringe priority of v.
func (p *Stepper[V]) Priority(v V) (float64, error) { return p.r.fringe.Priority(v) }

// FringeSize returns the number of queued vertices.
func (p *Stepper[V]) FringeSize() int { return p.r.fringe.Size() }
