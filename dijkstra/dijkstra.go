package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/bearmaps/core"
	"github.com/katalvlaran/bearmaps/minpq"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if not reached).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the shortest path to v ends with u → v; the source
//     and unreached vertices have no entry.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound or ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, g.VertexCount()),
		prev:    make(map[string]string),
		done:    make(map[string]bool, g.VertexCount()),
		pq:      minpq.New[string](),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	done    map[string]bool // distance finalized
	pq      *minpq.MinPQ[string]
}

// init sets every distance to Unreachable and queues the source at 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Unreachable
	}
	r.dist[r.options.Source] = 0
	_ = r.pq.Insert(r.options.Source, 0)
}

// process extracts vertices in distance order until the queue empties or the
// next distance exceeds MaxDistance.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		u, d, err := r.pq.PeekMinPriority()
		if err != nil {
			return err
		}
		if d > r.options.MaxDistance {
			break
		}
		if _, err = r.pq.ExtractMin(); err != nil {
			return err
		}
		r.done[u] = true
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of every neighbor of u reachable through a
// strictly shorter path. Neighbors already in the queue get their key lowered
// in place.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := core.Other(e, u)
		if r.done[v] || e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		if r.pq.Contains(v) {
			err = r.pq.ChangePriority(v, newDist)
		} else {
			err = r.pq.Insert(v, newDist)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// PathTo rebuilds the source → target path from a predecessor map.
// Returns nil if target was not reached.
func PathTo(prev map[string]string, source, target string) []string {
	if target != source {
		if _, ok := prev[target]; !ok {
			return nil
		}
	}

	path := []string{target}
	for v := target; v != source; {
		u, ok := prev[v]
		if !ok {
			return nil
		}
		path = append(path, u)
		v = u
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
