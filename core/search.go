package core

import "github.com/katalvlaran/bearmaps/astar"

// SearchGraph is a read-only astar.Graph[string] view of a Graph.
type SearchGraph struct {
	g *Graph
	h astar.HeuristicFunc[string]
}

// SearchGraph returns a view of g for astar.Solve using heuristic h.
// A nil h is the zero heuristic.
func (g *Graph) SearchGraph(h astar.HeuristicFunc[string]) *SearchGraph {
	if h == nil {
		h = astar.Zero[string]()
	}

	return &SearchGraph{g: g, h: h}
}

// Neighbors returns the outgoing edges of v oriented away from v.
func (s *SearchGraph) Neighbors(v string) ([]astar.WeightedEdge[string], error) {
	edges, err := s.g.Neighbors(v)
	if err != nil {
		return nil, err
	}

	out := make([]astar.WeightedEdge[string], len(edges))
	for i, e := range edges {
		out[i] = astar.NewEdge(v, Other(e, v), e.Weight)
	}

	return out, nil
}

// EstimatedDistanceToGoal evaluates the configured heuristic.
func (s *SearchGraph) EstimatedDistanceToGoal(v, goal string) (float64, error) {
	return s.h(v, goal), nil
}
