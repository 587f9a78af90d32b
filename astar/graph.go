package astar

// HeuristicFunc estimates the remaining cost from v to goal.
type HeuristicFunc[V comparable] func(v, goal V) float64

// Zero returns the heuristic h ≡ 0, which turns A* into Dijkstra's algorithm.
func Zero[V comparable]() HeuristicFunc[V] {
	return func(V, V) float64 { return 0 }
}

// FuncGraph adapts plain functions to the Graph interface.
// A nil Heuristic behaves as Zero.
type FuncGraph[V comparable] struct {
	NeighborsFunc func(v V) []WeightedEdge[V]
	Heuristic     HeuristicFunc[V]
}

// Neighbors calls NeighborsFunc; a nil NeighborsFunc yields no edges.
func (f FuncGraph[V]) Neighbors(v V) ([]WeightedEdge[V], error) {
	if f.NeighborsFunc == nil {
		return nil, nil
	}

	return f.NeighborsFunc(v), nil
}

// EstimatedDistanceToGoal calls Heuristic.
func (f FuncGraph[V]) EstimatedDistanceToGoal(v, goal V) (float64, error) {
	if f.Heuristic == nil {
		return 0, nil
	}

	return f.Heuristic(v, goal), nil
}
