package streetmap

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/bearmaps/astar"
)

// Graph is an undirected street graph. It is not safe for concurrent
// mutation; concurrent reads are fine once building is done.
type Graph struct {
	nodes map[int64]Node
	adj   map[int64][]astar.WeightedEdge[int64]
}

var _ astar.Graph[int64] = (*Graph)(nil)

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]Node),
		adj:   make(map[int64][]astar.WeightedEdge[int64]),
	}
}

// AddNode inserts n, replacing any node with the same ID. Existing segments
// keep their weights.
func (g *Graph) AddNode(n Node) {
	g.nodes[n.ID] = n
}

// AddWay links each consecutive pair of ids in both directions. Repeated
// consecutive ids are skipped.
// Returns ErrUnknownNode before adding anything if an id is missing.
func (g *Graph) AddWay(ids ...int64) error {
	for _, id := range ids {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownNode, id)
		}
	}
	for i := 1; i < len(ids); i++ {
		a, b := ids[i-1], ids[i]
		if a == b {
			continue
		}
		w := Distance(g.nodes[a], g.nodes[b])
		g.adj[a] = append(g.adj[a], astar.NewEdge(a, b, w))
		g.adj[b] = append(g.adj[b], astar.NewEdge(b, a, w))
	}

	return nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id int64) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// Nodes returns all nodes ordered by ID.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b Node) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Neighbors returns the segments leaving id in insertion order.
func (g *Graph) Neighbors(id int64) ([]astar.WeightedEdge[int64], error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return g.adj[id], nil
}

// EstimatedDistanceToGoal is the great-circle distance between the nodes.
func (g *Graph) EstimatedDistanceToGoal(id, goal int64) (float64, error) {
	a, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	b, ok := g.nodes[goal]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, goal)
	}

	return Distance(a, b), nil
}

// Distance returns the great-circle (haversine) distance in metres.
func Distance(a, b Node) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadius * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
