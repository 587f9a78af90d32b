package core

import "sort"

// Neighbors returns the edges leaving id, sorted by Edge.ID.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge (via the mirrored adjacency);
//     a self-loop appears once.
//
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d) for d incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique vertices reachable from id in one step,
// sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		other := Other(e, id)
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	sort.Strings(out)

	return out, nil
}

// Other returns the endpoint of e opposite to id. For a mirrored undirected
// edge seen from its To side this is e.From.
func Other(e *Edge, id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}
