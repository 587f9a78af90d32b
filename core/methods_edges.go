package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const edgeIDPrefix = "e"

// AddEdge creates an edge from → to with the given weight and returns its ID.
// Missing endpoints are added. In an undirected graph the edge is mirrored in
// the adjacency of to.
//
// Returns ErrEmptyVertexID, ErrNegativeWeight, ErrLoopNotAllowed or
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %s→%s weight=%g", ErrNegativeWeight, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if len(g.adjacencyList[from][to]) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	g.nextEdgeID++
	eid := edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.link(from, to, eid)
	if !g.directed && from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

// link requires muEdgeAdj held for writing.
func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacencyList[from][to]
	if !ok {
		inner = make(map[string]struct{})
		g.adjacencyList[from][to] = inner
	}
	inner[eid] = struct{}{}
}

// HasEdge reports whether at least one edge leads from → to.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns every edge sorted by ID (insertion order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns |E|; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortEdges orders edges by the numeric part of their IDs.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeSeq(es[i].ID) < edgeSeq(es[j].ID) })
}

func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(strings.TrimPrefix(id, edgeIDPrefix), 10, 64)

	return n
}
