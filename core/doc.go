// Package core provides a thread-safe, in-memory weighted graph with a
// minimal API, used as the static adjacency-list collaborator of the A*
// solver and of Dijkstra.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Non-negative float64 weights; negative weights are rejected on insert
//   - Collision-free Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) so concurrent searches can read without contention
//
// Adjacency is stored as nested maps:
//
//	adjacencyList[from][to][edgeID] = struct{}{}
//
// Undirected edges are mirrored in adjacencyList[to][from].
//
// Determinism:
//
//	Vertices() is sorted lexicographically; Edges() and Neighbors() are sorted
//	by Edge.ID, i.e. insertion order.
//
// Search integration:
//
//	(*Graph).SearchGraph(h) returns an astar.Graph[string] view backed by the
//	graph. The view reads through the graph's locks on every call, so it must
//	not be mutated while a search is running.
//
// Errors:
//
//	ErrEmptyVertexID       – vertex ID is the empty string.
//	ErrVertexNotFound      – requested vertex does not exist.
//	ErrNegativeWeight      – AddEdge with weight < 0.
//	ErrLoopNotAllowed      – self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are disabled.
package core
