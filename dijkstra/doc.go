// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on *core.Graph.
//
// Dijkstra computes the minimum-cost distance from one source vertex to every
// other vertex of a graph with non-negative edge weights. It processes vertices
// in order of increasing distance using an indexable min-priority queue
// (package minpq), relaxing outgoing edges as it goes.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is inserted into and extracted from the queue at most once.
//   - Each successful relaxation is one O(log V) ChangePriority or Insert.
//   - Space: O(V)
//   - The queue never holds more than V entries thanks to eager decrease-key.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) rejects negative weights.
//   - Edges with weight ≥ InfEdgeThreshold are treated as impassable walls.
//   - Exploration stops once the minimum queued distance exceeds MaxDistance.
//   - Unreachable vertices report Unreachable (+Inf).
//
// Dijkstra is the exhaustive reference the A* solver is checked against: with
// the zero heuristic both must agree on every distance.
package dijkstra
