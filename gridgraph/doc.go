// Package gridgraph treats a 2D grid of movement costs as a search graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int cost grid. Cells whose value is
//     below PassableThreshold are walls; every other cell may be entered at a
//     cost equal to its value.
//   - Conn4 moves orthogonally. Conn8 also moves diagonally, paying the
//     target cost scaled by √2.
//   - GridGraph implements astar.Graph[Cell]. The heuristic is Manhattan
//     (Conn4) or octile (Conn8) distance scaled by the cheapest passable cost,
//     so it never overestimates.
//   - NewTerrain fills a grid from seeded OpenSimplex noise, giving
//     reproducible maps of arbitrary size.
//   - ConnectedComponents and Reachable label passable regions, which lets a
//     caller tell UNSOLVABLE searches apart before running them.
//   - ToCoreGraph exports the grid as a directed *core.Graph.
//
// Complexity:
//
//   - Neighbors:           O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
package gridgraph
