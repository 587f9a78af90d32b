// Package bearmaps is a generic A* shortest-path toolkit and the street-map
// services built on it.
//
// What is inside?
//
//	minpq/    : indexable binary min-heap with O(log N) decrease-key
//	astar/    : generic A* solver reporting SOLVED, UNSOLVABLE or TIMEOUT
//	core/     : thread-safe string-keyed weighted graph
//	dijkstra/ : single-source shortest paths over core.Graph
//	puzzle/   : integer-hop and sliding-tile puzzles as search graphs
//	gridgraph/: cost grids and OpenSimplex terrain as search graphs
//	pointset/ : naive and KD-tree nearest-neighbor sets
//	trie/     : map-backed trie and ternary search trie string sets
//	streetmap/: OSM loading, closest-node lookup, geocoding and routing
//
// Any type with Neighbors and EstimatedDistanceToGoal methods is an
// astar.Graph, so every domain above plugs into the same solver.
//
// Logging:
//
// Packages that log accept a *slog.Logger through their options and default
// to discarding output. This package offers Logger, a thin slog wrapper with
// the field names the command-line tool uses.
//
// Quick start:
//
//	res, err := astar.Solve[int](puzzle.IntegerHop{}, 3, 10)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Summary(" => "))
package bearmaps
