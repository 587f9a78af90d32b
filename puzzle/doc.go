// Package puzzle provides implicit graphs for classic search puzzles, ready
// to be handed to astar.Solve.
//
// IntegerHop:
//
//	Vertices are integers. From v one may square (cost 10), double (5),
//	halve with integer division (5), decrement (1) or increment (1). The graph
//	is infinite, so the search relies on the solver's timeout when no goal is
//	reachable. The heuristic is zero.
//
// Sliding tiles:
//
//	A Board is an N×N grid holding tiles 1..N²−1 and a blank (0). Moving the
//	blank to an orthogonally adjacent cell costs 1. BoardGraph estimates the
//	remaining cost with the sum of Manhattan distances of every tile to its
//	goal cell, which is admissible and consistent.
//
// Board text format (ParseBoard):
//
//	3
//	8 1 3
//	4 0 2
//	7 6 5
package puzzle
