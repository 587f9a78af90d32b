// Package astar implements the A* best-first shortest-path search over graphs
// that are discovered lazily through neighbor queries.
//
// A caller supplies a Graph (outgoing weighted edges per vertex plus an
// estimate of the remaining distance to the goal), a start vertex, a goal
// vertex and optionally a timeout. Solve drives an indexable min-priority
// queue (package minpq) keyed by distTo[v] + h(v, goal):
//
//  1. distTo[start] = 0; start enters the fringe with priority h(start, goal).
//  2. Repeat:
//     – an empty fringe means the goal is UNSOLVABLE from start;
//     – if the minimum item is the goal, the search is SOLVED;
//     – after at least one expansion, poll the elapsed time; at or past the
//     timeout the search stops with TIMEOUT;
//     – otherwise extract the minimum and relax every outgoing edge
//     (cur → w, weight): candidate = distTo[cur] + weight; if w is new or
//     candidate < distTo[w], record distTo[w], edgeTo[w] = cur and insert w
//     or lower its priority.
//
// Optimality:
//
//	If the heuristic is admissible (never overestimates) and consistent, the
//	first time the goal reaches the top of the fringe distTo[goal] is the true
//	shortest-path cost. Admissibility is not checked: a non-admissible heuristic
//	yields a SOLVED result that may be suboptimal. Negative edge weights are not
//	detected either and silently break the guarantee.
//
// Timeout:
//
//	The timeout is a cooperative poll made once per extract-min. A single
//	expensive Neighbors call can overrun it before the next poll.
//
// Outcomes vs errors:
//
//	UNSOLVABLE and TIMEOUT are regular outcomes reported in Result.Outcome.
//	Errors are returned only for a nil graph or when the graph collaborator
//	itself fails (Neighbors or EstimatedDistanceToGoal), which aborts the solve.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the vertices and edges actually explored.
//   - Space: O(V) for distTo, edgeTo and the fringe.
//
// Every call to Solve owns fresh state; nothing is shared between solves, so
// independent solves may run on different goroutines.
package astar
