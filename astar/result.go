package astar

import (
	"fmt"
	"strings"
)

// Summary renders the result the way the demo harness prints it.
// Path vertices are formatted with %v and joined by sep.
func (r *Result[V]) Summary(sep string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total states explored in %.3fs: %d\n",
		r.ExplorationTime.Seconds(), r.NumStatesExplored)

	switch r.Outcome {
	case Solved:
		fmt.Fprintf(&b, "Search was successful.\n")
		fmt.Fprintf(&b, "Solution was of length %d, and had total weight %.3f:\n",
			len(r.Solution), r.SolutionWeight)
		parts := make([]string, len(r.Solution))
		for i, v := range r.Solution {
			parts[i] = fmt.Sprint(v)
		}
		b.WriteString(strings.Join(parts, sep))
		b.WriteString("\n")
	case Unsolvable:
		b.WriteString("Unable to find a solution.\n")
	case Timeout:
		b.WriteString("Solver timed out before finding a solution.\n")
	}

	return b.String()
}
