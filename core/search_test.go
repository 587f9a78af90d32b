package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bearmaps/astar"
	"github.com/katalvlaran/bearmaps/core"
)

func TestSearchGraph_UndirectedOrientation(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 3)

	edges, err := g.SearchGraph(nil).Neighbors("B")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	for _, e := range edges {
		require.Equal(t, "B", e.From())
	}
}

func TestSearchGraph_Solve(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	res, err := astar.Solve[string](g.SearchGraph(nil), "C", "A")
	require.NoError(t, err)
	require.Equal(t, astar.Solved, res.Outcome)
	require.Equal(t, 3.0, res.SolutionWeight)
	if diff := cmp.Diff([]string{"C", "B", "A"}, res.Solution); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchGraph_MissingVertexPropagates(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)

	_, err := astar.Solve[string](g.SearchGraph(nil), "Z", "A")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
