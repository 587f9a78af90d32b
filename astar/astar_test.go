package astar_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/bearmaps/astar"
	"github.com/katalvlaran/bearmaps/core"
	"github.com/katalvlaran/bearmaps/dijkstra"
)

// digraph is a small map-backed test graph with a per-vertex heuristic table.
type digraph struct {
	adj map[string][]astar.WeightedEdge[string]
	h   map[string]float64
}

func newDigraph() *digraph {
	return &digraph{adj: map[string][]astar.WeightedEdge[string]{}, h: map[string]float64{}}
}

func (d *digraph) edge(from, to string, w float64) *digraph {
	d.adj[from] = append(d.adj[from], astar.NewEdge(from, to, w))
	return d
}

func (d *digraph) Neighbors(v string) ([]astar.WeightedEdge[string], error) {
	return d.adj[v], nil
}

func (d *digraph) EstimatedDistanceToGoal(v, _ string) (float64, error) {
	return d.h[v], nil
}

func requirePath(t *testing.T, want, got []string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestSolve_ThreeEdgeScenario(t *testing.T) {
	g := newDigraph().edge("A", "B", 1).edge("B", "C", 1).edge("A", "C", 5)
	// D and E exist but are isolated
	g.adj["D"], g.adj["E"] = nil, nil

	res, err := astar.Solve[string](g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, astar.Solved, res.Outcome)
	requirePath(t, []string{"A", "B", "C"}, res.Solution)
	assert.Equal(t, 2.0, res.SolutionWeight)
	assert.Equal(t, 2, res.NumStatesExplored)
}

func TestSolve_Unreachable(t *testing.T) {
	g := newDigraph().edge("A", "B", 1).edge("C", "D", 1)

	res, err := astar.Solve[string](g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, astar.Unsolvable, res.Outcome)
	assert.Empty(t, res.Solution)
	assert.Equal(t, 2, res.NumStatesExplored)
}

func TestSolve_StartIsGoal(t *testing.T) {
	g := newDigraph().edge("A", "B", 1)

	res, err := astar.Solve[string](g, "A", "A", astar.WithTimeout(0))
	require.NoError(t, err)
	assert.Equal(t, astar.Solved, res.Outcome)
	requirePath(t, []string{"A"}, res.Solution)
	assert.Zero(t, res.SolutionWeight)
	assert.Zero(t, res.NumStatesExplored)
}

func TestSolve_ZeroTimeout(t *testing.T) {
	// unbounded line graph: the goal is far away, so the one expansion a zero
	// budget allows neither empties the fringe nor surfaces the goal
	line := astar.FuncGraph[int]{
		NeighborsFunc: func(v int) []astar.WeightedEdge[int] {
			return []astar.WeightedEdge[int]{astar.NewEdge(v, v+1, 1), astar.NewEdge(v, v-1, 1)}
		},
	}

	res, err := astar.Solve[int](line, 0, 1000, astar.WithTimeout(0))
	require.NoError(t, err)
	assert.Equal(t, astar.Timeout, res.Outcome)
	assert.Empty(t, res.Solution)
	assert.Equal(t, 1, res.NumStatesExplored)
}

func TestSolve_ZeroTimeoutExhaustedFringeIsUnsolvable(t *testing.T) {
	// the single expansion empties the fringe before the budget is checked
	res, err := astar.Solve[int](astar.FuncGraph[int]{}, 0, 1, astar.WithTimeout(0))
	require.NoError(t, err)
	assert.Equal(t, astar.Unsolvable, res.Outcome)
	assert.Empty(t, res.Solution)
	assert.Equal(t, 1, res.NumStatesExplored)
}

func TestSolve_ZeroTimeoutGoalOnTopIsSolved(t *testing.T) {
	edge := astar.FuncGraph[int]{
		NeighborsFunc: func(v int) []astar.WeightedEdge[int] {
			if v == 0 {
				return []astar.WeightedEdge[int]{astar.NewEdge(0, 1, 1)}
			}
			return nil
		},
	}

	res, err := astar.Solve[int](edge, 0, 1, astar.WithTimeout(0))
	require.NoError(t, err)
	assert.Equal(t, astar.Solved, res.Outcome)
	if diff := cmp.Diff([]int{0, 1}, res.Solution); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1.0, res.SolutionWeight)
	assert.Equal(t, 1, res.NumStatesExplored)
}

func TestSolve_DecreaseKey(t *testing.T) {
	g := newDigraph().
		edge("A", "B", 5).
		edge("A", "C", 1).
		edge("C", "B", 1).
		edge("B", "D", 1)

	res, err := astar.Solve[string](g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, astar.Solved, res.Outcome)
	requirePath(t, []string{"A", "C", "B", "D"}, res.Solution)
	assert.Equal(t, 3.0, res.SolutionWeight)
}

func TestSolve_NonAdmissibleHeuristicIsNotAnError(t *testing.T) {
	g := newDigraph().
		edge("A", "B", 1).
		edge("A", "C", 1).
		edge("B", "G", 1).
		edge("C", "G", 0.5)
	g.h["C"] = 100 // overestimates the true remaining 0.5

	res, err := astar.Solve[string](g, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, astar.Solved, res.Outcome)
	requirePath(t, []string{"A", "B", "G"}, res.Solution)
	assert.Equal(t, 2.0, res.SolutionWeight)
}

var errBoom = errors.New("boom")

type failingGraph struct {
	failNeighbors bool
}

func (f failingGraph) Neighbors(v int) ([]astar.WeightedEdge[int], error) {
	if f.failNeighbors {
		return nil, errBoom
	}
	return []astar.WeightedEdge[int]{astar.NewEdge(v, v+1, 1)}, nil
}

func (f failingGraph) EstimatedDistanceToGoal(v, _ int) (float64, error) {
	if !f.failNeighbors && v > 0 {
		return 0, errBoom
	}
	return 0, nil
}

func TestSolve_CollaboratorErrorsAbort(t *testing.T) {
	res, err := astar.Solve[int](failingGraph{failNeighbors: true}, 0, 5)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, res)

	res, err = astar.Solve[int](failingGraph{}, 0, 5)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, res)
}

func TestSolve_NilGraph(t *testing.T) {
	_, err := astar.Solve[string](nil, "A", "B")
	assert.ErrorIs(t, err, astar.ErrNilGraph)
}

func TestWithTimeout_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { astar.WithTimeout(-time.Second) })
}

func TestRelax_NotBetterLeavesStateUntouched(t *testing.T) {
	g := newDigraph()
	p := astar.NewStepper[string](g, "A", "Z")

	require.NoError(t, p.Relax("A", "B", 4))
	d, _ := p.DistTo("B")
	require.Equal(t, 4.0, d)
	prio, err := p.Priority("B")
	require.NoError(t, err)

	// equal and worse candidates are ignored
	require.NoError(t, p.Relax("A", "B", 4))
	require.NoError(t, p.Relax("A", "B", 9))
	d, _ = p.DistTo("B")
	assert.Equal(t, 4.0, d)
	from, _ := p.EdgeTo("B")
	assert.Equal(t, "A", from)
	got, err := p.Priority("B")
	require.NoError(t, err)
	assert.Equal(t, prio, got)
	assert.Equal(t, 2, p.FringeSize())

	// a strictly better one lowers the key in place
	require.NoError(t, p.Relax("A", "B", 1))
	got, err = p.Priority("B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
	assert.Equal(t, 2, p.FringeSize())
}

// randomGraph builds an undirected weighted graph on n vertices "v0".."v{n-1}".
func randomGraph(rng *rand.Rand, n int, density float64) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j), float64(1+rng.Intn(20)))
			}
		}
	}

	return g
}

// TestSolve_MatchesDijkstra checks optimality against exhaustive single-source
// search for every (start, goal) pair, with h ≡ 0 and with a consistent
// heuristic scaled down from the exact distance.
func TestSolve_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 5; trial++ {
		g := randomGraph(rng, 12, 0.25)
		verts := g.Vertices()

		exact := make(map[string]map[string]float64, len(verts))
		for _, s := range verts {
			dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(s))
			require.NoError(t, err)
			exact[s] = dist
		}

		for _, s := range verts {
			for _, goal := range verts {
				want := exact[s][goal]
				consistent := func(v, goal string) float64 { return 0.9 * exact[goal][v] }

				for name, h := range map[string]astar.HeuristicFunc[string]{
					"zero":       nil,
					"consistent": consistent,
				} {
					res, err := astar.Solve[string](g.SearchGraph(h), s, goal)
					require.NoError(t, err)
					if want == dijkstra.Unreachable {
						assert.Equal(t, astar.Unsolvable, res.Outcome, "%s %s→%s", name, s, goal)
						continue
					}
					require.Equal(t, astar.Solved, res.Outcome, "%s %s→%s", name, s, goal)
					assert.InDelta(t, want, res.SolutionWeight, 1e-9, "%s %s→%s", name, s, goal)
					assert.Equal(t, s, res.Solution[0])
					assert.Equal(t, goal, res.Solution[len(res.Solution)-1])
				}
			}
		}
	}
}

func TestSolve_LogsAndTraces(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	g := newDigraph().edge("A", "B", 1)
	res, err := astar.Solve[string](g, "A", "B",
		astar.WithLogger(logger),
		astar.WithTracer(tp.Tracer("test")),
	)
	require.NoError(t, err)
	require.Equal(t, astar.Solved, res.Outcome)

	assert.Contains(t, buf.String(), "astar: solve started")
	assert.Contains(t, buf.String(), "astar: solve finished")

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "astar.Solve", spans[0].Name())
	found := false
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "astar.outcome" {
			found = true
			assert.Equal(t, "SOLVED", kv.Value.AsString())
		}
	}
	assert.True(t, found, "outcome attribute missing")
}

func TestResult_Summary(t *testing.T) {
	res := &astar.Result[string]{
		Outcome:           astar.Solved,
		Solution:          []string{"A", "B"},
		SolutionWeight:    1,
		NumStatesExplored: 1,
	}
	out := res.Summary(" => ")
	assert.Contains(t, out, "Search was successful.")
	assert.Contains(t, out, "A => B")

	res = &astar.Result[string]{Outcome: astar.Timeout}
	assert.Contains(t, res.Summary(""), "timed out")

	res = &astar.Result[string]{Outcome: astar.Unsolvable}
	assert.Contains(t, res.Summary(""), "Unable to find a solution")
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "SOLVED", astar.Solved.String())
	assert.Equal(t, "UNSOLVABLE", astar.Unsolvable.String())
	assert.Equal(t, "TIMEOUT", astar.Timeout.String())
	assert.Equal(t, "UNKNOWN", astar.Outcome(9).String())
}
