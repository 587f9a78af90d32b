package astar

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/bearmaps/minpq"
)

// Solve searches g for a cheapest path from start to goal.
//
// The returned Result is non-nil whenever err is nil. UNSOLVABLE and TIMEOUT
// are reported through Result.Outcome, not as errors.
//
// Returns:
//   - ErrNilGraph if g is nil.
//   - a wrapped collaborator error if Neighbors or EstimatedDistanceToGoal fails.
//
// Complexity: O((V + E) log V) over the explored part of the graph.
func Solve[V comparable](g Graph[V], start, goal V, opts ...Option) (*Result[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	ctx, span := cfg.Tracer.Start(cfg.Context, "astar.Solve")
	defer span.End()
	cfg.Logger.DebugContext(ctx, "astar: solve started",
		"start", start,
		"goal", goal,
		"timeout", cfg.Timeout,
	)

	r := &runner[V]{
		g:       g,
		goal:    goal,
		timeout: cfg.Timeout,
		distTo:  make(map[V]float64),
		edgeTo:  make(map[V]V),
		fringe:  minpq.New[V](),
	}
	res, err := r.run(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		cfg.Logger.ErrorContext(ctx, "astar: solve aborted",
			"explored", r.explored,
			"error", err,
		)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("astar.outcome", res.Outcome.String()),
		attribute.Int("astar.states_explored", res.NumStatesExplored),
		attribute.Int("astar.solution_length", len(res.Solution)),
		attribute.Float64("astar.solution_weight", res.SolutionWeight),
	)
	cfg.Logger.DebugContext(ctx, "astar: solve finished",
		"outcome", res.Outcome,
		"explored", res.NumStatesExplored,
		"elapsed", res.ExplorationTime,
		"weight", res.SolutionWeight,
	)

	return res, nil
}

// runner holds the mutable state of a single solve.
type runner[V comparable] struct {
	g       Graph[V]
	goal    V
	timeout time.Duration

	distTo map[V]float64   // best known cost from start
	edgeTo map[V]V         // predecessor on the best known path; start has none
	fringe *minpq.MinPQ[V] // keyed by distTo[v] + h(v, goal)

	explored int
	started  time.Time
}

// run seeds the fringe, drives the main loop and assembles the Result.
func (r *runner[V]) run(start V) (*Result[V], error) {
	r.started = time.Now()

	h, err := r.g.EstimatedDistanceToGoal(start, r.goal)
	if err != nil {
		return nil, fmt.Errorf("astar: heuristic at %v: %w", start, err)
	}
	r.distTo[start] = 0
	if err = r.fringe.Insert(start, h); err != nil {
		return nil, err
	}

	outcome, err := r.process()
	if err != nil {
		return nil, err
	}

	res := &Result[V]{
		Outcome:           outcome,
		NumStatesExplored: r.explored,
		ExplorationTime:   time.Since(r.started),
	}
	if outcome == Solved {
		res.Solution = r.pathTo(start)
		res.SolutionWeight = r.distTo[r.goal]
	}

	return res, nil
}

// process is the best-first loop. An empty fringe or the goal on top settles
// the outcome before the timer is read, and the timer is only read once a
// state has been expanded.
func (r *runner[V]) process() (Outcome, error) {
	for {
		if r.fringe.IsEmpty() {
			return Unsolvable, nil
		}
		top, err := r.fringe.PeekMin()
		if err != nil {
			return 0, err
		}
		if top == r.goal {
			return Solved, nil
		}
		if r.explored > 0 && time.Since(r.started) >= r.timeout {
			return Timeout, nil
		}

		cur, err := r.fringe.ExtractMin()
		if err != nil {
			return 0, err
		}
		r.explored++

		if err = r.relaxAll(cur); err != nil {
			return 0, err
		}
	}
}

// relaxAll relaxes every outgoing edge of cur. Edges are taken as leaving cur.
func (r *runner[V]) relaxAll(cur V) error {
	edges, err := r.g.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %v: %w", cur, err)
	}
	for _, e := range edges {
		if err = r.relax(cur, e.To(), e.Weight()); err != nil {
			return err
		}
	}

	return nil
}

// relax records a strictly cheaper route to w through cur, if there is one.
// A candidate that does not beat distTo[w] leaves all state untouched.
func (r *runner[V]) relax(cur, w V, weight float64) error {
	candidate := r.distTo[cur] + weight
	if best, seen := r.distTo[w]; seen && candidate >= best {
		return nil
	}

	h, err := r.g.EstimatedDistanceToGoal(w, r.goal)
	if err != nil {
		return fmt.Errorf("astar: heuristic at %v: %w", w, err)
	}
	r.distTo[w] = candidate
	r.edgeTo[w] = cur

	if r.fringe.Contains(w) {
		return r.fringe.ChangePriority(w, candidate+h)
	}

	return r.fringe.Insert(w, candidate+h)
}

// pathTo walks edgeTo back from the goal and returns the path start → goal.
func (r *runner[V]) pathTo(start V) []V {
	path := []V{r.goal}
	// bound the walk so a predecessor cycle (possible only with negative
	// weights) cannot spin forever
	for v, steps := r.goal, 0; v != start && steps <= len(r.edgeTo); steps++ {
		prev, ok := r.edgeTo[v]
		if !ok {
			break
		}
		path = append(path, prev)
		v = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
