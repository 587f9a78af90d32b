package astar

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ErrNilGraph indicates that Solve was called with a nil Graph.
var ErrNilGraph = errors.New("astar: graph is nil")

// DefaultTimeout bounds a solve when no WithTimeout option is given.
const DefaultTimeout = 30 * time.Second

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/bearmaps/astar"

// Graph is the collaborator explored by Solve.
//
// Neighbors returns the outgoing edges of v; it may be called many times for
// the same vertex and must not depend on call order. EstimatedDistanceToGoal
// returns a non-negative estimate of the remaining cost from v to goal.
// An error from either method aborts the solve.
type Graph[V comparable] interface {
	Neighbors(v V) ([]WeightedEdge[V], error)
	EstimatedDistanceToGoal(v, goal V) (float64, error)
}

// WeightedEdge is an immutable directed edge with a non-negative weight.
type WeightedEdge[V comparable] struct {
	from, to V
	weight   float64
}

// NewEdge returns the edge from → to with the given weight.
func NewEdge[V comparable](from, to V, weight float64) WeightedEdge[V] {
	return WeightedEdge[V]{from: from, to: to, weight: weight}
}

// From returns the source vertex.
func (e WeightedEdge[V]) From() V { return e.from }

// To returns the destination vertex.
func (e WeightedEdge[V]) To() V { return e.to }

// Weight returns the edge cost.
func (e WeightedEdge[V]) Weight() float64 { return e.weight }

// Outcome is the terminal state of a solve.
type Outcome int

const (
	// Solved means the goal was reached; Result.Solution holds the path.
	Solved Outcome = iota
	// Unsolvable means the fringe emptied without reaching the goal.
	Unsolvable
	// Timeout means the time budget ran out before the goal was reached.
	Timeout
)

// String returns the upper-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "SOLVED"
	case Unsolvable:
		return "UNSOLVABLE"
	case Timeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Result reports what a solve found.
type Result[V comparable] struct {
	// Outcome is the terminal state of the search.
	Outcome Outcome
	// Solution lists the vertices from start to goal; empty unless Solved.
	Solution []V
	// SolutionWeight is the total path cost; meaningful only when Solved.
	SolutionWeight float64
	// NumStatesExplored counts extract-min operations.
	NumStatesExplored int
	// ExplorationTime is the wall-clock duration of the search.
	ExplorationTime time.Duration
}

// Options configures Solve.
//
// Timeout – time budget, polled once per extract-min. Must be ≥ 0.
// Logger  – receives Debug records at start and finish of each solve.
// Tracer  – opens one span per solve.
// Context – parent for spans and log records; never polled for cancellation.
type Options struct {
	Timeout time.Duration
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Context context.Context
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithTimeout sets the time budget of the search. The budget is checked only
// after at least one expansion, so with zero the search still expands once and
// then reports UNSOLVABLE or SOLVED if that settles it, TIMEOUT otherwise.
// Panics if d is negative.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic("astar: timeout must be non-negative")
		}
		o.Timeout = d
	}
}

// WithLogger routes solve diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer replaces the tracer taken from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithContext sets the parent context used for spans and log records.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// DefaultOptions returns the options Solve starts from:
// DefaultTimeout, a discarding logger, the global otel tracer and a
// background context.
func DefaultOptions() Options {
	return Options{
		Timeout: DefaultTimeout,
		Logger:  slog.New(slog.DiscardHandler),
		Tracer:  otel.Tracer(tracerName),
		Context: context.Background(),
	}
}
