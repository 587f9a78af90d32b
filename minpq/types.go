package minpq

import "errors"

// Sentinel errors returned by MinPQ operations.
var (
	// ErrDuplicateItem indicates Insert was called with an item already in the queue.
	ErrDuplicateItem = errors.New("minpq: item already present")

	// ErrEmptyQueue indicates PeekMin or ExtractMin was called on an empty queue.
	ErrEmptyQueue = errors.New("minpq: queue is empty")

	// ErrNotFound indicates the referenced item is not held by the queue.
	ErrNotFound = errors.New("minpq: item not found")
)

const (
	// DefaultInitialCapacity is the number of heap slots allocated up front.
	DefaultInitialCapacity = 16

	// shrinkRatio is the utilization below which the backing slice is halved.
	shrinkRatio = 0.25
)

// Options configures a MinPQ.
type Options struct {
	// InitialCapacity is the starting (and minimum) size of the backing slice.
	InitialCapacity int
}

// Option is a functional option for New.
type Option func(*Options)

// WithInitialCapacity sets the initial capacity of the heap.
// Panics if capacity is not positive.
func WithInitialCapacity(capacity int) Option {
	return func(o *Options) {
		if capacity <= 0 {
			panic("minpq: initial capacity must be positive")
		}
		o.InitialCapacity = capacity
	}
}

// DefaultOptions returns Options with InitialCapacity = DefaultInitialCapacity.
func DefaultOptions() Options {
	return Options{InitialCapacity: DefaultInitialCapacity}
}

// entry is one heap slot.
type entry[T comparable] struct {
	item     T
	priority float64
}
