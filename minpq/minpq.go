package minpq

import "fmt"

// MinPQ is an indexable min-priority queue of unique items.
type MinPQ[T comparable] struct {
	heap     []entry[T]
	index    map[T]int
	minSlots int
}

// New returns an empty MinPQ configured by opts.
func New[T comparable](opts ...Option) *MinPQ[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &MinPQ[T]{
		heap:     make([]entry[T], 0, cfg.InitialCapacity),
		index:    make(map[T]int, cfg.InitialCapacity),
		minSlots: cfg.InitialCapacity,
	}
}

// Size returns the number of queued items.
// Complexity: O(1).
func (pq *MinPQ[T]) Size() int { return len(pq.heap) }

// IsEmpty reports whether the queue holds no items.
func (pq *MinPQ[T]) IsEmpty() bool { return len(pq.heap) == 0 }

// Cap returns the current capacity of the backing slice.
func (pq *MinPQ[T]) Cap() int { return cap(pq.heap) }

// Contains reports whether item is queued.
// Complexity: O(1).
func (pq *MinPQ[T]) Contains(item T) bool {
	_, ok := pq.index[item]

	return ok
}

// Insert adds item with the given priority.
// Returns ErrDuplicateItem if item is already queued.
// Complexity: O(log n) amortized.
func (pq *MinPQ[T]) Insert(item T, priority float64) error {
	if _, ok := pq.index[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	if len(pq.heap) == cap(pq.heap) {
		pq.resize(2 * cap(pq.heap))
	}

	pq.heap = append(pq.heap, entry[T]{item: item, priority: priority})
	last := len(pq.heap) - 1
	pq.index[item] = last
	pq.swim(last)

	return nil
}

// PeekMin returns the item with the smallest priority without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (pq *MinPQ[T]) PeekMin() (T, error) {
	item, _, err := pq.PeekMinPriority()

	return item, err
}

// PeekMinPriority is PeekMin that also reports the minimum priority.
func (pq *MinPQ[T]) PeekMinPriority() (T, float64, error) {
	if len(pq.heap) == 0 {
		var zero T
		return zero, 0, ErrEmptyQueue
	}

	return pq.heap[0].item, pq.heap[0].priority, nil
}

// ExtractMin removes and returns the item with the smallest priority.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(log n) amortized.
func (pq *MinPQ[T]) ExtractMin() (T, error) {
	n := len(pq.heap)
	if n == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	root := pq.heap[0].item
	// Move the last entry to the root, drop the old root, then restore order.
	pq.swap(0, n-1)
	pq.heap[n-1] = entry[T]{}
	pq.heap = pq.heap[:n-1]
	delete(pq.index, root)
	if len(pq.heap) > 1 {
		pq.sink(0)
	}

	if c := cap(pq.heap); c > pq.minSlots && float64(len(pq.heap)) < shrinkRatio*float64(c) {
		pq.resize(max(c/2, pq.minSlots))
	}

	return root, nil
}

// Priority returns the current priority of item.
// Returns ErrNotFound if item is not queued.
func (pq *MinPQ[T]) Priority(item T) (float64, error) {
	i, ok := pq.index[item]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, item)
	}

	return pq.heap[i].priority, nil
}

// ChangePriority sets the priority of a queued item and repositions it.
// A lower priority swims the entry toward the root, a higher one sinks it,
// an equal one leaves the heap untouched.
// Returns ErrNotFound if item is not queued.
// Complexity: O(log n).
func (pq *MinPQ[T]) ChangePriority(item T, priority float64) error {
	i, ok := pq.index[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, item)
	}

	old := pq.heap[i].priority
	pq.heap[i].priority = priority
	switch {
	case priority < old:
		pq.swim(i)
	case priority > old:
		pq.sink(i)
	}

	return nil
}

// swim moves the entry at slot i up while it is smaller than its parent.
func (pq *MinPQ[T]) swim(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if pq.heap[parent].priority <= pq.heap[i].priority {
			return
		}
		pq.swap(i, parent)
		i = parent
	}
}

// sink moves the entry at slot i down while a child is smaller than it,
// always exchanging with the smaller child.
func (pq *MinPQ[T]) sink(i int) {
	n := len(pq.heap)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && pq.heap[right].priority < pq.heap[left].priority {
			smallest = right
		}
		if pq.heap[i].priority <= pq.heap[smallest].priority {
			return
		}
		pq.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges slots i and j and keeps the reverse index in step.
func (pq *MinPQ[T]) swap(i, j int) {
	pq.heap[i], pq.heap[j] = pq.heap[j], pq.heap[i]
	pq.index[pq.heap[i].item] = i
	pq.index[pq.heap[j].item] = j
}

// resize reallocates the backing slice with the given capacity.
func (pq *MinPQ[T]) resize(capacity int) {
	next := make([]entry[T], len(pq.heap), capacity)
	copy(next, pq.heap)
	pq.heap = next
}
