// Package minpq implements an indexable binary min-heap keyed by arbitrary
// comparable items.
//
// Unlike container/heap, every item held by a MinPQ is unique and its position
// in the heap array is tracked in a reverse index (item → slot). This makes
// membership tests O(1) and lets callers change the priority of any queued
// item in O(log n) ("decrease-key"), which is what best-first searches such as
// A* and Dijkstra need during edge relaxation.
//
// Complexity:
//
//   - Insert, ExtractMin, ChangePriority: O(log n)
//   - PeekMin, Contains, Priority, Size:  O(1)
//   - Space: O(n)
//
// Storage:
//
//   - heap  – a slice of (item, priority) entries laid out as a binary heap
//     (children of slot i live at 2i+1 and 2i+2).
//   - index – map[item]slot, updated on every swap so that
//     index[item] == i  iff  heap[i].item == item.
//
// Capacity grows by doubling when the backing slice is full and shrinks by half
// once fewer than a quarter of the slots are used (never below the initial
// capacity), so each operation is amortized O(1) in allocation work.
//
// Ordering among equal priorities is unspecified. Callers must not rely on
// FIFO or any other tie-breaking order.
//
// Errors (sentinel):
//
//   - ErrDuplicateItem – Insert of an item that is already queued.
//   - ErrEmptyQueue    – PeekMin/ExtractMin on an empty queue.
//   - ErrNotFound      – ChangePriority/Priority on an item that is not queued.
//
// A MinPQ is not safe for concurrent use; it is meant to be owned by a single
// search.
//
// Example:
//
//	pq := minpq.New[string]()
//	_ = pq.Insert("A", 5)
//	_ = pq.Insert("B", 2)
//	_ = pq.ChangePriority("A", 1)
//	item, _ := pq.ExtractMin() // "A"
package minpq
