package minpq

import "fmt"

// CheckInvariants verifies the heap order and the item → slot index of pq.
// It is compiled only into tests.
func CheckInvariants[T comparable](pq *MinPQ[T]) error {
	if len(pq.index) != len(pq.heap) {
		return fmt.Errorf("index holds %d items, heap holds %d", len(pq.index), len(pq.heap))
	}
	for i, e := range pq.heap {
		if got, ok := pq.index[e.item]; !ok || got != i {
			return fmt.Errorf("index[%v] = %d (present=%t), want %d", e.item, got, ok, i)
		}
		if i == 0 {
			continue
		}
		if parent := (i - 1) / 2; pq.heap[parent].priority > e.priority {
			return fmt.Errorf("heap order broken at slot %d: parent %v > child %v",
				i, pq.heap[parent].priority, e.priority)
		}
	}

	return nil
}
