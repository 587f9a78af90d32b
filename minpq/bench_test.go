package minpq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bearmaps/minpq"
)

// BenchmarkMinPQ_InsertExtract measures a full fill-and-drain cycle of N items.
func BenchmarkMinPQ_InsertExtract(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	prios := make([]float64, N)
	for i := range prios {
		prios[i] = rng.Float64()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pq := minpq.New[int]()
		for j, p := range prios {
			_ = pq.Insert(j, p)
		}
		for !pq.IsEmpty() {
			_, _ = pq.ExtractMin()
		}
	}
}

// BenchmarkMinPQ_ChangePriority measures decrease-key on a full queue.
func BenchmarkMinPQ_ChangePriority(b *testing.B) {
	const N = 10000
	pq := minpq.New[int]()
	for j := 0; j < N; j++ {
		_ = pq.Insert(j, float64(N+j))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pq.ChangePriority(i%N, float64(N-i%N))
	}
}
