package pointset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bearmaps/pointset"
)

func randomPoints(n int) []pointset.Point {
	rng := rand.New(rand.NewSource(1))
	points := make([]pointset.Point, n)
	for i := range points {
		points[i] = pointset.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
	}

	return points
}

func BenchmarkNaiveNearest(b *testing.B) {
	s := pointset.NewNaivePointSet(randomPoints(10000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Nearest(float64(i%1000), float64((i*7)%1000))
	}
}

func BenchmarkKDTreeNearest(b *testing.B) {
	s := pointset.NewKDTree(randomPoints(10000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Nearest(float64(i%1000), float64((i*7)%1000))
	}
}
