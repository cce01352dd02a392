package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/growthlab/dijkstra"
	"github.com/katalvlaran/growthlab/gen"
)

// benchmarkDistances times Distances on a seeded random graph of n vertices.
// Graph generation happens once, outside the timed loop.
func benchmarkDistances(b *testing.B, n int, edgeProb float64) {
	g, err := gen.RandomGraph(n, edgeProb, 1, 100, gen.BenchmarkSeed)
	if err != nil {
		b.Fatalf("generate graph: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err = dijkstra.Distances(g); err != nil {
			b.Fatalf("Distances failed: %v", err)
		}
	}
}

func BenchmarkDistances_Sparse100(b *testing.B) {
	benchmarkDistances(b, 100, 0.05)
}

func BenchmarkDistances_Dense100(b *testing.B) {
	benchmarkDistances(b, 100, 0.5)
}

func BenchmarkDistances_Sparse1000(b *testing.B) {
	benchmarkDistances(b, 1000, 0.05)
}

func BenchmarkDistances_Dense1000(b *testing.B) {
	benchmarkDistances(b, 1000, 0.5)
}
