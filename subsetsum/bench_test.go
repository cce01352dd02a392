package subsetsum_test

import (
	"testing"

	"github.com/katalvlaran/growthlab/gen"
	"github.com/katalvlaran/growthlab/subsetsum"
)

// benchmarkVariant runs one variant over a generated instance of the given
// size and mode. Instance generation is excluded from the timed loop.
func benchmarkVariant(b *testing.B, size int, mode gen.Mode, fn func([]int, int) (bool, error)) {
	inst, err := gen.NewSubsetInstance(size, mode, gen.BenchmarkSeed)
	if err != nil {
		b.Fatalf("generate instance: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = fn(inst.Nums, inst.Target); err != nil {
			b.Fatalf("variant failed: %v", err)
		}
	}
}

func BenchmarkBacktracking_Clustered16(b *testing.B) {
	benchmarkVariant(b, 16, gen.ModeClustered, func(n []int, t int) (bool, error) {
		return subsetsum.Backtracking(n, t)
	})
}

func BenchmarkBacktracking_Clustered20(b *testing.B) {
	benchmarkVariant(b, 20, gen.ModeClustered, func(n []int, t int) (bool, error) {
		return subsetsum.Backtracking(n, t)
	})
}

func BenchmarkExhaustive_WorstCase14(b *testing.B) {
	benchmarkVariant(b, 14, gen.ModeWorstCase, func(n []int, t int) (bool, error) {
		return subsetsum.Exhaustive(n, t)
	})
}

func BenchmarkExhaustive_WorstCase18(b *testing.B) {
	benchmarkVariant(b, 18, gen.ModeWorstCase, func(n []int, t int) (bool, error) {
		return subsetsum.Exhaustive(n, t)
	})
}

func BenchmarkDynamic_Uniform200(b *testing.B) {
	benchmarkVariant(b, 200, gen.ModeUniform, subsetsum.Dynamic)
}

func BenchmarkDynamic_Uniform1000(b *testing.B) {
	benchmarkVariant(b, 1000, gen.ModeUniform, subsetsum.Dynamic)
}
