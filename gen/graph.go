package gen

import (
	"fmt"

	"github.com/katalvlaran/growthlab/core"
)

// Probability domain for Bernoulli edge trials.
const (
	probMin = 0.0
	probMax = 1.0
)

// RandomGraph samples an Erdős–Rényi-style directed graph over n vertices:
// every ordered pair (i, j) with i ≠ j receives an edge with probability
// edgeProb, weighted uniformly in [minWeight, maxWeight]. Self-loops are
// never generated.
//
// Determinism: trials run in stable order (i ascending, then j ascending),
// and each trial consumes the RNG identically, so a fixed seed fixes the
// exact edge set and weights.
//
// Validation (fail fast, zero side effects on invalid input):
//   - n ≥ 1                       (ErrBadSize)
//   - 0 ≤ edgeProb ≤ 1            (ErrBadProbability)
//   - 0 ≤ minWeight ≤ maxWeight   (ErrBadWeightRange)
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.
func RandomGraph(n int, edgeProb float64, minWeight, maxWeight int64, seed int64) (*core.Graph, error) {
	// 1) Validate parameters.
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadSize)
	}
	if edgeProb < probMin || edgeProb > probMax {
		return nil, fmt.Errorf("edgeProb=%.6f not in [%.1f,%.1f]: %w", edgeProb, probMin, probMax, ErrBadProbability)
	}
	if minWeight < 0 || minWeight > maxWeight {
		return nil, fmt.Errorf("weights [%d,%d]: %w", minWeight, maxWeight, ErrBadWeightRange)
	}

	// 2) Allocate the graph; vertices exist implicitly as 0..n-1.
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("gen: NewGraph(%d): %w", n, err)
	}

	// 3) Sample edges over all ordered pairs in stable (i asc, j asc) order.
	rng := rngFromSeed(seed)
	span := maxWeight - minWeight + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// Bernoulli trial: include the arc i→j with probability edgeProb.
			if rng.Float64() >= edgeProb {
				continue
			}
			w := minWeight + rng.Int63n(span)
			if err = g.AddEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("gen: AddEdge(%d→%d, w=%d): %w", i, j, w, err)
			}
		}
	}

	return g, nil
}
