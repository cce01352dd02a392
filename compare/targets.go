package compare

import (
	"fmt"

	"github.com/katalvlaran/growthlab/bench"
	"github.com/katalvlaran/growthlab/dijkstra"
	"github.com/katalvlaran/growthlab/gen"
	"github.com/katalvlaran/growthlab/subsetsum"
)

// Theoretical complexity labels per family.
const (
	classExponential      = "O(2^n)"
	classPseudoPolynomial = "O(n·target)"
	classShortestPath     = "O(E log V)"
)

// subsetTarget adapts one subset-sum variant plus an instance mode to the
// bench.Target contract.
type subsetTarget struct {
	name  string
	class string
	mode  gen.Mode
	algo  func(nums []int, target int) (bool, error)
}

// Name identifies the family in results and logs.
func (t *subsetTarget) Name() string { return t.name }

// Class is the family's theoretical complexity label.
func (t *subsetTarget) Class() string { return t.class }

// Prepare generates the subset-sum instance for (size, seed) and returns
// the single-invocation closure over it. The closure captures the instance,
// so repeated trials measure the same input.
func (t *subsetTarget) Prepare(size int, seed int64) (func() (bool, error), error) {
	inst, err := gen.NewSubsetInstance(size, t.mode, seed)
	if err != nil {
		return nil, fmt.Errorf("compare: %s instance: %w", t.name, err)
	}

	return func() (bool, error) {
		return t.algo(inst.Nums, inst.Target)
	}, nil
}

// Backtracking is the pruned, early-terminating subset-sum search measured
// on clustered random instances. Its timing varies with instance luck —
// that variance is part of what the experiment demonstrates.
func Backtracking() bench.Target {
	return &subsetTarget{
		name:  "subset-sum/backtracking",
		class: classExponential,
		mode:  gen.ModeClustered,
		algo: func(nums []int, target int) (bool, error) {
			return subsetsum.Backtracking(nums, target)
		},
	}
}

// Exhaustive is the full-traversal subset-sum search measured on worst-case
// (unsatisfiable) instances: a clean, outcome-independent exponential
// signal.
func Exhaustive() bench.Target {
	return &subsetTarget{
		name:  "subset-sum/exhaustive",
		class: classExponential,
		mode:  gen.ModeWorstCase,
		algo: func(nums []int, target int) (bool, error) {
			return subsetsum.Exhaustive(nums, target)
		},
	}
}

// Dynamic is the pseudo-polynomial subset-sum table fill measured on
// uniform random instances.
func Dynamic() bench.Target {
	return &subsetTarget{
		name:  "subset-sum/dynamic",
		class: classPseudoPolynomial,
		mode:  gen.ModeUniform,
		algo:  subsetsum.Dynamic,
	}
}

// shortestPathTarget adapts Dijkstra over seeded random graphs to the
// bench.Target contract. Size is the vertex count.
type shortestPathTarget struct {
	edgeProb  float64
	minWeight int64
	maxWeight int64
}

// Name identifies the family in results and logs.
func (t *shortestPathTarget) Name() string { return "shortest-path/dijkstra" }

// Class is the family's theoretical complexity label.
func (t *shortestPathTarget) Class() string { return classShortestPath }

// Prepare generates a random graph with size vertices and returns the
// closure computing all shortest distances from vertex 0.
func (t *shortestPathTarget) Prepare(size int, seed int64) (func() (bool, error), error) {
	g, err := gen.RandomGraph(size, t.edgeProb, t.minWeight, t.maxWeight, seed)
	if err != nil {
		return nil, fmt.Errorf("compare: shortest-path instance: %w", err)
	}

	return func() (bool, error) {
		if _, _, derr := dijkstra.Distances(g); derr != nil {
			return false, derr
		}

		// Shortest paths is not a decision problem; success is the outcome.
		return true, nil
	}, nil
}

// ShortestPath is the polynomial-class family: Dijkstra from vertex 0 over
// Erdős–Rényi random graphs with the given edge probability and weight
// range.
func ShortestPath(edgeProb float64, minWeight, maxWeight int64) bench.Target {
	return &shortestPathTarget{
		edgeProb:  edgeProb,
		minWeight: minWeight,
		maxWeight: maxWeight,
	}
}
