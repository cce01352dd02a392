// Package compare orchestrates the full measurement pipeline for two
// algorithm families — one exponential-class (subset-sum search), one
// polynomial-class (priority-queue shortest paths) — and juxtaposes their
// empirically fitted growth exponents.
//
// For each family the pipeline is identical: bench sweeps the family's
// sizes (gen builds the instances, timing measures the invocations), then
// growth fits the power-law exponent. Compare returns both benchmark
// results and both estimates as one composite value, together with the host
// metadata side channel, ready for downstream reporting.
//
// The package also carries the canonical targets (Backtracking, Exhaustive,
// Dynamic, ShortestPath) and the reference sweep ranges for each, so a
// default Compare() call reproduces the standard exponential-vs-polynomial
// experiment:
//
//	cmp, err := compare.Compare()
//	if err != nil { ... }
//	fmt.Println(cmp.Exponential.Estimate) // empirical O(n^k) vs O(2^n)
//	fmt.Println(cmp.Polynomial.Estimate)  // empirical O(n^k) vs O(E log V)
//
// A family whose fit is not computable (too few usable samples, e.g. after
// heavy cutoff abandonment) is reported with its FitErr set and a zero
// Estimate — the benchmark result itself is always preserved.
package compare
