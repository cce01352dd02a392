// Package growthlab measures how algorithm running time grows with input
// size — and puts the measurement next to the theory.
//
// 🚀 What is growthlab?
//
//	An instructional measurement engine that benchmarks two canonical
//	algorithm families and fits an empirical growth-rate exponent to the
//	observations:
//		• Subset-sum: backtracking, deliberate full-traversal exhaustive
//		  search, and the pseudo-polynomial dynamic program (NP-complete class)
//		• Shortest paths: Dijkstra with a lazy-decrease-key min-heap
//		  (polynomial class)
//
// ✨ How the pipeline fits together:
//
//	gen       — seeded random and adversarial instances (clustered, uniform,
//	            worst-case subset-sum sequences; Erdős–Rényi random graphs)
//	subsetsum — the three subset-sum decision procedures
//	dijkstra  — single-source shortest paths on core graphs
//	timing    — scoped wall-clock measurement, repetition, host metadata
//	bench     — size sweeps with reproducible per-size seeds, trial
//	            averaging, failure isolation, and a wall-clock cutoff
//	growth    — log-log least-squares fit of time ≈ c·size^k
//	compare   — the exponential-vs-polynomial experiment as one call
//
// Quick start:
//
//	cmp, err := compare.Compare()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cmp.Exponential.Estimate) // e.g. empirical O(n^4.1) vs O(2^n)
//	fmt.Println(cmp.Polynomial.Estimate)  // e.g. empirical O(n^1.9) vs O(E log V)
//
// Everything is deterministic under a fixed seed except the clock itself:
// the same configuration regenerates the same instances on any machine, so
// differences between runs are timing, not data. Expect the fitted exponent
// of early-terminating search to swing widely between runs — demonstrating
// that variance is part of the exercise, not a defect of it.
package growthlab
