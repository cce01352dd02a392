// Package gen produces the randomized and adversarial problem instances the
// benchmark pipeline measures: subset-sum sequences with a target, and
// random weighted graphs for shortest-path sweeps.
//
// Determinism:
//
//   - Every constructor takes an explicit seed; there is no global RNG state
//     and no time-based seeding hidden anywhere. The same (size, mode, seed)
//     triple yields the same instance on every platform and every run, which
//     is what makes cross-run and cross-machine timing comparisons valid.
//   - DeriveSeed mixes a parent seed with a stream identifier through a
//     SplitMix64-style finalizer, so per-size sub-seeds are decorrelated
//     without consuming shared generator state.
//
// Subset-sum instance modes (first-class configuration, not a detail):
//
//   - ModeClustered  — values tightly clustered around 1000 (±5) with the
//     target at half the total. Clustering makes "lucky" early solutions
//     rare, yet random placement keeps outcome-dependent variance visible:
//     this mode demonstrates the measurement variance of early-terminating
//     search, it does not hide it.
//   - ModeUniform    — values uniform in 1..1000 with the target at a third
//     of the total; exercises a large reachability table for the
//     pseudo-polynomial variant.
//   - ModeWorstCase  — the first `size` primes with an impossible target
//     (total + 1). No subset can ever match, forcing any complete search to
//     traverse its entire tree. Deterministic; the seed is ignored.
//
// Graph instances:
//
//   - RandomGraph samples an Erdős–Rényi-style directed graph: each ordered
//     pair (i, j), i ≠ j, receives an edge with the configured probability,
//     weighted uniformly in [minWeight, maxWeight]. Trial order is stable
//     (i ascending, then j ascending), so a fixed seed fixes the graph.
//
// Errors (sentinel):
//
//   - ErrBadSize         if size < 0 (or < 1 where a vertex is required).
//   - ErrBadProbability  if an edge probability lies outside [0, 1].
//   - ErrBadWeightRange  if minWeight > maxWeight or minWeight < 0.
//   - ErrUnknownMode     if an unrecognized instance mode is supplied.
package gen
