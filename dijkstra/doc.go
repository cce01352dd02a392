// Package dijkstra implements single-source shortest paths on non-negative
// weighted graphs, using a min-heap priority queue with the lazy
// decrease-key strategy.
//
// Overview:
//
//   - Distances(g, opts...) returns the minimum total weight from the source
//     to every vertex of g; unreachable vertices report Unreachable.
//   - Vertices are processed in increasing order of tentative distance. When
//     a relaxation improves a neighbor's distance, a fresh (distance, vertex)
//     entry is pushed; stale entries already in the heap are skipped on
//     extraction. This is a deliberate, standard simplification — an indexed
//     heap with true decrease-key would change constants, not results.
//
// Correctness precondition:
//
//	All edge weights must be ≥ 0. The greedy extraction order is only valid
//	without negative weights; core.Graph enforces the invariant at edge
//	insertion, so no re-scan happens here.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V extractions.
//   - Each relaxation may push one entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance slice and visited flags.
//   - O(E) worst-case heap occupancy under lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrSourceOutOfRange  if the source vertex is outside 0..n-1.
//   - ErrBadMaxDistance    (via panic in the option constructor) if a
//     negative distance cap is configured.
//
// Options:
//
//   - Source(v):          starting vertex (default 0).
//   - WithReturnPath():   also return the predecessor slice.
//   - WithMaxDistance(x): do not explore vertices farther than x.
package dijkstra
