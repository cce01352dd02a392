// Package core defines the weighted-graph primitive shared by every
// algorithm and benchmark package in growthlab.
//
// Overview:
//
//   - Graph is an adjacency-list digraph over dense integer vertices 0..n-1.
//   - Edge weights are int64 and must be non-negative; the constraint is
//     enforced at insertion time so downstream consumers (dijkstra in
//     particular) never need to re-validate the whole edge set.
//   - Multi-edges and self-loops are permitted: benchmark instances are
//     generated, not curated, and the shortest-path semantics are unaffected.
//
// Design posture:
//
//   - Graphs built here are measurement instances: constructed once by a
//     generator, then read by exactly one algorithm invocation at a time.
//     There is no internal locking and no mutation API beyond AddEdge.
//   - Vertex identity is positional (0..n-1). This keeps instances compact
//     and makes source selection for shortest-path sweeps trivial.
//
// Errors (sentinel):
//
//   - ErrVertexCount       if a graph is requested with fewer than one vertex.
//   - ErrVertexOutOfRange  if an endpoint lies outside 0..n-1.
//   - ErrNegativeWeight    if an edge weight is negative.
//
// Complexity:
//
//   - AddEdge:   O(1) amortized.
//   - Neighbors: O(1) (returns the backing slice for the vertex).
//   - Space:     O(V + E).
package core
