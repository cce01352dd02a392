// Package core types: Graph, Edge, and the sentinel errors guarding
// instance construction.
package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexCount indicates that a graph was requested with n < 1 vertices.
	ErrVertexCount = errors.New("core: vertex count must be at least 1")

	// ErrVertexOutOfRange indicates an endpoint outside the 0..n-1 vertex range.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an attempt to insert a negative-weight edge.
	// Non-negativity is a construction-time invariant, not an algorithm-time check.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")
)

// Edge is an outgoing arc stored in a vertex's adjacency list.
//
// To is the destination vertex; Weight is the non-negative traversal cost.
type Edge struct {
	// To is the destination vertex index.
	To int

	// Weight is the edge cost. Always ≥ 0 once inside a Graph.
	Weight int64
}

// Graph is a directed weighted graph over vertices 0..n-1.
//
// The zero value is not usable; construct with NewGraph. A Graph carries no
// locks: generators build it single-threaded and algorithms only read it.
type Graph struct {
	adj       [][]Edge // adjacency lists indexed by source vertex
	edgeCount int      // total number of inserted edges (multi-edges counted)
}
