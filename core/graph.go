package core

import "fmt"

// NewGraph returns an empty directed graph over n vertices (0..n-1).
//
// Returns ErrVertexCount if n < 1.
//
// Complexity: O(n) to allocate the adjacency index.
func NewGraph(n int) (*Graph, error) {
	// 1) Validate the vertex count; an empty vertex set has no meaningful
	//    source vertex and no instance generator ever requests one.
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrVertexCount)
	}

	// 2) Allocate one (initially empty) adjacency list per vertex.
	return &Graph{adj: make([][]Edge, n)}, nil
}

// AddEdge inserts the directed edge from→to with the given weight.
//
// Multi-edges are permitted: repeated insertion of the same endpoint pair
// appends another parallel edge. Self-loops are permitted as well; they are
// harmless for shortest-path computation (a loop never improves a distance).
//
// Returns ErrVertexOutOfRange if either endpoint is outside 0..n-1, or
// ErrNegativeWeight if weight < 0. On error the graph is left unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	// 1) Endpoint validation: both ends must be existing vertices.
	if from < 0 || from >= len(g.adj) {
		return fmt.Errorf("from=%d (n=%d): %w", from, len(g.adj), ErrVertexOutOfRange)
	}
	if to < 0 || to >= len(g.adj) {
		return fmt.Errorf("to=%d (n=%d): %w", to, len(g.adj), ErrVertexOutOfRange)
	}

	// 2) Weight validation: negative weights would invalidate the greedy
	//    extraction order of the priority-queue shortest-path consumer,
	//    so they are rejected at the door rather than re-scanned later.
	if weight < 0 {
		return fmt.Errorf("edge %d→%d weight=%d: %w", from, to, weight, ErrNegativeWeight)
	}

	// 3) Append to the source vertex's adjacency list.
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// VertexCount returns n, the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the total number of inserted edges, counting parallels.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Neighbors returns the outgoing edges of vertex v.
//
// The returned slice is the graph's backing storage; callers must treat it
// as read-only. Returns ErrVertexOutOfRange if v is outside 0..n-1.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("v=%d (n=%d): %w", v, len(g.adj), ErrVertexOutOfRange)
	}

	return g.adj[v], nil
}

// HasVertex reports whether v lies inside the graph's vertex range.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }
