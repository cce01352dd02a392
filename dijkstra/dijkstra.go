package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/growthlab/core"
)

// Distances computes shortest distances from the configured source vertex to
// every vertex of g.
//
// Returns:
//
//   - dist: slice indexed by vertex; dist[v] is the minimum total weight of a
//     path source→v, or Unreachable if no path exists.
//   - prev: predecessor slice if WithReturnPath is set (prev[v] is the vertex
//     preceding v on one shortest path, NoPredecessor for the source and for
//     unreachable vertices); nil otherwise.
//   - err:  ErrNilGraph or ErrSourceOutOfRange on invalid input.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate the source vertex.
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("source=%d (n=%d): %w", cfg.Source, g.VertexCount(), ErrSourceOutOfRange)
	}

	// 4) Prepare state. Dense integer vertices let every map in the classic
	//    formulation collapse into a slice.
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(vertexPQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 5) Initialize and run the main loop.
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state of a single Distances execution.
type runner struct {
	g       *core.Graph // input graph; read-only here
	options Options     // validated configuration
	dist    []int64     // vertex → current best distance from source
	prev    []int       // vertex → predecessor on a shortest path (nil unless ReturnPath)
	visited []bool      // vertex → distance finalized
	pq      vertexPQ    // min-heap of (vertex, distance) under lazy decrease-key
}

// init sets every distance to Unreachable, seeds the source at 0, and pushes
// the source entry onto the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, vertexItem{vertex: r.options.Source, dist: 0})
}

// process repeatedly extracts the minimum-distance unvisited vertex and
// relaxes its outgoing edges. Terminates when the heap drains, or early when
// the minimum remaining distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(vertexItem)
		u := item.vertex

		// 2) Stale-entry skip: the same vertex may sit in the heap several
		//    times with different candidate distances; only the extraction
		//    that first finalizes it matters.
		if r.visited[u] {
			continue
		}

		// 3) Distance cap: once the closest unvisited vertex is beyond the
		//    cap, every remaining vertex is too. Stop without finalizing.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize u and relax its outgoing edges.
		r.visited[u] = true
		r.relax(u)
	}
}

// relax attempts to improve the recorded distance of every neighbor of u,
// pushing a fresh heap entry for each improvement.
//
// Assumes dist[u] is final when called.
func (r *runner) relax(u int) {
	// Neighbors cannot fail here: u was extracted from the heap, so it is a
	// valid vertex of g.
	neighbors, _ := r.g.Neighbors(u)

	for _, e := range neighbors {
		// Candidate distance via u. dist[u] is finite (u was reached), and
		// weights are bounded by the non-negativity invariant, so the sum
		// cannot wrap on any instance the generators produce.
		newDist := r.dist[u] + e.Weight

		// Respect the exploration cap.
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only; "<" avoids duplicate pushes on ties.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}

		// Lazy decrease-key: push the improved entry, leave the stale one
		// to be skipped at extraction time.
		heap.Push(&r.pq, vertexItem{vertex: e.To, dist: newDist})
	}
}

// vertexItem is a (vertex, tentative distance) pair stored in the heap.
type vertexItem struct {
	vertex int
	dist   int64
}

// vertexPQ is a min-heap of vertexItem ordered by dist ascending.
type vertexPQ []vertexItem

// Len returns the number of items in the heap.
func (pq vertexPQ) Len() int { return len(pq) }

// Less orders entries by increasing tentative distance.
func (pq vertexPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two heap slots.
func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(vertexItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
