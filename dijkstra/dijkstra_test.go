// Package dijkstra_test validates shortest-path behavior: input validation,
// small known graphs, directed semantics, stale-entry handling, distance
// caps, and predecessor reconstruction.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/growthlab/core"
	"github.com/katalvlaran/growthlab/dijkstra"
)

// mustGraph builds a graph over n vertices from (from, to, weight) triples.
func mustGraph(t *testing.T, n int, edges [][3]int64) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestDistances_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Distances(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDistances_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 2, nil)

	_, _, err := dijkstra.Distances(g, dijkstra.Source(2))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, _, err = dijkstra.Distances(g, dijkstra.Source(-1))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	opts := dijkstra.DefaultOptions()
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&opts) })
}

// ------------------------------------------------------------------------
// 2. Known small graphs.
// ------------------------------------------------------------------------

func TestDistances_SingleVertex(t *testing.T) {
	// One vertex, no edges: the source is the only reachable vertex, at 0.
	g := mustGraph(t, 1, nil)

	dist, prev, err := dijkstra.Distances(g)
	require.NoError(t, err)
	require.Len(t, dist, 1)
	assert.Equal(t, int64(0), dist[0])
	assert.Nil(t, prev)
}

func TestDistances_DirectBeatsIndirect(t *testing.T) {
	// Direct 0→1 (weight 3) vs longer detour 0→2→1 (weight 2+2=4):
	// the computed distance must be the direct weight.
	g := mustGraph(t, 3, [][3]int64{
		{0, 1, 3},
		{0, 2, 2},
		{2, 1, 2},
	})

	dist, _, err := dijkstra.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist[1])
}

func TestDistances_IndirectBeatsDirect(t *testing.T) {
	// The reference diamond: 0→1 costs 4 directly but 3 via 2.
	g := mustGraph(t, 4, [][3]int64{
		{0, 1, 4},
		{0, 2, 1},
		{2, 1, 2},
		{1, 3, 1},
		{2, 3, 5},
	})

	dist, _, err := dijkstra.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, 1, 4}, dist)
}

func TestDistances_UnreachableVertex(t *testing.T) {
	g := mustGraph(t, 3, [][3]int64{{0, 1, 1}})

	dist, _, err := dijkstra.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist[0])
	assert.Equal(t, int64(1), dist[1])
	assert.Equal(t, dijkstra.Unreachable, dist[2])
}

func TestDistances_DirectedSemantics(t *testing.T) {
	// Edges are one-way: 1 cannot reach 0 through the 0→1 arc.
	g := mustGraph(t, 2, [][3]int64{{0, 1, 5}})

	dist, _, err := dijkstra.Distances(g, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, dist[0])
	assert.Equal(t, int64(0), dist[1])
}

func TestDistances_MultiEdgeTakesCheapest(t *testing.T) {
	g := mustGraph(t, 2, [][3]int64{
		{0, 1, 9},
		{0, 1, 2},
		{0, 1, 6},
	})

	dist, _, err := dijkstra.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist[1])
}

func TestDistances_SelfLoopIgnoredByRelaxation(t *testing.T) {
	// A self-loop can never strictly improve a distance.
	g := mustGraph(t, 2, [][3]int64{
		{0, 0, 1},
		{0, 1, 4},
	})

	dist, _, err := dijkstra.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist[0])
	assert.Equal(t, int64(4), dist[1])
}

func TestDistances_ZeroWeightEdges(t *testing.T) {
	g := mustGraph(t, 3, [][3]int64{
		{0, 1, 0},
		{1, 2, 0},
	})

	dist, _, err := dijkstra.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, dist)
}

// ------------------------------------------------------------------------
// 3. Stale heap entries.
// ------------------------------------------------------------------------

func TestDistances_StaleEntriesSkipped(t *testing.T) {
	// 1 is first reached at distance 10, then improved to 3 before being
	// finalized — leaving a stale (10, 1) entry that must be skipped, not
	// allowed to overwrite the better distance.
	g := mustGraph(t, 4, [][3]int64{
		{0, 1, 10},
		{0, 2, 1},
		{2, 1, 2},
		{1, 3, 1},
	})

	dist, _, err := dijkstra.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist[1])
	assert.Equal(t, int64(4), dist[3])
}

// ------------------------------------------------------------------------
// 4. Predecessor reconstruction.
// ------------------------------------------------------------------------

func TestDistances_ReturnPath(t *testing.T) {
	g := mustGraph(t, 4, [][3]int64{
		{0, 1, 4},
		{0, 2, 1},
		{2, 1, 2},
		{1, 3, 1},
	})

	dist, prev, err := dijkstra.Distances(g, dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.NotNil(t, prev)

	// Shortest path to 3 is 0→2→1→3.
	assert.Equal(t, int64(4), dist[3])
	assert.Equal(t, 1, prev[3])
	assert.Equal(t, 2, prev[1])
	assert.Equal(t, 0, prev[2])
	assert.Equal(t, dijkstra.NoPredecessor, prev[0])
}

func TestDistances_PrevNilWithoutReturnPath(t *testing.T) {
	g := mustGraph(t, 2, [][3]int64{{0, 1, 1}})

	_, prev, err := dijkstra.Distances(g)
	require.NoError(t, err)
	assert.Nil(t, prev)
}

// ------------------------------------------------------------------------
// 5. Distance cap.
// ------------------------------------------------------------------------

func TestDistances_MaxDistanceCapsExploration(t *testing.T) {
	// Chain 0→1→2→3 with unit weights; cap at 1 leaves 2 and 3 untouched.
	g := mustGraph(t, 4, [][3]int64{
		{0, 1, 1},
		{1, 2, 1},
		{2, 3, 1},
	})

	dist, _, err := dijkstra.Distances(g, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist[0])
	assert.Equal(t, int64(1), dist[1])
	assert.Equal(t, dijkstra.Unreachable, dist[2])
	assert.Equal(t, dijkstra.Unreachable, dist[3])
}
