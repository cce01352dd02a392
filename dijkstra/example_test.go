package dijkstra_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/growthlab/core"
	"github.com/katalvlaran/growthlab/dijkstra"
)

// ExampleDistances computes all shortest distances from vertex 0 on the
// reference four-vertex graph.
func ExampleDistances() {
	g, err := core.NewGraph(4)
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range [][3]int64{
		{0, 1, 4},
		{0, 2, 1},
		{2, 1, 2},
		{1, 3, 1},
	} {
		if err = g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			log.Fatal(err)
		}
	}

	dist, _, err := dijkstra.Distances(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(dist)
	// Output: [0 3 1 4]
}
