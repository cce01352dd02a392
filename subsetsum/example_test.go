package subsetsum_test

import (
	"fmt"

	"github.com/katalvlaran/growthlab/subsetsum"
)

// ExampleBacktracking decides a small instance with the pruned search.
func ExampleBacktracking() {
	ok, err := subsetsum.Backtracking([]int{3, 34, 4, 12, 5, 2}, 9)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ok)
	// Output: true
}

// ExampleExhaustive shows the outcome-independent full traversal together
// with its node count: 2^(n+1)-1 nodes for n elements, found or not.
func ExampleExhaustive() {
	var nodes uint64
	ok, err := subsetsum.Exhaustive([]int{3, 5, 7}, 100, subsetsum.WithNodeCounter(&nodes))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ok, nodes)
	// Output: false 15
}

// ExampleDynamic decides the same contract with the reachability table.
func ExampleDynamic() {
	ok, err := subsetsum.Dynamic([]int{1, 2, 3, 4}, 7)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ok)
	// Output: true
}
