package growth_test

import (
	"fmt"
	"log"
	"time"

	"github.com/katalvlaran/growthlab/bench"
	"github.com/katalvlaran/growthlab/growth"
)

// ExampleFit recovers the exponent of a noiseless quadratic series.
func ExampleFit() {
	res := &bench.Result{Algorithm: "demo", Class: "O(n^2)"}
	for _, size := range []int{10, 100, 1000} {
		// time = 1µs · size², expressed as a duration.
		res.Samples = append(res.Samples, bench.Sample{
			Size: size,
			Mean: time.Duration(size*size) * time.Microsecond,
		})
	}

	est, err := growth.Fit(res)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("k = %.2f\n", est.Exponent)
	// Output: k = 2.00
}
