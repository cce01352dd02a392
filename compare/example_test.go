package compare_test

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/growthlab/compare"
)

// Example_experiment runs a scaled-down exponential-vs-polynomial
// experiment with progress logging. Fitted exponents depend on the host, so
// no fixed output is asserted.
func Example_experiment() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmp, err := compare.Compare(
		compare.WithExponentialFamily(compare.Exhaustive(), []int{8, 10, 12, 14, 16}, 3),
		compare.WithPolynomialFamily(compare.ShortestPath(0.5, 1, 100), []int{10, 50, 100, 200}, 3),
		compare.WithCutoff(30*time.Second),
		compare.WithLogger(logger),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("host:", cmp.System)
	fmt.Println(cmp.Exponential.Estimate)
	fmt.Println(cmp.Polynomial.Estimate)
}
