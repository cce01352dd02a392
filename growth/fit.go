package growth

import (
	"math"

	"github.com/katalvlaran/growthlab/bench"
)

// Fit estimates the empirical growth exponent of res by ordinary
// least-squares regression in log-log space.
//
// Samples are filtered first: failed entries and entries with non-positive
// size or mean time are dropped (their logarithm is undefined; zero times
// additionally indicate a clock resolution floor, not real work). If fewer
// than two samples survive, Fit returns ErrFitUnavailable.
//
// Complexity: O(len(samples)).
func Fit(res *bench.Result) (Estimate, error) {
	// 1) Validate input.
	if res == nil {
		return Estimate{}, ErrNilResult
	}

	// 2) Filter to the usable subsequence.
	used := make([]Point, 0, len(res.Samples))
	for _, s := range res.Samples {
		secs := s.Mean.Seconds()
		if s.Failed || s.Size <= 0 || secs <= 0 {
			continue
		}
		used = append(used, Point{Size: s.Size, Seconds: secs})
	}
	if len(used) < minFitSamples {
		return Estimate{}, ErrFitUnavailable
	}

	// 3) Simple linear regression of y = ln(time) on x = ln(size):
	//    slope = Cov(x,y) / Var(x), intercept = E[y] - slope·E[x].
	n := len(used)
	mean := func(value func(i int) float64) float64 {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += value(i)
		}

		return sum / float64(n)
	}
	x := func(i int) float64 { return math.Log(float64(used[i].Size)) }
	y := func(i int) float64 { return math.Log(used[i].Seconds) }

	meanX := mean(x)
	meanY := mean(y)
	cov := mean(func(i int) float64 { return (x(i) - meanX) * (y(i) - meanY) })
	varX := mean(func(i int) float64 { return (x(i) - meanX) * (x(i) - meanX) })

	// Degenerate abscissa (all sizes equal) carries no slope information.
	if varX == 0 {
		return Estimate{}, ErrFitUnavailable
	}

	slope := cov / varX
	intercept := meanY - slope*meanX

	// 4) Map back to the power-law parameters.
	return Estimate{
		Exponent:    slope,
		Coefficient: math.Exp(intercept),
		Used:        used,
		Class:       res.Class,
	}, nil
}
