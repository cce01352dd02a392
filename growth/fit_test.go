// Package growth_test validates the power-law fit: exact recovery on
// synthetic data, filtering rules, noise tolerance, and the not-computable
// paths.
package growth_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/growthlab/bench"
	"github.com/katalvlaran/growthlab/growth"
)

// syntheticResult builds a bench.Result whose mean times follow
// time = c·size^k exactly (up to nanosecond rounding).
func syntheticResult(sizes []int, c, k float64) *bench.Result {
	res := &bench.Result{Algorithm: "synthetic", Class: "O(n^k)"}
	for _, size := range sizes {
		secs := c * math.Pow(float64(size), k)
		res.Samples = append(res.Samples, bench.Sample{
			Size: size,
			Mean: time.Duration(secs * float64(time.Second)),
		})
	}

	return res
}

// ------------------------------------------------------------------------
// 1. Exact recovery.
// ------------------------------------------------------------------------

func TestFit_RecoversKnownExponent(t *testing.T) {
	sizes := []int{10, 20, 50, 100, 200, 500, 1000}
	cases := []struct {
		c float64
		k float64
	}{
		{1e-6, 1.0},
		{1e-7, 2.0},
		{1e-8, 3.0},
		{5e-6, 1.5},
		{2e-5, 0.5},
	}

	for _, tc := range cases {
		est, err := growth.Fit(syntheticResult(sizes, tc.c, tc.k))
		require.NoError(t, err)

		assert.InDelta(t, tc.k, est.Exponent, 0.01, "c=%g k=%g", tc.c, tc.k)
		assert.InDelta(t, tc.c, est.Coefficient, tc.c*0.05, "c=%g k=%g", tc.c, tc.k)
		assert.Len(t, est.Used, len(sizes))
		assert.Equal(t, "O(n^k)", est.Class)
	}
}

func TestFit_TwoPointsSuffice(t *testing.T) {
	est, err := growth.Fit(syntheticResult([]int{10, 100}, 1e-6, 2.0))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, est.Exponent, 0.01)
}

// ------------------------------------------------------------------------
// 2. Noise and non-monotonicity.
// ------------------------------------------------------------------------

func TestFit_TolerantOfMultiplicativeNoise(t *testing.T) {
	// ±10% multiplicative noise must not move a k=2 fit far.
	rng := rand.New(rand.NewSource(42))
	res := &bench.Result{Class: "O(n^2)"}
	for _, size := range []int{10, 20, 50, 100, 200, 500, 1000, 2000} {
		secs := 1e-7 * float64(size) * float64(size) * (0.9 + 0.2*rng.Float64())
		res.Samples = append(res.Samples, bench.Sample{
			Size: size,
			Mean: time.Duration(secs * float64(time.Second)),
		})
	}

	est, err := growth.Fit(res)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, est.Exponent, 0.15)
}

func TestFit_AcceptsNonMonotonicSeries(t *testing.T) {
	// A larger size measuring faster than a smaller one (early-termination
	// luck) is legal input; the fit is a summary, not a monotonicity check.
	res := &bench.Result{Class: "O(2^n)"}
	for _, p := range []struct {
		size int
		ms   time.Duration
	}{
		{10, 4 * time.Millisecond},
		{12, 2 * time.Millisecond}, // faster than size 10
		{14, 30 * time.Millisecond},
		{16, 90 * time.Millisecond},
	} {
		res.Samples = append(res.Samples, bench.Sample{Size: p.size, Mean: p.ms})
	}

	est, err := growth.Fit(res)
	require.NoError(t, err)
	assert.Positive(t, est.Exponent)
}

// ------------------------------------------------------------------------
// 3. Filtering.
// ------------------------------------------------------------------------

func TestFit_ExcludesFailedAndNonPositiveSamples(t *testing.T) {
	res := syntheticResult([]int{10, 20, 50, 100}, 1e-6, 2.0)

	// Corrupt the series with entries the fit must ignore.
	res.Samples = append(res.Samples,
		bench.Sample{Size: 200, Mean: 0},                         // zero time
		bench.Sample{Size: 500, Mean: time.Second, Failed: true}, // failed
		bench.Sample{Size: 0, Mean: time.Second},                 // non-positive size
	)

	est, err := growth.Fit(res)
	require.NoError(t, err)
	assert.Len(t, est.Used, 4, "only the clean samples enter the fit")
	assert.InDelta(t, 2.0, est.Exponent, 0.01)
}

// ------------------------------------------------------------------------
// 4. Not computable.
// ------------------------------------------------------------------------

func TestFit_NilResult(t *testing.T) {
	_, err := growth.Fit(nil)
	require.ErrorIs(t, err, growth.ErrNilResult)
}

func TestFit_TooFewUsableSamples(t *testing.T) {
	// No samples at all.
	_, err := growth.Fit(&bench.Result{})
	require.ErrorIs(t, err, growth.ErrFitUnavailable)

	// One clean sample.
	_, err = growth.Fit(syntheticResult([]int{10}, 1e-6, 2.0))
	require.ErrorIs(t, err, growth.ErrFitUnavailable)

	// Two samples, but one is unusable.
	res := syntheticResult([]int{10, 20}, 1e-6, 2.0)
	res.Samples[1].Failed = true
	_, err = growth.Fit(res)
	require.ErrorIs(t, err, growth.ErrFitUnavailable)
}

func TestEstimate_String(t *testing.T) {
	est, err := growth.Fit(syntheticResult([]int{10, 100, 1000}, 1e-6, 2.0))
	require.NoError(t, err)
	assert.Contains(t, est.String(), "O(n^2.0")
	assert.Contains(t, est.String(), "O(n^k)")
}
