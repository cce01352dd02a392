// Package growth types: the fitted estimate and its sentinel errors.
package growth

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Fit.
var (
	// ErrNilResult indicates that a nil bench.Result was supplied.
	ErrNilResult = errors.New("growth: result is nil")

	// ErrFitUnavailable indicates that fewer than two usable positive
	// (size, time) pairs remained after filtering.
	ErrFitUnavailable = errors.New("growth: fit unavailable, need at least two positive samples")
)

// minFitSamples is the smallest sample count a slope can be fitted through.
const minFitSamples = 2

// Point is one (size, mean seconds) pair that entered the fit.
type Point struct {
	// Size is the input size.
	Size int

	// Seconds is the mean measured time at that size, always > 0 here.
	Seconds float64
}

// Estimate is the fitted power-law summary of one benchmark result.
//
// Derived data: computed once per Result, never mutated.
type Estimate struct {
	// Exponent is the fitted k in time ≈ c·size^k (the log-log slope).
	Exponent float64

	// Coefficient is the fitted c (exp of the log-log intercept).
	Coefficient float64

	// Used is the filtered subsequence of samples the fit actually saw.
	Used []Point

	// Class is the theoretical complexity label carried over from the
	// benchmark result, reported side by side with the empirical exponent.
	Class string
}

// String renders the estimate for human-facing comparison output.
func (e Estimate) String() string {
	return fmt.Sprintf("empirical O(n^%.2f) vs theoretical %s (%d samples)", e.Exponent, e.Class, len(e.Used))
}
