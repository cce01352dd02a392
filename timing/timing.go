package timing

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadTrialCount indicates that a repetition count below 1 was requested.
var ErrBadTrialCount = errors.New("timing: trial count must be at least 1")

// Trials is the full list of per-trial durations from one repeated
// measurement.
type Trials []time.Duration

// Mean returns the arithmetic mean of the trials, or 0 for an empty list.
func (t Trials) Mean() time.Duration {
	if len(t) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range t {
		total += d
	}

	return total / time.Duration(len(t))
}

// Seconds returns the trials converted to float64 seconds, in order.
func (t Trials) Seconds() []float64 {
	out := make([]float64, len(t))
	for i, d := range t {
		out[i] = d.Seconds()
	}

	return out
}

// Measure runs op exactly once and returns its wall-clock duration together
// with op's own result and error, both passed through unaltered.
//
// The timed interval covers nothing but the op call: the two clock reads are
// adjacent to it, and all bookkeeping happens outside them. On error the
// elapsed time is still reported — a failed trial still consumed it.
func Measure[T any](op func() (T, error)) (time.Duration, T, error) {
	start := time.Now()
	result, err := op()
	elapsed := time.Since(start)

	return elapsed, result, err
}

// MeasureN runs op n times, returning the full per-trial duration list and
// the result of the final trial. Use Trials.Mean for the averaged reading.
//
// Returns ErrBadTrialCount for n < 1. If a trial fails, measurement stops
// at that trial; the durations collected so far (including the failed
// trial's) are returned alongside the wrapped error.
func MeasureN[T any](op func() (T, error), n int) (Trials, T, error) {
	var last T
	if n < 1 {
		return nil, last, fmt.Errorf("n=%d: %w", n, ErrBadTrialCount)
	}

	trials := make(Trials, 0, n)
	for i := 0; i < n; i++ {
		elapsed, result, err := Measure(op)
		trials = append(trials, elapsed)
		if err != nil {
			return trials, last, fmt.Errorf("timing: trial %d/%d: %w", i+1, n, err)
		}
		last = result
	}

	return trials, last, nil
}
