// Package growth fits benchmark samples to the power-law model
// time ≈ c·size^k and reports the empirical exponent k.
//
// Method:
//
//	Take the natural logarithm of each size and each mean time, then run
//	ordinary least-squares linear regression of ln(time) against ln(size).
//	The slope is the fitted exponent k; exp(intercept) estimates c. This is
//	the textbook simple-linear-regression formulation (slope = covariance /
//	variance) applied in log-log space.
//
// Robustness posture:
//
//   - Failed samples and non-positive sizes or times are excluded before
//     fitting — a logarithm must never see them.
//   - Noisy, non-monotonic series are acceptable input: a larger size timing
//     faster than a smaller one (early-termination luck) merely perturbs the
//     fit. The estimate is a statistical summary, not a monotonicity claim.
//   - The fit is reported exactly as computed, next to the theoretical
//     complexity label. It is never nudged toward the theoretical class:
//     the gap between the two is the observation, not an error to correct.
//     Run-to-run exponent spread on early-terminating search (roughly n^2.6
//     to n^6.8 across runs and machines for the backtracking family) is
//     expected behavior of the measurement approach.
//
// Errors (sentinel):
//
//   - ErrNilResult      if no benchmark result is supplied.
//   - ErrFitUnavailable if fewer than two usable (size, time) pairs remain
//     after filtering — the estimator reports "not computable" rather than
//     fabricating a slope from a point.
//
// An Estimate is derived data: recomputed on demand from a bench.Result and
// never mutated in place.
package growth
