// Package bench drives an algorithm across a sweep of input sizes and
// assembles the (size, time) samples the growth-rate estimator consumes.
//
// Pipeline position:
//
//	gen (instances) → algorithm under test (timed by timing) → bench
//	accumulates Samples into a Result → growth fits the exponent.
//
// A Target bundles what the runner needs to know about an algorithm family:
// a name, its theoretical complexity label, and a Prepare hook that builds
// the instance for a given (size, seed) and returns the single-invocation
// closure to be timed. Instance construction is never part of the timed
// interval.
//
// Policy (correctness-relevant, not cosmetic):
//
//   - Sizes run strictly increasing; the configuration is rejected otherwise.
//   - One instance per size, generated from a per-size sub-seed derived from
//     the sweep seed — the same sweep configuration reproduces the same
//     instances on any machine.
//   - Cutoff: when a trial or a size's mean exceeds the configured cutoff,
//     the remaining (larger) sizes are abandoned; samples already collected
//     stay in the Result. The check is a cooperative checkpoint between
//     trials — an oversized trial still runs to completion first.
//   - Failure: an error from instance generation or from a timed trial marks
//     that size's sample failed and the sweep continues. Partial results
//     beat an aborted run.
//
// Execution is single-threaded and synchronous: one trial at a time, no
// shared state beyond the runner's own growing sample list.
//
// Logging uses zerolog; the default logger is zerolog.Nop(), so library use
// stays silent unless a caller opts in with WithLogger.
package bench
