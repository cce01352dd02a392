// Package timing provides the scoped measurement primitive of the benchmark
// pipeline: wrap exactly one invocation of an operation, record its
// high-resolution wall-clock duration, and hand back the operation's result
// untouched.
//
// Measurement discipline:
//
//   - Nothing but the operation itself sits between the two clock reads — no
//     allocation, formatting, or I/O is attributed to the timed interval.
//   - time.Since uses the runtime's monotonic clock, so wall-clock jumps
//     (NTP, suspend) do not corrupt readings.
//   - Transient noise is handled by repetition (MeasureN and Trials.Mean),
//     never by retrying individual measurements.
//
// Side channel:
//
//	Collect reports descriptive host metadata (CPU identifier, logical CPU
//	count, total RAM, OS) so results can be labeled with their provenance.
//	It is informational only and plays no part in any timed interval.
//
// FormatDuration renders durations for human-facing logs (µs → hours); it
// exists for reporting and is never called inside a measurement.
package timing
