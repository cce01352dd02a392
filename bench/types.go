// Package bench types: the Target contract, Sample/Result collection, and
// sweep configuration.
package bench

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/growthlab/gen"
	"github.com/katalvlaran/growthlab/timing"
)

// Sentinel errors returned by Run.
var (
	// ErrNilTarget indicates that no Target was supplied.
	ErrNilTarget = errors.New("bench: target is nil")

	// ErrNoSizes indicates an empty size sweep.
	ErrNoSizes = errors.New("bench: at least one size is required")

	// ErrUnsortedSizes indicates a size sequence that is not strictly
	// increasing. Increasing order is what makes cutoff abandonment sound:
	// everything after the offending size is guaranteed at least as large.
	ErrUnsortedSizes = errors.New("bench: sizes must be strictly increasing")

	// ErrBadTrials indicates a trial count below 1.
	ErrBadTrials = errors.New("bench: trials must be at least 1")

	// ErrBadCutoff indicates a negative cutoff duration.
	ErrBadCutoff = errors.New("bench: cutoff must be non-negative")
)

// Target is an algorithm family as seen by the runner.
//
// Prepare builds the instance for one (size, seed) pair and returns a
// closure that runs the algorithm on it exactly once, reporting the
// decision outcome. The closure is what gets timed; Prepare itself is not.
type Target interface {
	// Name identifies the algorithm family in results and logs.
	Name() string

	// Class is the theoretical complexity label, e.g. "O(2^n)".
	Class() string

	// Prepare generates the instance for the given size deterministically
	// from seed and returns the single-invocation run closure.
	Prepare(size int, seed int64) (func() (bool, error), error)
}

// Sample is the measured record for one size of a sweep.
type Sample struct {
	// Size is the input size this sample was measured at.
	Size int

	// Trials holds every per-trial duration collected for this size.
	Trials timing.Trials

	// Mean is the arithmetic mean of Trials.
	Mean time.Duration

	// Outcome is the algorithm's decision result (last completed trial).
	Outcome bool

	// Failed marks a sample whose generation or measurement errored.
	// Failed samples are excluded from fitting but kept for the record.
	Failed bool

	// Err is the failure cause when Failed is set, nil otherwise.
	Err error
}

// Result is the ordered sample collection of one sweep for one algorithm.
//
// Invariant: sample sizes are strictly increasing (inherited from the
// validated configuration), and each Mean is the mean of its Trials.
type Result struct {
	// Algorithm is the measured family's name.
	Algorithm string

	// Class is the family's theoretical complexity label.
	Class string

	// Seed is the sweep-level seed the per-size sub-seeds derive from.
	Seed int64

	// Samples holds one entry per attempted size, in sweep order.
	Samples []Sample
}

// Sizes returns the attempted sizes in sweep order (failed ones included).
func (r *Result) Sizes() []int {
	out := make([]int, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Size
	}

	return out
}

// MeanSeconds returns each sample's mean duration in seconds, aligned with
// Sizes(). Failed samples report 0.
func (r *Result) MeanSeconds() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		if !s.Failed {
			out[i] = s.Mean.Seconds()
		}
	}

	return out
}

// Options configures one sweep.
//
// Sizes  — strictly increasing input sizes to measure.
// Trials — measured invocations per size (averaged).
// Cutoff — wall-clock bound; 0 disables abandonment.
// Seed   — sweep seed; per-size instance seeds derive from it.
// Logger — progress sink; zerolog.Nop() by default.
type Options struct {
	Sizes  []int
	Trials int
	Cutoff time.Duration
	Seed   int64
	Logger zerolog.Logger
}

// Option is a functional option for configuring a sweep.
type Option func(*Options)

// WithSizes sets the size sweep. Validated by Run.
func WithSizes(sizes ...int) Option {
	return func(o *Options) {
		o.Sizes = sizes
	}
}

// WithTrials sets the number of measured invocations per size.
func WithTrials(n int) Option {
	return func(o *Options) {
		o.Trials = n
	}
}

// WithCutoff bounds total sweep time: once a trial or a size's mean exceeds
// d, remaining larger sizes are abandoned. Zero disables the bound.
func WithCutoff(d time.Duration) Option {
	return func(o *Options) {
		o.Cutoff = d
	}
}

// WithSeed fixes the sweep seed for reproducible instances.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger directs sweep progress to the given zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Default sweep configuration.
const (
	defaultTrials = 3
	defaultCutoff = 5 * time.Minute
)

// DefaultOptions returns the baseline sweep configuration: 3 trials per
// size, a 5-minute cutoff, the shared benchmark seed, and a silent logger.
func DefaultOptions() Options {
	return Options{
		Trials: defaultTrials,
		Cutoff: defaultCutoff,
		Seed:   gen.BenchmarkSeed,
		Logger: zerolog.Nop(),
	}
}
