// Package compare types: composite results and the two-family sweep
// configuration.
package compare

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/growthlab/bench"
	"github.com/katalvlaran/growthlab/gen"
	"github.com/katalvlaran/growthlab/growth"
	"github.com/katalvlaran/growthlab/timing"
)

// Reference sweep ranges and trial counts per family. The exponential
// ranges stop where minute-scale wall time begins on commodity hardware;
// the polynomial range extends far beyond them, which is the point of the
// comparison.
var (
	// DefaultBacktrackingSizes sweeps the pruned search on clustered
	// random instances.
	DefaultBacktrackingSizes = []int{10, 15, 20, 22, 24, 26, 28, 30}

	// DefaultExhaustiveSizes sweeps the full-traversal search on
	// worst-case instances; every step roughly doubles the work.
	DefaultExhaustiveSizes = []int{10, 12, 15, 18, 20, 21, 22, 23}

	// DefaultDynamicSizes sweeps the pseudo-polynomial table fill on
	// uniform instances.
	DefaultDynamicSizes = []int{5, 10, 20, 50, 100, 200, 500, 1000}

	// DefaultShortestPathSizes sweeps Dijkstra over random graphs by
	// vertex count.
	DefaultShortestPathSizes = []int{10, 50, 100, 200, 500, 1000, 1500, 2000}
)

// Per-family default trial counts.
const (
	DefaultBacktrackingTrials = 10
	DefaultExhaustiveTrials   = 5
	DefaultDynamicTrials      = 10
	DefaultShortestPathTrials = 3
)

// Default random-graph parameters for the shortest-path family.
const (
	DefaultEdgeProbability = 0.5
	DefaultMinWeight       = int64(1)
	DefaultMaxWeight       = int64(100)
)

// FamilyReport pairs one family's benchmark result with its fitted
// estimate.
type FamilyReport struct {
	// Result is the collected size→time series. Always present.
	Result *bench.Result

	// Estimate is the fitted power-law summary; zero value when FitErr
	// is set.
	Estimate growth.Estimate

	// FitErr records why the fit was not computable, nil otherwise.
	FitErr error
}

// Comparison is the composite outcome of one exponential-vs-polynomial
// experiment.
type Comparison struct {
	// Exponential reports the exponential-class family.
	Exponential FamilyReport

	// Polynomial reports the polynomial-class family.
	Polynomial FamilyReport

	// System describes the host the measurements ran on (side channel).
	System timing.SystemInfo
}

// Options configures a Compare run. Both families share the seed, cutoff,
// and logger; sizes and trial counts are per family.
type Options struct {
	ExponentialTarget bench.Target
	ExponentialSizes  []int
	ExponentialTrials int

	PolynomialTarget bench.Target
	PolynomialSizes  []int
	PolynomialTrials int

	Cutoff time.Duration
	Seed   int64
	Logger zerolog.Logger
}

// Option is a functional option for configuring Compare.
type Option func(*Options)

// WithExponentialFamily replaces the exponential-class target and its sweep.
func WithExponentialFamily(t bench.Target, sizes []int, trials int) Option {
	return func(o *Options) {
		o.ExponentialTarget = t
		o.ExponentialSizes = sizes
		o.ExponentialTrials = trials
	}
}

// WithPolynomialFamily replaces the polynomial-class target and its sweep.
func WithPolynomialFamily(t bench.Target, sizes []int, trials int) Option {
	return func(o *Options) {
		o.PolynomialTarget = t
		o.PolynomialSizes = sizes
		o.PolynomialTrials = trials
	}
}

// WithCutoff bounds each family's sweep (see bench.WithCutoff).
func WithCutoff(d time.Duration) Option {
	return func(o *Options) {
		o.Cutoff = d
	}
}

// WithSeed fixes the shared sweep seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger directs progress for both sweeps to the given logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// defaultCutoff bounds each default family sweep.
const defaultCutoff = 5 * time.Minute

// DefaultOptions returns the reference experiment: backtracking subset-sum
// on clustered instances versus Dijkstra on random graphs.
func DefaultOptions() Options {
	return Options{
		ExponentialTarget: Backtracking(),
		ExponentialSizes:  DefaultBacktrackingSizes,
		ExponentialTrials: DefaultBacktrackingTrials,
		PolynomialTarget:  ShortestPath(DefaultEdgeProbability, DefaultMinWeight, DefaultMaxWeight),
		PolynomialSizes:   DefaultShortestPathSizes,
		PolynomialTrials:  DefaultShortestPathTrials,
		Cutoff:            defaultCutoff,
		Seed:              gen.BenchmarkSeed,
		Logger:            zerolog.Nop(),
	}
}
