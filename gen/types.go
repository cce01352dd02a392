// Package gen types: instance modes, the subset-sum instance value, and
// sentinel errors.
package gen

import "errors"

// BenchmarkSeed is the default seed for reproducible instance generation
// across runs and machines.
const BenchmarkSeed int64 = 42

// Sentinel errors returned by instance constructors.
var (
	// ErrBadSize indicates a negative (or, for graphs, non-positive) size.
	ErrBadSize = errors.New("gen: invalid instance size")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("gen: edge probability must lie in [0,1]")

	// ErrBadWeightRange indicates an empty or negative weight interval.
	ErrBadWeightRange = errors.New("gen: invalid weight range")

	// ErrUnknownMode indicates an unrecognized subset-sum instance mode.
	ErrUnknownMode = errors.New("gen: unknown instance mode")
)

// Mode selects the subset-sum instance construction strategy.
//
// The random/worst-case distinction is a first-class configuration choice:
// random instances often terminate early and time low or erratically, while
// worst-case constructions force the full traversal. Benchmarks pick the
// mode that matches the signal they intend to measure.
type Mode int

const (
	// ModeClustered generates values in 1000±5 with target = total/2.
	ModeClustered Mode = iota

	// ModeUniform generates values in 1..1000 with target = total/3.
	ModeUniform

	// ModeWorstCase generates the first size primes with target = total+1,
	// an impossible target. Deterministic; ignores the seed.
	ModeWorstCase
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case ModeClustered:
		return "clustered"
	case ModeUniform:
		return "uniform"
	case ModeWorstCase:
		return "worst-case"
	default:
		return "unknown"
	}
}

// SubsetInstance is an immutable subset-sum problem instance, identified by
// the generating (Size, Mode, Seed) triple.
type SubsetInstance struct {
	// Size is the number of elements generated.
	Size int

	// Mode is the construction strategy that produced the instance.
	Mode Mode

	// Seed is the seed the instance was generated from (0 for ModeWorstCase).
	Seed int64

	// Nums is the generated element sequence. Treat as read-only.
	Nums []int

	// Target is the decision target paired with Nums.
	Target int
}
