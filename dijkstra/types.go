// Package dijkstra types: options, sentinel errors, and the Unreachable
// marker distance.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices with no path from the
// source. Using the maximum int64 keeps comparisons branch-free: any real
// relaxation strictly improves on it.
const Unreachable int64 = math.MaxInt64

// NoPredecessor marks a vertex without a recorded predecessor in the
// ReturnPath slice (the source itself, or an unreachable vertex).
const NoPredecessor = -1

// Sentinel errors returned by Distances.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the configured source vertex does
	// not exist in the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrBadMaxDistance indicates a negative MaxDistance configuration.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a single Distances invocation.
//
// Source      — starting vertex index (must exist in the graph).
// ReturnPath  — if true, the predecessor slice is populated and returned.
// MaxDistance — cap on explored distances; vertices farther than this are
// left Unreachable. Default Unreachable (no cap).
type Options struct {
	Source      int
	ReturnPath  bool
	MaxDistance int64
}

// Option is a functional option for configuring Distances.
type Option func(*Options)

// Source sets the starting vertex for the computation.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables predecessor tracking for path reconstruction.
// Without it the predecessor slice is nil and no tracking cost is paid.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration at the given distance. Vertices whose
// shortest distance would exceed it stay Unreachable. Panics on a negative
// cap — invalid configuration, not a runtime condition.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the baseline configuration: source 0, no
// predecessor tracking, no distance cap.
func DefaultOptions() Options {
	return Options{
		Source:      0,
		ReturnPath:  false,
		MaxDistance: Unreachable,
	}
}
