// Package subsetsum options and sentinel errors shared by the three
// decision-procedure variants.
package subsetsum

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the subset-sum variants.
var (
	// ErrNegativeTarget indicates that a negative target was supplied.
	// The contract is defined over non-negative targets only.
	ErrNegativeTarget = errors.New("subsetsum: target must be non-negative")

	// ErrNonPositiveValue indicates that the input sequence contains an
	// element ≤ 0. The contract is defined over positive integers; zero or
	// negative elements would silently change pruning semantics.
	ErrNonPositiveValue = errors.New("subsetsum: sequence elements must be positive")
)

// Options configures a single subset-sum invocation.
//
// NodeCounter — optional pointer incremented once per visited search-tree
// node (Backtracking and Exhaustive only; Dynamic has no search tree).
// Nil disables counting and keeps the hot path free of the extra store.
type Options struct {
	NodeCounter *uint64
}

// Option is a functional option for configuring a subset-sum invocation.
type Option func(*Options)

// WithNodeCounter records the number of search-tree nodes visited into *c.
// The counter is reset to zero at the start of the invocation.
func WithNodeCounter(c *uint64) Option {
	return func(o *Options) {
		o.NodeCounter = c
	}
}

// DefaultOptions returns the zero configuration: no node counting.
func DefaultOptions() Options {
	return Options{}
}

// validate enforces the shared contract: non-negative target and strictly
// positive elements. Fails fast on the first violation.
func validate(nums []int, target int) error {
	if target < 0 {
		return fmt.Errorf("target=%d: %w", target, ErrNegativeTarget)
	}
	for i, v := range nums {
		if v <= 0 {
			return fmt.Errorf("nums[%d]=%d: %w", i, v, ErrNonPositiveValue)
		}
	}

	return nil
}
