package subsetsum

// Exhaustive decides subset-sum by complete enumeration of all 2^n
// include/exclude assignments. It shares the Backtracking contract but
// deliberately removes every shortcut: no pre-filtering, no sorting, no
// overshoot pruning, and no early termination — both branches of every node
// are always explored to completion, even after a satisfying assignment has
// been found.
//
// The full traversal is the feature, not an oversight: its running time is
// independent of the outcome and of where solutions lie, which makes it the
// reference workload for worst-case exponential timing. With WithNodeCounter
// the visited-node count is exactly 2^(n+1)-1 for n elements, regardless of
// input values.
//
// Complexity: Θ(2^n) time, O(n) stack. The input slice is not mutated.
func Exhaustive(nums []int, target int, opts ...Option) (bool, error) {
	// 1) Shared contract validation.
	if err := validate(nums, target); err != nil {
		return false, err
	}

	// 2) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.NodeCounter != nil {
		*cfg.NodeCounter = 0
	}

	s := &searchState{nums: nums, target: target, counter: cfg.NodeCounter}

	return s.full(0, 0), nil
}

// full enumerates the complete assignment tree below (index, sum).
// Leaves (index == len) test the accumulated sum; interior nodes combine
// both branch results with a non-short-circuiting OR.
func (s *searchState) full(index, sum int) bool {
	if s.counter != nil {
		*s.counter++
	}

	// Leaf: every element has been assigned include/exclude.
	if index == len(s.nums) {
		return sum == s.target
	}

	// Evaluate both branches unconditionally before combining, so a hit in
	// the include branch never skips the exclude branch.
	include := s.full(index+1, sum+s.nums[index])
	exclude := s.full(index+1, sum)

	return include || exclude
}
