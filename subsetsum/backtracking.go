package subsetsum

import "sort"

// Backtracking decides subset-sum by depth-first include/exclude search with
// pruning and early termination.
//
// Pruning rules, applied in order:
//  1. Pre-filter: elements greater than target are dropped up front — they
//     can never participate in a satisfying subset.
//  2. Ascending sort: small elements first makes the running-sum bound
//     (rule 3) trigger earlier in the tree.
//  3. Overshoot: a branch whose running sum exceeds target is abandoned.
//  4. Early termination: the first branch whose running sum equals target
//     returns success immediately, short-circuiting the remaining tree.
//
// Early termination makes the running time heavily dependent on where a
// satisfying subset lies — or whether one exists at all. Callers measuring
// this variant on random instances should expect wide variance; Exhaustive
// provides the outcome-independent signal.
//
// Complexity: O(2^n) worst case, O(n) stack. The input slice is not mutated.
func Backtracking(nums []int, target int, opts ...Option) (bool, error) {
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

	// 3) Pre-filter elements above the target into a private copy, then
	//    sort ascending. The copy keeps the caller's slice intact.
	filtered := make([]int, 0, len(nums))
	for _, v := range nums {
		if v <= target {
			filtered = append(filtered, v)
		}
	}
	sort.Ints(filtered)

	// 4) Depth-first search over include/exclude choices.
	r := &searchState{nums: filtered, target: target, counter: cfg.NodeCounter}

	return r.prune(0, 0), nil
}

// searchState carries the immutable inputs of one backtracking run so the
// recursion only threads (index, sum) through the stack.
type searchState struct {
	nums    []int
	target  int
	counter *uint64
}

// prune explores the subtree rooted at (index, sum) and reports whether any
// completion reaches the target. Success propagates immediately upward.
func (s *searchState) prune(index, sum int) bool {
	if s.counter != nil {
		*s.counter++
	}

	// Early termination: current selection already sums to target.
	if sum == s.target {
		return true
	}

	// Dead branch: sequence exhausted or running sum overshot.
	// Elements are positive, so an overshoot can never recover.
	if index >= len(s.nums) || sum > s.target {
		return false
	}

	// Include nums[index], then exclude it. Either success short-circuits.
	if s.prune(index+1, sum+s.nums[index]) {
		return true
	}

	return s.prune(index+1, sum)
}
