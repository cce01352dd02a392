// Package subsetsum provides three decision procedures for the subset-sum
// problem: given a sequence of positive integers and a non-negative target,
// does some subsequence sum exactly to the target?
//
// The three variants share one contract and differ only in strategy, which
// is the point — they exist to be measured against each other:
//
//   - Backtracking: include/exclude depth-first search with pre-filtering
//     (elements above the target can never participate), ascending sort so
//     running-sum bounds prune earlier, and early termination on the first
//     satisfying assignment. Worst case O(2^n); typical case dominated by
//     where (and whether) a solution sits in the tree, which is the main
//     source of timing variance on random instances.
//   - Exhaustive: the same decision semantics with early termination
//     deliberately removed. Both branches are always explored, guaranteeing
//     the full 2^n traversal regardless of the outcome. This produces a
//     clean, outcome-independent worst-case timing signal.
//   - Dynamic: pseudo-polynomial reachability table over 0..target.
//     O(n·target) time, O(target) memory. The inner loop runs descending so
//     a single element cannot be counted twice within one pass.
//
// Contract edge cases (all variants):
//
//   - Empty sequence:   true iff target == 0.
//   - target == 0:      always true (the empty subset).
//   - Element == target: detected at depth one.
//
// Errors (sentinel):
//
//   - ErrNegativeTarget    if target < 0.
//   - ErrNonPositiveValue  if any element is ≤ 0.
//
// Node counting:
//
//	Backtracking and Exhaustive accept WithNodeCounter to expose the number
//	of search-tree nodes visited. A full traversal over n elements visits
//	exactly 2^(n+1)-1 nodes; Backtracking may visit far fewer.
package subsetsum
