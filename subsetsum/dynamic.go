package subsetsum

// Dynamic decides subset-sum with a pseudo-polynomial reachability table.
//
// table[s] means "some subset of the elements processed so far sums to s".
// table[0] starts true (the empty subset); each element then extends the
// reachable set. The inner loop iterates target down to the element's value:
// descending order is mandatory — an ascending pass would let one element
// contribute to the same sum twice (table[i-v] could already reflect v).
//
// Elements greater than the target are skipped; they cannot participate and
// keeping them would only widen the loop bounds check.
//
// Complexity: O(n·target) time, O(target) memory — polynomial in the numeric
// magnitude of the target rather than in the element count alone.
func Dynamic(nums []int, target int) (bool, error) {
	// 1) Shared contract validation.
	if err := validate(nums, target); err != nil {
		return false, err
	}

	// 2) Reachability table over sums 0..target; only the empty sum is
	//    reachable before any element is processed.
	table := make([]bool, target+1)
	table[0] = true

	// 3) Fold each usable element into the table, descending.
	for _, v := range nums {
		if v > target {
			continue
		}
		for i := target; i >= v; i-- {
			table[i] = table[i] || table[i-v]
		}
	}

	return table[target], nil
}
