package gen

import "fmt"

// Construction constants per instance mode.
const (
	clusterBase    = 1000 // center of the clustered value band
	clusterJitter  = 5    // half-width of the clustered band (±5)
	clusterDivisor = 2    // clustered target = total / 2

	uniformMax     = 1000 // uniform values drawn from 1..uniformMax
	uniformDivisor = 3    // uniform target = total / 3

	primeBoundFactor = 5 // initial sieve bound = size * primeBoundFactor
)

// NewSubsetInstance generates a subset-sum instance of the given size under
// the given mode, deterministically from seed.
//
// Returns ErrBadSize for size < 0 and ErrUnknownMode for an unrecognized
// mode. Size 0 is legal (empty sequence, target 0 or 1 depending on mode);
// it exists so edge-case sweeps can include it.
//
// Complexity: O(size) for clustered/uniform; O(B log log B) for worst-case
// construction, where B is the sieve bound.
func NewSubsetInstance(size int, mode Mode, seed int64) (*SubsetInstance, error) {
	// 1) Validate size.
	if size < 0 {
		return nil, fmt.Errorf("size=%d: %w", size, ErrBadSize)
	}

	// 2) Dispatch per mode; each branch fills nums and target.
	var (
		nums   []int
		target int
	)
	switch mode {
	case ModeClustered:
		nums, target = clusteredInstance(size, seed)
	case ModeUniform:
		nums, target = uniformInstance(size, seed)
	case ModeWorstCase:
		nums, target = worstCaseInstance(size)
	default:
		return nil, fmt.Errorf("mode=%d: %w", int(mode), ErrUnknownMode)
	}

	return &SubsetInstance{
		Size:   size,
		Mode:   mode,
		Seed:   seed,
		Nums:   nums,
		Target: target,
	}, nil
}

// clusteredInstance draws size values from clusterBase±clusterJitter and
// targets half the total. Near-equal values make small satisfying subsets
// rare, so a backtracking search usually has to go deep before it can
// terminate — without removing the possibility of early termination.
func clusteredInstance(size int, seed int64) ([]int, int) {
	rng := rngFromSeed(seed)

	nums := make([]int, size)
	total := 0
	for i := range nums {
		// Uniform in [base-jitter, base+jitter].
		nums[i] = clusterBase - clusterJitter + rng.Intn(2*clusterJitter+1)
		total += nums[i]
	}

	return nums, total / clusterDivisor
}

// uniformInstance draws size values uniformly from 1..uniformMax and targets
// a third of the total, sized to force substantial reachability-table work
// in the pseudo-polynomial variant.
func uniformInstance(size int, seed int64) ([]int, int) {
	rng := rngFromSeed(seed)

	nums := make([]int, size)
	total := 0
	for i := range nums {
		nums[i] = 1 + rng.Intn(uniformMax)
		total += nums[i]
	}

	return nums, total / uniformDivisor
}

// worstCaseInstance takes the first size primes and sets the target one past
// their total. The target is unsatisfiable, so every complete search must
// exhaust its tree; primes additionally resist accidental partial matches
// at intermediate sums. No randomness is involved.
func worstCaseInstance(size int) ([]int, int) {
	nums := firstPrimes(size)

	total := 0
	for _, p := range nums {
		total += p
	}

	return nums, total + 1
}

// firstPrimes returns the first n primes via a sieve of Eratosthenes,
// growing the bound until enough primes are found. The initial bound
// n*primeBoundFactor covers every sweep size the benchmarks use.
func firstPrimes(n int) []int {
	if n == 0 {
		return []int{}
	}

	bound := n * primeBoundFactor
	if bound < 2 {
		bound = 2
	}
	for {
		primes := sieve(bound)
		if len(primes) >= n {
			return primes[:n]
		}
		bound *= 2
	}
}

// sieve returns all primes ≤ bound in ascending order.
func sieve(bound int) []int {
	composite := make([]bool, bound+1)
	primes := make([]int, 0, bound/2)
	for p := 2; p <= bound; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for m := p * p; m <= bound; m += p {
			composite[m] = true
		}
	}

	return primes
}
