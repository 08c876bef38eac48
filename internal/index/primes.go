package index

// primeTable lists ascending primes of the form 4k+3, each at least
// twice the previous, used to size the forward-reference index's
// bucket table. Sparse spacing bounds the overshoot from the smallest
// prime >= L to at most 2x; the 4k+3 form discourages pathological
// cycles in the modular arithmetic hash1 reduces into.
//
// Ranges from ~14,000 (small inputs) to ~9.6e11; allocLastIndex walks
// downward through it on allocation failure.
var primeTable = []uint64{
	14347,
	28703,
	57467,
	114947,
	229891,
	459799,
	919607,
	1839229,
	3678467,
	7356991,
	14713999,
	29427961,
	58855931,
	117711893,
	235423799,
	470847629,
	941695289,
	1883390591,
	3766781107,
	7533562231,
	15067124467,
	30134248933,
	60268497869,
	120536995739,
	241073991503,
	482147983027,
	964295966099,
}

// primeIndexAtLeast returns the index into primeTable of the smallest
// entry >= n (clamped to the last index), so allocLastIndex can walk
// downward from it on allocation failure.
func primeIndexAtLeast(n uint64) int {
	for i, p := range primeTable {
		if p >= n {
			return i
		}
	}
	return len(primeTable) - 1
}
