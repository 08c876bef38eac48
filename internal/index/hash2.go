package index

import "github.com/meisterluk/simrun-go/internal/token"

// hash2Width is the bit width of the secondary hash's comparison key;
// it needs to be at least 40 bits so the modular collisions hash1
// accepts get cleaned up against a much wider, unmodded signature.
const hash2Width = 64

// hash2 computes the secondary, wide sample-based hash of the R-token
// window starting at position i. Unlike hash1 it is never reduced
// modulo anything; its return value is itself the comparison key a
// chain-walk equality check is based on.
func hash2(store *token.Store, i, r int) uint64 {
	last := 23
	samples := [5]int{0, last, last / 2, last / 4, 3 * last / 4}

	var acc uint64
	for k, samplePos := range samples {
		off := samplePos
		if off >= r {
			off = r - 1
		}
		shift := uint((hash2Width * k) / 5)
		v := uint64(uint32(store.At(i + off).ID))
		acc ^= v << shift
	}
	return acc
}
