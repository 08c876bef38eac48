package index

import "github.com/meisterluk/simrun-go/internal/token"

// hash1SamplePositions returns the 24 sample offsets (relative to a
// window start) the primary hash reads, independent of R so that
// hashing cost never grows with the run-size threshold. Positions
// duplicate when r < 24, which is harmless for a filter hash.
func hash1SamplePositions(r int) [24]int {
	var pos [24]int
	for n := 0; n < 24; n++ {
		pos[n] = (2*n*(r-1) + 23) / 46
	}
	return pos
}

// rotateLeft1 rotates v left by one bit over its 31 low bits, folding
// the bit that falls off the top back into bit 0 and clearing the
// high bit, keeping the accumulator non-negative when read as signed
// 32-bit.
func rotateLeft1(v uint32) uint32 {
	v &^= 1 << 31
	carry := (v >> 30) & 1
	v = (v << 1) & 0x7fffffff
	v |= carry
	return v
}

// hash1 computes the primary rolling hash of the R-token window
// starting at position i, sampling 24 positions spread evenly across
// the window. The result is not reduced; the primary pass takes it
// modulo the bucket-table prime. sample holds the precomputed offsets from
// hash1SamplePositions(r).
func hash1(store *token.Store, i int, sample [24]int) uint32 {
	var acc uint32
	for _, off := range sample {
		acc = rotateLeft1(acc)
		acc ^= uint32(store.At(i + off).ID)
	}
	return acc
}
