package index

import (
	"testing"

	"github.com/meisterluk/simrun-go/internal/token"
)

func buildStore(ids ...token.ID) *token.Store {
	s := token.NewStore()
	for _, id := range ids {
		s.Append(token.Token{ID: id, MayStartRun: true})
	}
	s.Seal()
	return s
}

func TestHash1Deterministic(t *testing.T) {
	s := buildStore(1, 2, 3, 4, 5, 6, 7, 8)
	sample := hash1SamplePositions(4)

	h1 := hash1(s, 1, sample)
	h2 := hash1(s, 1, sample)
	if h1 != h2 {
		t.Errorf("hash1 not deterministic: %d != %d", h1, h2)
	}
}

func TestHash1DiffersForDifferentWindows(t *testing.T) {
	s := buildStore(1, 2, 3, 4, 9, 9, 9, 9)
	sample := hash1SamplePositions(4)

	if hash1(s, 1, sample) == hash1(s, 5, sample) {
		t.Error("expected different windows to usually hash differently")
	}
}

func TestHash2MatchesEqualWindows(t *testing.T) {
	s := buildStore(1, 2, 3, 1, 2, 3)
	if hash2(s, 1, 3) != hash2(s, 4, 3) {
		t.Error("expected identical windows to produce identical hash2 values")
	}
}

func TestRotateLeft1StaysNonNegative(t *testing.T) {
	v := uint32(0x7fffffff)
	for i := 0; i < 64; i++ {
		v = rotateLeft1(v)
		if v&(1<<31) != 0 {
			t.Fatalf("rotateLeft1 set the high bit at iteration %d: %x", i, v)
		}
	}
}

func TestPrimeIndexAtLeastAscends(t *testing.T) {
	if primeTable[primeIndexAtLeast(100)] < 100 {
		t.Error("expected the returned prime to be >= 100")
	}
	last := len(primeTable) - 1
	if primeIndexAtLeast(primeTable[last]+1) != last {
		t.Error("expected an out-of-range request to clamp to the last index")
	}
}
