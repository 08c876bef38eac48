// Package scan walks the forward-reference index and extracts maximal
// matching runs, honoring three orthogonal comparison-mode flags.
package scan

import "github.com/meisterluk/simrun-go/internal/token"

// Run is an unordered pair of chunks with equal token subsequences,
// maximal in both directions. By convention A is the earlier-starting
// chunk (canonical orientation).
type Run struct {
	A, B token.Chunk
}

// Size returns the shared chunk length.
func (r Run) Size() int {
	return r.A.Size()
}

// Mode bundles the three orthogonal file-pair comparison flags.
type Mode struct {
	// NoSelf suppresses runs fully inside one Text (`-s`).
	NoSelf bool
	// NewVsOld keeps only runs crossing the new/old separator (`-S`).
	NewVsOld bool
}

func canonical(a, b token.Chunk) Run {
	if a.First <= b.First {
		return Run{A: a, B: b}
	}
	return Run{A: b, B: a}
}
