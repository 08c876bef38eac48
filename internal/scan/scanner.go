package scan

import (
	"github.com/meisterluk/simrun-go/internal/index"
	"github.com/meisterluk/simrun-go/internal/token"
)

// Scanner walks an already-built forward-reference index, extending
// each candidate window into a maximal run and filtering by Mode.
type Scanner struct {
	store *token.Store
	idx   *index.Index
	texts []*token.Text
	mode  Mode
}

// New returns a Scanner over idx, built from store and texts.
func New(store *token.Store, idx *index.Index, texts []*token.Text, mode Mode) *Scanner {
	return &Scanner{store: store, idx: idx, texts: texts, mode: mode}
}

// Scan emits every maximal run on the returned channel, closing it
// once the walk completes. The emission order within one call is
// left-to-right by i, ascending; internal/runstore imposes the final
// stable report order across the whole set.
//
// For each i, the chain walk stops at the first partner j that passes
// every filter, the equality check, and left-maximality: later j's in
// the same chain are, by construction, right-shifted re-matches of
// the same repeated content and would only re-report a sub-run
// subsumed by the one already emitted. Without this break, a position
// with many plausible partners (e.g. a long run of one repeated
// token) would emit one run per chain step instead of one run total.
func (s *Scanner) Scan() <-chan Run {
	out := make(chan Run)
	go func() {
		defer close(out)
		r := s.idx.MinRunSize()

		for _, ti := range s.texts {
			for i := ti.Start; i+r-1 < ti.Limit; i++ {
				for j := s.idx.Forward(i); j != 0; j = s.idx.Forward(j) {
					tj := s.textOf(j)
					if tj == nil {
						continue
					}
					if s.mode.NoSelf && tj == ti {
						continue
					}
					if s.mode.NewVsOld && tj.New == ti.New {
						continue
					}
					if j+r-1 >= tj.Limit {
						continue
					}
					if !equalWindow(s.store, i, j, r) {
						continue
					}
					if !leftMaximal(s.store, i, j, ti, tj) {
						continue
					}

					size := extend(s.store, i, j, ti, tj)
					a := token.Chunk{Text: ti, First: i, Last: i + size}
					b := token.Chunk{Text: tj, First: j, Last: j + size}
					out <- canonical(a, b)
					break
				}
			}
		}
	}()
	return out
}

// textOf returns the Text containing position pos, or nil if none of
// s.texts claims it (should not happen for positions produced by the
// index, but guards against a malformed text list).
func (s *Scanner) textOf(pos int) *token.Text {
	for _, t := range s.texts {
		if t.Contains(pos) {
			return t
		}
	}
	return nil
}

// equalWindow verifies T[i..i+r-1] == T[j..j+r-1] token by token. The
// forward-reference hashes are probabilistic; every candidate must be
// confirmed before it can be extended or emitted.
func equalWindow(store *token.Store, i, j, r int) bool {
	for k := 0; k < r; k++ {
		if !store.Equal(i+k, j+k) {
			return false
		}
	}
	return true
}

// extend grows the matching window as far right as both chunks'
// texts permit, returning the maximal size.
func extend(store *token.Store, i, j int, ti, tj *token.Text) int {
	size := 0
	for i+size < ti.Limit && j+size < tj.Limit && store.Equal(i+size, j+size) {
		size++
	}
	return size
}

// leftMaximal reports whether the match starting at i/j cannot be
// extended to the left: either one side is already at its text's
// start, or the predecessor tokens differ.
func leftMaximal(store *token.Store, i, j int, ti, tj *token.Text) bool {
	if i == ti.Start || j == tj.Start {
		return true
	}
	return !store.Equal(i-1, j-1)
}
