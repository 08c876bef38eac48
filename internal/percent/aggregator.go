// Package percent folds runs into per-ordered-file-pair coverage
// totals and orders them for presentation.
package percent

import (
	"sort"

	"github.com/meisterluk/simrun-go/internal/scan"
	"github.com/meisterluk/simrun-go/internal/token"
)

// Match is one ordered-pair coverage record: how much of fname0 was
// found reproduced inside fname1.
type Match struct {
	From, To *token.Text
	// Covered is the cumulative token count of From found in To.
	// Overlapping runs can push Covered above From's size; the
	// printer clamps the resulting percentage at 100.
	Covered int
}

// Percent returns the clamped integer percentage floor(100*covered/size0).
func (m Match) Percent() int {
	if m.From.Len() == 0 {
		return 0
	}
	p := (100 * m.Covered) / m.From.Len()
	if p > 100 {
		p = 100
	}
	return p
}

// Aggregator accumulates Match records keyed by the ordered pair of
// Text pointers; filenames are interned, so lookup is pointer
// identity. N is small (pairs, not token positions) so a linear list
// is the right structure.
type Aggregator struct {
	matches []*Match
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// find returns the existing Match for (from, to), or nil.
func (a *Aggregator) find(from, to *token.Text) *Match {
	for _, m := range a.matches {
		if m.From == from && m.To == to {
			return m
		}
	}
	return nil
}

// AddRun folds one run into the aggregator. Runs whose two chunks lie
// in the same Text contribute nothing (percentage mode is only
// meaningful across distinct files); every cross-file run contributes
// symmetrically to both ordered pairs.
func (a *Aggregator) AddRun(r scan.Run) {
	if r.A.Text == r.B.Text {
		return
	}
	a.add(r.A.Text, r.B.Text, r.Size())
	a.add(r.B.Text, r.A.Text, r.Size())
}

func (a *Aggregator) add(from, to *token.Text, size int) {
	m := a.find(from, to)
	if m == nil {
		m = &Match{From: from, To: to}
		a.matches = append(a.matches, m)
	}
	m.Covered += size
}

// MainContributorOnly controls whether Show groups of the same
// From-file collapse to just the top entry (`-P`).
type ShowOptions struct {
	MainContributorOnly bool
	// Threshold suppresses entries below this percentage (1..100,
	// default 1).
	Threshold int
}

// Show sorts the accumulated matches by coverage ratio descending,
// groups consecutive same-From entries under their main contributor,
// and returns the ones surviving the threshold filter, in presentation
// order.
func (a *Aggregator) Show(opt ShowOptions) []Match {
	threshold := opt.Threshold
	if threshold <= 0 {
		threshold = 1
	}

	remaining := make([]*Match, len(a.matches))
	copy(remaining, a.matches)
	sort.SliceStable(remaining, func(i, j int) bool {
		return ratio(remaining[i]) > ratio(remaining[j])
	})

	var out []Match
	for len(remaining) > 0 {
		top := remaining[0]
		rest := remaining[1:]

		group := []*Match{top}
		var kept []*Match
		for _, m := range rest {
			if m.From == top.From {
				group = append(group, m)
			} else {
				kept = append(kept, m)
			}
		}
		remaining = kept

		for i, m := range group {
			if i > 0 && opt.MainContributorOnly {
				break
			}
			if m.Percent() < threshold {
				continue
			}
			out = append(out, *m)
		}
	}
	return out
}

func ratio(m *Match) float64 {
	if m.From.Len() == 0 {
		return 0
	}
	return float64(m.Covered) / float64(m.From.Len())
}
