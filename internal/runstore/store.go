// Package runstore collects discovered runs and reports them back in
// a stable, deterministic order: size descending, then file index and
// position ascending so results don't depend on scan order. It favors
// a growable array plus one sort over an intrusive linked list, for
// the same flat-array-over-pointer-graph reasons used elsewhere.
package runstore

import (
	"sort"

	"github.com/meisterluk/simrun-go/internal/scan"
)

// Store accumulates runs as they are discovered. Insertion is O(1)
// amortized append; Retrieve sorts once and returns the final order.
type Store struct {
	runs []scan.Run
}

// New returns an empty Store.
func New() *Store {
	return &Store{runs: make([]scan.Run, 0, 64)}
}

// Add appends r to the store.
func (s *Store) Add(r scan.Run) {
	s.runs = append(s.runs, r)
}

// Len returns the number of runs currently held.
func (s *Store) Len() int {
	return len(s.runs)
}

// Retrieve returns every stored run sorted by (size desc, first
// file index asc, first position asc), so the result is independent
// of the order files were compared in.
func (s *Store) Retrieve() []scan.Run {
	sort.SliceStable(s.runs, func(i, j int) bool {
		a, b := s.runs[i], s.runs[j]
		if a.Size() != b.Size() {
			return a.Size() > b.Size()
		}
		if a.A.Text.Index != b.A.Text.Index {
			return a.A.Text.Index < b.A.Text.Index
		}
		return a.A.First < b.A.First
	})
	return s.runs
}
