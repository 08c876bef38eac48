package scan

import (
	"context"
	"testing"

	"github.com/meisterluk/simrun-go/internal/index"
	"github.com/meisterluk/simrun-go/internal/token"
)

func twoFileStore(a, b []token.ID) (*token.Store, []*token.Text) {
	s := token.NewStore()
	ta := &token.Text{Name: "a", Index: 0, Start: s.Len() + 1}
	for _, id := range a {
		s.Append(token.Token{ID: id, MayStartRun: true})
	}
	ta.Limit = s.Len() + 1

	tb := &token.Text{Name: "b", Index: 1, Start: s.Len() + 1}
	for _, id := range b {
		s.Append(token.Token{ID: id, MayStartRun: true})
	}
	tb.Limit = s.Len() + 1

	s.Seal()
	return s, []*token.Text{ta, tb}
}

func TestScanFindsCrossFileRun(t *testing.T) {
	s, texts := twoFileStore(
		[]token.ID{1, 2, 3, 4, 9},
		[]token.ID{9, 1, 2, 3, 4},
	)
	idx, err := index.Build(context.Background(), s, texts, index.Options{MinRunSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Free()

	sc := New(s, idx, texts, Mode{})
	var runs []Run
	for r := range sc.Scan() {
		runs = append(runs, r)
	}

	found := false
	for _, r := range runs {
		if r.A.Text.Name != r.B.Text.Name && r.Size() == 4 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a size-4 cross-file run, got %v", runs)
	}
}

func TestScanNoSelfExcludesSameFileRuns(t *testing.T) {
	s, texts := twoFileStore(
		[]token.ID{1, 2, 3, 4, 1, 2, 3, 4},
		[]token.ID{9, 9, 9, 9},
	)
	idx, err := index.Build(context.Background(), s, texts, index.Options{MinRunSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Free()

	sc := New(s, idx, texts, Mode{NoSelf: true})
	for r := range sc.Scan() {
		if r.A.Text == r.B.Text {
			t.Errorf("NoSelf mode emitted a same-file run: %v", r)
		}
	}
}

// TestScanRepeatedTokenProducesOneRunNotQuadratic covers the all-
// identical-token case: 1000 copies of the same token, self-compare
// on, must produce a single run rather than one run per chain step.
func TestScanRepeatedTokenProducesOneRunNotQuadratic(t *testing.T) {
	const l = 1000
	ids := make([]token.ID, l)
	for i := range ids {
		ids[i] = 1
	}
	s, texts := twoFileStore(ids, nil)
	// twoFileStore always builds two texts; the second is empty here
	// since b is nil, so only the populated one matters for the scan.
	texts = texts[:1]

	idx, err := index.Build(context.Background(), s, texts, index.Options{MinRunSize: 24})
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Free()

	sc := New(s, idx, texts, Mode{})
	var runs []Run
	for r := range sc.Scan() {
		runs = append(runs, r)
	}

	if len(runs) != 1 {
		t.Fatalf("expected exactly 1 run for an all-repeated-token self-compare, got %d: %v", len(runs), runs)
	}
	if runs[0].Size() != l-1 {
		t.Errorf("expected the single run to span the file offset by 1 (size %d), got %d", l-1, runs[0].Size())
	}
}

func TestScanNewVsOldOnlyCrossesBoundary(t *testing.T) {
	s := token.NewStore()
	tNew := &token.Text{Name: "new", Index: 0, New: true, Start: 1}
	s.Append(token.Token{ID: 1, MayStartRun: true})
	s.Append(token.Token{ID: 2, MayStartRun: true})
	s.Append(token.Token{ID: 3, MayStartRun: true})
	s.Append(token.Token{ID: 4, MayStartRun: true})
	tNew.Limit = s.Len() + 1

	tOld := &token.Text{Name: "old", Index: 1, New: false, Start: s.Len() + 1}
	s.Append(token.Token{ID: 1, MayStartRun: true})
	s.Append(token.Token{ID: 2, MayStartRun: true})
	s.Append(token.Token{ID: 3, MayStartRun: true})
	s.Append(token.Token{ID: 4, MayStartRun: true})
	tOld.Limit = s.Len() + 1
	s.Seal()

	texts := []*token.Text{tNew, tOld}
	idx, err := index.Build(context.Background(), s, texts, index.Options{MinRunSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Free()

	sc := New(s, idx, texts, Mode{NewVsOld: true})
	count := 0
	for r := range sc.Scan() {
		count++
		if r.A.Text.New == r.B.Text.New {
			t.Errorf("NewVsOld mode emitted a same-side run: %v", r)
		}
	}
	if count == 0 {
		t.Error("expected at least one cross-boundary run")
	}
}
