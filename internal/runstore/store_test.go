package runstore

import (
	"testing"

	"github.com/meisterluk/simrun-go/internal/scan"
	"github.com/meisterluk/simrun-go/internal/token"
)

func chunk(name string, idx, first, last int) token.Chunk {
	return token.Chunk{Text: &token.Text{Name: name, Index: idx, Start: 0, Limit: last + 10}, First: first, Last: last}
}

func TestRetrieveOrdersBySizeThenPosition(t *testing.T) {
	s := New()
	small := scan.Run{A: chunk("a", 0, 1, 3), B: chunk("b", 1, 1, 3)}
	big := scan.Run{A: chunk("a", 0, 10, 20), B: chunk("b", 1, 10, 20)}
	s.Add(small)
	s.Add(big)

	runs := s.Retrieve()
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Size() != 10 {
		t.Errorf("expected the larger run first, got size %d", runs[0].Size())
	}
}

func TestRetrieveTiebreaksByFileIndexThenPosition(t *testing.T) {
	s := New()
	later := scan.Run{A: chunk("a", 1, 5, 9), B: chunk("b", 2, 5, 9)}
	earlier := scan.Run{A: chunk("a", 0, 5, 9), B: chunk("b", 2, 5, 9)}
	s.Add(later)
	s.Add(earlier)

	runs := s.Retrieve()
	if runs[0].A.Text.Index != 0 {
		t.Errorf("expected the lower file index first, got %d", runs[0].A.Text.Index)
	}
}

func TestLen(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	s.Add(scan.Run{A: chunk("a", 0, 1, 5), B: chunk("b", 1, 1, 5)})
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}
