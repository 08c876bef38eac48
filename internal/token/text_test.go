package token

import "testing"

func TestTextLenAndContains(t *testing.T) {
	tx := &Text{Name: "a.txt", Start: 1, Limit: 5}
	if tx.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tx.Len())
	}
	if !tx.Contains(1) || !tx.Contains(4) {
		t.Error("expected positions 1 and 4 to be contained")
	}
	if tx.Contains(5) || tx.Contains(0) {
		t.Error("expected positions 5 and 0 to be out of range")
	}
}

func TestChunkSizeAndString(t *testing.T) {
	tx := &Text{Name: "a.txt", Start: 10, Limit: 20}
	c := Chunk{Text: tx, First: 12, Last: 15}
	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}
	if got, want := c.String(), "a.txt[2:5]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLineOf(t *testing.T) {
	tx := &Text{Name: "a.txt", Start: 1, Limit: 10, Newlines: []int{4, 7}}
	cases := []struct {
		pos  int
		want int
	}{
		{1, 1}, {3, 1}, {4, 1}, {5, 2}, {7, 2}, {9, 3},
	}
	for _, c := range cases {
		if got := tx.LineOf(c.pos); got != c.want {
			t.Errorf("LineOf(%d) = %d, want %d", c.pos, got, c.want)
		}
	}
}
