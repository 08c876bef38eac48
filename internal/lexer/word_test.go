package lexer

import (
	"strings"
	"testing"
)

func collect(t *testing.T, lx Lexer) []Lexeme {
	t.Helper()
	var out []Lexeme
	for {
		lex, ok := lx.Next()
		if !ok {
			break
		}
		out = append(out, lex)
	}
	if err := lx.Err(); err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	return out
}

func TestWordLexerBasic(t *testing.T) {
	in := NewInterner()
	lx := NewWordLexer(strings.NewReader("foo bar, foo!"), in)
	lexemes := collect(t, lx)

	// foo, bar, ",", foo, "!"
	if len(lexemes) != 5 {
		t.Fatalf("expected 5 lexemes, got %d", len(lexemes))
	}
	if lexemes[0].ID != lexemes[3].ID {
		t.Error("repeated word 'foo' should intern to the same ID")
	}
	if !lexemes[0].MayStartRun {
		t.Error("word lexeme should be MayStartRun")
	}
	if lexemes[2].MayStartRun {
		t.Error("punctuation lexeme should not be MayStartRun")
	}
}

func TestWordLexerTracksLines(t *testing.T) {
	in := NewInterner()
	lx := NewWordLexer(strings.NewReader("one\ntwo\nthree"), in)

	var lines []int
	for {
		_, ok := lx.Next()
		if !ok {
			break
		}
		lines = append(lines, lx.Line())
	}
	if err := lx.Err(); err != nil {
		t.Fatal(err)
	}

	want := []int{1, 2, 3}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lexemes, got %d (%v)", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("lexeme %d: line = %d, want %d", i, lines[i], w)
		}
	}
}

func TestWordLexerEmpty(t *testing.T) {
	in := NewInterner()
	lx := NewWordLexer(strings.NewReader(""), in)
	if lexemes := collect(t, lx); len(lexemes) != 0 {
		t.Errorf("expected no lexemes from an empty reader, got %d", len(lexemes))
	}
}
