// Package lexer defines the tokenizer collaborator contract as an
// external concern, plus one concrete implementation good enough to
// exercise the whole pipeline end-to-end. Language-specific lexical
// scanners remain out of core scope; callers are free to supply their
// own Lexer.
package lexer

import "github.com/meisterluk/simrun-go/internal/token"

// Lexeme is one token a Lexer produces: an interned ID plus whether
// the run scanner's index may seed a chain here.
type Lexeme struct {
	ID          token.ID
	MayStartRun bool
}

// Lexer streams Lexemes from a source. Next returns false once the
// source is exhausted; Err reports any error encountered mid-stream.
// Line reports the 1-based source line of the lexeme Next most
// recently returned, used to recover source-line excerpts when
// reporting a run.
type Lexer interface {
	Next() (Lexeme, bool)
	Err() error
	Line() int
}
