// Package token holds the global token sequence every other stage of
// the similarity engine reads from. It is intentionally the thinnest
// layer in the pipeline: one contiguous array, sealed once, shared by
// every later pass.
package token

import "fmt"

// ID is an opaque token identity assigned by a lexer. Two tokens are
// considered equal iff their IDs match; what the ID actually denotes
// (a keyword, an identifier, a punctuation mark, ...) is the lexer's
// business.
type ID int32

// Token is one entry of the global array T. Position is a 1-based
// index into the Store (position 0 is reserved, see Store).
type Token struct {
	ID ID
	// MayStartRun marks positions the forward-reference index is
	// allowed to seed a chain from. Punctuation-only tokens typically
	// report false here to keep chains from starting on noise, while
	// the run scanner is still free to extend a run through them.
	MayStartRun bool
}

// Store is the append-only global token sequence T[1..L]. Position 0
// is reserved to mean "none" throughout the rest of the pipeline, so
// Store carries a dummy element at index 0 that is never addressed by
// name.
type Store struct {
	tokens []Token
	sealed bool
}

// NewStore returns an empty Store with position 0 reserved.
func NewStore() *Store {
	return &Store{tokens: make([]Token, 1, 256)}
}

// Append adds tok as the next token and returns its position.
// Append must not be called after Seal.
func (s *Store) Append(tok Token) int {
	if s.sealed {
		panic("internal error, append on a sealed token store")
	}
	s.tokens = append(s.tokens, tok)
	return len(s.tokens) - 1
}

// Seal freezes the store. The forward-reference index (internal/index)
// and the scanner require a
// sealed store so that T never moves underneath the forward-reference
// array built over it.
func (s *Store) Seal() {
	s.sealed = true
}

// Len returns L, the number of real tokens (position 0 excluded).
func (s *Store) Len() int {
	return len(s.tokens) - 1
}

// At returns the token at position i. i must be in [1, Len()].
func (s *Store) At(i int) Token {
	if i <= 0 || i >= len(s.tokens) {
		panic(fmt.Sprintf("internal error, token position %d out of range [1,%d]", i, s.Len()))
	}
	return s.tokens[i]
}

// Equal reports whether the tokens at positions i and j carry the
// same ID. Both must be in [1, Len()].
func (s *Store) Equal(i, j int) bool {
	return s.At(i).ID == s.At(j).ID
}
