package lexer

import "github.com/meisterluk/simrun-go/internal/token"

// Interner maps lexemes (as seen by a concrete Lexer) to stable
// token.IDs, shared across every input file in one matching pass so
// that the same lexeme always produces the same ID.
type Interner struct {
	ids map[string]token.ID
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]token.ID, 1024)}
}

// Intern returns the ID for s, allocating a fresh one on first sight.
func (in *Interner) Intern(s string) token.ID {
	if id, ok := in.ids[s]; ok {
		return id
	}
	id := token.ID(len(in.ids) + 1)
	in.ids[s] = id
	return id
}
