package lexer

import (
	"bufio"
	"io"
	"unicode"
)

// WordLexer splits a byte stream into word and punctuation lexemes,
// the illustrative tokenizer collaborator used when no language-
// specific scanner is supplied. A lexeme is "word" when it begins
// with a letter or digit; anything else (isolated punctuation,
// whitespace runs collapsed away) is emitted as its own lexeme but
// marked non-seeding, so a bare comma or bracket can't start a run
// even though one may still be extended through it.
type WordLexer struct {
	scanner  *bufio.Scanner
	interner *Interner
	err      error
	line     int
	midWord  bool
}

// NewWordLexer returns a WordLexer reading from r, interning lexemes
// through in so IDs stay stable across every file in one pass.
func NewWordLexer(r io.Reader, in *Interner) *WordLexer {
	l := &WordLexer{interner: in, line: 1}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(l.split)
	l.scanner = s
	return l
}

// Next returns the next lexeme, or false once the stream is exhausted.
func (l *WordLexer) Next() (Lexeme, bool) {
	if !l.scanner.Scan() {
		l.err = l.scanner.Err()
		return Lexeme{}, false
	}
	text := l.scanner.Text()
	mayStart := len(text) > 0 && (unicode.IsLetter(rune(text[0])) || unicode.IsDigit(rune(text[0])))
	return Lexeme{ID: l.interner.Intern(text), MayStartRun: mayStart}, true
}

// Err reports any error encountered while scanning.
func (l *WordLexer) Err() error {
	return l.err
}

// Line reports the 1-based source line of the lexeme Next most
// recently returned.
func (l *WordLexer) Line() int {
	return l.line
}

// split is a bufio.SplitFunc that emits maximal runs of ASCII letters,
// digits and underscores as one token each, and every other non-space
// byte as its own single-byte token (a multi-byte UTF-8 character
// becomes several tokens). Whitespace is consumed without being emitted,
// and line feeds crossed while skipping it advance l.line.
func (l *WordLexer) split(data []byte, atEOF bool) (advance int, tok []byte, err error) {
	start := 0
	// A continuation of a word carried over from the previous call
	// can never start on whitespace, so skip the scan: every byte up
	// to start was already advanced past (and its newlines counted)
	// the moment this method last returned.
	if !l.midWord {
		for start < len(data) && isSpace(data[start]) {
			if data[start] == '\n' {
				l.line++
			}
			start++
		}
	}
	if start >= len(data) {
		l.midWord = false
		if atEOF {
			return len(data), nil, nil
		}
		return start, nil, nil
	}

	if isWordByte(data[start]) {
		i := start
		for i < len(data) && isWordByte(data[i]) {
			i++
		}
		if i == len(data) && !atEOF {
			l.midWord = true
			return start, nil, nil // request more data, word may continue
		}
		l.midWord = false
		return i, data[start:i], nil
	}

	l.midWord = false
	return start + 1, data[start : start+1], nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}
