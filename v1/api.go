package v1

import (
	"context"
	"io"

	"github.com/meisterluk/simrun-go/internal/digest"
	"github.com/meisterluk/simrun-go/internal/engine"
	"github.com/meisterluk/simrun-go/internal/lexer"
	"github.com/meisterluk/simrun-go/internal/percent"
	"github.com/meisterluk/simrun-go/internal/scan"
)

// VERSION identifies this implementation.
var VERSION = [3]int{1, 0, 0}

// SPEC identifies the wire/output format version this API implements.
var SPEC = [3]int{1, 0, 0}

// SupportedHashAlgorithms returns every content-hash algorithm name
// internal/digest registers, for callers embedding the digest command.
func SupportedHashAlgorithms() []string {
	return digest.Names()
}

// DefaultHashAlgorithm returns the algorithm name used when a caller
// doesn't choose one explicitly.
func DefaultHashAlgorithm() string {
	return digest.Default
}

// FileDigest computes the hex content digest of one file.
func FileDigest(algorithm, path string) (string, error) {
	return digest.FileDigest(algorithm, path)
}

// Compare runs the full tokenize/build/scan pipeline over the given
// files and returns either runs or percentages, matching p.Percentage.
func Compare(ctx context.Context, p CompareParameters) ([]Run, []Percentage, error) {
	inputs := make([]engine.InputFile, len(p.Files))
	for i, f := range p.Files {
		n := false
		if i < len(p.New) {
			n = p.New[i]
		}
		inputs[i] = engine.InputFile{Path: f, New: n}
	}

	var newLexer engine.LexerFactory = func(r io.Reader, in *lexer.Interner) lexer.Lexer {
		return lexer.NewWordLexer(r, in)
	}
	if p.LineMode {
		newLexer = func(r io.Reader, in *lexer.Interner) lexer.Lexer {
			return lexer.NewLineLexer(r, in)
		}
	}

	opt := engine.Options{
		MinRunSize: p.MinRunSize,
		Mode:       scan.Mode{NoSelf: p.NoSelf, NewVsOld: p.NewVsOld},
		Percentage: p.Percentage,
		Show: percent.ShowOptions{
			MainContributorOnly: p.MainContributorOnly,
			Threshold:           p.Threshold,
		},
		Parallel: p.Parallel,
		Workers:  p.Workers,
	}

	_, runs, matches, err := engine.Compare(ctx, inputs, newLexer, opt)
	if err != nil {
		return nil, nil, err
	}

	if opt.Percentage {
		out := make([]Percentage, len(matches))
		for i, m := range matches {
			out[i] = toPercentage(m)
		}
		return nil, out, nil
	}

	out := make([]Run, len(runs))
	for i, r := range runs {
		out[i] = toRun(r)
	}
	return out, nil, nil
}
