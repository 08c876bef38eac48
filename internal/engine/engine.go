// Package engine orchestrates lexing, index construction, scanning,
// and the run/percentage aggregation stages, and owns the lifecycle
// of the shared token store and forward-reference index: read
// inputs, build the index, traverse it, publish results, free.
package engine

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/meisterluk/simrun-go/internal/index"
	"github.com/meisterluk/simrun-go/internal/lexer"
	"github.com/meisterluk/simrun-go/internal/percent"
	"github.com/meisterluk/simrun-go/internal/runstore"
	"github.com/meisterluk/simrun-go/internal/scan"
	"github.com/meisterluk/simrun-go/internal/token"
)

// InputFile names one file to be compared, alongside whether it falls
// on the "new" side of an `-S` separator.
type InputFile struct {
	Path string
	New  bool
	// IsDuplicate marks Path as known to carry the exact same content
	// as files[DuplicateOf]. Load then copies that earlier file's
	// token window instead of re-reading and re-lexing Path from
	// disk. The duplicate still gets its own Text, start/limit range,
	// and participates fully in scanning and percentage aggregation:
	// this is a tokenizing shortcut, not an exclusion.
	IsDuplicate bool
	DuplicateOf int
}

// LexerFactory builds a fresh lexer.Lexer over r, sharing in so token
// IDs stay consistent across every input file.
type LexerFactory func(r io.Reader, in *lexer.Interner) lexer.Lexer

// Options configures one comparison run, mirroring the compare
// command's flags minus the purely textual-output-selection ones
// internal/cli owns.
type Options struct {
	MinRunSize int
	Mode       scan.Mode
	Percentage bool
	Show       percent.ShowOptions
	Parallel   bool
	Workers    int
	Verbose    bool
}

// Engine holds the state of one comparison pass: the token store, the
// Text records, and (once built) the forward-reference index. Free
// must be called once the pass is done to release F.
type Engine struct {
	store *token.Store
	texts []*token.Text
	idx   *index.Index
}

// Load tokenizes every input file into one shared token.Store using
// newLexer to construct a lexer per file. Empty files are legal
// (start == limit).
func Load(files []InputFile, newLexer LexerFactory) (*Engine, error) {
	store := token.NewStore()
	in := lexer.NewInterner()
	texts := make([]*token.Text, 0, len(files))

	for idx, f := range files {
		text := &token.Text{Name: f.Path, Index: idx, New: f.New}
		text.Start = store.Len() + 1

		if f.IsDuplicate {
			if f.DuplicateOf < 0 || f.DuplicateOf >= len(texts) {
				return nil, fmt.Errorf("internal error: %s marked a duplicate of out-of-range index %d", f.Path, f.DuplicateOf)
			}
			src := texts[f.DuplicateOf]
			offset := text.Start - src.Start
			for p := src.Start; p < src.Limit; p++ {
				store.Append(store.At(p))
			}
			for _, nl := range src.Newlines {
				text.Newlines = append(text.Newlines, nl+offset)
			}
			text.Limit = store.Len() + 1
			texts = append(texts, text)
			continue
		}

		fh, err := os.Open(f.Path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", f.Path, err)
		}

		lx := newLexer(fh, in)
		lastLine := 1
		for {
			lexeme, ok := lx.Next()
			if !ok {
				break
			}
			pos := store.Append(token.Token{ID: lexeme.ID, MayStartRun: lexeme.MayStartRun})
			if line := lx.Line(); line > lastLine {
				for ; lastLine < line; lastLine++ {
					text.Newlines = append(text.Newlines, pos-1)
				}
			}
		}
		if err := lx.Err(); err != nil {
			fh.Close()
			return nil, fmt.Errorf("reading %s: %w", f.Path, err)
		}
		fh.Close()

		text.Limit = store.Len() + 1
		texts = append(texts, text)
	}

	store.Seal()
	return &Engine{store: store, texts: texts}, nil
}

// Build constructs the forward-reference index over the loaded
// tokens. Must be called before Scan.
func (e *Engine) Build(ctx context.Context, opt Options) error {
	idx, err := index.Build(ctx, e.store, e.texts, index.Options{
		MinRunSize: opt.MinRunSize,
		Parallel:   opt.Parallel,
		Workers:    opt.Workers,
		Verbose:    opt.Verbose,
	})
	if err != nil {
		return err
	}
	e.idx = idx
	return nil
}

// Runs scans for every matching run under mode, returning them in
// the store's stable presentation order.
func (e *Engine) Runs(mode scan.Mode) []scan.Run {
	sc := scan.New(e.store, e.idx, e.texts, mode)
	rs := runstore.New()
	for r := range sc.Scan() {
		rs.Add(r)
	}
	return rs.Retrieve()
}

// Percentages scans for every matching run and folds them into
// per-file-pair coverage, honoring opt.Show.
func (e *Engine) Percentages(mode scan.Mode, show percent.ShowOptions) []percent.Match {
	sc := scan.New(e.store, e.idx, e.texts, mode)
	agg := percent.New()
	for r := range sc.Scan() {
		agg.AddRun(r)
	}
	return agg.Show(show)
}

// Texts returns the loaded Text records in input order.
func (e *Engine) Texts() []*token.Text {
	return e.texts
}

// Free releases the forward-reference index. The Engine must not be
// used for Runs/Percentages afterward.
func (e *Engine) Free() {
	if e.idx != nil {
		e.idx.Free()
		e.idx = nil
	}
}

// Compare runs the full Driver pipeline: build the index, scan, and
// return either runs or percentages depending on opt.Percentage, then
// free the index. This is the single entry point internal/cli uses.
// The returned Engine has already had Free called on it; callers may
// still use Texts() for formatting but must not call Runs/Percentages
// again.
func Compare(ctx context.Context, files []InputFile, newLexer LexerFactory, opt Options) (*Engine, []scan.Run, []percent.Match, error) {
	eng, err := Load(files, newLexer)
	if err != nil {
		return nil, nil, nil, err
	}
	if opt.Verbose {
		log.Printf("loaded %d file(s), %d token(s) total", len(files), eng.store.Len())
	}
	if err := eng.Build(ctx, opt); err != nil {
		return nil, nil, nil, err
	}
	defer eng.Free()

	if opt.Percentage {
		return eng, nil, eng.Percentages(opt.Mode, opt.Show), nil
	}
	return eng, eng.Runs(opt.Mode), nil, nil
}
