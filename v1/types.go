// Package v1 is the stable, version-numbered API facade over
// internal/engine: a small set of parameter/result structs plus a
// handful of functions, so callers embedding this as a library never
// import the internal/* packages directly.
package v1

import (
	"github.com/meisterluk/simrun-go/internal/percent"
	"github.com/meisterluk/simrun-go/internal/scan"
)

// CompareParameters configures one Compare call.
type CompareParameters struct {
	// Files lists the input file paths, in the order runs should be
	// reported against. New marks which of them fall on the "new"
	// side of a -S style new-vs-old split.
	Files []string
	New   []bool

	MinRunSize int
	NoSelf     bool
	NewVsOld   bool

	Percentage          bool
	MainContributorOnly bool
	Threshold           int

	LineMode bool
	Parallel bool
	Workers  int
}

// Run is one maximal matching token run between two files, expressed
// in caller-facing terms: filenames and positions, not token.Chunk.
type Run struct {
	FileA, FileB  string
	FirstA, LastA int
	FirstB, LastB int
	Size          int
}

// Percentage is one ordered-pair coverage result.
type Percentage struct {
	From, To string
	Percent  int
}

func toRun(r scan.Run) Run {
	return Run{
		FileA: r.A.Text.Name, FirstA: r.A.First, LastA: r.A.Last,
		FileB: r.B.Text.Name, FirstB: r.B.First, LastB: r.B.Last,
		Size: r.A.Size(),
	}
}

func toPercentage(m percent.Match) Percentage {
	return Percentage{From: m.From.Name, To: m.To.Name, Percent: m.Percent()}
}
