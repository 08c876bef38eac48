package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/meisterluk/simrun-go/internal/percent"
	"github.com/meisterluk/simrun-go/internal/scan"
	"github.com/meisterluk/simrun-go/internal/token"
)

// style selects one of the four deterministic output formats: default
// excerpt listing, diff-style, terse, and headings.
type style int

const (
	styleDefault style = iota
	styleDiff
	styleTerse
	styleHeadings
)

// excerpt returns the source line text.Text's chunk's first token
// falls on, read back from disk on demand since the token store only
// keeps integer identifiers, not source bytes. Best-effort: a read
// failure degrades to an empty string rather than aborting the run
// listing over one unreadable excerpt.
func excerpt(t *token.Text, pos int) string {
	line := t.LineOf(pos)
	fh, err := os.Open(t.Name)
	if err != nil {
		return ""
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	for n := 1; scanner.Scan(); n++ {
		if n == line {
			return scanner.Text()
		}
	}
	return ""
}

// writeRuns renders rs to w in the requested style.
func writeRuns(w Output, rs []scan.Run, st style) {
	for _, r := range rs {
		switch st {
		case styleTerse:
			w.Printfln("%s <-> %s (%d tokens)", r.A, r.B, r.A.Size())
		case styleHeadings:
			w.Printfln("%s <-> %s", r.A.Text.Name, r.B.Text.Name)
		case styleDiff:
			w.Printfln("--- %s", r.A)
			w.Printfln("+++ %s", r.B)
			w.Printfln("@@ %d tokens @@", r.A.Size())
			w.Printfln("- %s", excerpt(r.A.Text, r.A.First))
			w.Printfln("+ %s", excerpt(r.B.Text, r.B.First))
		default:
			w.Printfln("run of %d tokens: %s <-> %s", r.A.Size(), r.A, r.B)
			w.Printfln("  %s: %s", r.A.Text.Name, excerpt(r.A.Text, r.A.First))
			w.Printfln("  %s: %s", r.B.Text.Name, excerpt(r.B.Text, r.B.First))
		}
	}
}

// writePercentages renders ms as an aligned table: From, To, Percent,
// plus a "consists for N % of" prose summary in a dedicated column.
func writePercentages(w Output, ms []percent.Match) {
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf)
	table.Header([]string{"From", "To", "Percent", "Summary"})
	for _, m := range ms {
		table.Append([]string{
			m.From.Name,
			m.To.Name,
			fmt.Sprintf("%d %%", m.Percent()),
			fmt.Sprintf("%s consists for %d %% of %s material", m.From.Name, m.Percent(), m.To.Name),
		})
	}
	table.Render()
	w.Print(buf.String())
}
