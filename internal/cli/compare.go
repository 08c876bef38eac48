package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/meisterluk/simrun-go/internal/digest"
	"github.com/meisterluk/simrun-go/internal/engine"
	"github.com/meisterluk/simrun-go/internal/lexer"
	"github.com/meisterluk/simrun-go/internal/percent"
	"github.com/meisterluk/simrun-go/internal/scan"
)

// CompareCommand holds every argument compare.Run needs, parsed once
// into a plain struct so Run stays test-friendly and independent of
// cobra.
type CompareCommand struct {
	Files            []string
	MinRunSize       int
	Diff             bool
	Terse            bool
	Headings         bool
	Percent          bool
	PercentMain      bool
	Threshold        int
	NoSelf           bool
	NewVsOld         bool
	ReadStdin        bool
	DedupeIdentical  bool
	LineMode         bool
	Output           string
	ConfigFile       string
	ConfigOutput     bool
	JSONOutput       bool
	Verbose          bool
	Parallel         bool
	Workers          int
}

var compareCommand *CompareCommand

var (
	argMinRunSize      int
	argDiff            bool
	argTerse           bool
	argHeadings        bool
	argPercent         bool
	argPercentMain     bool
	argThreshold       int
	argNoSelf          bool
	argNewVsOld        bool
	argReadStdin       bool
	argDedupeIdentical bool
	argLineMode        bool
	argOutput          string
	argConfigFile      string
	argConfigOutput    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [files...]",
	Short: "Reports near-duplicate token runs across the given files",
	Args: func(cmd *cobra.Command, args []string) error {
		exclusive := 0
		for _, b := range []bool{argDiff, argHeadings, argPercent, argPercentMain, argTerse} {
			if b {
				exclusive++
			}
		}
		if exclusive > 1 {
			return fmt.Errorf("at most one of {-d, -n, -p, -P, -T} may be given")
		}
		if argThreshold != 0 && !argPercent && !argPercentMain {
			return fmt.Errorf("-t requires -p or -P")
		}
		if argReadStdin && len(args) > 0 {
			return fmt.Errorf("-i conflicts with file arguments")
		}

		files := args
		if argReadStdin {
			var err error
			files, err = readFilenamesFromStdin()
			if err != nil {
				return err
			}
		}
		if !argReadStdin && len(files) == 0 {
			return fmt.Errorf("expected at least 1 file; 0 are given")
		}

		compareCommand = &CompareCommand{
			Files:           files,
			MinRunSize:      argMinRunSize,
			Diff:            argDiff,
			Terse:           argTerse,
			Headings:        argHeadings,
			Percent:         argPercent,
			PercentMain:     argPercentMain,
			Threshold:       argThreshold,
			NoSelf:          argNoSelf || argPercent || argPercentMain,
			NewVsOld:        argNewVsOld,
			ReadStdin:       argReadStdin,
			DedupeIdentical: argDedupeIdentical,
			LineMode:        argLineMode,
			Output:          argOutput,
			ConfigFile:      argConfigFile,
			ConfigOutput:    argConfigOutput,
			JSONOutput:      argJSONOutput,
			Verbose:         argVerbose,
			Parallel:        argParallel,
			Workers:         argWorkers,
		}

		if compareCommand.ConfigFile != "" {
			if err := loadConfigFile(compareCommand.ConfigFile, compareCommand); err != nil {
				return err
			}
		}
		if compareCommand.MinRunSize <= 0 {
			return fmt.Errorf("-r must be > 0")
		}
		if compareCommand.Threshold == 0 {
			compareCommand.Threshold = 1
		}
		if compareCommand.Threshold < 1 || compareCommand.Threshold > 100 {
			return fmt.Errorf("-t must be in 1..100")
		}

		envJSON, errJSON := envToBool("SIMRUN_JSON")
		if errJSON == nil {
			compareCommand.JSONOutput = envJSON
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = compareCommand.Run(w)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().IntVarP(&argMinRunSize, "min-run-size", "r", 24, "minimum run size R in tokens")
	compareCmd.Flags().BoolVarP(&argDiff, "diff", "d", false, "diff-style output")
	compareCmd.Flags().BoolVarP(&argTerse, "terse", "T", false, "terse output, one line per run")
	compareCmd.Flags().BoolVarP(&argHeadings, "headings", "n", false, "headings only")
	compareCmd.Flags().BoolVarP(&argPercent, "percent", "p", false, "percentage output (implies -e -s)")
	compareCmd.Flags().BoolVarP(&argPercentMain, "percent-main", "P", false, "percentage output, main contributor only")
	compareCmd.Flags().IntVarP(&argThreshold, "threshold", "t", 0, "threshold percentage (1..100); requires -p or -P")
	compareCmd.Flags().BoolVarP(&argNoSelf, "no-self", "s", false, "suppress self-comparison")
	compareCmd.Flags().BoolVarP(&argNewVsOld, "new-vs-old", "S", false, "new-vs-old only, splitting the file list at a '/' or '|' separator")
	compareCmd.Flags().BoolVarP(&argReadStdin, "stdin", "i", false, "read filenames from standard input instead of arguments")
	compareCmd.Flags().BoolVar(&argDedupeIdentical, "dedupe-identical", false, "skip tokenizing files whose content digest already matched another input")
	compareCmd.Flags().BoolVar(&argLineMode, "line-mode", false, "tokenize by source line instead of by word")
	compareCmd.Flags().StringVarP(&argOutput, "output", "o", envOr("SIMRUN_OUTPUT", ""), "write output to file, not to stdout")
	compareCmd.Flags().StringVar(&argConfigFile, "config-file", "", "YAML file whose settings are applied after the above flags, replacing values given on the command line")
	compareCmd.Flags().BoolVar(&argConfigOutput, "config", false, "only print the resolved configuration and terminate")
}

// readFilenamesFromStdin reads one filename per line, matching -i.
func readFilenamesFromStdin() ([]string, error) {
	var files []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			files = append(files, line)
		}
	}
	return files, scanner.Err()
}

// loadConfigFile overlays the YAML file's values onto cmd, accepting
// a saved config file as input to a later run. It runs after the
// flags are parsed, so a setting present in the file replaces the
// same setting given on the command line; settings absent from the
// file keep their flag values.
func loadConfigFile(path string, cmd *CompareCommand) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return yaml.Unmarshal(data, cmd)
}

// mode translates the parsed flags into scan.Mode plus the resolved
// InputFile list: / or | in the file list splits "new" from "old",
// and --dedupe-identical marks (without dropping) any file whose
// content digest matches an earlier one, so Load can reuse that
// earlier file's tokens instead of re-lexing a known-identical file.
// Every input, duplicate or not, still gets its own Text and takes
// part in scanning: dedupe-identical changes how tokens are produced,
// never which runs or percentages are reported.
func (c *CompareCommand) mode() (scan.Mode, []engine.InputFile, error) {
	isNew := true
	inputs := make([]engine.InputFile, 0, len(c.Files))
	seenAt := map[string]int{}
	for _, f := range c.Files {
		if c.NewVsOld && (f == "/" || f == "|") {
			isNew = false
			continue
		}
		input := engine.InputFile{Path: f, New: isNew}
		if c.DedupeIdentical {
			sum, err := digest.FileDigest(digest.Default, f)
			if err != nil {
				return scan.Mode{}, nil, err
			}
			if srcIdx, ok := seenAt[sum]; ok {
				input.IsDuplicate = true
				input.DuplicateOf = srcIdx
				if c.Verbose {
					stderr.Printfln("%s: identical content already seen, reusing its tokens", f)
				}
			} else {
				seenAt[sum] = len(inputs)
			}
		}
		inputs = append(inputs, input)
	}
	return scan.Mode{NoSelf: c.NoSelf, NewVsOld: c.NewVsOld}, inputs, nil
}

// Run executes the compare command: tokenize every input, build the
// index, scan, and print either a run listing or a percentage table.
func (c *CompareCommand) Run(w Output) (int, error) {
	if c.ConfigOutput {
		b, err := yaml.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf("could not serialize config: %w", err)
		}
		w.Println(string(b))
		return 0, nil
	}

	out := w
	if c.Output != "" {
		fh, err := os.Create(c.Output)
		if err != nil {
			return 3, fmt.Errorf("opening output file '%s': %w", c.Output, err)
		}
		defer fh.Close()
		out = &PlainOutput{Device: fh}
	}

	mode, inputs, err := c.mode()
	if err != nil {
		return 3, err
	}

	var newLexer engine.LexerFactory = func(r io.Reader, in *lexer.Interner) lexer.Lexer {
		return lexer.NewWordLexer(r, in)
	}
	if c.LineMode {
		newLexer = func(r io.Reader, in *lexer.Interner) lexer.Lexer {
			return lexer.NewLineLexer(r, in)
		}
	}

	opt := engine.Options{
		MinRunSize: c.MinRunSize,
		Mode:       mode,
		Percentage: c.Percent || c.PercentMain,
		Show: percent.ShowOptions{
			MainContributorOnly: c.PercentMain,
			Threshold:           c.Threshold,
		},
		Parallel: c.Parallel,
		Workers:  c.Workers,
		Verbose:  c.Verbose,
	}

	_, runs, matches, err := engine.Compare(context.Background(), inputs, newLexer, opt)
	if err != nil {
		return 4, err
	}

	if opt.Percentage {
		if c.JSONOutput {
			writePercentagesJSON(out, matches)
		} else {
			writePercentages(out, matches)
		}
		return 0, nil
	}

	st := styleDefault
	switch {
	case c.Diff:
		st = styleDiff
	case c.Terse:
		st = styleTerse
	case c.Headings:
		st = styleHeadings
	}
	if c.JSONOutput {
		writeRunsJSON(out, runs)
	} else {
		writeRuns(out, runs, st)
	}
	return 0, nil
}

func writePercentagesJSON(w Output, ms []percent.Match) {
	w.Println("[")
	for i, m := range ms {
		comma := ","
		if i == len(ms)-1 {
			comma = ""
		}
		w.Printfln(`  {"from":"%s","to":"%s","percent":%d}%s`, m.From.Name, m.To.Name, m.Percent(), comma)
	}
	w.Println("]")
}

func writeRunsJSON(w Output, rs []scan.Run) {
	w.Println("[")
	for i, r := range rs {
		comma := ","
		if i == len(rs)-1 {
			comma = ""
		}
		w.Printfln(`  {"a":"%s","b":"%s","size":%d}%s`, r.A, r.B, r.A.Size(), comma)
	}
	w.Println("]")
}
