package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meisterluk/simrun-go/internal/walkstats"
)

// StatsCommand reports cheap pre-scan statistics over an input file
// list: file count, missing files, max and total size.
type StatsCommand struct {
	Files      []string `json:"files"`
	JSONOutput bool     `json:"json"`
}

var statsCommand *StatsCommand

var statsCmd = &cobra.Command{
	Use:   "stats [files...]",
	Short: "Reports size statistics over the given files without tokenizing them",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("expected at least 1 file; 0 are given")
		}
		statsCommand = &StatsCommand{Files: args, JSONOutput: argJSONOutput}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = statsCommand.Run(w)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func (c *StatsCommand) Run(w Output) (int, error) {
	s := walkstats.Generate(c.Files)
	if s.ErrorMessage != nil {
		return 3, s.ErrorMessage
	}

	if c.JSONOutput {
		b, err := json.Marshal(s)
		if err != nil {
			return 6, fmt.Errorf("could not serialize result JSON: %w", err)
		}
		w.Println(string(b))
		return 0, nil
	}

	w.Println(s.String())
	return 0, nil
}
