package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meisterluk/simrun-go/internal/digest"
)

// DigestCommand computes a content digest per file, the supplementary
// command SPEC_FULL.md adds for internal/digest's dedupe/integrity use
// case outside the run-comparison pipeline.
type DigestCommand struct {
	Files      []string `json:"files"`
	Algorithm  string   `json:"algorithm"`
	JSONOutput bool     `json:"json"`
}

type digestResult struct {
	File   string `json:"file"`
	Digest string `json:"digest"`
}

var digestCommand *DigestCommand
var argDigestAlgorithm string

var digestCmd = &cobra.Command{
	Use:   "digest [files...]",
	Short: "Computes a content digest for each given file",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("expected at least 1 file; 0 are given")
		}
		if !digest.Supported(argDigestAlgorithm) {
			return fmt.Errorf("unknown hash algorithm '%s'", argDigestAlgorithm)
		}
		digestCommand = &DigestCommand{Files: args, Algorithm: argDigestAlgorithm, JSONOutput: argJSONOutput}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = digestCommand.Run(w)
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
	digestCmd.Flags().StringVarP(&argDigestAlgorithm, "algorithm", "a", digest.Default, "hash algorithm to use")
}

func (c *DigestCommand) Run(w Output) (int, error) {
	results := make([]digestResult, 0, len(c.Files))
	for _, f := range c.Files {
		sum, err := digest.FileDigest(c.Algorithm, f)
		if err != nil {
			return 3, err
		}
		results = append(results, digestResult{File: f, Digest: sum})
	}

	if c.JSONOutput {
		b, err := json.Marshal(results)
		if err != nil {
			return 6, fmt.Errorf("could not serialize result JSON: %w", err)
		}
		w.Println(string(b))
		return 0, nil
	}

	for _, r := range results {
		w.Printfln("%s  %s", r.Digest, r.File)
	}
	return 0, nil
}
