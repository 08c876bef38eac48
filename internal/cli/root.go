package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// <global-variables>
//   <subset purpose="used by cobra to stash parsed flags">
var argJSONOutput bool
var argVerbose bool
var argWorkers int
var argParallel bool

//   </subset>
//   <subset purpose="used for passing values between cobra command bodies">
var w Output
var stderr Output
var exitCode int
var cmdError error

//   </subset>
// </global-variables>

var rootCmd = &cobra.Command{
	Use:   "simrun",
	Short: "Finds near-duplicate text runs across a collection of files",
	Long: `simrun tokenizes a set of input files and reports every maximal
matching run of tokens (length >= the configured minimum) shared
between two positions, optionally folding the matches into per-file
similarity percentages.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&argJSONOutput, "json", false, "return output as JSON, not as plain text")
	rootCmd.PersistentFlags().BoolVarP(&argVerbose, "verbose", "V", false, "log progress to stderr")
	rootCmd.PersistentFlags().IntVar(&argWorkers, "workers", defaultWorkers(), "worker count for the parallel cleanup pass")
	rootCmd.PersistentFlags().BoolVar(&argParallel, "parallel", false, "clean the forward-reference index across --workers goroutines")
}

// defaultWorkers honors SIMRUN_WORKERS when set to a valid count,
// falling back to the machine's logical CPU count otherwise.
func defaultWorkers() int {
	if n, ok := envToInt("SIMRUN_WORKERS"); ok {
		return n
	}
	return countCPUs()
}

// Execute runs the root command against os.Args, writing to stdout
// and errors to stderr, and returns the process exit code.
func Execute() int {
	w = &PlainOutput{Device: os.Stdout}
	stderr = &PlainOutput{Device: os.Stderr}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cmdError != nil {
		return handleError(cmdError.Error(), exitCode, argJSONOutput)
	}
	return exitCode
}
