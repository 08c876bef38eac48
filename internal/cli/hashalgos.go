package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meisterluk/simrun-go/internal/digest"
)

// HashAlgosCommand lists every registered content-hash algorithm and
// can check whether a given name is supported.
type HashAlgosCommand struct {
	CheckSupport string `json:"check-support"`
	JSONOutput   bool   `json:"json"`
}

type hashAlgosResult struct {
	CheckSucceeded bool     `json:"check-result,omitempty"`
	Default        string   `json:"default"`
	Supported      []string `json:"supported"`
}

var hashAlgosCommand *HashAlgosCommand
var argCheckSupport string

var hashAlgosCmd = &cobra.Command{
	Use:   "hashalgos",
	Short: "Lists supported content-hash algorithms",
	Args: func(cmd *cobra.Command, args []string) error {
		hashAlgosCommand = &HashAlgosCommand{CheckSupport: argCheckSupport, JSONOutput: argJSONOutput}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = hashAlgosCommand.Run(w)
	},
}

func init() {
	rootCmd.AddCommand(hashAlgosCmd)
	hashAlgosCmd.Flags().StringVar(&argCheckSupport, "check-support", "", "exit code 100 indicates that the given algorithm is unsupported")
}

func (c *HashAlgosCommand) Run(w Output) (int, error) {
	data := hashAlgosResult{
		Default:   digest.Default,
		Supported: digest.Names(),
	}
	if c.CheckSupport != "" {
		data.CheckSucceeded = digest.Supported(c.CheckSupport)
	}

	if c.JSONOutput {
		b, err := json.Marshal(&data)
		if err != nil {
			return 6, fmt.Errorf("could not serialize result JSON: %w", err)
		}
		w.Println(string(b))
	} else {
		for _, name := range data.Supported {
			marker := "  "
			if name == data.Default {
				marker = "* "
			}
			w.Printfln("%s%s", marker, name)
		}
	}

	if c.CheckSupport != "" && !data.CheckSucceeded {
		return 100, nil
	}
	return 0, nil
}
