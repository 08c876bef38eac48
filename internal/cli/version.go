package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	v1 "github.com/meisterluk/simrun-go/v1"
)

// VersionCommand reports implementation and format-version metadata.
type VersionCommand struct {
	CheckSupport string `json:"check-support"`
	JSONOutput   bool   `json:"json"`
}

type hashAlgoStatus struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

type versionResult struct {
	Version   string           `json:"version"`
	Spec      string           `json:"api-version"`
	HashAlgos []hashAlgoStatus `json:"hash-algorithms"`
}

var versionCommand *VersionCommand
var argVersionCheckSupport string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Returns metadata about this implementation",
	Args: func(cmd *cobra.Command, args []string) error {
		versionCommand = &VersionCommand{CheckSupport: argVersionCheckSupport, JSONOutput: argJSONOutput}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = versionCommand.Run(w)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVar(&argVersionCheckSupport, "check-support", "", "exit code 100 indicates that the given hash algorithm is unsupported")
}

const humanReadableVersion = `version:         %d.%d.%d
api implemented: %d.%d.%d

hash algorithms:
(* denotes default algorithm)
`

func (c *VersionCommand) Run(w Output) (int, error) {
	data := versionResult{
		Version: fmt.Sprintf("%d.%d.%d", v1.VERSION[0], v1.VERSION[1], v1.VERSION[2]),
		Spec:    fmt.Sprintf("%d.%d.%d", v1.SPEC[0], v1.SPEC[1], v1.SPEC[2]),
	}
	def := v1.DefaultHashAlgorithm()
	for _, name := range v1.SupportedHashAlgorithms() {
		data.HashAlgos = append(data.HashAlgos, hashAlgoStatus{Name: name, Default: name == def})
	}

	checkFailed := false
	if c.CheckSupport != "" {
		checkFailed = true
		for _, ha := range data.HashAlgos {
			if ha.Name == c.CheckSupport {
				checkFailed = false
			}
		}
	}

	if c.JSONOutput {
		b, err := json.MarshalIndent(&data, "", "  ")
		if err != nil {
			return 6, fmt.Errorf("could not serialize result JSON: %w", err)
		}
		w.Println(string(b))
	} else {
		w.Printf(humanReadableVersion, v1.VERSION[0], v1.VERSION[1], v1.VERSION[2], v1.SPEC[0], v1.SPEC[1], v1.SPEC[2])
		for _, ha := range data.HashAlgos {
			marker := ""
			if ha.Default {
				marker = " *"
			}
			w.Printfln("\t%s%s", ha.Name, marker)
		}
	}

	if c.CheckSupport != "" && checkFailed {
		return 100, nil
	}
	return 0, nil
}
