// Command simrun finds near-duplicate token runs across a collection
// of text files, optionally aggregating them into per-file similarity
// percentages.
package main

import (
	"os"

	"github.com/meisterluk/simrun-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
