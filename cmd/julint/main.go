// Command julint lints Julia source and applies safe textual fixes.
package main

import (
	"fmt"
	"os"

	"github.com/wharflab/julint/cmd/julint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cmd.ExitConfigError)
	}
}
