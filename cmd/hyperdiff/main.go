// Command hyperdiff is a small CLI wrapping the core tree-edit-script
// pipeline (matchers + script generator) over pairs of YAML fixture
// trees, for inspection and demos.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
