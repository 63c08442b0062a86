// Command yasat is a CDCL SAT solver: it reads a DIMACS CNF instance,
// searches for a satisfying assignment (or a refutation), and optionally
// emits a resolution proof.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
