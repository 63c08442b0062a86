package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "yasat",
	Short: "A CDCL SAT solver",
	Long:  "yasat reads a DIMACS CNF instance, searches for a satisfying assignment or a refutation, and optionally emits a resolution proof.",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.AddCommand(solveCmd)
}

// newLogger builds the one *zap.Logger a run uses, passed to solveOne and
// watchAndSolve rather than kept as a package-global, matching the
// instance-owned-state style the core itself follows. The internal
// packages do no logging of their own; DIMACS line rejections reach the
// logger through LoadDIMACS's onRejected callback.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
