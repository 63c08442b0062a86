package main

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"yasat/internal/dimacs"
	"yasat/internal/sat"
	"yasat/internal/stats"
)

var solveRequest proofRequest
var gzipped bool
var watch bool
var dumpLearnedPath string

var solveCmd = &cobra.Command{
	Use:   "solve [file.cnf]...",
	Short: "Solve one or more DIMACS CNF instances",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveRequest.dot, "dot", false, "emit a DOT resolution graph on UNSAT")
	solveCmd.Flags().BoolVar(&solveRequest.txt, "txt", false, "emit a plain-text resolution trace on UNSAT")
	solveCmd.Flags().BoolVar(&solveRequest.tex, "tex", false, "emit a LaTeX trail proof on UNSAT")
	solveCmd.Flags().BoolVar(&gzipped, "gzip", false, "treat the input file(s) as gzip-compressed")
	solveCmd.Flags().BoolVar(&watch, "watch", false, "re-solve whenever the instance file changes")
	solveCmd.Flags().StringVar(&dumpLearnedPath, "dump-learned", "", "write the learned clause database to this DIMACS file")

	v := viper.New()
	bindSolverFlags(solveCmd, v)
	solveCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSolverConfig(v)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		solverCfg = cfg
		return nil
	}
}

var solverCfg solverConfig

func runSolve(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	if watch {
		if len(args) != 1 {
			return fmt.Errorf("--watch takes exactly one instance file, got %d", len(args))
		}
		return watchAndSolve(args[0], logger)
	}

	for _, path := range args {
		if _, err := solveOne(path, logger); err != nil {
			return err
		}
	}
	return nil
}

// watchAndSolve re-runs solveOne every time path changes on disk, per the
// --watch convenience flag: a small CLI ergonomics addition with no
// counterpart in the original Rust menu, grounded on fsnotify's event
// stream the way the pack's file watchers consume it.
func watchAndSolve(path string, logger *zap.Logger) error {
	if _, err := solveOne(path, logger); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %q: %w", path, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			logger.Info("instance changed, re-solving", zap.String("path", path))
			if _, err := solveOne(path, logger); err != nil {
				logger.Error("solve failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", zap.Error(err))
		}
	}
}

// solveOne loads path, runs the solver, emits any requested proofs, and
// prints the model and statistics the way spec.md §6 describes.
func solveOne(path string, logger *zap.Logger) (sat.Status, error) {
	opts := sat.Options{
		MaxConflicts: solverCfg.MaxConflicts,
		Timeout:      solverCfg.Timeout,
	}
	solver := sat.NewSolver(opts)

	rejectedCount := 0
	err := dimacs.LoadDIMACS(path, gzipped, solver, func(e error) {
		rejectedCount++
		logger.Warn("rejected clause line", zap.Error(e))
	})
	if err != nil {
		return sat.StatusUnknown, fmt.Errorf("loading %q: %w", path, err)
	}

	sinks, err := buildProofSinks(solveRequest)
	if err != nil {
		return sat.StatusUnknown, fmt.Errorf("opening proof sinks: %w", err)
	}
	if solveRequest.any() {
		solver.SetEventSink(sinks)
	}

	sampler := stats.NewSampler(0)
	sampler.Start()

	fmt.Printf("c instance:   %s\n", path)
	fmt.Printf("c variables:  %d\n", solver.NumVariables())
	fmt.Printf("c clauses:    %d\n", solver.NumOriginalClauses())
	if rejectedCount > 0 {
		fmt.Printf("c rejected:   %d\n", rejectedCount)
	}

	start := time.Now()
	status, solveErr := solver.Solve()
	elapsed := time.Since(start)

	sample := sampler.Stop()

	if solveErr != nil {
		return status, solveErr
	}

	kept, err := sinks.finish(status)
	if err != nil {
		return status, fmt.Errorf("finishing proof sinks: %w", err)
	}

	if dumpLearnedPath != "" {
		learned := solver.LearnedClauses()
		if err := dimacs.WriteDIMACSFile(dumpLearnedPath, solver.NumVariables(), learned); err != nil {
			return status, fmt.Errorf("dumping learned clauses: %w", err)
		}
	}

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c learned:    %d\n", solver.Stats.Learned)
	fmt.Printf("c forgotten:  %d\n", solver.Stats.Forgotten)
	fmt.Printf("c peak heap:  %d bytes\n", sample.PeakHeapAlloc)
	fmt.Printf("c peak sys:   %d bytes\n", sample.PeakSys)
	fmt.Printf("c status:     %s\n", status)
	for _, p := range kept {
		fmt.Printf("c proof:      %s\n", p)
	}

	if status == sat.StatusSat {
		for _, v := range solver.Model() {
			fmt.Printf("%d\n", v)
		}
	}

	return status, nil
}
