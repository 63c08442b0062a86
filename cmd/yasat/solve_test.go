package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"yasat/internal/sat"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything fn wrote to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func writeCNF(t *testing.T, body string) string {
	t.Helper()
	path := t.TempDir() + "/instance.cnf"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func resetSolveFlags() {
	solveRequest = proofRequest{}
	gzipped = false
	watch = false
	dumpLearnedPath = ""
	solverCfg = solverConfig{}
}

func TestSolveOneSatReportsModel(t *testing.T) {
	resetSolveFlags()
	path := writeCNF(t, "p cnf 1 1\n1 0\n")

	logger := zap.NewNop()
	var status sat.Status
	out := captureStdout(t, func() {
		s, err := solveOne(path, logger)
		require.NoError(t, err)
		status = s
	})

	assert.Equal(t, sat.StatusSat, status)
	assert.Contains(t, out, "c status:     SAT")
	assert.Contains(t, out, "\n1\n")
}

func TestSolveOneUnsatEmitsTextProof(t *testing.T) {
	resetSolveFlags()
	path := writeCNF(t, "p cnf 2 3\n1 2 0\n-1 -2 0\n-1 0\n-2 0\n")

	dir := t.TempDir()
	solveRequest.txt = true
	solveRequest.txtName = dir + "/proof"

	logger := zap.NewNop()
	out := captureStdout(t, func() {
		_, err := solveOne(path, logger)
		require.NoError(t, err)
	})

	assert.Contains(t, out, "c status:     UNSAT")
	assert.Contains(t, out, "c proof:")

	data, err := os.ReadFile(dir + "/proof.txt")
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasSuffix(strings.TrimRight(content, "\n"), "=> □"),
		"proof should end in the empty clause: %s", content)
}

func TestSolveOneDumpsLearnedClauses(t *testing.T) {
	resetSolveFlags()
	path := writeCNF(t, "p cnf 2 3\n1 2 0\n-1 -2 0\n-1 0\n-2 0\n")

	dir := t.TempDir()
	dumpLearnedPath = dir + "/learned.cnf"

	logger := zap.NewNop()
	_, err := captureSolveErr(t, path, logger)
	require.NoError(t, err)

	data, err := os.ReadFile(dumpLearnedPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "p cnf 2")
}

func captureSolveErr(t *testing.T, path string, logger *zap.Logger) (sat.Status, error) {
	t.Helper()
	var status sat.Status
	var err error
	captureStdout(t, func() {
		status, err = solveOne(path, logger)
	})
	return status, err
}

func TestSolveOneRejectsMissingFormula(t *testing.T) {
	resetSolveFlags()
	path := writeCNF(t, "p cnf 1 1\n0\n")

	logger := zap.NewNop()
	_, err := solveOne(path, logger)
	assert.Error(t, err)
}
