package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"yasat/internal/sat"
)

// WriteDIMACS serializes numVars variables and clauses back to the DIMACS
// CNF format: a "p cnf V C" header followed by one "0"-terminated line per
// clause. This is the round-trip counterpart to LoadDIMACS.
func WriteDIMACS(w io.Writer, numVars int, clauses [][]sat.Literal) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		for _, l := range c {
			if _, err := fmt.Fprintf(bw, "%d ", int(l)); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteDIMACSFile is a convenience wrapper around WriteDIMACS that creates
// (or truncates) filename.
func WriteDIMACSFile(filename string, numVars int, clauses [][]sat.Literal) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("dimacs: creating %q: %w", filename, err)
	}
	defer f.Close()
	return WriteDIMACS(f, numVars, clauses)
}

// WriteModel appends a model, one signed literal per assigned variable in
// ascending variable order terminated by "0", as a single DIMACS clause
// line. Successive calls accumulate a model file readable by
// ParseModelFile.
func WriteModel(w io.Writer, model []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range model {
		if _, err := fmt.Fprintf(bw, "%d ", v); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("0\n"); err != nil {
		return err
	}
	return bw.Flush()
}
