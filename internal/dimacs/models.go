package dimacs

import (
	"fmt"

	extdimacs "github.com/rhartert/dimacs"
)

// ParseModelFile reads a file holding one or more models, one per
// DIMACS-style clause line, as produced by WriteModel. Unlike instance
// files this format carries no header, so the real github.com/rhartert/dimacs
// reader (which treats any non-header, non-comment line as a clause) is
// used directly instead of LoadDIMACS's hand-rolled scanner.
func ParseModelFile(filename string) ([][]int, error) {
	reader, err := open(filename, false)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer reader.Close()

	b := &modelBuilder{}
	if err := extdimacs.ReadBuilder(reader, b); err != nil {
		return nil, fmt.Errorf("dimacs: reading models: %w", err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]int
}

func (b *modelBuilder) Problem(problem string, nVars, nClauses int) error {
	return fmt.Errorf("dimacs: model files should not carry a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]int, len(tmpClause))
	copy(model, tmpClause)
	b.models = append(b.models, model)
	return nil
}
