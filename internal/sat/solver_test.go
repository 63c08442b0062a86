package sat

import "testing"

func buildSolver(t *testing.T, numVars int, clauses [][]Literal) *Solver {
	t.Helper()
	s := NewSolver(DefaultOptions())
	for i := 0; i < numVars; i++ {
		s.AddVariable()
	}
	for _, c := range clauses {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %v", c, err)
		}
	}
	return s
}

func clauseSatisfied(c []Literal, model map[int]bool) bool {
	for _, l := range c {
		v := l.Var()
		assigned, ok := model[v]
		if !ok {
			continue
		}
		if (l > 0) == assigned {
			return true
		}
	}
	return false
}

func toModelMap(model []int) map[int]bool {
	m := make(map[int]bool, len(model))
	for _, v := range model {
		if v > 0 {
			m[v] = true
		} else {
			m[-v] = false
		}
	}
	return m
}

func TestSolveSingleUnitClause(t *testing.T) {
	s := buildSolver(t, 1, [][]Literal{{1}})
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != StatusSat {
		t.Fatalf("status = %v, want SAT", status)
	}
	model := toModelMap(s.Model())
	if !model[1] {
		t.Fatalf("model = %v, want variable 1 true", s.Model())
	}
}

func TestSolveDirectContradiction(t *testing.T) {
	s := buildSolver(t, 1, [][]Literal{{1}, {-1}})
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != StatusUnsat {
		t.Fatalf("status = %v, want UNSAT", status)
	}
}

func TestSolveClassicalTwoSAT(t *testing.T) {
	s := buildSolver(t, 2, [][]Literal{
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
	})
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != StatusUnsat {
		t.Fatalf("status = %v, want UNSAT", status)
	}
}

func TestSolveSatisfiableWithChoice(t *testing.T) {
	clauses := [][]Literal{{1, 2}, {-2, 3}, {-1, -3}}
	s := buildSolver(t, 3, clauses)
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != StatusSat {
		t.Fatalf("status = %v, want SAT", status)
	}
	model := toModelMap(s.Model())
	for _, c := range clauses {
		if !clauseSatisfied(c, model) {
			t.Fatalf("clause %v not satisfied by model %v", c, s.Model())
		}
	}
}

func TestSolveTautologyOnlyClause(t *testing.T) {
	s := buildSolver(t, 1, [][]Literal{{1, -1}})
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != StatusSat {
		t.Fatalf("status = %v, want SAT", status)
	}
}

func TestSolvePigeonholeTwoIntoOne(t *testing.T) {
	s := buildSolver(t, 2, [][]Literal{
		{1, 2}, {-1, -2}, {-1}, {-2},
	})
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != StatusUnsat {
		t.Fatalf("status = %v, want UNSAT", status)
	}
}

func TestSolveNoFormulaLoaded(t *testing.T) {
	s := NewSolver(DefaultOptions())
	s.AddVariable()
	_, err := s.Solve()
	if err != ErrNoFormula {
		t.Fatalf("err = %v, want ErrNoFormula", err)
	}
}

func TestSolveEmptyClauseOnlyIsUnsat(t *testing.T) {
	s := NewSolver(DefaultOptions())
	s.AddVariable()
	if err := s.AddClause([]Literal{}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != StatusUnsat {
		t.Fatalf("status = %v, want UNSAT", status)
	}
}

// TestSolveMaxConflictsStopsEarly exercises the ambient MaxConflicts
// extension: a formula that needs more than one learned clause to resolve
// should report Unknown rather than loop forever once the cap is hit.
func TestSolveMaxConflictsStopsEarly(t *testing.T) {
	s := buildSolver(t, 2, [][]Literal{
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
	})
	s.opts.MaxConflicts = 1
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != StatusUnknown {
		t.Fatalf("status = %v, want UNKNOWN once the conflict budget is spent", status)
	}
}

func TestBlockEnumeratesModels(t *testing.T) {
	s := buildSolver(t, 1, [][]Literal{{1, -1}}) // tautology: both 1 and -1 are models
	seen := map[int]bool{}
	for i := 0; i < 2; i++ {
		status, err := s.Solve()
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if status != StatusSat {
			t.Fatalf("iteration %d: status = %v, want SAT", i, status)
		}
		model := s.Model()
		if len(model) != 1 {
			t.Fatalf("iteration %d: model = %v, want exactly one literal", i, model)
		}
		seen[model[0]] = true
		if err := s.Block(model); err != nil {
			t.Fatalf("Block: %v", err)
		}
	}
	if !seen[1] || !seen[-1] {
		t.Fatalf("expected both models to be enumerated, got %v", seen)
	}
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != StatusUnsat {
		t.Fatalf("status = %v, want UNSAT once both models are blocked", status)
	}
}
