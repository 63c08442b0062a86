package sat

import "testing"

func TestNewClauseDedupAndSort(t *testing.T) {
	c := newClause([]Literal{3, -1, 3, 2}, false)
	want := []Literal{-1, 2, 3}
	got := c.Literals()
	if len(got) != len(want) {
		t.Fatalf("literals = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("literals = %v, want %v", got, want)
		}
	}
}

func TestClauseEvaluateEmptyClauseIsFalsified(t *testing.T) {
	c := newClause(nil, false)
	m := NewModel(0)
	if got := c.Evaluate(m, 0); got != EvalFalsified {
		t.Fatalf("Evaluate on empty clause = %v, want Falsified", got)
	}
	if a, b := c.WatchedLiterals(); a != 0 || b != 0 {
		t.Fatalf("WatchedLiterals on empty clause = (%d, %d), want (0, 0)", a, b)
	}
}

func TestNewClauseTautology(t *testing.T) {
	c := newClause([]Literal{1, -1, 2}, false)
	if !c.IsTautology() {
		t.Fatal("expected tautology detection for {1, -1, 2}")
	}
	m := NewModel(2)
	if got := c.Evaluate(m, 0); got != EvalSatisfied {
		t.Fatalf("tautology Evaluate = %v, want Satisfied", got)
	}
}

func TestClauseEvaluateUnit(t *testing.T) {
	c := newClause([]Literal{1}, false)
	if !c.IsUnit() {
		t.Fatal("single-literal clause must be unit")
	}
	m := NewModel(1)
	if got := c.Evaluate(m, 0); got != EvalUnknown {
		t.Fatalf("Evaluate on unassigned unit clause = %v, want Unknown", got)
	}
	m.Add(1)
	if got := c.Evaluate(m, 0); got != EvalSatisfied {
		t.Fatalf("Evaluate = %v, want Satisfied", got)
	}
	// Satisfaction is latched until a backjump resets it, so undo the
	// assignment the way backjump does before flipping the literal.
	m.Remove(1)
	c.ResetSatisfied(0)
	m.Add(-1)
	if got := c.Evaluate(m, 0); got != EvalFalsified {
		t.Fatalf("Evaluate = %v, want Falsified", got)
	}
}

func TestClauseEvaluateTwoWatch(t *testing.T) {
	// (1 2 3): falsify 1 and 2 in turn, watches should advance to 3.
	c := newClause([]Literal{1, 2, 3}, false)
	m := NewModel(3)

	m.Add(-1)
	if got := c.Evaluate(m, 0); got != EvalUnknown {
		t.Fatalf("Evaluate after falsifying lit 1 = %v, want Unknown", got)
	}
	m.Add(-2)
	if got := c.Evaluate(m, 0); got != EvalUnknown {
		t.Fatalf("Evaluate after falsifying lits 1,2 = %v, want Unknown", got)
	}
	if !c.IsUnit() {
		t.Fatal("clause should have collapsed to unit once only lit 3 remains unknown")
	}
	m.Add(-3)
	if got := c.Evaluate(m, 0); got != EvalFalsified {
		t.Fatalf("Evaluate with all literals falsified = %v, want Falsified", got)
	}
}

func TestClauseEvaluateSatisfiedLatchesLevel(t *testing.T) {
	c := newClause([]Literal{1, 2}, false)
	m := NewModel(2)
	m.Add(1)
	if got := c.Evaluate(m, 3); got != EvalSatisfied {
		t.Fatalf("Evaluate = %v, want Satisfied", got)
	}
	lvl, ok := c.SatisfiedLevel()
	if !ok || lvl != 3 {
		t.Fatalf("SatisfiedLevel = (%d, %v), want (3, true)", lvl, ok)
	}
}

func TestResetSatisfiedClearsAtOrAboveLevel(t *testing.T) {
	c := newClause([]Literal{1, 2}, false)
	m := NewModel(2)
	m.Add(1)
	c.Evaluate(m, 2)

	if reset := c.ResetSatisfied(3); reset {
		t.Fatal("ResetSatisfied(3) should not clear a clause satisfied at level 2")
	}
	if _, ok := c.SatisfiedLevel(); !ok {
		t.Fatal("clause satisfied at level 2 should survive ResetSatisfied(3)")
	}

	if reset := c.ResetSatisfied(2); !reset {
		t.Fatal("ResetSatisfied(2) should clear a clause satisfied at level 2")
	}
	if _, ok := c.SatisfiedLevel(); ok {
		t.Fatal("SatisfiedLevel should be cleared after ResetSatisfied at its own level")
	}
}

func TestResolve(t *testing.T) {
	a := newClause([]Literal{1, 2}, false)
	b := newClause([]Literal{-1, 3}, false)
	got := resolve(a, b, 1)
	want := []Literal{2, 3}
	if len(got) != len(want) {
		t.Fatalf("resolve = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("resolve = %v, want %v", got, want)
		}
	}
}

func TestResolveToEmptyClause(t *testing.T) {
	a := newClause([]Literal{1}, false)
	b := newClause([]Literal{-1}, false)
	got := resolve(a, b, 1)
	if len(got) != 0 {
		t.Fatalf("resolve = %v, want empty", got)
	}
}
