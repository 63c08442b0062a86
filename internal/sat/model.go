package sat

// Model is the dense partial assignment over variables 1..=NumVariables.
// Every operation is O(1), matching the array-backed model this was
// grounded on (classes/model.rs in the system this package's spec was
// distilled from) rather than a map-backed one.
type Model struct {
	values []ModelValue // indexed by variable id; values[0] is unused
}

// NewModel returns a Model with room for numVars variables.
func NewModel(numVars int) *Model {
	return &Model{values: make([]ModelValue, numVars+1)}
}

// Grow extends the model to cover at least numVars variables.
func (m *Model) Grow(numVars int) {
	for len(m.values) <= numVars {
		m.values = append(m.values, Unassigned)
	}
}

// NumVariables returns the number of variables the model has room for.
func (m *Model) NumVariables() int {
	return len(m.values) - 1
}

// Add assigns l's variable so that l itself is satisfied.
func (m *Model) Add(l Literal) {
	if l > 0 {
		m.values[l.Var()] = Positive
	} else {
		m.values[l.Var()] = Negative
	}
}

// Remove clears any assignment of l's variable.
func (m *Model) Remove(l Literal) {
	m.values[l.Var()] = Unassigned
}

// Has reports whether the model currently satisfies l (sign-sensitive).
func (m *Model) Has(l Literal) bool {
	switch m.values[l.Var()] {
	case Positive:
		return l > 0
	case Negative:
		return l < 0
	default:
		return false
	}
}

// HasVariable reports whether l's variable is assigned, regardless of sign.
func (m *Model) HasVariable(v int) bool {
	return m.values[v] != Unassigned
}

// Satisfies evaluates l against the current model.
func (m *Model) Satisfies(l Literal) Eval {
	switch m.values[l.Var()] {
	case Unassigned:
		return EvalUnknown
	case Positive:
		if l > 0 {
			return EvalSatisfied
		}
		return EvalFalsified
	default: // Negative
		if l < 0 {
			return EvalSatisfied
		}
		return EvalFalsified
	}
}

// fullyAssigned reports whether every declared variable has a value.
func (m *Model) fullyAssigned() bool {
	for v := 1; v < len(m.values); v++ {
		if m.values[v] == Unassigned {
			return false
		}
	}
	return true
}
