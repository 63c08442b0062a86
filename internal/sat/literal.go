// Package sat implements the CDCL search core: clause storage, the
// two-watched-literal propagation engine, single-step conflict analysis,
// VSIDS decisions, and the search loop that ties them together.
package sat

import "strconv"

// Literal is a signed, nonzero reference to a boolean variable: abs(l) is
// the variable identifier in [1, V], and the sign of l carries its
// polarity. The value 0 is reserved as a "no literal" sentinel (used by
// the level-0 synthetic Decision) and is never stored inside a Clause.
type Literal int

// Var returns the identifier of the variable l refers to.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive reports whether l is the positive polarity of its variable.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Opposite returns the complement of l.
func (l Literal) Opposite() Literal {
	return -l
}

func (l Literal) String() string {
	return strconv.Itoa(int(l))
}
