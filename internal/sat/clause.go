package sat

import (
	"sort"
	"strings"
)

const noSatisfiedLevel = -1

// Clause is an ordered, deduplicated sequence of literals together with
// the two-watched-literal bookkeeping the propagation engine mutates as it
// scans. Grounded on classes/clause.rs (check_literals, two-watch
// evaluation) in the system this package's spec was distilled from.
type Clause struct {
	id             int
	lits           []Literal
	watch          [2]int
	satisfiedLevel int // noSatisfiedLevel means "not currently known satisfied"
	tautology      bool
	used           bool
	learned        bool
}

// newClause builds a clause from possibly unsorted, possibly duplicated
// literals: sorts by variable, drops exact duplicates, and flags
// tautologies (a variable appearing with both polarities). id is assigned
// by the Store once the clause is actually recorded.
func newClause(lits []Literal, learned bool) *Clause {
	c := &Clause{
		lits:           normalizeLiterals(lits),
		satisfiedLevel: noSatisfiedLevel,
		learned:        learned,
	}
	c.tautology = hasComplementaryPair(c.lits)
	c.resetWatches()
	return c
}

func normalizeLiterals(lits []Literal) []Literal {
	out := append([]Literal(nil), lits...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Var() < out[j].Var()
	})
	n := 0
	for i, l := range out {
		if i > 0 && l == out[i-1] {
			continue
		}
		out[n] = l
		n++
	}
	return out[:n]
}

// hasComplementaryPair assumes lits is sorted by Var with exact duplicates
// already removed, so two adjacent entries sharing a variable must carry
// opposite signs.
func hasComplementaryPair(lits []Literal) bool {
	for i := 1; i < len(lits); i++ {
		if lits[i].Var() == lits[i-1].Var() {
			return true
		}
	}
	return false
}

func (c *Clause) ID() int             { return c.id }
func (c *Clause) Literals() []Literal { return c.lits }
func (c *Clause) Len() int            { return len(c.lits) }
func (c *Clause) IsUnit() bool        { return c.watch[0] == c.watch[1] }
func (c *Clause) IsLearned() bool     { return c.learned }
func (c *Clause) IsTautology() bool   { return c.tautology }
func (c *Clause) Used() bool          { return c.used }
func (c *Clause) MarkUsed()           { c.used = true }

// SatisfiedLevel reports the decision level at which this clause was last
// confirmed satisfied, if any.
func (c *Clause) SatisfiedLevel() (int, bool) {
	if c.satisfiedLevel == noSatisfiedLevel {
		return 0, false
	}
	return c.satisfiedLevel, true
}

// WatchedLiterals returns the two literals currently watched. For a unit
// clause both elements are the same literal. The empty clause (no
// literals to watch) returns the zero Literal for both.
func (c *Clause) WatchedLiterals() (Literal, Literal) {
	if len(c.lits) == 0 {
		return 0, 0
	}
	return c.lits[c.watch[0]], c.lits[c.watch[1]]
}

func (c *Clause) resetWatches() {
	c.watch[0] = 0
	if len(c.lits) > 1 {
		c.watch[1] = 1
	} else {
		c.watch[1] = 0
	}
}

func (c *Clause) setWatch(slot, idx int) {
	c.watch[slot] = idx
	if c.watch[0] > c.watch[1] {
		c.watch[0], c.watch[1] = c.watch[1], c.watch[0]
	}
}

// Evaluate is the two-watched-literal evaluation contract: it returns
// Satisfied, Falsified or Unknown, advancing the clause's watches as a
// side effect and recording satisfiedLevel when the clause becomes
// known-satisfied at currentLevel.
func (c *Clause) Evaluate(m *Model, currentLevel int) Eval {
	if c.tautology || c.satisfiedLevel != noSatisfiedLevel {
		return EvalSatisfied
	}

	// The empty clause has no literal to watch and is falsified under
	// every model: it is the immediate-UNSAT sentinel, not a unit clause.
	if len(c.lits) == 0 {
		return EvalFalsified
	}

	if c.IsUnit() {
		switch m.Satisfies(c.lits[c.watch[0]]) {
		case EvalSatisfied:
			c.satisfiedLevel = currentLevel
			return EvalSatisfied
		case EvalFalsified:
			return EvalFalsified
		default:
			return EvalUnknown
		}
	}

	for {
		moved := false
		for slot := 0; slot < 2; slot++ {
			switch m.Satisfies(c.lits[c.watch[slot]]) {
			case EvalSatisfied:
				c.satisfiedLevel = currentLevel
				return EvalSatisfied
			case EvalFalsified:
				if c.IsUnit() {
					return EvalFalsified
				}
				last := len(c.lits) - 1
				mx := c.watch[1]
				if c.watch[0] > mx {
					mx = c.watch[0]
				}
				if mx == last {
					if slot == 0 {
						c.setWatch(0, mx)
					} else {
						c.setWatch(1, c.watch[0])
					}
				} else {
					c.setWatch(slot, mx+1)
				}
				moved = true
			case EvalUnknown:
			}
			if moved {
				break
			}
		}
		if !moved {
			return EvalUnknown
		}
	}
}

// ResetSatisfied restores clause invariants when the trail backjumps to
// currentLevel. A clause already confirmed satisfied at a level below
// currentLevel needs no watch reset at all — it keeps reporting Satisfied
// on the fast path above. Only a clause whose satisfiedLevel is being
// cleared here, or that was never satisfied, gets its watches rewound to
// their initial positions. Returns whether satisfiedLevel was cleared.
func (c *Clause) ResetSatisfied(currentLevel int) bool {
	if c.satisfiedLevel != noSatisfiedLevel {
		if c.satisfiedLevel >= currentLevel {
			c.satisfiedLevel = noSatisfiedLevel
			c.resetWatches()
			return true
		}
		return false
	}
	c.resetWatches()
	return false
}

// resolve returns the sorted, deduplicated union of a's and b's literals
// with pivot and its complement removed: the clause produced by binary
// resolution of a and b over pivot.
func resolve(a, b *Clause, pivot Literal) []Literal {
	lits := make([]Literal, 0, len(a.lits)+len(b.lits))
	lits = append(lits, a.lits...)
	lits = append(lits, b.lits...)
	merged := normalizeLiterals(lits)

	out := merged[:0]
	for _, l := range merged {
		if l == pivot || l == pivot.Opposite() {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (c *Clause) String() string {
	if len(c.lits) == 0 {
		return "□" // □, the empty clause
	}
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}
