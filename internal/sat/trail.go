package sat

// Propagation is a (literal, reason clause index) pair recorded when a
// literal is forced onto the trail by unit propagation. Reason is a
// global clause-store index (see Store.ClauseAt).
type Propagation struct {
	Literal Literal
	Reason  int
}

// Decision is one entry of the trail: the literal chosen (or, for the
// synthetic level-0 entry, forced) at this level, plus every literal
// propagated under it before the next decision or backjump.
// DecidedLiteral == 0 marks the level-0 placeholder, which only ever holds
// top-level unit propagations.
type Decision struct {
	DecidedLiteral Literal
	Propagated     []Propagation
}

func newDecision(lit Literal) *Decision {
	return &Decision{DecidedLiteral: lit}
}

// Equals implements the trail's decision-equality rule: two decisions
// compare equal when their decided literals match, or when one side's
// propagated tail names the other's decided literal.
func (d *Decision) Equals(other *Decision) bool {
	if d.DecidedLiteral == other.DecidedLiteral {
		return true
	}
	for _, p := range d.Propagated {
		if p.Literal == other.DecidedLiteral {
			return true
		}
	}
	for _, p := range other.Propagated {
		if p.Literal == d.DecidedLiteral {
			return true
		}
	}
	return false
}

// Trail is the ordered sequence of decisions, indexed implicitly by
// decision level (level == len(decisions)-1, so level 0 is always the
// synthetic placeholder holding top-level unit propagations).
type Trail struct {
	decisions []*Decision
}

func newTrail() *Trail {
	return &Trail{decisions: []*Decision{newDecision(0)}}
}

// NewTrail returns an empty trail at level 0. Exported so an EventSink can
// mirror the solver's trail from the Decide/Propagate/Backjump event
// stream alone, without the core exposing its own internal *Trail.
func NewTrail() *Trail { return newTrail() }

// Level returns the current decision level.
func (t *Trail) Level() int { return len(t.decisions) - 1 }

// Current returns the decision at the current level.
func (t *Trail) Current() *Decision { return t.decisions[len(t.decisions)-1] }

// Push opens a new decision level for lit.
func (t *Trail) Push(lit Literal) {
	t.decisions = append(t.decisions, newDecision(lit))
}

// Pop removes the current decision. If that empties the trail, a fresh
// level-0 placeholder is pushed back in its place.
func (t *Trail) Pop() {
	t.decisions = t.decisions[:len(t.decisions)-1]
	if len(t.decisions) == 0 {
		t.decisions = []*Decision{newDecision(0)}
	}
}

// AppendPropagated records a literal forced onto the trail at the current
// level by the clause at reason.
func (t *Trail) AppendPropagated(lit Literal, reason int) {
	cur := t.Current()
	cur.Propagated = append(cur.Propagated, Propagation{Literal: lit, Reason: reason})
}

// Contains reports whether lit appears as a decided or propagated literal
// anywhere on the trail, per the decision-equality rule.
func (t *Trail) Contains(lit Literal) bool {
	probe := newDecision(lit)
	for _, d := range t.decisions {
		if d.Equals(probe) {
			return true
		}
	}
	return false
}

// IsAssertionClause reports whether every literal of lits has its
// complement decided or propagated somewhere on the trail — a clause whose
// falsity is already fully explained by the current trail. Used only by
// the optional LaTeX proof enrichment, not by the core search loop.
func IsAssertionClause(lits []Literal, t *Trail) bool {
	for _, l := range lits {
		if !t.Contains(l.Opposite()) {
			return false
		}
	}
	return true
}
