package sat

import "math"

// undoPropagations removes every literal in the current decision's
// propagated list from the model, clears the list, and resets clause
// satisfaction recorded at or above the current level. Shared by
// analyze's first step and backjump's first step — both correspond to the
// same single "undo the trail's current tail" primitive, so calling it
// twice in a row (once from each) is a harmless no-op the second time.
func (s *Solver) undoPropagations() {
	level := s.trail.Level()
	cur := s.trail.Current()
	for _, p := range cur.Propagated {
		s.model.Remove(p.Literal)
	}
	cur.Propagated = cur.Propagated[:0]
	s.store.ResetAll(level)
}

// analyze implements single-step binary resolution: the reason clause that
// propagated conflictLiteral is resolved against the clause found
// falsified, over conflictLiteral as pivot. This is a deliberate departure
// from first-UIP analysis — the resolvent is returned as-is, with no
// further resolution steps walking back through the implication graph.
func (s *Solver) analyze(conflictLiteral Literal, reasonIdx, conflictIdx int) []Literal {
	s.undoPropagations()

	reason := s.store.ClauseAt(reasonIdx)
	conflict := s.store.ClauseAt(conflictIdx)

	return resolve(reason, conflict, conflictLiteral)
}

// resolveConflict drives the ResolvingConflict state: bump VSIDS from the
// falsified clause, analyze and learn, forget if the learned population
// has grown past its cap, and backjump. Returns true when the empty clause
// was derived (the formula is refuted).
func (s *Solver) resolveConflict(res propagateResult) bool {
	conflictClause := s.store.ClauseAt(res.conflictClauseIdx)
	s.vsids.Bump(conflictClause.Literals())
	s.sink.Conflict(ClauseRef{ID: conflictClause.ID(), Lits: conflictClause.Literals()})

	learnedLits := s.analyze(res.conflictLiteral, res.reasonClauseIdx, res.conflictClauseIdx)

	reason := s.store.ClauseAt(res.reasonClauseIdx)
	conflict := s.store.ClauseAt(res.conflictClauseIdx)
	reasonRef := ClauseRef{ID: reason.ID(), Lits: reason.Literals()}
	conflictRef := ClauseRef{ID: conflict.ID(), Lits: conflict.Literals()}

	if len(learnedLits) == 0 {
		s.sink.Explain(reasonRef, conflictRef, nil)
		s.sink.Fail()
		return true
	}

	learned, _ := s.store.AddLearned(learnedLits)
	learnedRef := ClauseRef{ID: learned.ID(), Lits: learned.Literals()}
	s.sink.Explain(reasonRef, conflictRef, learned.Literals())
	s.sink.Learn(learnedRef)

	reason.MarkUsed()
	conflict.MarkUsed()

	s.Stats.Learned++

	if s.store.NumLearned() > s.maxLearned {
		forgotten := s.store.Forget()
		if len(forgotten) > 0 {
			s.Stats.Forgotten += len(forgotten)
			s.sink.Forget(forgotten)
		}
		s.maxLearned = int(math.Round(float64(s.maxLearned) * 1.5))
	}

	s.backjump()
	return false
}

// backjump rewinds exactly one decision level and restores clause/model
// invariants at the new level.
func (s *Solver) backjump() {
	s.undoPropagations()

	level := s.trail.Level()
	if level > 0 {
		s.model.Remove(s.trail.Current().DecidedLiteral)
	}
	s.trail.Pop()

	newLevel := s.trail.Level()
	// Re-running evaluation at the new level both refreshes satisfiedLevel
	// bookkeeping and, as a side effect of Clause.Evaluate's watch
	// advancement, collapses any clause that is now unit so the next
	// propagate() pass can find it via NextUnitClauseLiteral. Shrinking the
	// model can only relax falsified clauses, never introduce new ones, so
	// the status this returns is intentionally not inspected here.
	s.evaluateAll()

	s.sink.Backjump(newLevel)
}
