package sat

// propagateResult is the outcome of running the propagation fixpoint to
// completion: either the formula became fully satisfied, a conflict was
// found (with enough context to run analyze), or neither happened and a
// decision is needed next.
type propagateResult struct {
	sat      bool
	conflict bool

	conflictClauseIdx int
	conflictLiteral   Literal
	reasonClauseIdx   int
}

// propagate runs the propagation fixpoint: drain every currently-unit
// clause from the learned population, then from the original population,
// re-evaluating the whole formula after each literal is forced onto the
// trail; repeat the learned/original pair until a full pass makes no
// model change.
func (s *Solver) propagate() propagateResult {
	for {
		changed := false
		for _, pop := range [2]Population{PopulationLearned, PopulationOriginal} {
			for {
				lit, localIdx, ok := s.store.NextUnitClauseLiteral(pop, s.model)
				if !ok {
					break
				}
				reasonIdx := s.store.GlobalIndex(pop, localIdx)
				reasonClause := s.store.ClauseAt(reasonIdx)

				s.model.Add(lit)
				s.trail.AppendPropagated(lit, reasonIdx)
				s.sink.Propagate(lit, ClauseRef{ID: reasonClause.ID(), Lits: reasonClause.Literals()})
				changed = true

				status, conflictIdx := s.evaluateAll()
				switch status {
				case evalAllSat:
					return propagateResult{sat: true}
				case evalAllConflict:
					return propagateResult{
						conflict:          true,
						conflictClauseIdx: conflictIdx,
						conflictLiteral:   lit,
						reasonClauseIdx:   reasonIdx,
					}
				case evalAllUnknown:
					// keep draining unit clauses from this population
				}
			}
		}
		if !changed {
			return propagateResult{}
		}
	}
}

type evalAllStatus int

const (
	evalAllUnknown evalAllStatus = iota
	evalAllSat
	evalAllConflict
)

// evaluateAll re-evaluates every clause in both populations against the
// current model at the current decision level. Originals are scanned in
// full before learned clauses; a Falsified clause is reported immediately,
// whichever population it's found in.
func (s *Solver) evaluateAll() (evalAllStatus, int) {
	allSatisfied := true
	level := s.trail.Level()

	for i := 0; i < s.store.NumOriginal(); i++ {
		switch s.store.ClauseAt(i).Evaluate(s.model, level) {
		case EvalFalsified:
			return evalAllConflict, i
		case EvalUnknown:
			allSatisfied = false
		}
	}
	for i := 0; i < s.store.NumLearned(); i++ {
		idx := s.store.NumOriginal() + i
		switch s.store.ClauseAt(idx).Evaluate(s.model, level) {
		case EvalFalsified:
			return evalAllConflict, idx
		case EvalUnknown:
			allSatisfied = false
		}
	}

	if allSatisfied {
		return evalAllSat, 0
	}
	return evalAllUnknown, 0
}
