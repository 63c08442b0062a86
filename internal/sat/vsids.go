package sat

import "sort"

const vsidsEpsilon = 1e-9

// VSIDS is the per-variable decayed-activity decision heuristic: a
// (posScore, negScore) pair per variable, halved on every conflict and
// bumped from the clause that caused it.
type VSIDS struct {
	pos []float64 // indexed by variable id; pos[0] unused
	neg []float64
}

func NewVSIDS(numVars int) *VSIDS {
	return &VSIDS{pos: make([]float64, numVars+1), neg: make([]float64, numVars+1)}
}

// Grow extends the heuristic to cover at least numVars variables.
func (v *VSIDS) Grow(numVars int) {
	for len(v.pos) <= numVars {
		v.pos = append(v.pos, 0)
		v.neg = append(v.neg, 0)
	}
}

// Bump halves every variable's scores (clamping near-zero pairs to
// exactly zero to keep the halving from running forever on noise), then
// increments the score of every literal's polarity appearing in clause.
func (v *VSIDS) Bump(clause []Literal) {
	for i := range v.pos {
		v.pos[i] /= 2
		v.neg[i] /= 2
		if v.pos[i]+v.neg[i] < vsidsEpsilon {
			v.pos[i] = 0
			v.neg[i] = 0
		}
	}
	for _, l := range clause {
		if l.IsPositive() {
			v.pos[l.Var()]++
		} else {
			v.neg[l.Var()]++
		}
	}
}

// Decide selects the highest-scoring unassigned variable by
// posScore+negScore, polarity set by whichever of posScore/negScore is
// larger. When no unassigned variable has a positive score (for instance
// before any conflict has touched one), it falls back to the most-watched
// variable across the clause store's not-yet-satisfied clauses.
func (v *VSIDS) Decide(m *Model, store *Store) Literal {
	type scored struct {
		v     int
		score float64
	}
	candidates := make([]scored, 0, len(v.pos)-1)
	for vv := 1; vv < len(v.pos); vv++ {
		if s := v.pos[vv] + v.neg[vv]; s > 0 {
			candidates = append(candidates, scored{vv, s})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	for _, cand := range candidates {
		if m.HasVariable(cand.v) {
			continue
		}
		if v.pos[cand.v] >= v.neg[cand.v] {
			return Literal(cand.v)
		}
		return Literal(-cand.v)
	}

	return v.decideFromWatchedLiterals(m, store)
}

func (v *VSIDS) decideFromWatchedLiterals(m *Model, store *Store) Literal {
	literals := store.AllWatchedLiterals()

	type group struct {
		v     int
		count int
		neg   int
	}
	groups := make(map[int]*group)
	var order []int
	for _, l := range literals {
		g, ok := groups[l.Var()]
		if !ok {
			g = &group{v: l.Var()}
			groups[l.Var()] = g
			order = append(order, l.Var())
		}
		g.count++
		if l < 0 {
			g.neg++
		}
	}
	if len(order) == 0 {
		return firstUnassigned(m)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return groups[order[i]].count > groups[order[j]].count
	})

	largest := groups[order[0]]
	if largest.neg*2 > largest.count {
		return Literal(-largest.v)
	}
	return Literal(largest.v)
}

// firstUnassigned picks the lowest-indexed unassigned variable, positive
// polarity — the last-resort fallback for a variable that appears in no
// unsatisfied clause (e.g. every clause mentioning it is a tautology).
func firstUnassigned(m *Model) Literal {
	for vv := 1; vv <= m.NumVariables(); vv++ {
		if !m.HasVariable(vv) {
			return Literal(vv)
		}
	}
	return 0
}
