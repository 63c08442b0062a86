package sat

import (
	"fmt"

	"github.com/rhartert/yagh"
)

// Population identifies which half of the clause store to address.
type Population int

const (
	PopulationLearned Population = iota
	PopulationOriginal
)

// Store holds the original and learned clause populations behind a single
// global index space: [0, NumOriginal) addresses originals, and
// [NumOriginal, NumOriginal+NumLearned) addresses learned clauses. id
// assignment is independent of position, so ids remain stable across
// Forget compacting the learned slice.
type Store struct {
	original []*Clause
	learned  []*Clause
	nextID   int
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) NumOriginal() int { return len(s.original) }
func (s *Store) NumLearned() int  { return len(s.learned) }

// ClauseAt addresses the global index space.
func (s *Store) ClauseAt(idx int) *Clause {
	if idx < len(s.original) {
		return s.original[idx]
	}
	return s.learned[idx-len(s.original)]
}

// GlobalIndex converts a (population, local index) pair into a global
// clause-store index.
func (s *Store) GlobalIndex(pop Population, localIdx int) int {
	if pop == PopulationOriginal {
		return localIdx
	}
	return len(s.original) + localIdx
}

func sameLiterals(a, b []Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s *Store) containsMultiset(lits []Literal) bool {
	for _, c := range s.original {
		if sameLiterals(c.lits, lits) {
			return true
		}
	}
	for _, c := range s.learned {
		if sameLiterals(c.lits, lits) {
			return true
		}
	}
	return false
}

// AddOriginal adds a clause loaded from the input formula. lits need not
// be pre-sorted or deduplicated.
func (s *Store) AddOriginal(lits []Literal) *Clause {
	s.nextID++
	c := newClause(lits, false)
	c.id = s.nextID
	s.original = append(s.original, c)
	return c
}

// AddLearned assigns the resolvent a fresh id regardless of outcome, adds
// it to the learned population unless a clause with the same literal
// multiset already exists in either population, and reports whether it was
// actually added.
func (s *Store) AddLearned(lits []Literal) (*Clause, bool) {
	s.nextID++
	c := newClause(lits, true)
	c.id = s.nextID
	if s.containsMultiset(lits) {
		return c, false
	}
	s.learned = append(s.learned, c)
	return c, true
}

// Forget removes every learned clause in the lower half of the learned
// population whose length exceeds the population's mean clause length,
// exempting any clause that has ever served as a resolution antecedent
// (Used()) — it's already pulling its weight in the proof, so eviction
// targets the dead weight around it instead. The forgotten-clause ids are
// reported longest-first, using a yagh indexed heap: negated lengths are
// Put in, then drained via Pop in ascending order to get largest-first.
func (s *Store) Forget() []int {
	if len(s.learned) == 0 {
		return nil
	}
	total := 0
	for _, c := range s.learned {
		total += len(c.lits)
	}
	mean := total / len(s.learned)
	half := len(s.learned) / 2

	order := yagh.New[float64](0)
	keyToPos := make(map[int]int)
	key := 0
	for i := 0; i < half; i++ {
		c := s.learned[i]
		if len(c.lits) <= mean || c.Used() {
			continue
		}
		order.GrowBy(1)
		order.Put(key, -float64(len(c.lits)))
		keyToPos[key] = i
		key++
	}

	forgetPositions := make(map[int]bool)
	var forgottenIDs []int
	for {
		elem, ok := order.Pop()
		if !ok {
			break
		}
		pos := keyToPos[elem.Elem]
		forgetPositions[pos] = true
		forgottenIDs = append(forgottenIDs, s.learned[pos].id)
	}

	kept := s.learned[:0]
	for i, c := range s.learned {
		if forgetPositions[i] {
			continue
		}
		kept = append(kept, c)
	}
	s.learned = kept
	return forgottenIDs
}

// NextUnitClauseLiteral returns the first clause in the given population
// that is currently unit, not already satisfied or a tautology, and whose
// watched literal is not yet in the model.
func (s *Store) NextUnitClauseLiteral(pop Population, m *Model) (Literal, int, bool) {
	clauses := s.original
	if pop == PopulationLearned {
		clauses = s.learned
	}
	for idx, c := range clauses {
		if c.Len() == 0 {
			continue // nothing to watch; Solve rejects an empty clause up front
		}
		if !c.IsUnit() {
			continue
		}
		if c.satisfiedLevel != noSatisfiedLevel || c.tautology {
			continue
		}
		lit, _ := c.WatchedLiterals()
		if m.Has(lit) {
			continue
		}
		return lit, idx, true
	}
	return 0, 0, false
}

// AllWatchedLiterals returns the multiset of watched literals across every
// not-yet-satisfied, non-tautology clause in both populations — the
// VSIDS fallback's input when no unassigned variable has a positive score.
func (s *Store) AllWatchedLiterals() []Literal {
	var out []Literal
	collect := func(clauses []*Clause) {
		for _, c := range clauses {
			if c.Len() == 0 {
				continue
			}
			if c.satisfiedLevel != noSatisfiedLevel || c.tautology {
				continue
			}
			a, b := c.WatchedLiterals()
			out = append(out, a)
			if b != a {
				out = append(out, b)
			}
		}
	}
	collect(s.original)
	collect(s.learned)
	return out
}

// AllClauses returns every clause in the store, originals first.
func (s *Store) AllClauses() []*Clause {
	out := make([]*Clause, 0, len(s.original)+len(s.learned))
	out = append(out, s.original...)
	out = append(out, s.learned...)
	return out
}

// ResetAll invokes ResetSatisfied on every stored clause, as required
// after undoing propagations at, or backjumping to, level.
func (s *Store) ResetAll(level int) {
	for _, c := range s.original {
		c.ResetSatisfied(level)
	}
	for _, c := range s.learned {
		c.ResetSatisfied(level)
	}
}

func (s *Store) String() string {
	return fmt.Sprintf("Store[original=%d learned=%d]", len(s.original), len(s.learned))
}
