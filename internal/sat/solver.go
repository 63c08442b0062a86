package sat

import (
	"fmt"
	"time"
)

// Stats accumulates the counters worth reporting after a solve: clauses
// learned and clauses forgotten. Peak memory is sampled externally by
// internal/stats and reported alongside these by the caller.
type Stats struct {
	Learned   int
	Forgotten int
}

// Options configures a Solver beyond the bare CDCL core. MaxConflicts and
// Timeout are ambient additions grounded on the teacher's own Options
// type, letting a caller bound runtime without the core itself
// implementing restarts or cancellation.
type Options struct {
	MaxConflicts int64         // <= 0 means unbounded
	Timeout      time.Duration // <= 0 means unbounded
}

// DefaultOptions returns an Options with no bound on conflicts or runtime.
func DefaultOptions() Options {
	return Options{}
}

// Solver is the CDCL search core: a clause store, a trail, a VSIDS
// heuristic, and the propagate/analyze/backjump loop that drives them. A
// Solver owns all of its state exclusively; distinct instances share
// nothing and may run concurrently.
type Solver struct {
	store *Store
	model *Model
	trail *Trail
	vsids *VSIDS
	sink  EventSink

	numVars int

	maxLearned int

	Stats Stats

	opts      Options
	startTime time.Time
}

// NewSolver returns an empty Solver ready to receive variables and clauses.
func NewSolver(opts Options) *Solver {
	return &Solver{
		store: NewStore(),
		model: NewModel(0),
		trail: newTrail(),
		vsids: NewVSIDS(0),
		sink:  NoopSink{},
		opts:  opts,
	}
}

// SetEventSink installs the proof-emitter sink; pass NoopSink{} to disable
// event recording.
func (s *Solver) SetEventSink(sink EventSink) {
	if sink == nil {
		sink = NoopSink{}
	}
	s.sink = sink
}

// AddVariable declares a new variable and returns its 1-based identifier.
func (s *Solver) AddVariable() int {
	s.numVars++
	s.model.Grow(s.numVars)
	s.vsids.Grow(s.numVars)
	return s.numVars
}

// NumVariables returns the number of declared variables.
func (s *Solver) NumVariables() int { return s.numVars }

// NumOriginalClauses returns the number of clauses loaded from the input.
func (s *Solver) NumOriginalClauses() int { return s.store.NumOriginal() }

// AddClause adds an original clause to the formula.
func (s *Solver) AddClause(lits []Literal) error {
	for _, l := range lits {
		if l == 0 {
			return fmt.Errorf("sat: literal 0 is not a valid clause member")
		}
		if l.Var() > s.numVars {
			return fmt.Errorf("sat: literal %d references undeclared variable", int(l))
		}
	}
	s.store.AddOriginal(lits)
	return nil
}

func (s *Solver) shouldStop() bool {
	if s.opts.MaxConflicts > 0 && int64(s.Stats.Learned) >= s.opts.MaxConflicts {
		return true
	}
	if s.opts.Timeout > 0 && time.Since(s.startTime) >= s.opts.Timeout {
		return true
	}
	return false
}

// Solve runs the CDCL search loop to completion, or until a configured
// stop condition fires, and returns the resulting Status. The loop is a
// direct state machine over Propagating / Deciding / ResolvingConflict:
//
//   - Propagating: run the propagation fixpoint. Sat ends the search.
//     Conflict moves to ResolvingConflict. Otherwise, if every variable is
//     assigned the formula is satisfied; else move to Deciding.
//   - Deciding: pick a literal via VSIDS, push a new decision level, add it
//     to the model, go back to Propagating.
//   - ResolvingConflict: bump VSIDS, analyze and learn. The empty clause
//     ends the search as UNSAT; otherwise forget if needed, backjump, and
//     go back to Propagating.
func (s *Solver) Solve() (Status, error) {
	if s.store.NumOriginal() == 0 {
		return StatusUnknown, ErrNoFormula
	}

	// An empty clause has no literal to watch and is falsified under every
	// model: it refutes the formula outright, before propagation ever runs.
	for i := 0; i < s.store.NumOriginal(); i++ {
		if s.store.ClauseAt(i).Len() == 0 {
			return StatusUnsat, nil
		}
	}

	// Start every call from an empty assignment, so that a caller can solve
	// again after Block or AddClause.
	s.model = NewModel(s.numVars)
	s.trail = newTrail()
	s.store.ResetAll(0)

	s.maxLearned = s.store.NumOriginal()
	s.startTime = time.Now()

	for {
		res := s.propagate()

		switch {
		case res.sat:
			return StatusSat, nil
		case res.conflict:
			if s.resolveConflict(res) {
				return StatusUnsat, nil
			}
			// Successive conflicts can chain through propagate() alone, with
			// no intervening decision, so the conflict budget has to be
			// checked here too, not just in the Deciding branch below.
			if s.shouldStop() {
				return StatusUnknown, nil
			}
		default:
			if s.model.fullyAssigned() {
				return StatusSat, nil
			}
			if s.shouldStop() {
				return StatusUnknown, nil
			}
			lit := s.vsids.Decide(s.model, s.store)
			s.trail.Push(lit)
			s.model.Add(lit)
			s.sink.Decide(s.trail.Level(), lit)

			// A single decision can only ever satisfy a clause or collapse
			// it to unit, never falsify one outright (every clause it
			// touches had at least two unknown literals before the
			// decision), so re-evaluating here can only discover Sat or
			// Unknown. Its real purpose is the side effect: Evaluate
			// advances watches, which is how newly-unit clauses surface
			// for the next propagate() pass to find.
			if status, _ := s.evaluateAll(); status == evalAllSat {
				return StatusSat, nil
			}
		}
	}
}

// Model returns the current (possibly partial) satisfying assignment as
// signed literals ascending by variable, omitting unassigned variables.
// Only meaningful after Solve has returned StatusSat.
func (s *Solver) Model() []int {
	out := make([]int, 0, s.numVars)
	for v := 1; v <= s.numVars; v++ {
		if !s.model.HasVariable(v) {
			continue
		}
		if s.model.Has(Literal(v)) {
			out = append(out, v)
		} else {
			out = append(out, -v)
		}
	}
	return out
}

// LearnedClauses returns the literals of every clause the search learned
// and retained, for a caller that wants to persist the enlarged clause
// database (e.g. a --dump-learned CLI flag) rather than just the model.
func (s *Solver) LearnedClauses() [][]Literal {
	var out [][]Literal
	for _, c := range s.store.AllClauses() {
		if !c.IsLearned() {
			continue
		}
		out = append(out, c.Literals())
	}
	return out
}

// Block adds a clause that forbids the current model from recurring,
// letting a caller enumerate every satisfying assignment by repeatedly
// solving and blocking.
func (s *Solver) Block(model []int) error {
	lits := make([]Literal, len(model))
	for i, v := range model {
		lits[i] = Literal(-v)
	}
	return s.AddClause(lits)
}
