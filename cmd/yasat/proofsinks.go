package main

import (
	"fmt"

	"yasat/internal/proof"
	"yasat/internal/sat"
)

// closableSink is the subset every internal/proof sink shares beyond
// sat.EventSink: a proof is only meaningful for a refutation, so a
// finished solve either keeps the file (Close) or discards it (Delete),
// mirroring the original solver's file_delete on a satisfiable outcome.
type closableSink interface {
	sat.EventSink
	Path() string
	Close() error
	Delete() error
}

// fanoutSink broadcasts every event to a set of concrete sinks, so a
// single solve can emit DOT, text, and LaTeX proofs together.
type fanoutSink struct {
	sinks []closableSink
}

func (f *fanoutSink) Decide(level int, lit sat.Literal) {
	for _, s := range f.sinks {
		s.Decide(level, lit)
	}
}

func (f *fanoutSink) Propagate(lit sat.Literal, reason sat.ClauseRef) {
	for _, s := range f.sinks {
		s.Propagate(lit, reason)
	}
}

func (f *fanoutSink) Conflict(clause sat.ClauseRef) {
	for _, s := range f.sinks {
		s.Conflict(clause)
	}
}

func (f *fanoutSink) Explain(reason, conflict sat.ClauseRef, learned []sat.Literal) {
	for _, s := range f.sinks {
		s.Explain(reason, conflict, learned)
	}
}

func (f *fanoutSink) Learn(clause sat.ClauseRef) {
	for _, s := range f.sinks {
		s.Learn(clause)
	}
}

func (f *fanoutSink) Forget(ids []int) {
	for _, s := range f.sinks {
		s.Forget(ids)
	}
}

func (f *fanoutSink) Backjump(toLevel int) {
	for _, s := range f.sinks {
		s.Backjump(toLevel)
	}
}

func (f *fanoutSink) Fail() {
	for _, s := range f.sinks {
		s.Fail()
	}
}

// finish closes a refutation's proof files, or discards them when the
// formula turned out satisfiable, and reports every path that was kept.
func (f *fanoutSink) finish(status sat.Status) ([]string, error) {
	var kept []string
	for _, s := range f.sinks {
		if status == sat.StatusUnsat {
			if err := s.Close(); err != nil {
				return kept, fmt.Errorf("closing proof %q: %w", s.Path(), err)
			}
			kept = append(kept, s.Path())
			continue
		}
		if err := s.Delete(); err != nil {
			return kept, fmt.Errorf("discarding proof %q: %w", s.Path(), err)
		}
	}
	return kept, nil
}

// proofRequest names which proof formats to emit and, optionally, an
// explicit base filename for each (empty means let the sink pick a
// random name).
type proofRequest struct {
	dot, txt, tex       bool
	dotName, txtName, texName string
}

func (r proofRequest) any() bool { return r.dot || r.txt || r.tex }

// buildProofSinks constructs one closableSink per requested format.
func buildProofSinks(r proofRequest) (*fanoutSink, error) {
	f := &fanoutSink{}

	if r.dot {
		s, err := proof.NewDotSink(r.dotName)
		if err != nil {
			return nil, err
		}
		f.sinks = append(f.sinks, s)
	}
	if r.txt {
		s, err := proof.NewTextSink(r.txtName)
		if err != nil {
			return nil, err
		}
		f.sinks = append(f.sinks, s)
	}
	if r.tex {
		s, err := proof.NewLatexSink(r.texName)
		if err != nil {
			return nil, err
		}
		f.sinks = append(f.sinks, s)
	}

	return f, nil
}
