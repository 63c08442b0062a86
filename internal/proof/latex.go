package proof

import (
	"fmt"

	"yasat/internal/sat"
)

// LatexSink renders a LaTeX document tracing the trail's evolution:
// decisions, propagations, conflicts, learned clauses, backjumps, and
// forgets, each as an "=>" arrow over the growing partial assignment.
// It mirrors the solver's trail purely from the event stream so it can
// call sat.IsAssertionClause against its own copy of the trail.
type LatexSink struct {
	file  *sinkFile
	trail *sat.Trail
}

// NewLatexSink creates (or truncates) a .tex file at name (random name if
// empty) and writes the document preamble.
func NewLatexSink(name string) (*LatexSink, error) {
	f, err := newSinkFile(name, ".tex")
	if err != nil {
		return nil, err
	}
	f.writeln(`\documentclass{article}`)
	f.writeln(`\usepackage{seqsplit}\usepackage{mathtools}\usepackage{amssymb}`)
	f.writeln(`\newcommand{\overflow}[1]{ \texttt{\ttfamily\seqsplit{$#1$}} }`)
	f.writeln(`\begin{document}`)
	f.writeln(`\title{Proof of unsatisfiability}`)
	f.writeln(`\author{generated by yasat}`)
	f.writeln(`\maketitle`)
	f.writeln(`\overflow{\emptyset||F} `)
	return &LatexSink{file: f, trail: sat.NewTrail()}, nil
}

// Path returns the .tex file's path on disk.
func (l *LatexSink) Path() string { return l.file.Path() }

func (l *LatexSink) arrow(label string) {
	l.file.writeln(`\xRightarrow[\text{%s}]{} `, label)
}

func (l *LatexSink) printTrail(label string, append string) {
	l.arrow(label)
	l.file.writeln(`\overflow{%s}`, l.trailString())
	if append != "" {
		l.file.writeln(" %s", append)
	}
}

// trailString renders the current decision level's literals: the decided
// literal (if any) marked {^d}, followed by everything propagated under
// it, each marked {_{id}} with its reason clause's id.
func (l *LatexSink) trailString() string {
	cur := l.trail.Current()
	var parts []string
	if cur.DecidedLiteral != 0 {
		parts = append(parts, cur.DecidedLiteral.String()+"{^d}")
	}
	for _, p := range cur.Propagated {
		parts = append(parts, fmt.Sprintf("%s{_{%d}}", p.Literal, p.Reason))
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

func (l *LatexSink) Decide(level int, lit sat.Literal) {
	l.trail.Push(lit)
	l.printTrail("Decision", "")
}

func (l *LatexSink) Propagate(lit sat.Literal, reason sat.ClauseRef) {
	l.trail.AppendPropagated(lit, reason.ID)
	l.printTrail("Propagation", "")
}

func (l *LatexSink) Conflict(clause sat.ClauseRef) {
	l.printTrail("Conflict", fmt.Sprintf("%d: %s", clause.ID, clauseString(clause.Lits)))
}

func (l *LatexSink) Explain(reason, conflict sat.ClauseRef, learned []sat.Literal) {
	if learned == nil {
		return // Fail renders the terminal square
	}
	l.printTrail("Explain", fmt.Sprintf("%d: %s", reason.ID, clauseString(learned)))
}

func (l *LatexSink) Learn(clause sat.ClauseRef) {
	if sat.IsAssertionClause(clause.Lits, l.trail) {
		l.file.writeln(`%% assertion clause (%d): %s`, clause.ID, clauseString(clause.Lits))
	}
}

func (l *LatexSink) Forget(ids []int) {
	l.printTrail("Forget", fmt.Sprintf("%v", ids))
}

func (l *LatexSink) Backjump(toLevel int) {
	for l.trail.Level() > toLevel {
		l.trail.Pop()
	}
	l.printTrail("Backjump", "")
}

func (l *LatexSink) Fail() {
	l.arrow("Fail")
	l.file.writeln(`$\square$`)
}

// Close writes the closing \end{document} and closes the file.
func (l *LatexSink) Close() error {
	l.file.writeln(`\end{document}`)
	return l.file.Close()
}

// Delete discards the in-progress proof file.
func (l *LatexSink) Delete() error { return l.file.Delete() }
