package sat

// ClauseRef is the id/literal snapshot passed to an EventSink so sinks can
// render a clause without needing a side registry of previously-seen
// clauses.
type ClauseRef struct {
	ID   int
	Lits []Literal
}

// EventSink receives the structured event stream a Solver emits as it
// searches, for proof/trace output (DOT graphs, plain-text resolution
// traces, LaTeX trail dumps). The core calls every method unconditionally;
// install NoopSink when no output is wanted so Solve never has to branch
// on "is a sink configured".
type EventSink interface {
	Decide(level int, lit Literal)
	Propagate(lit Literal, reason ClauseRef)
	Conflict(clause ClauseRef)
	// Explain reports the resolution step that produced learned from
	// reason and conflict. learned == nil means the empty clause (the
	// formula is refuted).
	Explain(reason, conflict ClauseRef, learned []Literal)
	Learn(clause ClauseRef)
	Forget(ids []int)
	Backjump(toLevel int)
	Fail()
}

// NoopSink implements EventSink by discarding every event.
type NoopSink struct{}

func (NoopSink) Decide(int, Literal)                     {}
func (NoopSink) Propagate(Literal, ClauseRef)             {}
func (NoopSink) Conflict(ClauseRef)                       {}
func (NoopSink) Explain(ClauseRef, ClauseRef, []Literal)   {}
func (NoopSink) Learn(ClauseRef)                          {}
func (NoopSink) Forget([]int)                             {}
func (NoopSink) Backjump(int)                              {}
func (NoopSink) Fail()                                     {}
