package proof

import (
	"fmt"

	"yasat/internal/sat"
)

// TextSink renders a resolution proof as plain text: one line per
// resolution step naming both antecedents and the resolvent, ending in
// "=> □" once the empty clause is derived.
type TextSink struct {
	sat.NoopSink
	file *sinkFile

	pendingReason   sat.ClauseRef
	pendingConflict sat.ClauseRef
}

// NewTextSink creates (or truncates) a .txt file at name (random name if
// empty).
func NewTextSink(name string) (*TextSink, error) {
	f, err := newSinkFile(name, ".txt")
	if err != nil {
		return nil, err
	}
	return &TextSink{file: f}, nil
}

// Path returns the .txt file's path on disk.
func (t *TextSink) Path() string { return t.file.Path() }

// Explain records the reason and conflict clauses that just resolved; the
// line naming their resolvent is written by the Learn or Fail call that
// immediately follows.
func (t *TextSink) Explain(reason, conflict sat.ClauseRef, learned []sat.Literal) {
	t.pendingReason = reason
	t.pendingConflict = conflict
}

func (t *TextSink) antecedents() string {
	return fmt.Sprintf("(%d) %s - (%d) %s", t.pendingReason.ID, clauseString(t.pendingReason.Lits), t.pendingConflict.ID, clauseString(t.pendingConflict.Lits))
}

// Learn writes the resolution step's antecedents and the learned clause's
// own id and literals.
func (t *TextSink) Learn(clause sat.ClauseRef) {
	t.file.writeln("%s => (%d) %s", t.antecedents(), clause.ID, clauseString(clause.Lits))
}

// Fail writes the resolution step's antecedents resolving to the empty
// clause.
func (t *TextSink) Fail() {
	t.file.writeln("%s => □", t.antecedents())
}

// Close flushes and closes the file.
func (t *TextSink) Close() error { return t.file.Close() }

// Delete discards the in-progress proof file.
func (t *TextSink) Delete() error { return t.file.Delete() }
