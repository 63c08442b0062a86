package proof

import (
	"fmt"

	"yasat/internal/sat"
)

// DotSink renders a resolution proof as a Graphviz digraph: one node per
// clause involved in a resolution step, with edges from the reason and
// conflict clause into whatever they resolved to — the next learned
// clause, or a synthetic square node on refutation.
type DotSink struct {
	sat.NoopSink
	file *sinkFile

	pendingReason   sat.ClauseRef
	pendingConflict sat.ClauseRef
}

// NewDotSink creates (or truncates) a .dot file at name (random name if
// empty) and writes the opening "digraph {" line.
func NewDotSink(name string) (*DotSink, error) {
	f, err := newSinkFile(name, ".dot")
	if err != nil {
		return nil, err
	}
	f.writeln("digraph {")
	return &DotSink{file: f}, nil
}

// Path returns the .dot file's path on disk.
func (d *DotSink) Path() string { return d.file.Path() }

func dotNode(c sat.ClauseRef) string {
	return fmt.Sprintf("%d [label=<<FONT POINT-SIZE='8.0'>(%d)  </FONT>%s>]", c.ID, c.ID, clauseString(c.Lits))
}

// Explain records the reason and conflict clauses that just resolved;
// the edge into their resolvent is written by the Learn or Fail call
// that immediately follows.
func (d *DotSink) Explain(reason, conflict sat.ClauseRef, learned []sat.Literal) {
	d.file.writeln(dotNode(reason))
	d.file.writeln(dotNode(conflict))
	d.pendingReason = reason
	d.pendingConflict = conflict
}

// Learn writes the learned clause's node and the edges from the reason
// and conflict clauses into it.
func (d *DotSink) Learn(clause sat.ClauseRef) {
	d.file.writeln(dotNode(clause))
	d.file.writeln("%d -> %d", d.pendingReason.ID, clause.ID)
	d.file.writeln("%d -> %d", d.pendingConflict.ID, clause.ID)
}

// Fail writes the square-node refutation edges from the reason and
// conflict clauses that resolved to the empty clause.
func (d *DotSink) Fail() {
	d.file.writeln("square [shape=square label=\"\"]")
	d.file.writeln("%d -> square", d.pendingReason.ID)
	d.file.writeln("%d -> square", d.pendingConflict.ID)
}

// Close finalizes the digraph and closes the file.
func (d *DotSink) Close() error {
	d.file.writeln("}")
	return d.file.Close()
}

// Delete discards the in-progress proof file.
func (d *DotSink) Delete() error {
	return d.file.Delete()
}
