// Package proof provides EventSink implementations that render a solver
// run as a resolution proof: a Graphviz digraph, a plain-text resolution
// trace, or a LaTeX trail dump.
package proof

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"

	"yasat/internal/sat"
)

// sinkFile is a create-eagerly, buffered output file shared by every
// concrete sink below. If name is empty a random name is generated, the
// same role the original solver's File played with its random_name
// fallback.
type sinkFile struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

func newSinkFile(name, ext string) (*sinkFile, error) {
	if name == "" {
		name = uuid.NewString()
	}
	path := name
	if len(path) < len(ext) || path[len(path)-len(ext):] != ext {
		path += ext
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("proof: creating %q: %w", path, err)
	}
	return &sinkFile{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

func (s *sinkFile) writeln(format string, args ...any) {
	fmt.Fprintf(s.w, format, args...)
	s.w.WriteByte('\n')
}

// Close flushes and closes the underlying file, keeping it on disk.
func (s *sinkFile) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// Delete closes and removes the underlying file, for a run whose outcome
// leaves no proof worth keeping.
func (s *sinkFile) Delete() error {
	s.w.Flush()
	s.f.Close()
	return os.Remove(s.path)
}

// Path returns the file's path on disk.
func (s *sinkFile) Path() string { return s.path }

func clauseString(lits []sat.Literal) string {
	if len(lits) == 0 {
		return "□" // □
	}
	out := ""
	for i, l := range lits {
		if i > 0 {
			out += " "
		}
		out += l.String()
	}
	return out
}
