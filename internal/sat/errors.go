package sat

import "errors"

// ErrNoFormula is returned by Solve when called before any clause has been
// added — spec.md's ErrorNoFormula output.
var ErrNoFormula = errors.New("sat: no formula loaded")
