package advanced

import "github.com/pkg/errors"

// Input errors. These are always returned before the polygon is modified, and
// are wrapped with the offending values; match them with errors.Is.
var (
	ErrTooFewVertices  = errors.New("polycut: polygon needs at least 3 vertices")
	ErrLabelOutOfRange = errors.New("polycut: vertex label out of range")
	ErrDegenerateCut   = errors.New("polycut: cut endpoints are the same vertex")
	ErrEdgeExists      = errors.New("polycut: cut endpoints are already adjacent")
)
