// Cut a convex polygon along diagonals and triangulate what's left.
//
// Vertices are identified by their labels 0..n-1 in boundary order. Each cut
// joins two labels with a diagonal, splitting whichever piece of the polygon
// currently contains both. Once all cuts are made, every piece is fan
// triangulated, and the diagonals are returned. The cuts plus the returned
// diagonals triangulate the original polygon.
//
// Cuts must not cross each other. Crossing cuts are detected, and reported as
// an *InvariantError. See the advanced package for incremental access.
package polycut

import "github.com/osuushi/polycut/advanced"

type Cut = advanced.Cut
type Diagonal = advanced.Diagonal
type InvariantError = advanced.InvariantError

var (
	ErrTooFewVertices  = advanced.ErrTooFewVertices
	ErrLabelOutOfRange = advanced.ErrLabelOutOfRange
	ErrDegenerateCut   = advanced.ErrDegenerateCut
	ErrEdgeExists      = advanced.ErrEdgeExists
)

// Apply the cuts to an n-gon in order, and return the diagonals triangulating
// the resulting pieces.
func Triangulate(n int, cuts ...Cut) (result []Diagonal, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	polygon, err := advanced.NewPolygon(n)
	if err != nil {
		return nil, err
	}
	for _, cut := range cuts {
		if err := polygon.Cut(cut.I, cut.J); err != nil {
			return nil, err
		}
	}
	return polygon.Triangulate(), nil
}
