package advanced

import "fmt"

// Vertices live in an arena owned by the Polygon, and refer to each other by
// index. Boundaries are cycles, so plain indices keep ownership simple: the
// arena owns every record, and a fragment is just a walk through it.
type VertexIndex int

// NoVertex is returned by lookups that found nothing.
const NoVertex VertexIndex = -1

type Vertex struct {
	// The original vertex this record stands for. Every clone of an original
	// vertex shares its label.
	Label int
	// Unique per record, assigned in creation order. Only used for debugging.
	ID int
	// The next vertex along the boundary of the fragment this vertex is on.
	Next VertexIndex
}

// Fragments are identified by the order they were created in. Fragment 0 is
// the initial polygon.
type FragmentID int

// A cut request between two original labels.
type Cut struct {
	I, J int
}

// A triangulating diagonal between two original labels.
type Diagonal struct {
	A, B int
}

func (d Diagonal) String() string {
	return fmt.Sprintf("%d %d", d.A, d.B)
}
