package advanced

// Fan triangulation. Every fragment is convex, so connecting one vertex to
// every vertex it isn't already adjacent to triangulates it. The anchor is the
// vertex after the fragment's representative.

// A diagonal iterator walks the fan of a single fragment. It is finite, and can
// be restarted with Reset. Behavior is undefined if the polygon is cut during
// iteration.
type DiagonalIterator struct {
	polygon        *Polygon
	representative VertexIndex
	base           VertexIndex
	current        VertexIndex
}

func (p *Polygon) IterateDiagonals(f FragmentID) *DiagonalIterator {
	iter := &DiagonalIterator{
		polygon:        p,
		representative: p.Fragments[f],
	}
	iter.Reset()
	return iter
}

func (iter *DiagonalIterator) Reset() {
	p := iter.polygon
	iter.base = p.next(iter.representative)
	// Skip the anchor's successor, which is already joined to it by an edge
	iter.current = p.next(p.next(iter.base))
}

// Get the next diagonal. The second result is false once the fan is exhausted.
func (iter *DiagonalIterator) Next() (Diagonal, bool) {
	p := iter.polygon
	// The representative is the anchor's predecessor, so it's adjacent too
	if iter.current == iter.representative {
		return Diagonal{}, false
	}
	diagonal := Diagonal{A: p.label(iter.base), B: p.label(iter.current)}
	iter.current = p.next(iter.current)
	return diagonal, true
}

// Feed the remaining diagonals into a channel from a goroutine. The channel is
// closed when the fan is exhausted, so it must be drained.
func (iter *DiagonalIterator) MakeChan() chan Diagonal {
	ch := make(chan Diagonal)
	go func() {
		for {
			diagonal, ok := iter.Next()
			if !ok {
				break
			}
			ch <- diagonal
		}
		close(ch)
	}()
	return ch
}

func (p *Polygon) TriangulateFragment(f FragmentID) []Diagonal {
	var result []Diagonal
	iter := p.IterateDiagonals(f)
	for {
		diagonal, ok := iter.Next()
		if !ok {
			return result
		}
		result = append(result, diagonal)
	}
}

// Triangulate every fragment, in fragment order. Together with the cuts, the
// result triangulates the original polygon.
func (p *Polygon) Triangulate() []Diagonal {
	var result []Diagonal
	for f := range p.Fragments {
		result = append(result, p.TriangulateFragment(FragmentID(f))...)
	}
	return result
}
