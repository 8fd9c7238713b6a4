// Package advanced exposes the boundary store behind polycut. Most users want
// the root package; this one is for callers who need to interleave cuts with
// queries, render intermediate states, or check invariants as they go.
//
// A Polygon starts as a single convex fragment with vertices labeled 0..n-1.
// Each cut splits the fragment holding both endpoints along the diagonal
// between them. No coordinates are involved; everything is adjacency.
package advanced

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Polygon struct {
	// Number of original vertices.
	N int
	// Arena of every vertex record ever created. Records are never removed.
	Vertices []Vertex
	// Fragments[f] is some vertex on fragment f's boundary.
	Fragments []VertexIndex
	// Relatives[label][f] is the clone of label on fragment f's boundary. A
	// label has an entry for f iff it is on f's boundary.
	Relatives []map[FragmentID]VertexIndex

	nextID int
	logger *zap.Logger
}

type Option func(*Polygon)

// Log cuts to the given logger. Cuts are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Polygon) {
		p.logger = logger
	}
}

// Create a polygon with n vertices, labeled 0..n-1 in boundary order.
func NewPolygon(n int, options ...Option) (*Polygon, error) {
	if n < 3 {
		return nil, errors.Wrapf(ErrTooFewVertices, "got %d", n)
	}

	p := &Polygon{
		N:         n,
		Vertices:  make([]Vertex, 0, n),
		Relatives: make([]map[FragmentID]VertexIndex, n),
		logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(p)
	}

	for label := 0; label < n; label++ {
		v := p.newVertex(label, VertexIndex((label+1)%n))
		p.Relatives[label] = map[FragmentID]VertexIndex{0: v}
	}
	p.Fragments = []VertexIndex{0}
	return p, nil
}

// Allocate a vertex record with a fresh id.
func (p *Polygon) newVertex(label int, next VertexIndex) VertexIndex {
	index := VertexIndex(len(p.Vertices))
	p.Vertices = append(p.Vertices, Vertex{Label: label, ID: p.nextID, Next: next})
	p.nextID++
	return index
}

func (p *Polygon) next(v VertexIndex) VertexIndex {
	return p.Vertices[v].Next
}

func (p *Polygon) label(v VertexIndex) int {
	return p.Vertices[v].Label
}

func (p *Polygon) FragmentCount() int {
	return len(p.Fragments)
}

// Number of cuts applied so far. Every cut creates exactly one fragment.
func (p *Polygon) CutCount() int {
	return len(p.Fragments) - 1
}

// The boundary of a fragment, starting from its representative.
func (p *Polygon) Fragment(f FragmentID) []VertexIndex {
	start := p.Fragments[f]
	cycle := []VertexIndex{start}
	for v := p.next(start); v != start; v = p.next(v) {
		// A cycle can never be longer than the arena. If it is, we are looping
		// on some other cycle that doesn't contain the start.
		if len(cycle) >= len(p.Vertices) {
			fatalf("fragment %d does not close at vertex %d", f, p.Vertices[start].ID)
		}
		cycle = append(cycle, v)
	}
	return cycle
}

func (p *Polygon) FragmentLabels(f FragmentID) []int {
	cycle := p.Fragment(f)
	labels := make([]int, len(cycle))
	for i, v := range cycle {
		labels[i] = p.label(v)
	}
	return labels
}

// Print a fragment like "5->1->2->3->4".
func (p *Polygon) FragmentString(f FragmentID) string {
	labels := p.FragmentLabels(f)
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = fmt.Sprint(label)
	}
	return strings.Join(parts, "->")
}

// Find the clone of label on fragment f's boundary.
func (p *Polygon) Relative(label int, f FragmentID) (VertexIndex, bool) {
	if label < 0 || label >= p.N {
		return NoVertex, false
	}
	v, ok := p.Relatives[label][f]
	if !ok {
		return NoVertex, false
	}
	return v, true
}

// All fragments whose boundary contains label, in creation order.
func (p *Polygon) FragmentsOf(label int) []FragmentID {
	if label < 0 || label >= p.N {
		return nil
	}
	var fragments []FragmentID
	for f := range p.Relatives[label] {
		fragments = append(fragments, f)
	}
	slices.Sort(fragments)
	return fragments
}

func (p *Polygon) String() string {
	lines := make([]string, len(p.Fragments))
	for f := range p.Fragments {
		lines[f] = p.FragmentString(FragmentID(f))
	}
	return strings.Join(lines, "\n")
}
