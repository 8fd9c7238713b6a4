package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Split the fragment containing original labels i and j along the diagonal
// between them.
//
// Input errors are returned before anything is modified. If the two labels do
// not share a fragment (for example because an earlier cut crossed this one),
// Cut panics with an *InvariantError.
func (p *Polygon) Cut(i, j int) error {
	for _, label := range []int{i, j} {
		if label < 0 || label >= p.N {
			return errors.Wrapf(ErrLabelOutOfRange, "label %d not in [0, %d)", label, p.N)
		}
	}
	if i == j {
		return errors.Wrapf(ErrDegenerateCut, "cut (%d, %d)", i, j)
	}

	pi := p.SharedFragment(i, j)
	v1, v2 := p.Relatives[i][pi], p.Relatives[j][pi]

	// Adjacent endpoints would leave a two vertex fragment behind. Two fragments
	// of a convex polygon share at most one edge, so if the endpoints are
	// adjacent here, they are adjacent everywhere they meet.
	if p.next(v1) == v2 || p.next(v2) == v1 {
		return errors.Wrapf(ErrEdgeExists, "cut (%d, %d) in fragment %d", i, j, pi)
	}

	// From here on, the arc v1 -> v2 is the shorter one. It becomes the new
	// fragment, so it's the one whose labels get migrated.
	if !p.arcIsShorter(v1, v2) {
		v1, v2 = v2, v1
	}
	label1, label2 := p.label(v1), p.label(v2)

	// Splice. Both endpoints get a clone of the other, and the two cycles are:
	//
	//  A: v1 -> v1Next -> (old v2.Next) ... -> v1
	//  B: v2 -> v2Next -> (old v1.Next) ... -> v2
	oldNext1, oldNext2 := p.next(v1), p.next(v2)
	v1Next := p.newVertex(label2, oldNext2)
	v2Next := p.newVertex(label1, oldNext1)
	p.Vertices[v1].Next = v1Next
	p.Vertices[v2].Next = v2Next

	p.Fragments[pi] = v1
	newPi := FragmentID(len(p.Fragments))
	p.Fragments = append(p.Fragments, v2)

	// v1 stays in A. v2 moves to B, and its clone takes its place in A.
	p.Relatives[label1][newPi] = v2Next
	p.Relatives[label2][pi] = v1Next
	p.Relatives[label2][newPi] = v2

	// Everything strictly between the endpoints on B moved with it
	migrated := 0
	for v := oldNext1; v != v2; v = p.next(v) {
		label := p.label(v)
		clone, ok := p.Relatives[label][pi]
		if !ok || clone != v {
			fatalf("label %d is on fragment %d but relatives disagree", label, pi)
		}
		delete(p.Relatives[label], pi)
		p.Relatives[label][newPi] = v
		migrated++
	}

	p.logger.Debug("cut",
		zap.Int("i", i),
		zap.Int("j", j),
		zap.Int("fragment", int(pi)),
		zap.Int("newFragment", int(newPi)),
		zap.Int("migrated", migrated),
	)
	return nil
}

// Find the fragment containing both labels. Labels are on few fragments, so we
// scan the smaller relatives map and probe the larger.
func (p *Polygon) SharedFragment(i, j int) FragmentID {
	r1, r2 := p.Relatives[i], p.Relatives[j]
	if len(r2) < len(r1) {
		r1, r2 = r2, r1
	}

	// Map order is random, so take the lowest match to stay deterministic
	found := false
	var shared FragmentID
	for f := range r1 {
		if _, ok := r2[f]; ok && (!found || f < shared) {
			shared = f
			found = true
		}
	}
	if !found {
		fatalf("labels %d and %d share no fragment", i, j)
	}
	return shared
}

// Walk forward from both endpoints in lockstep. Whichever walker reaches the
// other endpoint first traversed the shorter arc. Ties go to v1.
func (p *Polygon) arcIsShorter(v1, v2 VertexIndex) bool {
	u1, u2 := v1, v2
	for steps := 0; steps < len(p.Vertices); steps++ {
		if p.next(u1) == v2 {
			return true
		}
		if p.next(u2) == v1 {
			return false
		}
		u1, u2 = p.next(u1), p.next(u2)
	}
	fatalf("vertices %d and %d are not on the same cycle", p.Vertices[v1].ID, p.Vertices[v2].ID)
	return false
}
