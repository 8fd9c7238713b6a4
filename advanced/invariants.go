package advanced

// Rebuild everything the store maintains incrementally from the cycles alone,
// and compare. This is O(total boundary size), so it's meant for tests and
// the CLI's --check mode, not for every cut.
//
// The returned error, if any, is an *InvariantError.
func (p *Polygon) CheckInvariants() (err error) {
	defer func() {
		// Fragment() panics on cycles that never close
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	if len(p.Relatives) != p.N {
		return invariantErrorf("relatives has %d labels, want %d", len(p.Relatives), p.N)
	}

	rebuilt := make([]map[FragmentID]VertexIndex, p.N)
	for label := range rebuilt {
		rebuilt[label] = make(map[FragmentID]VertexIndex)
	}

	membership := 0
	for f := range p.Fragments {
		f := FragmentID(f)
		cycle := p.Fragment(f)
		if len(cycle) < 3 {
			return invariantErrorf("fragment %d has %d vertices", f, len(cycle))
		}
		for _, v := range cycle {
			label := p.label(v)
			if _, ok := rebuilt[label][f]; ok {
				return invariantErrorf("label %d appears twice on fragment %d", label, f)
			}
			rebuilt[label][f] = v
		}
		membership += len(cycle)
	}

	// Every cut adds one membership for each endpoint
	if want := p.N + 2*p.CutCount(); membership != want {
		return invariantErrorf("fragments hold %d label memberships, want %d", membership, want)
	}

	for label, clones := range p.Relatives {
		if len(clones) != len(rebuilt[label]) {
			return invariantErrorf("label %d is on %d fragments, relatives has %d",
				label, len(rebuilt[label]), len(clones))
		}
		for f, v := range clones {
			actual, ok := rebuilt[label][f]
			if !ok {
				return invariantErrorf("relatives puts label %d on fragment %d, which doesn't contain it", label, f)
			}
			if actual != v {
				return invariantErrorf("relatives has vertex %d for label %d on fragment %d, but the boundary has %d",
					p.Vertices[v].ID, label, f, p.Vertices[actual].ID)
			}
		}
	}
	return nil
}
