package suptop

import "github.com/arborpath/suptop/align"

// AlignLigandsUsingMatched selects the matched-atom coordinate arrays on
// both sides, computes the optimal rotation (Kabsch) mapping the mobile
// side onto the reference side (chosen by LeftCoordsAreRef), applies it to
// every atom of the mobile side's topology, and returns the resulting RMSD. If overwrite is false
// (the default used during search and ranking), atom positions are
// restored to their pre-alignment values before returning; if true, the
// rotated coordinates are written back permanently.
func (st *SuperimposedTopology) AlignLigandsUsingMatched(overwrite bool) (float64, error) {
	pairs := st.MatchedPairs()
	lPos := make([][3]float64, len(pairs))
	rPos := make([][3]float64, len(pairs))
	for i, p := range pairs {
		lPos[i] = p.L.Position
		rPos[i] = p.R.Position
	}

	var mobile, ref [][3]float64
	if st.LeftCoordsAreRef {
		mobile, ref = rPos, lPos
	} else {
		mobile, ref = lPos, rPos
	}

	res, err := align.Kabsch(mobile, ref)
	if err != nil {
		return 0, suptopErrorf("AlignLigandsUsingMatched", err)
	}

	if overwrite {
		mobileTop := st.Right
		if !st.LeftCoordsAreRef {
			mobileTop = st.Left
		}
		for _, a := range mobileTop.Atoms() {
			a.Position = res.Apply(a.Position)
		}
	}
	return res.RMSD, nil
}
