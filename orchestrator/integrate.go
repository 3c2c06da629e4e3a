// integrate.go implements the per-seed acceptance pipeline of spec
// §4.6: each freshly overlaid candidate is checked against every
// already-accepted ST in turn (equal, subgraph, mirror, supergraph,
// partial overlap) before being folded into the accepted set.
package orchestrator

import "github.com/arborpath/suptop/suptop"

// integrateCandidate folds candidate into accepted per the per-seed
// pipeline rules, returning the updated accepted slice.
func integrateCandidate(accepted []*suptop.SuperimposedTopology, candidate *suptop.SuperimposedTopology) []*suptop.SuperimposedTopology {
	for _, a := range accepted {
		if candidate.Eq(a) {
			return accepted
		}
	}
	for _, a := range accepted {
		if candidate.IsSubgraphOf(a) {
			return accepted
		}
	}
	for i, a := range accepted {
		if candidate.IsMirrorOf(a) {
			accepted[i] = resolveMirror(a, candidate)
			return accepted
		}
	}

	var kept []*suptop.SuperimposedTopology
	removedAny := false
	for _, a := range accepted {
		if a.IsSubgraphOf(candidate) {
			removedAny = true
			continue
		}
		kept = append(kept, a)
	}
	if removedAny {
		return append(kept, candidate)
	}

	// Partial overlap: scan every accepted entry that shares a node with
	// candidate (the subgraph checks above already ruled out strict
	// containment either way, so a shared node here is a true partial
	// overlap). A larger existing entry survives and drops candidate; a
	// smaller one is replaced and filed as an alternative mapping under
	// candidate; equal-size overlaps are tie-broken by RMSD. The scan
	// continues across all of accepted so candidate can cascade-resolve
	// against more than one overlapping entry in a single call.
	out := make([]*suptop.SuperimposedTopology, 0, len(accepted)+1)
	keepCandidate := true
	for _, a := range accepted {
		if a.CountCommonNodes(candidate) == 0 {
			out = append(out, a)
			continue
		}
		switch {
		case a.Size() > candidate.Size():
			keepCandidate = false
			out = append(out, a)
		case candidate.Size() > a.Size():
			candidate.AddAlternativeMapping(a)
		default:
			winner, loser := rankByRMSD(a, candidate)
			winner.AddAlternativeMapping(loser)
			if winner == a {
				keepCandidate = false
				out = append(out, a)
			}
		}
	}
	if keepCandidate {
		out = append(out, candidate)
	}
	return out
}

// resolveMirror picks the lower-RMSD of a and candidate as the winner and
// records the loser as one of the winner's mirrors.
func resolveMirror(a, candidate *suptop.SuperimposedTopology) *suptop.SuperimposedTopology {
	winner, loser := rankByRMSD(a, candidate)
	winner.AddMirrorSuptop(loser)
	return winner
}

// rankByRMSD aligns both STs (without overwriting coordinates) and
// returns (lower-RMSD, higher-RMSD). An ST whose RMSD cannot be computed
// loses unconditionally.
func rankByRMSD(a, b *suptop.SuperimposedTopology) (winner, loser *suptop.SuperimposedTopology) {
	aRMSD, aErr := a.AlignLigandsUsingMatched(false)
	bRMSD, bErr := b.AlignLigandsUsingMatched(false)
	switch {
	case aErr != nil:
		return b, a
	case bErr != nil:
		return a, b
	case aRMSD <= bRMSD:
		return a, b
	default:
		return b, a
	}
}
