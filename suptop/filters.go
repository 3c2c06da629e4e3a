// filters.go implements the post-search filter cascade primitives used by
// the orchestrator package (spec §4.3/§4.6), each grounded 1:1 on the
// corresponding method of the original topology_superimposer.py
// SuperimposedTopology class.
package suptop

import (
	"math"
	"sort"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/topology"
)

// RefineAgainstCharges traverses matched_pairs in reverse; every pair with
// |delta charge| > atol is removed and recorded in
// RemovedPairsWithChargeDifference, which ends up sorted by |delta charge|
// descending.
func (st *SuperimposedTopology) RefineAgainstCharges(atol float64) {
	pairs := st.MatchedPairs()
	for i := len(pairs) - 1; i >= 0; i-- {
		p := pairs[i]
		d := math.Abs(p.L.Charge - p.R.Charge)
		if d > atol {
			_ = st.RemovePair(p)
			st.RemovedPairsWithChargeDifference = append(st.RemovedPairsWithChargeDifference, ChargeRemoval{Pair: p, DeltaQ: d})
		}
	}
	sort.SliceStable(st.RemovedPairsWithChargeDifference, func(i, j int) bool {
		return st.RemovedPairsWithChargeDifference[i].DeltaQ > st.RemovedPairsWithChargeDifference[j].DeltaQ
	})
}

// isCCCD reports whether the unordered type set of a pair's two atoms is
// exactly {"CC","CD"}.
func isCCCD(p Pair) bool {
	a, b := p.L.Type, p.R.Type
	return (a == "CC" && b == "CD") || (a == "CD" && b == "CC")
}

// MatchCCCDToCDCC normalizes the CC/CD aromatic-carbon-subtype ambiguity:
// whenever a pair has type set {"CC","CD"} and has exactly one adjacent
// pair with the same mismatched set, the right atom's type is overwritten
// to match the left atom's type on both pairs. Idempotent.
func (st *SuperimposedTopology) MatchCCCDToCDCC() {
	for _, p := range st.MatchedPairs() {
		if !isCCCD(p) {
			continue
		}
		var match *Pair
		count := 0
		for _, e := range st.pairBonds[p] {
			q := e.Other
			if isCCCD(q) {
				count++
				qq := q
				match = &qq
			}
		}
		if count != 1 {
			continue
		}
		p.R.Type = p.L.Type
		match.R.Type = match.L.Type
	}
}

// MatchedAtomTypesAreTheSame removes every matched pair whose left and
// right force-field types differ (post-search tightening from element-
// level equality to exact-type equality).
func (st *SuperimposedTopology) MatchedAtomTypesAreTheSame() {
	for _, p := range st.MatchedPairs() {
		if p.L.Type != p.R.Type {
			_ = st.RemovePair(p)
		}
	}
}

// RemoveWorstChargeMatch finds the pair maximizing |delta charge|, removes
// it, records it in RemovedDueToNetCharge, and returns the removed
// |delta charge| (0 if there were no pairs).
func (st *SuperimposedTopology) RemoveWorstChargeMatch() float64 {
	var worst Pair
	var worstDQ float64
	found := false
	for _, p := range st.matchedPairs {
		d := math.Abs(p.L.Charge - p.R.Charge)
		if !found || d > worstDQ {
			worst, worstDQ, found = p, d, true
		}
	}
	if !found {
		return 0
	}
	_ = st.RemovePair(worst)
	st.RemovedDueToNetCharge = append(st.RemovedDueToNetCharge, ChargeRemoval{Pair: worst, DeltaQ: worstDQ})
	return worstDQ
}

// LargestCCSurvives treats the ST as a graph whose vertices are its
// matched pairs and whose edges are matched_pairs_bonds entries; it keeps
// only the largest connected component (ties broken by first enumeration
// order) and logs every removed component to RemovedBecauseDisjointedCC.
func (st *SuperimposedTopology) LargestCCSurvives() {
	comps := st.connectedComponents()
	if len(comps) <= 1 {
		return
	}
	largest := 0
	for i, c := range comps {
		if len(c) > len(comps[largest]) {
			largest = i
		}
		_ = i
	}
	for i, c := range comps {
		if i == largest {
			continue
		}
		for _, p := range c {
			_ = st.RemovePair(p)
		}
		st.RemovedBecauseDisjointedCC = append(st.RemovedBecauseDisjointedCC, c)
	}
}

// RemovePairsWithDifferentBonds removes every pair whose induced edge to a
// neighboring pair disagrees in bond order between the two ligand sides.
// Only meaningful when IgnoreBondTypes is false. [SUPPLEMENT]
func (st *SuperimposedTopology) RemovePairsWithDifferentBonds() {
	if st.IgnoreBondTypes {
		return
	}
	toRemove := map[Pair]bool{}
	for p, edges := range st.pairBonds {
		for _, e := range edges {
			if e.OrderL != e.OrderR {
				toRemove[p] = true
				toRemove[e.Other] = true
			}
		}
	}
	for _, p := range st.MatchedPairs() {
		if toRemove[p] {
			_ = st.RemovePair(p)
			st.RemovedBecauseDiffBonds = append(st.RemovedBecauseDiffBonds, p)
		}
	}
}

// SimilarityScore returns a Jaccard-like score over matched-vs-union atom
// counts, independent of RMSD — a cheap ranking signal. [SUPPLEMENT]
func (st *SuperimposedTopology) SimilarityScore(other *SuperimposedTopology) float64 {
	common := st.CountCommonNodes(other)
	union := len(st.nodes) + len(other.nodes) - common
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}

// ensureNonoverlapCycles lazily computes _nonoverlapping_l_cycles and
// _nonoverlapping_r_cycles: each side's topology cycle basis with atoms
// shared by more than one basis cycle (double-ring junctions) removed.
func (st *SuperimposedTopology) ensureNonoverlapCycles() {
	if st.nonoverlapLCycles == nil {
		st.nonoverlapLCycles = nonoverlappingCycles(st.Left.Basis())
	}
	if st.nonoverlapRCycles == nil {
		st.nonoverlapRCycles = nonoverlappingCycles(st.Right.Basis())
	}
}

func nonoverlappingCycles(basis []topology.Cycle) []topology.Cycle {
	count := make(map[*atom.Atom]int)
	for _, c := range basis {
		for _, a := range c.Atoms {
			count[a]++
		}
	}
	out := make([]topology.Cycle, 0, len(basis))
	for _, c := range basis {
		var kept []*atom.Atom
		for _, a := range c.Atoms {
			if count[a] == 1 {
				kept = append(kept, a)
			}
		}
		out = append(out, topology.Cycle{Atoms: kept})
	}
	return out
}

func cycleContainsAtom(c topology.Cycle, a *atom.Atom) bool {
	for _, x := range c.Atoms {
		if x == a {
			return true
		}
	}
	return false
}

// CycleSpansMultipleCycles rejects an ST in which one left-side
// non-overlapping cycle maps (via the current bijection) onto atoms drawn
// from more than one distinct right-side non-overlapping cycle, or
// symmetrically. Used as a branch-pruning predicate during search.
func (st *SuperimposedTopology) CycleSpansMultipleCycles() bool {
	st.ensureNonoverlapCycles()
	lToR := make(map[*atom.Atom]*atom.Atom, len(st.matchedPairs))
	rToL := make(map[*atom.Atom]*atom.Atom, len(st.matchedPairs))
	for _, p := range st.matchedPairs {
		lToR[p.L] = p.R
		rToL[p.R] = p.L
	}
	if spansMultiple(st.nonoverlapLCycles, lToR, st.nonoverlapRCycles) {
		return true
	}
	return spansMultiple(st.nonoverlapRCycles, rToL, st.nonoverlapLCycles)
}

func spansMultiple(source []topology.Cycle, mapping map[*atom.Atom]*atom.Atom, target []topology.Cycle) bool {
	for _, c := range source {
		touched := map[int]struct{}{}
		for _, a := range c.Atoms {
			img, ok := mapping[a]
			if !ok {
				continue
			}
			for ti, tc := range target {
				if cycleContainsAtom(tc, img) {
					touched[ti] = struct{}{}
				}
			}
		}
		if len(touched) > 1 {
			return true
		}
	}
	return false
}

// EnforceNoPartialRings removes every pair whose left or right atom lies
// in an original-ligand ring that is only partially reproduced by the
// mapping, iterating to a fixed point (spec §4.3). Cycles longer than 7
// atoms are exempt (macrocycle exemption).
func (st *SuperimposedTopology) EnforceNoPartialRings() {
	const macrocycleExemption = 7
	for {
		changed := st.enforceNoPartialRingsOnePass(macrocycleExemption)
		if !changed {
			return
		}
	}
}

func (st *SuperimposedTopology) enforceNoPartialRingsOnePass(maxSize int) bool {
	lToR := make(map[*atom.Atom]*atom.Atom, len(st.matchedPairs))
	for _, p := range st.matchedPairs {
		lToR[p.L] = p.R
	}

	fullyOverlapping := make(map[int]bool)
	for li, lc := range st.Left.Basis() {
		if len(lc.Atoms) > maxSize {
			continue
		}
		imageAtoms := make(map[*atom.Atom]struct{}, len(lc.Atoms))
		ok := true
		for _, a := range lc.Atoms {
			img, mapped := lToR[a]
			if !mapped {
				ok = false
				break
			}
			imageAtoms[img] = struct{}{}
		}
		if !ok {
			continue
		}
		for _, rc := range st.Right.Basis() {
			if len(rc.Atoms) != len(lc.Atoms) {
				continue
			}
			if sameAtomSet(rc.Atoms, imageAtoms) {
				fullyOverlapping[li] = true
				break
			}
		}
	}

	removed := false
	for li, lc := range st.Left.Basis() {
		if fullyOverlapping[li] || len(lc.Atoms) > maxSize {
			continue
		}
		for _, a := range lc.Atoms {
			for _, p := range st.MatchedPairs() {
				if p.L == a {
					_ = st.RemovePair(p)
					st.RemovedBecauseUnmatchedRings = append(st.RemovedBecauseUnmatchedRings, p)
					removed = true
				}
			}
		}
	}
	for ri, rc := range st.Right.Basis() {
		if len(rc.Atoms) > maxSize {
			continue
		}
		if rightCycleFullyOverlapping(st, rc, maxSize) {
			continue
		}
		_ = ri
		for _, a := range rc.Atoms {
			for _, p := range st.MatchedPairs() {
				if p.R == a {
					_ = st.RemovePair(p)
					st.RemovedBecauseUnmatchedRings = append(st.RemovedBecauseUnmatchedRings, p)
					removed = true
				}
			}
		}
	}
	return removed
}

func rightCycleFullyOverlapping(st *SuperimposedTopology, rc topology.Cycle, maxSize int) bool {
	rToL := make(map[*atom.Atom]*atom.Atom, len(st.matchedPairs))
	for _, p := range st.matchedPairs {
		rToL[p.R] = p.L
	}
	imageAtoms := make(map[*atom.Atom]struct{}, len(rc.Atoms))
	for _, a := range rc.Atoms {
		img, mapped := rToL[a]
		if !mapped {
			return false
		}
		imageAtoms[img] = struct{}{}
	}
	for _, lc := range st.Left.Basis() {
		if len(lc.Atoms) != len(rc.Atoms) || len(lc.Atoms) > maxSize {
			continue
		}
		if sameAtomSet(lc.Atoms, imageAtoms) {
			return true
		}
	}
	return false
}

func sameAtomSet(atoms []*atom.Atom, set map[*atom.Atom]struct{}) bool {
	if len(atoms) != len(set) {
		return false
	}
	for _, a := range atoms {
		if _, ok := set[a]; !ok {
			return false
		}
	}
	return true
}

// RedistributeCharges requires both ligands' total charges to be integers
// (to within 0.01 e) and equal. For each pair where left and right charges
// differ, both are set to their average; the accumulated drift on each
// side is distributed uniformly over that side's unmatched atoms.
func (st *SuperimposedTopology) RedistributeCharges() error {
	totalL := sumCharge(st.Left.Atoms())
	totalR := sumCharge(st.Right.Atoms())
	if !nearInteger(totalL) || !nearInteger(totalR) {
		return suptopErrorf("RedistributeCharges", ErrNonIntegerChargeTotal)
	}
	if math.Round(totalL) != math.Round(totalR) {
		return suptopErrorf("RedistributeCharges", ErrChargeTotalsUnequal)
	}

	var driftL, driftR float64
	for _, p := range st.matchedPairs {
		if p.L.Charge == p.R.Charge {
			continue
		}
		avg := (p.L.Charge + p.R.Charge) / 2
		driftL += p.L.Charge - avg
		driftR += p.R.Charge - avg
		p.L.Charge = avg
		p.R.Charge = avg
	}

	if unmatched := st.DisappearingAtoms(); len(unmatched) > 0 {
		per := driftL / float64(len(unmatched))
		for _, a := range unmatched {
			a.Charge += per
		}
	}
	if unmatched := st.AppearingAtoms(); len(unmatched) > 0 {
		per := driftR / float64(len(unmatched))
		for _, a := range unmatched {
			a.Charge += per
		}
	}
	return nil
}

func sumCharge(atoms []*atom.Atom) float64 {
	var sum float64
	for _, a := range atoms {
		sum += a.Charge
	}
	return sum
}

func nearInteger(x float64) bool {
	return math.Abs(x-math.Round(x)) <= 0.01
}
