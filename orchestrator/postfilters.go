// postfilters.go implements the 13-step global post-filter cascade of
// spec §4.6, applied once after the seed loop has produced the accepted
// set of SuperimposedTopology candidates.
package orchestrator

import (
	"sort"

	"github.com/arborpath/suptop/config"
	"github.com/arborpath/suptop/suptop"
	"go.uber.org/zap"
)

func applyPostFilters(accepted []*suptop.SuperimposedTopology, cfg config.Config, log *zap.SugaredLogger) ([]*suptop.SuperimposedTopology, error) {
	// 1. Set ignore_bond_types per ST.
	for _, st := range accepted {
		st.IgnoreBondTypes = cfg.IgnoreBondTypes
	}

	// 2. Align ligands using the largest ST, once, establishing a shared
	// coordinate frame (atoms are shared by reference across every ST on
	// a side, so this correction is visible to all of them).
	if cfg.AlignMolecules {
		largest := largestOf(accepted)
		if _, err := largest.AlignLigandsUsingMatched(true); err != nil {
			return nil, orchestratorErrorf("SuperimposeTopologies", err)
		}
	}

	// 3. CC/CD aromatic-carbon normalization.
	for _, st := range accepted {
		st.MatchCCCDToCDCC()
	}

	// 4. Exact-type tightening, unless element-only matching was requested.
	if !cfg.UseOnlyElement {
		for _, st := range accepted {
			st.MatchedAtomTypesAreTheSame()
		}
	}

	// 5. Charge-tolerance refinement.
	if cfg.UseCharges && !cfg.IgnoreChargesCompletely {
		for _, st := range accepted {
			st.RefineAgainstCharges(cfg.PairChargeAtol)
		}
	}

	// 6. force_mismatch exclusion.
	if len(cfg.ForceMismatch) > 0 {
		for _, st := range accepted {
			removeForceMismatch(st, cfg.ForceMismatch)
		}
	}

	// 7. Net-charge balancing; STs emptied by this step are dropped.
	if cfg.NetChargeFilter && !cfg.IgnoreChargesCompletely {
		accepted = filterEmpty(accepted, func(st *suptop.SuperimposedTopology) {
			for st.Size() > 0 && absF(st.NetCharge()) > cfg.NetChargeThreshold {
				st.RemoveWorstChargeMatch()
			}
		})
		if len(accepted) == 0 {
			return nil, orchestratorErrorf("SuperimposeTopologies", ErrEmptyResult)
		}
	}

	// 8. Partial-ring elimination.
	if !cfg.PartialRingsAllowed {
		for _, st := range accepted {
			st.EnforceNoPartialRings()
		}
	}

	// 9. Largest-connected-component retention, then single-ST retention
	// overall when disjoint components are disallowed.
	if !cfg.DisjointComponents {
		for _, st := range accepted {
			st.LargestCCSurvives()
		}
		accepted = []*suptop.SuperimposedTopology{largestOf(accepted)}
	}

	// 10. Charge redistribution over unmatched atoms, only meaningful once
	// a single ST remains.
	if cfg.RedistributeChargesOverUnmatched && !cfg.DisjointComponents && !cfg.IgnoreChargesCompletely {
		if err := accepted[0].RedistributeCharges(); err != nil {
			return nil, orchestratorErrorf("SuperimposeTopologies", err)
		}
	}

	// 11. Sequential atom-ID assignment across surviving STs.
	nextID := 1
	for _, st := range accepted {
		nextID = st.AssignAtomIDs(nextID)
	}

	// 12. Sort by ascending RMSD.
	sort.SliceStable(accepted, func(i, j int) bool {
		ri, _ := accepted[i].RMSD()
		rj, _ := accepted[j].RMSD()
		return ri < rj
	})

	// 13. Warn if a mirror outranks its representative; finally align with
	// overwrite so downstream consumers observe corrected coordinates.
	for _, st := range accepted {
		rmsd, _ := st.RMSD()
		for _, m := range st.Mirrors {
			mRMSD, err := m.RMSD()
			if err == nil && mRMSD < rmsd {
				log.Warnw("mirror has lower RMSD than its representative", "representative_rmsd", rmsd, "mirror_rmsd", mRMSD)
			}
		}
		if cfg.AlignMolecules {
			if _, err := st.AlignLigandsUsingMatched(true); err != nil {
				return nil, orchestratorErrorf("SuperimposeTopologies", err)
			}
		}
	}

	return accepted, nil
}

func largestOf(sts []*suptop.SuperimposedTopology) *suptop.SuperimposedTopology {
	largest := sts[0]
	for _, st := range sts[1:] {
		if st.Size() > largest.Size() {
			largest = st
		}
	}
	return largest
}

func removeForceMismatch(st *suptop.SuperimposedTopology, forbidden []config.Pair) {
	for _, fm := range forbidden {
		if !st.ContainsAtomNamePair(fm.Left, fm.Right) {
			continue
		}
		for _, p := range st.MatchedPairs() {
			if p.L.Name == fm.Left && p.R.Name == fm.Right {
				_ = st.RemovePair(p)
			}
		}
	}
}

func filterEmpty(sts []*suptop.SuperimposedTopology, shrink func(*suptop.SuperimposedTopology)) []*suptop.SuperimposedTopology {
	out := sts[:0]
	for _, st := range sts {
		shrink(st)
		if st.Size() > 0 {
			out = append(out, st)
		}
	}
	return out
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
