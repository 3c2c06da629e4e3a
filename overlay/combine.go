// combine.go implements the combination resolver of spec §4.5: given a
// per-left-atom map of candidate STs keyed by right atom, resolve the
// many-to-many neighbor-matching ambiguity into a single best ST,
// enumerating injections between the left and right atom sets and
// merging each injection's member STs, then picking the best by RMSD
// (extract_best). Grounded on solve_one_combination/extract_best in the
// original topology_superimposer.py.
package overlay

import (
	"sort"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/suptop"
)

// resolveClass resolves one element/type class's candidate map into a
// single merged ST, or (nil, false) if no injection produces a consistent
// merge.
func resolveClass(perLeft map[*atom.Atom]map[*atom.Atom]*suptop.SuperimposedTopology) (*suptop.SuperimposedTopology, bool) {
	lefts := sortedAtomKeys(perLeft)

	rightSet := make(map[*atom.Atom]struct{})
	for _, l := range lefts {
		for r := range perLeft[l] {
			rightSet[r] = struct{}{}
		}
	}
	rights := make([]*atom.Atom, 0, len(rightSet))
	for r := range rightSet {
		rights = append(rights, r)
	}
	sort.Slice(rights, func(i, j int) bool { return rights[i].Name < rights[j].Name })

	target := len(lefts)
	if len(rights) < target {
		target = len(rights)
	}
	if target == 0 {
		return nil, false
	}

	var candidates []*suptop.SuperimposedTopology
	var assignment []struct {
		l, r *atom.Atom
	}
	used := make(map[*atom.Atom]bool)

	var backtrack func(idx int)
	backtrack = func(idx int) {
		if len(assignment) == target {
			if st, ok := mergeInjection(perLeft, assignment); ok {
				candidates = append(candidates, st)
			}
			return
		}
		if idx == len(lefts) {
			return
		}
		l := lefts[idx]
		// Option: skip this left atom.
		backtrack(idx + 1)
		// Option: assign it to each of its available, unused right atoms.
		var opts []*atom.Atom
		for r := range perLeft[l] {
			opts = append(opts, r)
		}
		sort.Slice(opts, func(i, j int) bool { return opts[i].Name < opts[j].Name })
		for _, r := range opts {
			if used[r] {
				continue
			}
			used[r] = true
			assignment = append(assignment, struct{ l, r *atom.Atom }{l, r})
			backtrack(idx + 1)
			assignment = assignment[:len(assignment)-1]
			used[r] = false
		}
	}
	backtrack(0)

	if len(candidates) == 0 {
		return nil, false
	}
	return extractBest(candidates)
}

func mergeInjection(perLeft map[*atom.Atom]map[*atom.Atom]*suptop.SuperimposedTopology, assignment []struct{ l, r *atom.Atom }) (*suptop.SuperimposedTopology, bool) {
	sorted := append([]struct{ l, r *atom.Atom }(nil), assignment...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].l.Name < sorted[j].l.Name })

	var result *suptop.SuperimposedTopology
	for _, a := range sorted {
		member := perLeft[a.l][a.r]
		if result == nil {
			result = member.Clone()
			continue
		}
		if err := result.Merge(member); err != nil {
			return nil, false
		}
	}
	return result, result != nil
}

// extractBest returns the single candidate unchanged if there is exactly
// one; otherwise it aligns every candidate (without overwriting
// coordinates), picks the lowest-RMSD one as the winner, and files every
// other candidate as a mirror (if it shares the winner's node set) or an
// alternative mapping.
func extractBest(candidates []*suptop.SuperimposedTopology) (*suptop.SuperimposedTopology, bool) {
	if len(candidates) == 1 {
		return candidates[0], true
	}

	bestIdx := -1
	bestRMSD := 0.0
	for i, c := range candidates {
		rmsd, err := c.AlignLigandsUsingMatched(false)
		if err != nil {
			continue
		}
		if bestIdx == -1 || rmsd < bestRMSD {
			bestIdx, bestRMSD = i, rmsd
		}
	}
	if bestIdx == -1 {
		return nil, false
	}

	winner := candidates[bestIdx]
	for i, c := range candidates {
		if i == bestIdx {
			continue
		}
		if winner.IsMirrorOf(c) {
			winner.AddMirrorSuptop(c)
		} else {
			winner.AddAlternativeMapping(c)
		}
	}
	return winner, true
}

func sortedAtomKeys(m map[*atom.Atom]map[*atom.Atom]*suptop.SuperimposedTopology) []*atom.Atom {
	out := make([]*atom.Atom, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
