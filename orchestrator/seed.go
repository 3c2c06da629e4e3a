package orchestrator

import (
	"sort"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/config"
	"github.com/arborpath/suptop/suptop"
	"github.com/arborpath/suptop/topology"
)

// SeedPairs selects the candidate (left, right) atom pairs the search
// phase should attempt, per spec §4.6's seed-selection heuristic:
//
//  1. An explicit config.StartingNodePairs list, if supplied, is honored
//     verbatim (looked up by atom name; unresolvable names are skipped).
//  2. Otherwise, if config.StartingPairsHeuristics is false, every
//     (l, r) pair of the two topologies' atoms is emitted (full
//     Cartesian product).
//  3. Otherwise, the rarity heuristic runs: hydrogens and ring-member
//     carbons are excluded from both sides, the remaining atoms are
//     grouped by exact force-field type, classes present on both sides
//     are emitted (full Cartesian product within class) in ascending
//     order of rarity (min class size), until the accumulated theoretical
//     overlap (the sum of each emitted class's min class size) exceeds 20%
//     of min(|L|, |R|) non-hydrogen atoms.
func SeedPairs(left, right *topology.Topology, cfg config.Config) []suptop.Pair {
	if len(cfg.StartingNodePairs) > 0 {
		return explicitSeedPairs(left, right, cfg.StartingNodePairs)
	}
	if !cfg.StartingPairsHeuristics {
		return cartesianProduct(left.Atoms(), right.Atoms())
	}
	return heuristicSeedPairs(left, right)
}

func explicitSeedPairs(left, right *topology.Topology, pairs []config.NodePair) []suptop.Pair {
	out := make([]suptop.Pair, 0, len(pairs))
	for _, np := range pairs {
		l, lok := findByName(left.Atoms(), np.Left)
		r, rok := findByName(right.Atoms(), np.Right)
		if lok && rok {
			out = append(out, suptop.Pair{L: l, R: r})
		}
	}
	return out
}

func findByName(atoms []*atom.Atom, name string) (*atom.Atom, bool) {
	for _, a := range atoms {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

func cartesianProduct(ls, rs []*atom.Atom) []suptop.Pair {
	out := make([]suptop.Pair, 0, len(ls)*len(rs))
	for _, l := range ls {
		for _, r := range rs {
			out = append(out, suptop.Pair{L: l, R: r})
		}
	}
	return out
}

func heuristicSeedPairs(left, right *topology.Topology) []suptop.Pair {
	lCandidates := filterCandidates(left)
	rCandidates := filterCandidates(right)

	lByType := groupByType(lCandidates)
	rByType := groupByType(rCandidates)

	var types []string
	for t := range lByType {
		if _, ok := rByType[t]; ok {
			types = append(types, t)
		}
	}
	sort.Strings(types) // deterministic tie-break before the rarity sort
	sort.SliceStable(types, func(i, j int) bool {
		return rarity(lByType, rByType, types[i]) < rarity(lByType, rByType, types[j])
	})

	threshold := 0.2 * float64(minInt(countNonHydrogen(left.Atoms()), countNonHydrogen(right.Atoms())))

	var out []suptop.Pair
	accumulated := 0
	for _, t := range types {
		if float64(accumulated) > threshold {
			break
		}
		out = append(out, cartesianProduct(lByType[t], rByType[t])...)
		accumulated += rarity(lByType, rByType, t)
	}
	return out
}

// filterCandidates excludes hydrogens and ring-member carbons (spec
// §4.6's seed-selection heuristic).
func filterCandidates(top *topology.Topology) []*atom.Atom {
	ringAtoms := make(map[*atom.Atom]struct{})
	for _, c := range top.Basis() {
		for _, a := range c.Atoms {
			ringAtoms[a] = struct{}{}
		}
	}
	var out []*atom.Atom
	for _, a := range top.Atoms() {
		if a.IsHydrogen() {
			continue
		}
		if a.Element == atom.ElementC {
			if _, inRing := ringAtoms[a]; inRing {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func groupByType(atoms []*atom.Atom) map[string][]*atom.Atom {
	out := make(map[string][]*atom.Atom)
	for _, a := range atoms {
		out[a.Type] = append(out[a.Type], a)
	}
	return out
}

func rarity(lByType, rByType map[string][]*atom.Atom, t string) int {
	return minInt(len(lByType[t]), len(rByType[t]))
}

func countNonHydrogen(atoms []*atom.Atom) int {
	n := 0
	for _, a := range atoms {
		if !a.IsHydrogen() {
			n++
		}
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
