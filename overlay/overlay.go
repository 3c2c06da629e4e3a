// Package overlay implements the recursive joint-DFS kernel that is the
// heart of the MCS search: given a seed pair, it jointly traverses both
// ligand graphs, branching on type-compatible neighbor sub-combinations,
// to produce one maximal SuperimposedTopology per seed.
//
// Grounded directly on _overlay in the original topology_superimposer.py
// (the seven-step contract of spec §4.4), in the shape of a recursive
// traversal that copies its working state per branch — structurally akin
// to the dfs package's recursive-visit-with-independent-state shape, but
// here each "visit" can fail (type mismatch, broken cycle correspondence)
// and failure is reported as (nil, false), never as an error: the kernel
// is pure search, not validation.
package overlay

import (
	"sort"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/suptop"
)

// Overlay attempts to extend st with the pair (n1, n2), reached from
// (parent1, parent2) via bond orders (orderL, orderR) — both parents nil
// for a seed call. It returns the extended ST and true on success, or
// (nil, false) if this branch is dead ("none" in spec terms). st is
// consumed: callers must pass a copy they do not need afterward (see
// Clone in the suptop package).
func Overlay(
	n1, n2 *atom.Atom,
	parent1, parent2 *atom.Atom,
	orderL, orderR atom.BondOrder,
	st *suptop.SuperimposedTopology,
	useElementType bool,
) (*suptop.SuperimposedTopology, bool) {
	// 1. Reuse guard.
	if st.ContainsAnyNode([]*atom.Atom{n1, n2}) {
		return nil, false
	}

	// 2. Type compatibility.
	if useElementType {
		if n1.Element != n2.Element {
			return nil, false
		}
	} else if n1.Type != n2.Type {
		return nil, false
	}

	// 3. Joint cycle check: any bonded neighbor of n1 already mapped must
	// have its partner bonded to n2 (and vice versa), excluding parents.
	if !jointCycleConsistent(st, n1, n2, parent1, parent2) {
		return nil, false
	}

	// 5. Commit: add the pair and link induced edges to already-matched
	// neighbors (including the parent, if any).
	pair, err := st.AddPair(n1, n2)
	if err != nil {
		return nil, false
	}
	linkInducedEdges(st, pair, n1, n2, parent1, parent2, orderL, orderR)

	// 4. Cycle-spanning guard, checked against the now-committed mapping.
	if st.CycleSpansMultipleCycles() {
		_ = st.RemovePair(pair)
		return nil, false
	}

	// 6. Recurse over neighbor combinations, grouped by element/type class.
	n1Neighbors := otherBonds(n1, parent1)
	n2Neighbors := otherBonds(n2, parent2)
	classes := commonClasses(n1Neighbors, n2Neighbors, useElementType)

	result := st
	for _, class := range classes {
		perLeft := make(map[*atom.Atom]map[*atom.Atom]*suptop.SuperimposedTopology)
		for _, n1p := range class.left {
			perRight := make(map[*atom.Atom]*suptop.SuperimposedTopology)
			for _, n2p := range class.right {
				orderL := boundOrder(n1, n1p)
				orderR := boundOrder(n2, n2p)
				if child, ok := Overlay(n1p, n2p, n1, n2, orderL, orderR, result.Clone(), useElementType); ok {
					perRight[n2p] = child
				}
			}
			if len(perRight) > 0 {
				perLeft[n1p] = perRight
			}
		}
		if len(perLeft) == 0 {
			continue
		}

		// 7. Combination resolution.
		classResult, ok := resolveClass(perLeft)
		if !ok {
			continue
		}
		if err := result.Merge(classResult); err != nil {
			// Class results disagree on a shared pair: discard this branch.
			return nil, false
		}
		// Merge copies pairs only; carry over the mirrors the resolver found.
		for _, m := range classResult.Mirrors {
			dup := false
			for _, have := range result.Mirrors {
				dup = dup || have == m
			}
			if !dup {
				result.Mirrors = append(result.Mirrors, m)
			}
		}
	}

	// 8. Return the merged ST for this branch.
	return result, true
}

// jointCycleConsistent implements step 3: a candidate addition may close a
// cycle on one side only if the exact same closing edge exists on the
// other side.
func jointCycleConsistent(st *suptop.SuperimposedTopology, n1, n2, parent1, parent2 *atom.Atom) bool {
	for _, b := range n1.Bonds() {
		m1 := b.To
		if m1 == parent1 || !st.ContainsNode(m1) {
			continue
		}
		partner, ok := partnerOf(st, m1)
		if !ok || partner == parent2 {
			return false
		}
		if _, bonded := n2.BoundTo(partner); !bonded {
			return false
		}
	}
	for _, b := range n2.Bonds() {
		m2 := b.To
		if m2 == parent2 || !st.ContainsNode(m2) {
			continue
		}
		partner, ok := partnerOf(st, m2)
		if !ok || partner == parent1 {
			return false
		}
		if _, bonded := n1.BoundTo(partner); !bonded {
			return false
		}
	}
	return true
}

func partnerOf(st *suptop.SuperimposedTopology, a *atom.Atom) (*atom.Atom, bool) {
	for _, p := range st.MatchedPairs() {
		if p.L == a {
			return p.R, true
		}
		if p.R == a {
			return p.L, true
		}
	}
	return nil, false
}

// linkInducedEdges records, for every already-matched pair (m1,m2) where
// m1 is bonded to n1 and m2 is bonded to n2, the induced edge between that
// pair and the newly committed one — including the parent pair, if any.
func linkInducedEdges(st *suptop.SuperimposedTopology, pair suptop.Pair, n1, n2, parent1, parent2 *atom.Atom, orderL, orderR atom.BondOrder) {
	if parent1 != nil && parent2 != nil {
		if parentPair, ok := findPair(st, parent1, parent2); ok {
			_ = st.LinkWithParent(pair, parentPair, orderL, orderR)
		}
	}
	for _, other := range st.MatchedPairs() {
		if other == pair {
			continue
		}
		if other.L == parent1 && other.R == parent2 {
			continue // already linked above
		}
		oL, boundL := n1.BoundTo(other.L)
		oR, boundR := n2.BoundTo(other.R)
		if boundL && boundR {
			_ = st.LinkWithParent(pair, other, oL, oR)
		}
	}
}

func findPair(st *suptop.SuperimposedTopology, l, r *atom.Atom) (suptop.Pair, bool) {
	for _, p := range st.MatchedPairs() {
		if p.L == l && p.R == r {
			return p, true
		}
	}
	return suptop.Pair{}, false
}

func otherBonds(a, parent *atom.Atom) []atom.Bond {
	var out []atom.Bond
	for _, b := range a.Bonds() {
		if b.To != parent {
			out = append(out, b)
		}
	}
	return out
}

func boundOrder(a, b *atom.Atom) atom.BondOrder {
	o, _ := a.BoundTo(b)
	return o
}

type elementClass struct {
	left  []*atom.Atom
	right []*atom.Atom
}

// commonClasses groups n1Neighbors and n2Neighbors by element (or type,
// per useElementType) and returns the classes present on both sides, in a
// deterministic order (sorted by the class key).
func commonClasses(n1Neighbors, n2Neighbors []atom.Bond, useElementType bool) []elementClass {
	classKey := func(a *atom.Atom) string {
		if useElementType {
			return string(a.Element)
		}
		return a.Type
	}

	leftByClass := make(map[string][]*atom.Atom)
	for _, b := range n1Neighbors {
		k := classKey(b.To)
		leftByClass[k] = append(leftByClass[k], b.To)
	}
	rightByClass := make(map[string][]*atom.Atom)
	for _, b := range n2Neighbors {
		k := classKey(b.To)
		rightByClass[k] = append(rightByClass[k], b.To)
	}

	var keys []string
	for k := range leftByClass {
		if _, ok := rightByClass[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]elementClass, len(keys))
	for i, k := range keys {
		out[i] = elementClass{left: leftByClass[k], right: rightByClass[k]}
	}
	return out
}
