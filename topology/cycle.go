// cycle.go computes a topology's fundamental cycle basis via a three-color
// (White/Gray/Black) DFS over a spanning forest, one cycle per back edge.
// Grounded on the dfs package's DetectCycles, adapted from full simple-cycle
// enumeration to a minimal fundamental basis: each non-tree edge contributes
// exactly one cycle (the tree path between its endpoints, closed by the
// back edge), rather than every simple cycle in the graph.
package topology

import (
	"github.com/arborpath/suptop/atom"
	"github.com/willf/bitset"
)

const (
	white = 0
	gray  = 1
	black = 2
)

func computeCycleBasis(atoms []*atom.Atom, index map[*atom.Atom]int) []Cycle {
	n := len(atoms)
	state := make([]int, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	var basis []Cycle
	for i := 0; i < n; i++ {
		if state[i] == white {
			dfsVisit(atoms, index, i, state, parent, &basis)
		}
	}
	return basis
}

func dfsVisit(atoms []*atom.Atom, index map[*atom.Atom]int, u int, state, parent []int, basis *[]Cycle) {
	state[u] = gray
	for _, b := range atoms[u].Bonds() {
		v, ok := index[b.To]
		if !ok {
			continue // neighbor outside this topology; ignore
		}
		if v == parent[u] {
			// tree edge back to u's own parent: molecular graphs carry no
			// multi-edges, so this slot occurs at most once in u's bond list.
			continue
		}
		switch state[v] {
		case white:
			parent[v] = u
			dfsVisit(atoms, index, v, state, parent, basis)
		case gray:
			// back edge u -> v (v is an ancestor still on the stack): record
			// the fundamental cycle formed by the tree path v..u plus (u,v).
			*basis = append(*basis, buildCycle(atoms, index, u, v, parent))
		}
		// case black: forward/cross edge within an undirected simple graph
		// does not occur once parent-skipping is applied; nothing to do.
	}
	state[u] = black
}

func buildCycle(atoms []*atom.Atom, index map[*atom.Atom]int, u, v int, parent []int) Cycle {
	var path []int
	for cur := u; cur != v; cur = parent[cur] {
		path = append(path, cur)
	}
	path = append(path, v)
	// path is currently [u, ..., v]; cycle atom order is kept as discovered.
	atomsOut := make([]*atom.Atom, len(path))
	bits := bitset.New(uint(len(atoms)))
	for i, idx := range path {
		atomsOut[i] = atoms[idx]
		bits.Set(uint(idx))
	}
	return Cycle{Atoms: atomsOut, Bits: bits}
}

func computeJoinedCycles(basis []Cycle) [][2]int {
	var joined [][2]int
	for i := 0; i < len(basis); i++ {
		for j := i + 1; j < len(basis); j++ {
			if basis[i].Bits.IntersectionCardinality(basis[j].Bits) >= 2 {
				joined = append(joined, [2]int{i, j})
			}
		}
	}
	return joined
}
