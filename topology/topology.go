package topology

import (
	"github.com/arborpath/suptop/atom"
	"github.com/willf/bitset"
)

// Topology is an immutable list of Atoms plus their derived bond graph,
// together with a precomputed cycle basis and joined-cycles relation.
type Topology struct {
	atoms []*atom.Atom
	index map[*atom.Atom]int // atom -> position in atoms

	basis  []Cycle
	joined [][2]int // indices into basis: cycles sharing >= 2 atoms
}

// Cycle is one member of a topology's fundamental cycle basis: the ordered
// list of atoms forming the cycle, plus a bitset over atom indices (into
// the owning Topology's atom list) for O(1)-amortized overlap testing.
type Cycle struct {
	Atoms []*atom.Atom
	Bits  *bitset.BitSet
}

// Len returns the number of atoms in the cycle.
func (c Cycle) Len() int { return len(c.Atoms) }

// New builds a Topology from a list of atoms whose bonds (via atom.Bind)
// have already been established. Atom IDs and names must be unique within
// the list. The cycle basis is computed once, here, and cached.
func New(atoms []*atom.Atom) (*Topology, error) {
	if len(atoms) == 0 {
		return nil, topologyErrorf("New", ErrEmptyTopology)
	}

	index := make(map[*atom.Atom]int, len(atoms))
	seenID := make(map[int]struct{}, len(atoms))
	seenName := make(map[string]struct{}, len(atoms))
	for i, a := range atoms {
		if _, dup := seenID[a.ID]; dup {
			return nil, topologyErrorf("New", ErrDuplicateID)
		}
		if _, dup := seenName[a.Name]; dup {
			return nil, topologyErrorf("New", ErrDuplicateName)
		}
		seenID[a.ID] = struct{}{}
		seenName[a.Name] = struct{}{}
		index[a] = i
	}

	t := &Topology{atoms: atoms, index: index}
	t.basis = computeCycleBasis(atoms, index)
	t.joined = computeJoinedCycles(t.basis)
	return t, nil
}

// Atoms returns the topology's atoms in construction order.
func (t *Topology) Atoms() []*atom.Atom { return t.atoms }

// IndexOf returns a's position within this topology, or (-1, false) if a
// does not belong to it.
func (t *Topology) IndexOf(a *atom.Atom) (int, bool) {
	i, ok := t.index[a]
	return i, ok
}

// Contains reports whether a belongs to this topology.
func (t *Topology) Contains(a *atom.Atom) bool {
	_, ok := t.index[a]
	return ok
}

// Basis returns the topology's fundamental cycle basis, one cycle per
// back edge relative to a DFS spanning forest. Ordering is deterministic
// for a given input but otherwise implementation-defined.
func (t *Topology) Basis() []Cycle { return t.basis }

// JoinedCycles returns index pairs into Basis() of cycles that share two
// or more atoms (fused rings).
func (t *Topology) JoinedCycles() [][2]int { return t.joined }
