package suptop_test

import (
	"testing"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/suptop"
	"github.com/arborpath/suptop/topology"
	"github.com/stretchr/testify/require"
)

func mkAtom(t *testing.T, name, fftype string, id int, charge float64) *atom.Atom {
	t.Helper()
	a, err := atom.New(name, fftype, charge, id, [3]float64{}, "LIG")
	require.NoError(t, err)
	return a
}

// chain builds a two-atom C-N topology, used as a minimal fixture.
func chain(t *testing.T, cName, nName string, startID int) (*topology.Topology, *atom.Atom, *atom.Atom) {
	t.Helper()
	c := mkAtom(t, cName, "c3", startID, 0)
	n := mkAtom(t, nName, "n3", startID+1, 0)
	require.NoError(t, atom.Bind(c, n, atom.BondSingle))
	top, err := topology.New([]*atom.Atom{c, n})
	require.NoError(t, err)
	return top, c, n
}

func TestAddPair_BijectionEnforced(t *testing.T) {
	left, c1, n1 := chain(t, "C1", "N1", 1)
	right, c11, n11 := chain(t, "C11", "N11", 11)
	st := suptop.New(left, right)

	_, err := st.AddPair(c1, c11)
	require.NoError(t, err)
	require.Equal(t, 1, st.Size())

	_, err = st.AddPair(c1, n11)
	require.ErrorIs(t, err, suptop.ErrAtomAlreadyMapped)

	_, err = st.AddPair(n1, n11)
	require.NoError(t, err)
	require.Equal(t, 2, st.Size())
}

func TestRemovePair_RestoresBijectionSlot(t *testing.T) {
	left, c1, n1 := chain(t, "C1", "N1", 1)
	right, c11, n11 := chain(t, "C11", "N11", 11)
	st := suptop.New(left, right)

	p, err := st.AddPair(c1, c11)
	require.NoError(t, err)
	require.NoError(t, st.RemovePair(p))
	require.Equal(t, 0, st.Size())

	_, err = st.AddPair(c1, c11)
	require.NoError(t, err)
	require.True(t, st.ContainsNode(n1) == false)
	require.True(t, st.ContainsAnyNode([]*atom.Atom{n11}) == false)
}

func TestMerge_DisjointSucceeds(t *testing.T) {
	left, c1, n1 := chain(t, "C1", "N1", 1)
	right, c11, n11 := chain(t, "C11", "N11", 11)

	a := suptop.New(left, right)
	_, err := a.AddPair(c1, c11)
	require.NoError(t, err)

	b := suptop.New(left, right)
	_, err = b.AddPair(n1, n11)
	require.NoError(t, err)

	require.NoError(t, a.Merge(b))
	require.Equal(t, 2, a.Size())
}

func TestMerge_ConflictDetected(t *testing.T) {
	left, c1, n1 := chain(t, "C1", "N1", 1)
	right, c11, n11 := chain(t, "C11", "N11", 11)

	a := suptop.New(left, right)
	_, err := a.AddPair(c1, c11)
	require.NoError(t, err)

	b := suptop.New(left, right)
	_, err = b.AddPair(c1, n11)
	require.NoError(t, err)
	_ = n1

	err = a.Merge(b)
	require.ErrorIs(t, err, suptop.ErrMergeConflict)
}

func TestIsMirrorOf_SameNodesDifferentPairing(t *testing.T) {
	c1 := mkAtom(t, "C1", "c3", 1, 0)
	n1 := mkAtom(t, "N1", "n3", 2, 0)
	require.NoError(t, atom.Bind(c1, n1, atom.BondSingle))
	left, err := topology.New([]*atom.Atom{c1, n1})
	require.NoError(t, err)

	c11 := mkAtom(t, "C11", "c3", 11, 0)
	n11 := mkAtom(t, "N11", "n3", 12, 0)
	require.NoError(t, atom.Bind(c11, n11, atom.BondSingle))
	right, err := topology.New([]*atom.Atom{c11, n11})
	require.NoError(t, err)

	a := suptop.New(left, right)
	_, err = a.AddPair(c1, c11)
	require.NoError(t, err)
	_, err = a.AddPair(n1, n11)
	require.NoError(t, err)

	b := suptop.New(left, right)
	_, err = b.AddPair(c1, n11)
	require.NoError(t, err)
	_, err = b.AddPair(n1, c11)
	require.NoError(t, err)

	require.True(t, a.IsMirrorOf(b))
}

func TestRefineAgainstCharges_RemovesAndSortsByDeltaDescending(t *testing.T) {
	left, c1, n1 := chain(t, "C1", "N1", 1)
	c1.Charge, n1.Charge = 0.5, 0.25
	right, c11, n11 := chain(t, "C11", "N11", 11)
	c11.Charge, n11.Charge = 0.0, 0.0

	st := suptop.New(left, right)
	_, err := st.AddPair(c1, c11)
	require.NoError(t, err)
	_, err = st.AddPair(n1, n11)
	require.NoError(t, err)

	st.RefineAgainstCharges(0.1)
	require.Equal(t, 0, st.Size())
	require.Len(t, st.RemovedPairsWithChargeDifference, 2)
	require.GreaterOrEqual(t, st.RemovedPairsWithChargeDifference[0].DeltaQ, st.RemovedPairsWithChargeDifference[1].DeltaQ)
}

func TestAssignAtomIDsAndDualTopologyBonds(t *testing.T) {
	// L: C1-N1-O1 (O1 unmatched); R: C11-N11 (matched fully).
	c1 := mkAtom(t, "C1", "c3", 1, 0)
	n1 := mkAtom(t, "N1", "n3", 2, 0)
	o1 := mkAtom(t, "O1", "oh", 3, 0)
	require.NoError(t, atom.Bind(c1, n1, atom.BondSingle))
	require.NoError(t, atom.Bind(n1, o1, atom.BondSingle))
	left, err := topology.New([]*atom.Atom{c1, n1, o1})
	require.NoError(t, err)

	c11 := mkAtom(t, "C11", "c3", 11, 0)
	n11 := mkAtom(t, "N11", "n3", 12, 0)
	require.NoError(t, atom.Bind(c11, n11, atom.BondSingle))
	right, err := topology.New([]*atom.Atom{c11, n11})
	require.NoError(t, err)

	st := suptop.New(left, right)
	p1, err := st.AddPair(c1, c11)
	require.NoError(t, err)
	p2, err := st.AddPair(n1, n11)
	require.NoError(t, err)
	require.NoError(t, st.LinkWithParent(p2, p1, atom.BondSingle, atom.BondSingle))

	next := st.AssignAtomIDs(1)
	require.Equal(t, 4, next) // p1=1, p2=2, o1=3

	bonds := st.DualTopologyBonds()
	require.NotEmpty(t, bonds)

	foundPairEdge, foundUnmatchedEdge := false, false
	for _, b := range bonds {
		if b.IDLo == 1 && b.IDHi == 2 {
			foundPairEdge = true
		}
		if b.IDLo == 2 && b.IDHi == 3 {
			foundUnmatchedEdge = true
		}
	}
	require.True(t, foundPairEdge)
	require.True(t, foundUnmatchedEdge)
}

func TestRMSD_RequiresAtLeastOnePair(t *testing.T) {
	left, _, _ := chain(t, "C1", "N1", 1)
	right, _, _ := chain(t, "C11", "N11", 11)
	st := suptop.New(left, right)
	_, err := st.RMSD()
	require.ErrorIs(t, err, suptop.ErrEmptyRMSD)
}
