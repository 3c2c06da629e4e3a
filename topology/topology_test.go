package topology_test

import (
	"testing"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/topology"
	"github.com/stretchr/testify/require"
)

func mkAtom(t *testing.T, name, fftype string, id int) *atom.Atom {
	t.Helper()
	a, err := atom.New(name, fftype, 0, id, [3]float64{}, "LIG")
	require.NoError(t, err)
	return a
}

func TestTopology_ChainHasNoCycles(t *testing.T) {
	c1 := mkAtom(t, "C1", "c3", 1)
	n1 := mkAtom(t, "N1", "n3", 2)
	require.NoError(t, atom.Bind(c1, n1, atom.BondSingle))

	top, err := topology.New([]*atom.Atom{c1, n1})
	require.NoError(t, err)
	require.Empty(t, top.Basis())
}

func TestTopology_Triangle_OneCycle(t *testing.T) {
	c1 := mkAtom(t, "C1", "ca", 1)
	c2 := mkAtom(t, "C2", "ca", 2)
	c3 := mkAtom(t, "C3", "ca", 3)
	require.NoError(t, atom.Bind(c1, c2, atom.BondAromatic))
	require.NoError(t, atom.Bind(c2, c3, atom.BondAromatic))
	require.NoError(t, atom.Bind(c3, c1, atom.BondAromatic))

	top, err := topology.New([]*atom.Atom{c1, c2, c3})
	require.NoError(t, err)
	require.Len(t, top.Basis(), 1)
	require.Equal(t, 3, top.Basis()[0].Len())
}

func TestTopology_FusedRings_AreJoined(t *testing.T) {
	// Two fused triangles sharing edge C2-C3: C1-C2-C3-C1 and C2-C3-C4-C2.
	c1 := mkAtom(t, "C1", "ca", 1)
	c2 := mkAtom(t, "C2", "ca", 2)
	c3 := mkAtom(t, "C3", "ca", 3)
	c4 := mkAtom(t, "C4", "ca", 4)
	require.NoError(t, atom.Bind(c1, c2, atom.BondAromatic))
	require.NoError(t, atom.Bind(c2, c3, atom.BondAromatic))
	require.NoError(t, atom.Bind(c3, c1, atom.BondAromatic))
	require.NoError(t, atom.Bind(c2, c4, atom.BondAromatic))
	require.NoError(t, atom.Bind(c3, c4, atom.BondAromatic))

	top, err := topology.New([]*atom.Atom{c1, c2, c3, c4})
	require.NoError(t, err)
	require.Len(t, top.Basis(), 2)
	require.Len(t, top.JoinedCycles(), 1)
}

func TestTopology_DuplicateID(t *testing.T) {
	a1 := mkAtom(t, "C1", "c3", 1)
	a2 := mkAtom(t, "C2", "c3", 1)
	_, err := topology.New([]*atom.Atom{a1, a2})
	require.ErrorIs(t, err, topology.ErrDuplicateID)
}
