package overlay_test

import (
	"testing"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/overlay"
	"github.com/arborpath/suptop/suptop"
	"github.com/arborpath/suptop/topology"
	"github.com/stretchr/testify/require"
)

func mkAtom(t *testing.T, name, fftype string, id int) *atom.Atom {
	t.Helper()
	a, err := atom.New(name, fftype, 0, id, [3]float64{}, "LIG")
	require.NoError(t, err)
	return a
}

// twoAtomChains builds L = C1-N1 and R = C11-N11, returning their
// topologies plus the four atoms (scenario S1/S2 of spec §8).
func twoAtomChains(t *testing.T) (*topology.Topology, *atom.Atom, *atom.Atom, *topology.Topology, *atom.Atom, *atom.Atom) {
	t.Helper()
	c1 := mkAtom(t, "C1", "c3", 1)
	n1 := mkAtom(t, "N1", "n3", 2)
	require.NoError(t, atom.Bind(c1, n1, atom.BondSingle))
	left, err := topology.New([]*atom.Atom{c1, n1})
	require.NoError(t, err)

	c11 := mkAtom(t, "C11", "c3", 11)
	n11 := mkAtom(t, "N11", "n3", 12)
	require.NoError(t, atom.Bind(c11, n11, atom.BondSingle))
	right, err := topology.New([]*atom.Atom{c11, n11})
	require.NoError(t, err)

	return left, c1, n1, right, c11, n11
}

func TestOverlay_S1_WrongSeedIsDead(t *testing.T) {
	left, c1, _, right, _, n11 := twoAtomChains(t)
	st := suptop.New(left, right)

	_, ok := overlay.Overlay(c1, n11, nil, nil, atom.BondUnknown, atom.BondUnknown, st, true)
	require.False(t, ok)
}

func TestOverlay_S2_CorrectSeedMatchesBoth(t *testing.T) {
	left, c1, n1, right, c11, n11 := twoAtomChains(t)
	st := suptop.New(left, right)

	result, ok := overlay.Overlay(c1, c11, nil, nil, atom.BondUnknown, atom.BondUnknown, st, true)
	require.True(t, ok)
	require.Equal(t, 2, result.Size())
	require.True(t, result.ContainsPair(suptop.Pair{L: c1, R: c11}))
	require.True(t, result.ContainsPair(suptop.Pair{L: n1, R: n11}))
	require.Empty(t, result.Mirrors)
}

// esterTopologies builds L: C1-N1-{O1,O2} and R: C11-N11-{O11,O12}
// (scenario S3 of spec §8).
func esterTopologies(t *testing.T) (*topology.Topology, *atom.Atom, *topology.Topology, *atom.Atom) {
	t.Helper()
	c1 := mkAtom(t, "C1", "c3", 1)
	n1 := mkAtom(t, "N1", "n3", 2)
	o1 := mkAtom(t, "O1", "oh", 3)
	o2 := mkAtom(t, "O2", "oh", 4)
	require.NoError(t, atom.Bind(c1, n1, atom.BondSingle))
	require.NoError(t, atom.Bind(n1, o1, atom.BondSingle))
	require.NoError(t, atom.Bind(n1, o2, atom.BondSingle))
	left, err := topology.New([]*atom.Atom{c1, n1, o1, o2})
	require.NoError(t, err)

	c11 := mkAtom(t, "C11", "c3", 11)
	n11 := mkAtom(t, "N11", "n3", 12)
	o11 := mkAtom(t, "O11", "oh", 13)
	o12 := mkAtom(t, "O12", "oh", 14)
	require.NoError(t, atom.Bind(c11, n11, atom.BondSingle))
	require.NoError(t, atom.Bind(n11, o11, atom.BondSingle))
	require.NoError(t, atom.Bind(n11, o12, atom.BondSingle))
	right, err := topology.New([]*atom.Atom{c11, n11, o11, o12})
	require.NoError(t, err)

	return left, c1, right, c11
}

func TestOverlay_S3_EsterSymmetryYieldsOneMirror(t *testing.T) {
	left, c1, right, c11 := esterTopologies(t)
	st := suptop.New(left, right)

	result, ok := overlay.Overlay(c1, c11, nil, nil, atom.BondUnknown, atom.BondUnknown, st, true)
	require.True(t, ok)
	require.Equal(t, 4, result.Size())
	require.Len(t, result.Mirrors, 1)
}

// triangles builds two 3-cycles C1-C2-C3 and C11-C12-C13 (scenario S4).
func triangles(t *testing.T) (*topology.Topology, *atom.Atom, *topology.Topology, *atom.Atom) {
	t.Helper()
	c1 := mkAtom(t, "C1", "c3", 1)
	c2 := mkAtom(t, "C2", "c3", 2)
	c3 := mkAtom(t, "C3", "c3", 3)
	require.NoError(t, atom.Bind(c1, c2, atom.BondSingle))
	require.NoError(t, atom.Bind(c2, c3, atom.BondSingle))
	require.NoError(t, atom.Bind(c3, c1, atom.BondSingle))
	left, err := topology.New([]*atom.Atom{c1, c2, c3})
	require.NoError(t, err)

	c11 := mkAtom(t, "C11", "c3", 11)
	c12 := mkAtom(t, "C12", "c3", 12)
	c13 := mkAtom(t, "C13", "c3", 13)
	require.NoError(t, atom.Bind(c11, c12, atom.BondSingle))
	require.NoError(t, atom.Bind(c12, c13, atom.BondSingle))
	require.NoError(t, atom.Bind(c13, c11, atom.BondSingle))
	right, err := topology.New([]*atom.Atom{c11, c12, c13})
	require.NoError(t, err)

	return left, c1, right, c11
}

func TestOverlay_S4_TriangleSymmetryYieldsOneMirrorPerChirality(t *testing.T) {
	left, c1, right, c11 := triangles(t)
	st := suptop.New(left, right)

	result, ok := overlay.Overlay(c1, c11, nil, nil, atom.BondUnknown, atom.BondUnknown, st, true)
	require.True(t, ok)
	require.Equal(t, 3, result.Size())
	require.Len(t, result.Mirrors, 1)
}
