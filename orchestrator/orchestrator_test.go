package orchestrator_test

import (
	"testing"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/config"
	"github.com/arborpath/suptop/orchestrator"
	"github.com/stretchr/testify/require"
)

func mkAtom(t *testing.T, name, fftype string, id int, charge float64) *atom.Atom {
	t.Helper()
	a, err := atom.New(name, fftype, charge, id, [3]float64{}, "LIG")
	require.NoError(t, err)
	return a
}

func chain(t *testing.T, cName, nName string, startID int) []*atom.Atom {
	t.Helper()
	c := mkAtom(t, cName, "c3", startID, 0)
	n := mkAtom(t, nName, "n3", startID+1, 0)
	require.NoError(t, atom.Bind(c, n, atom.BondSingle))
	return []*atom.Atom{c, n}
}

func TestSuperimposeTopologies_TwoAtomChain_MatchesFully(t *testing.T) {
	left := chain(t, "C1", "N1", 1)
	right := chain(t, "C11", "N11", 11)

	results, err := orchestrator.SuperimposeTopologies(left, right, config.New())
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 2, results[0].Size())
}

func TestSuperimposeTopologies_DuplicateAtomNamesRejected(t *testing.T) {
	left := chain(t, "C1", "N1", 1)
	right := chain(t, "C1", "N11", 11) // shares the name "C1" with left

	_, err := orchestrator.SuperimposeTopologies(left, right, config.New())
	require.ErrorIs(t, err, orchestrator.ErrDuplicateAtomName)
}

func TestSuperimposeTopologies_NonIntegerChargeTotalRejected(t *testing.T) {
	left := chain(t, "C1", "N1", 1)
	left[0].Charge = 0.5 // side total 0.5, not integral
	right := chain(t, "C11", "N11", 11)

	_, err := orchestrator.SuperimposeTopologies(left, right, config.New())
	require.ErrorIs(t, err, orchestrator.ErrNonIntegerChargeTotal)
}

func TestSuperimposeTopologies_IgnoreChargesCompletelyBypassesChargeTotalCheck(t *testing.T) {
	left := chain(t, "C1", "N1", 1)
	left[0].Charge = 0.5 // side total 0.5, not integral; would normally be rejected
	right := chain(t, "C11", "N11", 11)

	cfg := config.New(config.WithIgnoreChargesCompletely(true))
	results, err := orchestrator.SuperimposeTopologies(left, right, cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestSuperimposeTopologies_ChargeTotalsUnequalRejected(t *testing.T) {
	left := chain(t, "C1", "N1", 1)
	left[0].Charge = 1.0 // side total 1, integral but mismatched
	right := chain(t, "C11", "N11", 11)

	_, err := orchestrator.SuperimposeTopologies(left, right, config.New())
	require.ErrorIs(t, err, orchestrator.ErrChargeTotalsUnequal)
}

func TestSuperimposeTopologies_NoCompatibleSeedYieldsEmptyResult(t *testing.T) {
	n, err := atom.New("N1", "n3", 0, 1, [3]float64{}, "LIG")
	require.NoError(t, err)
	left := []*atom.Atom{n}

	o, err := atom.New("O11", "oh", 0, 11, [3]float64{}, "LIG")
	require.NoError(t, err)
	right := []*atom.Atom{o}

	_, err = orchestrator.SuperimposeTopologies(left, right, config.New())
	require.ErrorIs(t, err, orchestrator.ErrEmptyResult)
}

func TestSuperimposeTopologies_ExplicitStartingNodePairsBypassesHeuristic(t *testing.T) {
	left := chain(t, "C1", "N1", 1)
	right := chain(t, "C11", "N11", 11)

	cfg := config.New(config.WithStartingNodePairs([]config.NodePair{{Left: "C1", Right: "C11"}}))
	results, err := orchestrator.SuperimposeTopologies(left, right, cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 2, results[0].Size())
}
