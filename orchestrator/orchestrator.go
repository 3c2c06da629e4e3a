// Package orchestrator implements SuperimposeTopologies, the engine's
// single public entry point: it validates the two ligands' input
// contract, selects seed pairs, runs the overlay kernel per seed,
// integrates results against previously accepted candidates, and applies
// the 13-step global post-filter cascade of spec §4.6 in order.
package orchestrator

import (
	"math"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/config"
	"github.com/arborpath/suptop/logging"
	"github.com/arborpath/suptop/overlay"
	"github.com/arborpath/suptop/suptop"
	"github.com/arborpath/suptop/topology"
)

// SuperimposeTopologies computes the superimposition of two ligand atom
// sets (bonds already established via atom.Bind) under cfg, returning a
// deterministic sequence of SuperimposedTopology sorted by ascending
// RMSD. Returns ErrEmptyResult if no seed pair yields a surviving ST.
func SuperimposeTopologies(leftAtoms, rightAtoms []*atom.Atom, cfg config.Config) ([]*suptop.SuperimposedTopology, error) {
	log := logging.OrDefault(cfg.Logger)

	if cfg.CheckAtomNamesUnique {
		if err := checkAtomNamesUnique(leftAtoms, rightAtoms); err != nil {
			return nil, err
		}
	}

	left, err := topology.New(leftAtoms)
	if err != nil {
		return nil, orchestratorErrorf("SuperimposeTopologies", err)
	}
	right, err := topology.New(rightAtoms)
	if err != nil {
		return nil, orchestratorErrorf("SuperimposeTopologies", err)
	}

	if !cfg.IgnoreChargesCompletely {
		if err := checkChargeTotals(leftAtoms, rightAtoms); err != nil {
			return nil, err
		}
	}

	seeds := SeedPairs(left, right, cfg)
	log.Debugw("seed pairs selected", "count", len(seeds))

	var accepted []*suptop.SuperimposedTopology
	for _, seed := range seeds {
		base := suptop.New(left, right)
		base.LeftCoordsAreRef = cfg.LeftCoordsAreRef
		base.IgnoreBondTypes = cfg.IgnoreBondTypes

		candidate, ok := overlay.Overlay(seed.L, seed.R, nil, nil, atom.BondUnknown, atom.BondUnknown, base, cfg.UseGeneralType)
		if !ok || candidate.Size() == 0 {
			continue
		}
		accepted = integrateCandidate(accepted, candidate)
	}

	if len(accepted) == 0 {
		return nil, orchestratorErrorf("SuperimposeTopologies", ErrEmptyResult)
	}

	return applyPostFilters(accepted, cfg, log)
}

func checkAtomNamesUnique(left, right []*atom.Atom) error {
	rightNames := make(map[string]struct{}, len(right))
	for _, a := range right {
		rightNames[a.Name] = struct{}{}
	}
	for _, a := range left {
		if _, dup := rightNames[a.Name]; dup {
			return orchestratorErrorf("SuperimposeTopologies", ErrDuplicateAtomName)
		}
	}
	return nil
}

func checkChargeTotals(left, right []*atom.Atom) error {
	totalL, totalR := sumCharge(left), sumCharge(right)
	if !nearInteger(totalL) || !nearInteger(totalR) {
		return orchestratorErrorf("SuperimposeTopologies", ErrNonIntegerChargeTotal)
	}
	if math.Round(totalL) != math.Round(totalR) {
		return orchestratorErrorf("SuperimposeTopologies", ErrChargeTotalsUnequal)
	}
	return nil
}

func sumCharge(atoms []*atom.Atom) float64 {
	var sum float64
	for _, a := range atoms {
		sum += a.Charge
	}
	return sum
}

func nearInteger(x float64) bool {
	return math.Abs(x-math.Round(x)) <= 0.01
}
