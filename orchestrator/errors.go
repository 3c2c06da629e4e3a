// errors.go — sentinel errors for the orchestrator package.
//
// Error policy: only sentinel variables are exposed; callers use
// errors.Is. These cover the InputMalformed and EmptyResult categories of
// spec §7; InvariantViolated conditions surface from the suptop/topology
// packages and are wrapped here with orchestratorErrorf, not replaced.
package orchestrator

import (
	"errors"
	"fmt"
)

// ErrEmptyResult indicates no seed pair yielded a non-empty ST.
var ErrEmptyResult = errors.New("orchestrator: no seed produced a result")

// ErrDuplicateAtomName indicates check_atom_names_unique failed: a name
// appears on both the left and right ligand.
var ErrDuplicateAtomName = errors.New("orchestrator: atom name shared across ligands")

// ErrChargeTotalsUnequal indicates the two ligands' per-side integer
// charge totals (input contract, spec §6) do not match.
var ErrChargeTotalsUnequal = errors.New("orchestrator: per-side charge totals unequal")

// ErrNonIntegerChargeTotal indicates a ligand's total charge does not
// round to an integer within 0.01 e (input contract, spec §6).
var ErrNonIntegerChargeTotal = errors.New("orchestrator: charge total is not integral")

func orchestratorErrorf(method string, err error) error {
	return fmt.Errorf("orchestrator.%s: %w", method, err)
}
