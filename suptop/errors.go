// errors.go — sentinel errors for the suptop package.
//
// Error policy: only sentinel variables are exposed; callers use
// errors.Is. Mutation methods return these for InvariantViolated
// conditions (spec error taxonomy); filter-driven removals are never
// errors — they are recorded in the appropriate removal log.

package suptop

import (
	"errors"
	"fmt"
)

// ErrAtomAlreadyMapped indicates AddPair was asked to map an atom that is
// already a member of an existing pair — a bijection violation.
var ErrAtomAlreadyMapped = errors.New("suptop: atom already mapped")

// ErrPairAlreadyPresent indicates AddPair was asked to add a pair already
// present in matched_pairs.
var ErrPairAlreadyPresent = errors.New("suptop: pair already present")

// ErrPairNotFound indicates an operation referenced a pair absent from
// matched_pairs.
var ErrPairNotFound = errors.New("suptop: pair not found")

// ErrMergeConflict indicates Merge was asked to absorb an ST that shares
// an atom with self under a different pairing (non-disjoint conflict).
var ErrMergeConflict = errors.New("suptop: merge conflict on shared atom")

// ErrCycleParityViolated indicates a merge or mutation would leave the ST's
// induced L-side and R-side subgraphs with unequal cycle counts.
var ErrCycleParityViolated = errors.New("suptop: cycle parity violated")

// ErrEmptyRMSD indicates RMSD was requested with zero matched pairs.
var ErrEmptyRMSD = errors.New("suptop: rmsd requires at least one pair")

// ErrChargeTotalsUnequal indicates redistribute_charges' precondition
// failed: per-side integer charge totals are not equal.
var ErrChargeTotalsUnequal = errors.New("suptop: charge totals unequal")

// ErrNonIntegerChargeTotal indicates a ligand's total charge does not
// round to an integer within tolerance.
var ErrNonIntegerChargeTotal = errors.New("suptop: non-integer charge total")

func suptopErrorf(method string, err error) error {
	return fmt.Errorf("suptop.%s: %w", method, err)
}
