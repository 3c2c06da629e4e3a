// Package align: rigid-body superposition for matched 3D atom positions.
//
// What: Kabsch (optimal rotation + RMSD between two centroid-aligned point
// sets) and RMSD (plain, alignment-independent).
//
// Why: suptop.AlignLigandsUsingMatched needs a rotation that minimizes
// RMSD over the currently matched atom pairs; this package is the one
// piece of the engine that is genuinely numerical linear algebra rather
// than graph/set bookkeeping, so it is kept separate and dependency-free
// of atom/topology/suptop.
//
// Complexity: O(n) to build the cross-covariance matrix from n matched
// points, O(1) (fixed 4x4) for the eigensolve.
//
// Errors: ErrEmptyInput, ErrLengthMismatch, ErrEigenFailed.
package align
