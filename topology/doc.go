// Package topology builds the undirected bond graph over a ligand's atoms
// and precomputes the structures the overlay kernel and its filters need
// repeatedly: a fundamental cycle basis and the joined-cycles relation.
//
// What: Topology (atom list + index), Cycle (atom sequence + bitset).
//
// Why: the overlay kernel's cycle-spanning guard and the post-filter
// cascade's enforce_no_partial_rings both test cycle membership and
// overlap on every candidate step; precomputing the basis once per ligand
// avoids recomputing it per check. Those checks walk each cycle's Atoms
// slice; the per-cycle bitset is used to compute the joined-cycles
// relation.
//
// Complexity: O(V+E) to build the basis, O(C^2) to compute joined pairs
// where C is the number of fundamental cycles (small for drug-like ligands).
//
// Errors: ErrEmptyTopology, ErrDuplicateID, ErrDuplicateName, ErrAtomNotFound.
package topology
