// Package overlay implements the maximum-common-subgraph search kernel:
// the recursive joint-DFS that, given a seed pair of atoms on two ligand
// graphs, grows a SuperimposedTopology outward through matching bonded
// neighbors until no further pair can be added without breaking one of
// the structural invariants (type compatibility, joint cycle
// consistency, single-cycle spanning).
//
// What: one exported entry point, Overlay, plus the combination resolver
// (combine.go) it calls whenever a node on one side has more than one
// type-compatible candidate neighbor on the other.
//
// Why: the search itself never needs to report errors — a branch either
// extends the mapping or it doesn't (spec §4.4's "none") — so the kernel
// returns (*suptop.SuperimposedTopology, bool) throughout rather than
// adopting the error-returning convention used by the atom/topology/
// suptop packages.
//
// Complexity: branching factor is bounded by the degree of the bonded
// neighbor classes (almost always <= 4 for heavy atoms), and every
// branch clones its SuperimposedTopology (see suptop.Clone), so cost is
// exponential only in the presence of genuine topological symmetry —
// the same shape the original engine exhibits.
package overlay
