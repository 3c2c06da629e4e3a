// Package suptop implements SuperimposedTopology (ST): the central
// partial-mapping data structure of the superimposition engine.
//
// What: a growing bijection between a subset of a left ligand's atoms and
// a subset of a right ligand's atoms, with induced bond-pair adjacency,
// removal-reason audit logs, mirror and alternative-mapping bookkeeping,
// and every invariant-preserving mutation and post-search filter the
// orchestrator cascade applies (charge tolerance, CC/CD normalization,
// type tightening, net-charge balancing, partial-ring elimination,
// largest-connected-component retention, charge redistribution, atom-ID
// assignment, Kabsch alignment).
//
// Why: every mutation here is a candidate for the overlay kernel to
// discard mid-recursion (spec §4.4 returns none on failure), so mutation
// methods report InvariantViolated conditions as sentinel errors while
// filter-driven removals are never errors. Every removal appends a
// "Removed" entry to NodesAddedLog; the charge, net-charge, disjoint-
// component, ring and bond-order filters also record it in their Removed*
// log. Type tightening (MatchedAtomTypesAreTheSame) has no Removed* log of
// its own.
//
// Complexity: AddPair/RemovePair are O(|matched_pairs|) (the sorted-insert
// and adjacency-scrub); Clone is O(|matched_pairs|) by design, so deep
// search trees stay linear per branch rather than quadratic.
//
// Errors: see errors.go.
package suptop
