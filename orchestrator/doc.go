// Package orchestrator exposes SuperimposeTopologies, grounded directly
// on superimpose_topologies in the original topology_superimposer.py:
// input validation (§6's input contract, including the eager
// check_atom_names_unique assertion), seed selection (seed.go), the
// per-seed acceptance pipeline (integrate.go), and the 13-step global
// post-filter cascade (postfilters.go), run in the exact order spec
// §4.6 specifies.
//
// Errors: see errors.go. Only InputMalformed and EmptyResult conditions
// originate here; InvariantViolated conditions are forwarded, wrapped,
// from the suptop and topology packages.
package orchestrator
