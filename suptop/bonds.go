package suptop

import "github.com/arborpath/suptop/atom"

// DualTopologyBond is one triple (IDLo, IDHi, Order) of the hybrid
// dual-topology bond list (spec §6): IDLo < IDHi are the assigned atom or
// pair IDs (see AssignAtomIDs), Order is the bond order carried by the
// contributing ligand side.
type DualTopologyBond struct {
	IDLo, IDHi int
	Order      atom.BondOrder
}

// AssignAtomIDs assigns a shared ID to each matched pair (in matched_pairs
// order), then further IDs to unmatched left atoms, then unmatched right
// atoms, starting from start. Returns the next free ID.
func (st *SuperimposedTopology) AssignAtomIDs(start int) int {
	id := start
	for _, p := range st.matchedPairs {
		st.pairID[p] = id
		st.internalIDs[p.L] = id
		st.internalIDs[p.R] = id
		id++
	}
	for _, a := range st.DisappearingAtoms() {
		st.internalIDs[a] = id
		id++
	}
	for _, a := range st.AppearingAtoms() {
		st.internalIDs[a] = id
		id++
	}
	return id
}

// IDOf returns the assigned ID for an atom (after AssignAtomIDs has run),
// or (0, false) if unassigned.
func (st *SuperimposedTopology) IDOf(a *atom.Atom) (int, bool) {
	id, ok := st.internalIDs[a]
	return id, ok
}

// DisappearingAtoms returns the left-ligand atoms not part of any matched
// pair, in the left topology's construction order.
func (st *SuperimposedTopology) DisappearingAtoms() []*atom.Atom {
	return unmatchedAtoms(st.Left, st.nodes)
}

// AppearingAtoms returns the right-ligand atoms not part of any matched
// pair, in the right topology's construction order.
func (st *SuperimposedTopology) AppearingAtoms() []*atom.Atom {
	return unmatchedAtoms(st.Right, st.nodes)
}

func unmatchedAtoms(top interface{ Atoms() []*atom.Atom }, nodes map[*atom.Atom]struct{}) []*atom.Atom {
	var out []*atom.Atom
	for _, a := range top.Atoms() {
		if _, ok := nodes[a]; !ok {
			out = append(out, a)
		}
	}
	return out
}

// DualTopologyBonds builds the hybrid dual-topology bond list (spec §6):
// induced edges between matched pairs (using each pair's shared ID),
// edges from an unmatched atom to a matched pair (matched side uses the
// pair's shared ID, unmatched side its own ID), and edges entirely among
// unmatched atoms on one side (each atom's own ID). AssignAtomIDs must
// have been called first.
func (st *SuperimposedTopology) DualTopologyBonds() []DualTopologyBond {
	var out []DualTopologyBond

	// (a) matched pair <-> matched pair.
	for p, edges := range st.pairBonds {
		pid, ok1 := st.pairID[p]
		if !ok1 {
			continue
		}
		for _, e := range edges {
			oid, ok2 := st.pairID[e.Other]
			if !ok2 || pid >= oid {
				continue // dedupe: emit once, from the lower-id side
			}
			out = append(out, DualTopologyBond{IDLo: pid, IDHi: oid, Order: e.OrderL})
		}
	}

	// (b) unmatched atom <-> matched pair, one side at a time.
	out = append(out, unmatchedToMatched(st, st.DisappearingAtoms())...)
	out = append(out, unmatchedToMatched(st, st.AppearingAtoms())...)

	// (c) unmatched atom <-> unmatched atom, one side at a time.
	out = append(out, unmatchedToUnmatched(st, st.DisappearingAtoms())...)
	out = append(out, unmatchedToUnmatched(st, st.AppearingAtoms())...)

	return out
}

func unmatchedToMatched(st *SuperimposedTopology, unmatched []*atom.Atom) []DualTopologyBond {
	var out []DualTopologyBond
	for _, u := range unmatched {
		uid, ok := st.internalIDs[u]
		if !ok {
			continue
		}
		for _, b := range u.Bonds() {
			if _, isNode := st.nodes[b.To]; !isNode {
				continue
			}
			pid, ok := st.idOfMatchedNeighbor(b.To)
			if !ok {
				continue
			}
			out = append(out, DualTopologyBond{IDLo: minInt(uid, pid), IDHi: maxInt(uid, pid), Order: b.Order})
		}
	}
	return out
}

// idOfMatchedNeighbor returns the shared pair ID for a matched atom.
func (st *SuperimposedTopology) idOfMatchedNeighbor(a *atom.Atom) (int, bool) {
	id, ok := st.internalIDs[a]
	return id, ok
}

func unmatchedToUnmatched(st *SuperimposedTopology, unmatched []*atom.Atom) []DualTopologyBond {
	var out []DualTopologyBond
	for _, u := range unmatched {
		uid, ok := st.internalIDs[u]
		if !ok {
			continue
		}
		for _, b := range u.Bonds() {
			if _, isNode := st.nodes[b.To]; isNode {
				continue
			}
			vid, ok := st.internalIDs[b.To]
			if !ok || uid >= vid {
				continue // dedupe
			}
			out = append(out, DualTopologyBond{IDLo: uid, IDHi: vid, Order: b.Order})
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
