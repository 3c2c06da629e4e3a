package suptop

import (
	"math"
	"sort"

	"github.com/arborpath/suptop/atom"
	"github.com/arborpath/suptop/topology"
)

// Pair is an ordered matched pair: L belongs to the left (disappearing)
// ligand, R to the right (appearing) ligand.
type Pair struct {
	L *atom.Atom
	R *atom.Atom
}

// inducedEdge records, for one pair p, that p is bonded (in both ligands)
// to another matched pair, with the bond orders observed on each side.
type inducedEdge struct {
	Other  Pair
	OrderL atom.BondOrder
	OrderR atom.BondOrder
}

// LogEntry is one entry of the append-only nodes_added_log audit trail.
type LogEntry struct {
	Action  string // "Added", "Removed", "merged with", ...
	Payload string
}

// ChargeRemoval records a pair removed for exceeding a charge tolerance,
// together with the |delta charge| that triggered the removal.
type ChargeRemoval struct {
	Pair   Pair
	DeltaQ float64
}

// SuperimposedTopology is the central partial-mapping data structure: a
// growing bijection between a subset of a left ligand's atoms and a subset
// of a right ligand's atoms, with bond-pair adjacency, removal-reason
// audit logs, and mirror/alternative-mapping bookkeeping.
type SuperimposedTopology struct {
	Left  *topology.Topology
	Right *topology.Topology

	matchedPairs []Pair
	nodes        map[*atom.Atom]struct{}
	pairBonds    map[Pair][]inducedEdge

	Mirrors              []*SuperimposedTopology
	AlternativeMappings  []*SuperimposedTopology
	NodesAddedLog        []LogEntry

	RemovedPairsWithChargeDifference []ChargeRemoval
	RemovedBecauseDisjointedCC        [][]Pair
	RemovedDueToNetCharge             []ChargeRemoval
	RemovedBecauseUnmatchedRings      []Pair
	RemovedBecauseDiffBonds           []Pair

	internalIDs map[*atom.Atom]int
	pairID      map[Pair]int

	nonoverlapLCycles []topology.Cycle
	nonoverlapRCycles []topology.Cycle

	LeftCoordsAreRef bool
	IgnoreBondTypes  bool
}

// New creates an empty SuperimposedTopology bound to the two source
// topologies. left_coords_are_ref defaults to true, ignore_bond_types to
// true, matching the orchestrator's defaults (spec §6).
func New(left, right *topology.Topology) *SuperimposedTopology {
	return &SuperimposedTopology{
		Left:             left,
		Right:            right,
		nodes:            make(map[*atom.Atom]struct{}),
		pairBonds:        make(map[Pair][]inducedEdge),
		internalIDs:      make(map[*atom.Atom]int),
		pairID:           make(map[Pair]int),
		LeftCoordsAreRef: true,
		IgnoreBondTypes:  true,
	}
}

// Size returns the number of matched pairs.
func (st *SuperimposedTopology) Size() int { return len(st.matchedPairs) }

// MatchedPairs returns the matched pairs, ordered by left atom name.
func (st *SuperimposedTopology) MatchedPairs() []Pair {
	out := make([]Pair, len(st.matchedPairs))
	copy(out, st.matchedPairs)
	return out
}

// ContainsNode reports whether a is part of any matched pair.
func (st *SuperimposedTopology) ContainsNode(a *atom.Atom) bool {
	_, ok := st.nodes[a]
	return ok
}

// ContainsAnyNode reports whether any of nodes is part of any matched pair.
func (st *SuperimposedTopology) ContainsAnyNode(nodes []*atom.Atom) bool {
	for _, n := range nodes {
		if st.ContainsNode(n) {
			return true
		}
	}
	return false
}

// ContainsPair reports whether (l,r) is already a matched pair.
func (st *SuperimposedTopology) ContainsPair(p Pair) bool {
	for _, mp := range st.matchedPairs {
		if mp == p {
			return true
		}
	}
	return false
}

// ContainsAtomNamePair reports whether a pair with these left/right atom
// names is already present.
func (st *SuperimposedTopology) ContainsAtomNamePair(ln, rn string) bool {
	for _, mp := range st.matchedPairs {
		if mp.L.Name == ln && mp.R.Name == rn {
			return true
		}
	}
	return false
}

// CountCommonNodes returns the number of atoms shared with other's node set.
func (st *SuperimposedTopology) CountCommonNodes(other *SuperimposedTopology) int {
	n := 0
	for a := range st.nodes {
		if other.ContainsNode(a) {
			n++
		}
	}
	return n
}

// CountCommonNodePairs returns the number of matched pairs present in both.
func (st *SuperimposedTopology) CountCommonNodePairs(other *SuperimposedTopology) int {
	n := 0
	for _, p := range st.matchedPairs {
		if other.ContainsPair(p) {
			n++
		}
	}
	return n
}

// NetCharge returns sum(l.Charge - r.Charge) over matched pairs.
func (st *SuperimposedTopology) NetCharge() float64 {
	var sum float64
	for _, p := range st.matchedPairs {
		sum += p.L.Charge - p.R.Charge
	}
	return sum
}

// WorstChargeMatch returns max|delta charge| over matched pairs, or 0 if
// there are none.
func (st *SuperimposedTopology) WorstChargeMatch() float64 {
	var worst float64
	for _, p := range st.matchedPairs {
		d := math.Abs(p.L.Charge - p.R.Charge)
		if d > worst {
			worst = d
		}
	}
	return worst
}

// RMSD returns sqrt(mean over pairs of ||l.Position - r.Position||^2).
// Requires at least one matched pair.
func (st *SuperimposedTopology) RMSD() (float64, error) {
	if len(st.matchedPairs) == 0 {
		return 0, suptopErrorf("RMSD", ErrEmptyRMSD)
	}
	var sum float64
	for _, p := range st.matchedPairs {
		for i := 0; i < 3; i++ {
			d := p.L.Position[i] - p.R.Position[i]
			sum += d * d
		}
	}
	mean := sum / float64(len(st.matchedPairs))
	return math.Sqrt(mean), nil
}

// AddPair appends (l,r) to matched_pairs, keeping the sequence sorted by
// left atom name; updates the node set; initializes an empty bond-set for
// the pair; appends an "Added" log entry.
func (st *SuperimposedTopology) AddPair(l, r *atom.Atom) (Pair, error) {
	if st.ContainsNode(l) || st.ContainsNode(r) {
		return Pair{}, suptopErrorf("AddPair", ErrAtomAlreadyMapped)
	}
	p := Pair{L: l, R: r}
	if st.ContainsPair(p) {
		return Pair{}, suptopErrorf("AddPair", ErrPairAlreadyPresent)
	}
	st.matchedPairs = append(st.matchedPairs, p)
	sort.SliceStable(st.matchedPairs, func(i, j int) bool {
		return st.matchedPairs[i].L.Name < st.matchedPairs[j].L.Name
	})
	st.nodes[l] = struct{}{}
	st.nodes[r] = struct{}{}
	st.pairBonds[p] = nil
	st.NodesAddedLog = append(st.NodesAddedLog, LogEntry{Action: "Added", Payload: l.Name + "-" + r.Name})
	return p, nil
}

// LinkWithParent registers the induced edge between pair and parent in
// both directions, with the bond orders observed on the left and right
// sides respectively.
func (st *SuperimposedTopology) LinkWithParent(pair, parent Pair, orderL, orderR atom.BondOrder) error {
	if !st.ContainsPair(pair) || !st.ContainsPair(parent) {
		return suptopErrorf("LinkWithParent", ErrPairNotFound)
	}
	st.pairBonds[pair] = append(st.pairBonds[pair], inducedEdge{Other: parent, OrderL: orderL, OrderR: orderR})
	st.pairBonds[parent] = append(st.pairBonds[parent], inducedEdge{Other: pair, OrderL: orderL, OrderR: orderR})
	return nil
}

// RemovePair removes p from matched_pairs and nodes, detaches every
// adjacency record referencing it, and appends a "Removed" log entry.
func (st *SuperimposedTopology) RemovePair(p Pair) error {
	idx := -1
	for i, mp := range st.matchedPairs {
		if mp == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return suptopErrorf("RemovePair", ErrPairNotFound)
	}
	st.matchedPairs = append(st.matchedPairs[:idx], st.matchedPairs[idx+1:]...)
	delete(st.nodes, p.L)
	delete(st.nodes, p.R)
	for other, edges := range st.pairBonds {
		if other == p {
			continue
		}
		filtered := edges[:0]
		for _, e := range edges {
			if e.Other != p {
				filtered = append(filtered, e)
			}
		}
		st.pairBonds[other] = filtered
	}
	delete(st.pairBonds, p)
	st.NodesAddedLog = append(st.NodesAddedLog, LogEntry{Action: "Removed", Payload: p.L.Name + "-" + p.R.Name})
	return nil
}

// RemoveAttachedHydrogens removes every matched pair adjacent to p whose
// left atom is a hydrogen.
func (st *SuperimposedTopology) RemoveAttachedHydrogens(p Pair) {
	for _, e := range append([]inducedEdge(nil), st.pairBonds[p]...) {
		if e.Other.L.IsHydrogen() {
			_ = st.RemovePair(e.Other)
		}
	}
}

// Clone returns a shallow copy of st suitable for independent recursive
// branches: matched_pairs, nodes, nodes_added_log, mirrors, alternative
// mappings and the bond-adjacency mapping are all duplicated; atoms
// themselves are shared by reference (spec §4.4, §9).
func (st *SuperimposedTopology) Clone() *SuperimposedTopology {
	c := &SuperimposedTopology{
		Left:             st.Left,
		Right:            st.Right,
		matchedPairs:     append([]Pair(nil), st.matchedPairs...),
		nodes:            make(map[*atom.Atom]struct{}, len(st.nodes)),
		pairBonds:        make(map[Pair][]inducedEdge, len(st.pairBonds)),
		Mirrors:          append([]*SuperimposedTopology(nil), st.Mirrors...),
		AlternativeMappings: append([]*SuperimposedTopology(nil), st.AlternativeMappings...),
		NodesAddedLog:    append([]LogEntry(nil), st.NodesAddedLog...),
		internalIDs:      make(map[*atom.Atom]int, len(st.internalIDs)),
		pairID:           make(map[Pair]int, len(st.pairID)),
		LeftCoordsAreRef: st.LeftCoordsAreRef,
		IgnoreBondTypes:  st.IgnoreBondTypes,
	}
	for a := range st.nodes {
		c.nodes[a] = struct{}{}
	}
	for p, edges := range st.pairBonds {
		c.pairBonds[p] = append([]inducedEdge(nil), edges...)
	}
	for a, id := range st.internalIDs {
		c.internalIDs[a] = id
	}
	for p, id := range st.pairID {
		c.pairID[p] = id
	}
	return c
}

// Merge absorbs every pair of other not already present in self.
// Preconditions: the two STs are disjoint except for pairs already
// identical, and the merged ST still satisfies cycle parity. Bonds of
// newly added pairs are copied over.
func (st *SuperimposedTopology) Merge(other *SuperimposedTopology) error {
	for _, p := range other.matchedPairs {
		if st.ContainsPair(p) {
			continue
		}
		if st.ContainsNode(p.L) || st.ContainsNode(p.R) {
			return suptopErrorf("Merge", ErrMergeConflict)
		}
	}
	added := make([]Pair, 0, len(other.matchedPairs))
	for _, p := range other.matchedPairs {
		if st.ContainsPair(p) {
			continue
		}
		if _, err := st.AddPair(p.L, p.R); err != nil {
			return suptopErrorf("Merge", err)
		}
		added = append(added, p)
	}
	for _, p := range added {
		for _, e := range other.pairBonds[p] {
			if st.ContainsPair(e.Other) {
				_ = st.LinkWithParent(p, e.Other, e.OrderL, e.OrderR)
			}
		}
	}
	if !st.cycleParityHolds() {
		return suptopErrorf("Merge", ErrCycleParityViolated)
	}
	st.NodesAddedLog = append(st.NodesAddedLog, LogEntry{Action: "merged with", Payload: ""})
	return nil
}

// cycleParityHolds reports whether the number of independent cycles
// induced on the current L-side subgraph equals that on the R-side.
func (st *SuperimposedTopology) cycleParityHolds() bool {
	return inducedCycleCount(st, true) == inducedCycleCount(st, false)
}

// inducedCycleCount counts independent cycles in the subgraph induced on
// one side's matched atoms by that side's *real* bonds (left if useLeft,
// else right) — i.e. edges(E) - vertices(V) + components(c), the standard
// cyclomatic-number formula. Unlike matched_pairs_bonds (which only
// records a bond once both sides agree it exists), this walks each side's
// own atom.Bonds() independently, so a ring present on one side with no
// counterpart on the other is visible as a parity mismatch.
func inducedCycleCount(st *SuperimposedTopology, useLeft bool) int {
	v := len(st.matchedPairs)
	if v == 0 {
		return 0
	}
	inSet := make(map[*atom.Atom]struct{}, v)
	for _, p := range st.matchedPairs {
		if useLeft {
			inSet[p.L] = struct{}{}
		} else {
			inSet[p.R] = struct{}{}
		}
	}

	adj := make(map[*atom.Atom][]*atom.Atom, v)
	edgeSeen := make(map[[2]*atom.Atom]struct{})
	eCount := 0
	for a := range inSet {
		for _, b := range a.Bonds() {
			if _, ok := inSet[b.To]; !ok {
				continue
			}
			if _, seen := edgeSeen[[2]*atom.Atom{b.To, a}]; seen {
				continue
			}
			edgeSeen[[2]*atom.Atom{a, b.To}] = struct{}{}
			adj[a] = append(adj[a], b.To)
			adj[b.To] = append(adj[b.To], a)
			eCount++
		}
	}

	visited := make(map[*atom.Atom]bool, v)
	comps := 0
	for a := range inSet {
		if visited[a] {
			continue
		}
		comps++
		stack := []*atom.Atom{a}
		visited[a] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range adj[cur] {
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return eCount - v + comps
}

// connectedComponents partitions matched_pairs into connected components
// of the pair-adjacency graph (matched_pairs_bonds), in deterministic
// (matched_pairs) order.
func (st *SuperimposedTopology) connectedComponents() [][]Pair {
	visited := make(map[Pair]bool, len(st.matchedPairs))
	var comps [][]Pair
	for _, start := range st.matchedPairs {
		if visited[start] {
			continue
		}
		var comp []Pair
		stack := []Pair{start}
		visited[start] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, cur)
			for _, e := range st.pairBonds[cur] {
				if !visited[e.Other] {
					visited[e.Other] = true
					stack = append(stack, e.Other)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
