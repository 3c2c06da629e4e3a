package suptop

// IsMirrorOf reports whether st and other have the same cardinality and
// the same node set but (implicitly, since both are bijections of equal
// size over the same node set) a different pairing.
func (st *SuperimposedTopology) IsMirrorOf(other *SuperimposedTopology) bool {
	if st.Size() != other.Size() {
		return false
	}
	if len(st.nodes) != len(other.nodes) {
		return false
	}
	for a := range st.nodes {
		if !other.ContainsNode(a) {
			return false
		}
	}
	return true
}

// AddMirrorSuptop absorbs other's own mirrors into st's mirror list, clears
// other's mirror list, then appends other itself.
func (st *SuperimposedTopology) AddMirrorSuptop(other *SuperimposedTopology) {
	st.Mirrors = append(st.Mirrors, other.Mirrors...)
	other.Mirrors = nil
	st.Mirrors = append(st.Mirrors, other)
}

// AddAlternativeMapping appends other to st's alternative_mappings list.
func (st *SuperimposedTopology) AddAlternativeMapping(other *SuperimposedTopology) {
	st.AlternativeMappings = append(st.AlternativeMappings, other)
}

// IsSubgraphOf reports whether st is strictly smaller than other and every
// pair of st (or of any of st's mirrors) is contained in other.
func (st *SuperimposedTopology) IsSubgraphOf(other *SuperimposedTopology) bool {
	if st.Size() >= other.Size() {
		return false
	}
	if allPairsContained(st, other) {
		return true
	}
	for _, m := range st.Mirrors {
		if allPairsContained(m, other) {
			return true
		}
	}
	return false
}

func allPairsContained(candidate, other *SuperimposedTopology) bool {
	for _, p := range candidate.matchedPairs {
		if !other.ContainsPair(p) {
			return false
		}
	}
	return true
}

// Eq reports whether st and other contain exactly the same matched pairs
// (structural equality, independent of ordering already guaranteed by
// AddPair's sort).
func (st *SuperimposedTopology) Eq(other *SuperimposedTopology) bool {
	if st.Size() != other.Size() {
		return false
	}
	return allPairsContained(st, other)
}
