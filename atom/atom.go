// Package atom defines the Atom and Bond primitives of a molecular
// topology: immutable-after-construction vertices carrying chemistry
// attributes, and typed undirected edges between them.
//
// Atom identity is reference identity. Equality between atoms drawn from
// different ligands is never by identity — it is by element-or-type and
// charge tolerance, evaluated by the overlay and suptop packages, not here.
package atom

import "strings"

// BondOrder is an opaque bond-order tag (single/double/aromatic/...).
// The engine never interprets the numeric value beyond equality; chemistry
// meaning is a concern of the collaborator that produced it.
type BondOrder int

// Recognized bond orders. Values beyond these are legal (BondOrder is open)
// but these are the ones the element-from-type and ring-perception logic
// are exercised against in tests.
const (
	BondUnknown BondOrder = iota
	BondSingle
	BondDouble
	BondTriple
	BondAromatic
)

// bondEntry is one entry of an Atom's adjacency list: the neighbor and the
// order of the bond connecting to it. Stored in an insertion-ordered slice
// rather than a map so that iteration is deterministic (spec §9).
type bondEntry struct {
	to    *Atom
	order BondOrder
}

// Atom is a vertex of a molecular graph.
//
// Name and Type are canonicalized to uppercase at construction; Resname is
// stored as given.
// Element is derived once, at construction, via ElementForType and never
// changes; Type may be mutated later by CC/CD normalization (suptop
// package), but only during the single-threaded post-filter phase (spec §5).
type Atom struct {
	Name           string
	Element        Element
	Type           string
	Charge         float64
	OriginalCharge float64
	Position       [3]float64
	ID             int
	Resname        string
	UseGeneralType bool

	bonds []bondEntry
}

// New constructs an Atom. Name and Type are canonicalized to uppercase;
// Element is derived from Type via ElementForType. OriginalCharge is set
// equal to Charge at construction and is never mutated afterward.
func New(name, fftype string, charge float64, id int, pos [3]float64, resname string) (*Atom, error) {
	if name == "" {
		return nil, atomErrorf("New", ErrEmptyName)
	}
	el, err := ElementForType(fftype)
	if err != nil {
		return nil, atomErrorf("New", err)
	}
	return &Atom{
		Name:           upper(name),
		Element:        el,
		Type:           upper(fftype),
		Charge:         charge,
		OriginalCharge: charge,
		Position:       pos,
		ID:             id,
		Resname:        resname,
	}, nil
}

// IsHydrogen reports whether the atom's element is hydrogen.
func (a *Atom) IsHydrogen() bool { return a.Element == ElementH }

// Bonds returns the atom's bonded neighbors in insertion order.
func (a *Atom) Bonds() []Bond {
	out := make([]Bond, len(a.bonds))
	for i, be := range a.bonds {
		out[i] = Bond{From: a, To: be.to, Order: be.order}
	}
	return out
}

// BoundTo reports whether a is bonded to other, and if so, the order.
func (a *Atom) BoundTo(other *Atom) (BondOrder, bool) {
	for _, be := range a.bonds {
		if be.to == other {
			return be.order, true
		}
	}
	return BondUnknown, false
}

// SameElement reports whether a and b share the same element.
func SameElement(a, b *Atom) bool { return a.Element == b.Element }

// SameType reports whether a and b share the same force-field type.
func SameType(a, b *Atom) bool { return a.Type == b.Type }

// ChargeEqual reports whether |a.Charge - b.Charge| <= atol.
func ChargeEqual(a, b *Atom, atol float64) bool {
	d := a.Charge - b.Charge
	if d < 0 {
		d = -d
	}
	return d <= atol
}

func upper(s string) string { return strings.ToUpper(s) }
