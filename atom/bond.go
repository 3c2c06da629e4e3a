package atom

// Bond is an undirected edge of a molecular graph, read as (From, To, Order).
// Invariant: if Bind(a, b, order) has been called then (b, order) appears
// in a.bonds and (a, order) appears in b.bonds.
type Bond struct {
	From  *Atom
	To    *Atom
	Order BondOrder
}

// Bind registers a mutual bond between a and b with the given order.
// It is idempotent: binding the same pair with the same order twice has
// no additional effect. Binding the same pair with a conflicting order
// returns ErrAlreadyBonded.
func Bind(a, b *Atom, order BondOrder) error {
	if existing, ok := a.BoundTo(b); ok {
		if existing != order {
			return atomErrorf("Bind", ErrAlreadyBonded)
		}
		return nil
	}
	a.bonds = append(a.bonds, bondEntry{to: b, order: order})
	b.bonds = append(b.bonds, bondEntry{to: a, order: order})
	return nil
}
