// Package atom: the leaf layer of the superimposition engine.
//
// What: Atom and Bond, plus the fixed force-field-type-to-element table
// (ElementForType) that every higher layer relies on to classify atoms.
//
// Why: every comparison the overlay kernel makes (type compatibility,
// element compatibility, charge tolerance) bottoms out in a call into
// this package. Keeping it free of any dependency on topology or suptop
// keeps the element table reusable and trivially testable in isolation.
//
// Errors: ErrUnknownType, ErrAlreadyBonded, ErrEmptyName — see errors.go.
package atom
