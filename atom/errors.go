// errors.go — sentinel errors for the atom package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w (see atomErrorf).

package atom

import (
	"errors"
	"fmt"
)

// ErrUnknownType indicates a force-field atom type outside the recognized
// alphabet was presented to ElementForType. This is a fatal, load-time
// condition — the element-from-type table is total over the recognized
// alphabet by contract.
var ErrUnknownType = errors.New("atom: unrecognized force-field type")

// ErrAlreadyBonded is returned by Bind when asked to register a bond
// between two atoms that are already bonded with a different order.
var ErrAlreadyBonded = errors.New("atom: conflicting bond order already present")

// ErrEmptyName indicates an Atom was constructed with an empty name.
var ErrEmptyName = errors.New("atom: name must not be empty")

// atomErrorf wraps an inner error with a method-name prefix, preserving the
// sentinel for errors.Is while adding a deterministic context prefix.
func atomErrorf(method string, err error) error {
	return fmt.Errorf("atom.%s: %w", method, err)
}
