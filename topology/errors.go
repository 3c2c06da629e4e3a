// errors.go — sentinel errors for the topology package.
//
// Error policy: only sentinel variables are exposed; callers use
// errors.Is. Sentinels are never wrapped with formatted strings at
// definition site; topologyErrorf attaches method context with %w.

package topology

import (
	"errors"
	"fmt"
)

// ErrEmptyTopology indicates New was called with zero atoms.
var ErrEmptyTopology = errors.New("topology: no atoms")

// ErrDuplicateID indicates two atoms in the same topology share an ID.
var ErrDuplicateID = errors.New("topology: duplicate atom ID")

// ErrDuplicateName indicates two atoms in the same topology share a name.
var ErrDuplicateName = errors.New("topology: duplicate atom name")

// ErrAtomNotFound indicates an atom does not belong to this topology.
var ErrAtomNotFound = errors.New("topology: atom not found")

func topologyErrorf(method string, err error) error {
	return fmt.Errorf("topology.%s: %w", method, err)
}
