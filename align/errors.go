package align

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates Kabsch or RMSD was called with no coordinate pairs.
var ErrEmptyInput = errors.New("align: no coordinate pairs")

// ErrLengthMismatch indicates the mobile and reference coordinate slices
// have different lengths.
var ErrLengthMismatch = errors.New("align: mobile/reference length mismatch")

// ErrEigenFailed is returned if the Jacobi sweep does not converge within
// the iteration budget.
var ErrEigenFailed = errors.New("align: eigen decomposition did not converge")

func alignErrorf(method string, err error) error {
	return fmt.Errorf("align.%s: %w", method, err)
}
