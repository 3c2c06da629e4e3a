// jacobi.go implements the classic cyclic Jacobi eigenvalue method for
// small real symmetric matrices, adapted from matrix/ops/eigen.go's
// Jacobi-rotation sweep: that routine operates over the generic n-by-n
// matrix.Matrix interface; this one works on the small matrix this package
// needs (the 4x4 Horn key matrix built by Kabsch), using plain [][]float64
// working storage.
package align

import "math"

const (
	jacobiTol     = 1e-12
	jacobiMaxIter = 100
)

// jacobiEigen computes all eigenvalues and eigenvectors of a real
// symmetric n-by-n matrix a (given as a row-major [][]float64, not
// mutated) via cyclic Jacobi rotation. Returns eigenvalues and a matrix
// whose columns are the corresponding eigenvectors.
func jacobiEigen(a [][]float64) ([]float64, [][]float64, error) {
	n := len(a)

	// Stage 1: working copy and identity accumulator.
	A := make([][]float64, n)
	for i := range A {
		A[i] = append([]float64(nil), a[i]...)
	}
	Q := identity(n)

	// Stage 2: sweep, rotating away the largest off-diagonal element.
	iter := 0
	for ; iter < jacobiMaxIter; iter++ {
		p, q, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if v := math.Abs(A[i][j]); v > maxOff {
					maxOff, p, q = v, i, j
				}
			}
		}
		if maxOff < jacobiTol {
			break
		}

		theta := (A[q][q] - A[p][p]) / (2 * A[p][q])
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i != p && i != q {
				aip, aiq := A[i][p], A[i][q]
				A[i][p], A[p][i] = c*aip-s*aiq, c*aip-s*aiq
				A[i][q], A[q][i] = s*aip+c*aiq, s*aip+c*aiq
			}
		}
		app, aqq, apq := A[p][p], A[q][q], A[p][q]
		A[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		A[q][q] = s*s*app + 2*c*s*apq + c*c*aqq
		A[p][q], A[q][p] = 0, 0

		for i := 0; i < n; i++ {
			qip, qiq := Q[i][p], Q[i][q]
			Q[i][p] = c*qip - s*qiq
			Q[i][q] = s*qip + c*qiq
		}
	}
	if iter == jacobiMaxIter {
		return nil, nil, alignErrorf("jacobiEigen", ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = A[i][i]
	}
	return eigs, Q, nil
}

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1.0
	}
	return m
}
