// Package align computes the optimal rigid-body superposition (Kabsch
// alignment) between two matched 3D point sets, and the plain RMSD
// between them.
//
// Rotation recovery uses Horn's quaternion method: the cross-covariance
// matrix between the centered point sets is folded into a symmetric 4x4
// "key matrix" whose largest-eigenvalue eigenvector is the optimal
// rotation quaternion. This is the well-known eigendecomposition
// equivalent of the SVD route to Kabsch alignment, and lets rotation
// recovery reuse a small symmetric Jacobi eigensolver instead of a
// general SVD routine.
package align

import "math"

// Result is the outcome of a Kabsch alignment.
type Result struct {
	Rotation       [3][3]float64
	MobileCentroid [3]float64
	RefCentroid    [3]float64
	RMSD           float64
}

// Kabsch computes the rotation that best superposes mobile onto ref
// (both centered on their own centroids first), and the RMSD after
// alignment. mobile and ref must have equal, positive length and be
// index-aligned (mobile[i] corresponds to ref[i]).
func Kabsch(mobile, ref [][3]float64) (Result, error) {
	if len(mobile) == 0 || len(ref) == 0 {
		return Result{}, alignErrorf("Kabsch", ErrEmptyInput)
	}
	if len(mobile) != len(ref) {
		return Result{}, alignErrorf("Kabsch", ErrLengthMismatch)
	}

	mc := centroid(mobile)
	rc := centroid(ref)

	n := len(mobile)
	cm := make([][3]float64, n)
	cr := make([][3]float64, n)
	for i := 0; i < n; i++ {
		cm[i] = sub(mobile[i], mc)
		cr[i] = sub(ref[i], rc)
	}

	H := crossCovariance(cm, cr)
	K := hornKeyMatrix(H)

	eigs, vecs, err := jacobiEigen(K)
	if err != nil {
		return Result{}, alignErrorf("Kabsch", err)
	}
	best := 0
	for i := 1; i < len(eigs); i++ {
		if eigs[i] > eigs[best] {
			best = i
		}
	}
	q := [4]float64{vecs[0][best], vecs[1][best], vecs[2][best], vecs[3][best]}
	R := quaternionToRotation(q)

	var sumSq float64
	for i := 0; i < n; i++ {
		rotated := applyRotation(R, cm[i])
		for k := 0; k < 3; k++ {
			d := rotated[k] - cr[i][k]
			sumSq += d * d
		}
	}
	rmsd := math.Sqrt(sumSq / float64(n))

	return Result{Rotation: R, MobileCentroid: mc, RefCentroid: rc, RMSD: rmsd}, nil
}

// Apply rotates point p by r, then translates it from mobile-centroid
// frame into ref-centroid frame — the transform Kabsch recovered.
func (r Result) Apply(p [3]float64) [3]float64 {
	rotated := applyRotation(r.Rotation, sub(p, r.MobileCentroid))
	return add(rotated, r.RefCentroid)
}

func centroid(pts [][3]float64) [3]float64 {
	var c [3]float64
	for _, p := range pts {
		c[0] += p[0]
		c[1] += p[1]
		c[2] += p[2]
	}
	n := float64(len(pts))
	return [3]float64{c[0] / n, c[1] / n, c[2] / n}
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func add(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// crossCovariance returns H where H[i][j] = sum_k mobile[k][i]*ref[k][j].
func crossCovariance(mobile, ref [][3]float64) [3][3]float64 {
	var H [3][3]float64
	for k := range mobile {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				H[i][j] += mobile[k][i] * ref[k][j]
			}
		}
	}
	return H
}

// hornKeyMatrix builds the symmetric 4x4 matrix (Horn, 1987) whose
// largest-eigenvalue eigenvector is the optimal rotation quaternion.
func hornKeyMatrix(H [3][3]float64) [][]float64 {
	sxx, sxy, sxz := H[0][0], H[0][1], H[0][2]
	syx, syy, syz := H[1][0], H[1][1], H[1][2]
	szx, szy, szz := H[2][0], H[2][1], H[2][2]

	return [][]float64{
		{sxx + syy + szz, syz - szy, szx - sxz, sxy - syx},
		{syz - szy, sxx - syy - szz, sxy + syx, szx + sxz},
		{szx - sxz, sxy + syx, -sxx + syy - szz, syz + szy},
		{sxy - syx, szx + sxz, syz + szy, -sxx - syy + szz},
	}
}

func quaternionToRotation(q [4]float64) [3][3]float64 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	return [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

func applyRotation(R [3][3]float64, p [3]float64) [3]float64 {
	return [3]float64{
		R[0][0]*p[0] + R[0][1]*p[1] + R[0][2]*p[2],
		R[1][0]*p[0] + R[1][1]*p[1] + R[1][2]*p[2],
		R[2][0]*p[0] + R[2][1]*p[1] + R[2][2]*p[2],
	}
}
