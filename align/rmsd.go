package align

import "math"

// RMSD returns sqrt(mean over pairs of ||a[i]-b[i]||^2), independent of
// any alignment step.
func RMSD(a, b [][3]float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, alignErrorf("RMSD", ErrEmptyInput)
	}
	if len(a) != len(b) {
		return 0, alignErrorf("RMSD", ErrLengthMismatch)
	}
	var sumSq float64
	for i := range a {
		for k := 0; k < 3; k++ {
			d := a[i][k] - b[i][k]
			sumSq += d * d
		}
	}
	return math.Sqrt(sumSq / float64(len(a))), nil
}
