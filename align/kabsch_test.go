package align_test

import (
	"math"
	"testing"

	"github.com/arborpath/suptop/align"
	"github.com/stretchr/testify/require"
)

func rotateZ(p [3]float64, theta float64) [3]float64 {
	c, s := math.Cos(theta), math.Sin(theta)
	return [3]float64{c*p[0] - s*p[1], s*p[0] + c*p[1], p[2]}
}

func TestKabsch_RecoversKnownRotation(t *testing.T) {
	ref := [][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
	theta := math.Pi / 3
	mobile := make([][3]float64, len(ref))
	for i, p := range ref {
		mobile[i] = rotateZ(p, theta)
	}

	res, err := align.Kabsch(mobile, ref)
	require.NoError(t, err)
	require.InDelta(t, 0, res.RMSD, 1e-6)
}

func TestKabsch_IdenticalPointsZeroRMSD(t *testing.T) {
	pts := [][3]float64{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}}
	res, err := align.Kabsch(pts, pts)
	require.NoError(t, err)
	require.InDelta(t, 0, res.RMSD, 1e-9)
}

func TestKabsch_LengthMismatch(t *testing.T) {
	_, err := align.Kabsch([][3]float64{{0, 0, 0}}, [][3]float64{{0, 0, 0}, {1, 1, 1}})
	require.Error(t, err)
}

func TestRMSD_Basic(t *testing.T) {
	a := [][3]float64{{0, 0, 0}, {1, 0, 0}}
	b := [][3]float64{{0, 0, 0}, {0, 0, 0}}
	r, err := align.RMSD(a, b)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(0.5), r, 1e-9)
}
