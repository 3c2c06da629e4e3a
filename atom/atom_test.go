package atom_test

import (
	"errors"
	"testing"

	"github.com/arborpath/suptop/atom"
	"github.com/stretchr/testify/require"
)

func TestElementForType(t *testing.T) {
	tests := []struct {
		fftype string
		want   atom.Element
	}{
		{"c3", atom.ElementC},
		{"CA", atom.ElementC},
		{"oh", atom.ElementO},
		{"n3", atom.ElementN},
		{"cl", atom.ElementCl},
		{"br", atom.ElementBr},
		{"hc", atom.ElementH},
	}
	for _, tt := range tests {
		got, err := atom.ElementForType(tt.fftype)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestElementForType_Unknown(t *testing.T) {
	_, err := atom.ElementForType("ZZ")
	require.Error(t, err)
	require.True(t, errors.Is(err, atom.ErrUnknownType))
}

func TestNew_CanonicalizesCase(t *testing.T) {
	a, err := atom.New("c1", "c3", 0.1, 1, [3]float64{0, 0, 0}, "lig")
	require.NoError(t, err)
	require.Equal(t, "C1", a.Name)
	require.Equal(t, "C3", a.Type)
	require.Equal(t, atom.ElementC, a.Element)
	require.Equal(t, 0.1, a.OriginalCharge)
}

func TestNew_EmptyName(t *testing.T) {
	_, err := atom.New("", "c3", 0, 1, [3]float64{}, "")
	require.True(t, errors.Is(err, atom.ErrEmptyName))
}

func TestBind_IdempotentAndConflict(t *testing.T) {
	a, _ := atom.New("C1", "c3", 0, 1, [3]float64{}, "")
	b, _ := atom.New("N1", "n3", 0, 2, [3]float64{}, "")

	require.NoError(t, atom.Bind(a, b, atom.BondSingle))
	require.NoError(t, atom.Bind(a, b, atom.BondSingle)) // idempotent

	order, ok := a.BoundTo(b)
	require.True(t, ok)
	require.Equal(t, atom.BondSingle, order)

	order, ok = b.BoundTo(a)
	require.True(t, ok)
	require.Equal(t, atom.BondSingle, order)

	err := atom.Bind(a, b, atom.BondDouble)
	require.True(t, errors.Is(err, atom.ErrAlreadyBonded))
}

func TestChargeEqual(t *testing.T) {
	a, _ := atom.New("C1", "c3", 0.10, 1, [3]float64{}, "")
	b, _ := atom.New("C2", "c3", 0.15, 2, [3]float64{}, "")
	require.True(t, atom.ChargeEqual(a, b, 0.1))
	require.False(t, atom.ChargeEqual(a, b, 0.01))
}

func TestIsHydrogen(t *testing.T) {
	h, _ := atom.New("H1", "hc", 0, 1, [3]float64{}, "")
	c, _ := atom.New("C1", "c3", 0, 2, [3]float64{}, "")
	require.True(t, h.IsHydrogen())
	require.False(t, c.IsHydrogen())
}
