// Package matrix_test cross-checks the engine against gonum.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toGonum copies a Float into a gonum Dense.
func toGonum(m *matrix.Float) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.RawCopy())
}

// TestDetMatchesGonum compares determinants on random invertible inputs.
func TestDetMatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		n := 2 + int(seed%5)
		a := RandomDominant(t, n, seed)

		got, err := matrix.Det(a)
		require.NoError(t, err)
		require.InEpsilon(t, mat.Det(toGonum(a)), got, 1e-9)
	}
}

// TestInverseMatchesGonum compares inverses elementwise.
func TestInverseMatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		a := RandomDominant(t, 4, seed*31)

		got, err := matrix.Inverse(a)
		require.NoError(t, err)

		var want mat.Dense
		require.NoError(t, want.Inverse(toGonum(a)))
		wantM, err := matrix.NewDense(4, 4, want.RawMatrix().Data)
		require.NoError(t, err)
		RequireClose(t, wantM, got, 1e-9)
	}
}

// TestMulMatchesGonum compares products of rectangular inputs.
func TestMulMatchesGonum(t *testing.T) {
	a := RandomFloat(t, 3, 4, 41)
	b := RandomFloat(t, 4, 2, 42)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toGonum(a), toGonum(b))
	wantM, err := matrix.NewDense(3, 2, want.RawMatrix().Data)
	require.NoError(t, err)
	RequireClose(t, wantM, got, 1e-12)
}
