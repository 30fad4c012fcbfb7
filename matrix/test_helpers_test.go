// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for engine tests.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// tol used for approximate assertions; tighter than the engine's pivot tolerance.
const tol = 1e-9

// MustFloat BUILDS an r×c float matrix from row-major values or fails the test.
func MustFloat(t *testing.T, r, c int, vals ...float64) *matrix.Float {
	t.Helper()
	m, err := matrix.NewDense(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustInt BUILDS an r×c integer matrix from row-major values or fails the test.
func MustInt(t *testing.T, r, c int, vals ...int64) *matrix.Int {
	t.Helper()
	m, err := matrix.NewDense(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Float {
	t.Helper()
	m, err := matrix.Identity[float64](n)
	require.NoError(t, err)

	return m
}

// RandomFloat BUILDS an r×c matrix with deterministic U(-5,5) values by seed.
func RandomFloat(t *testing.T, r, c int, seed int64) *matrix.Float {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*10 - 5
	}

	return MustFloat(t, r, c, vals...)
}

// RandomDominant BUILDS an n×n strictly diagonally dominant (hence invertible) matrix.
func RandomDominant(t *testing.T, n int, seed int64) *matrix.Float {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := 0; i < n; i++ {
		rowSum := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			vals[i*n+j] = v
			if v < 0 {
				v = -v
			}
			rowSum += v
		}
		vals[i*n+i] = rowSum + 1 + rng.Float64()
	}

	return MustFloat(t, n, n, vals...)
}

// RequireClose ASSERTS a ≈ b elementwise within eps.
func RequireClose(t *testing.T, want, got *matrix.Float, eps float64) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, eps)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant:\n%sgot:\n%s", eps, want, got)
}
