// SPDX-License-Identifier: MIT

// Package matrix: Doolittle LU factorization.
package matrix

import "math"

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: validate square, allocate L (with unit diagonal) and U.
//   - Stage 2: for each i, fill row i of U, guard the pivot, then fill column i of L.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when |U[i,i]| < tol. Without pivoting this also fires for
//     invertible matrices with a zero leading minor (e.g. [[0,1],[1,0]]).
//
// Complexity: Time O(n³), Space O(n²).
func LU(m *Float, opts ...Option) (*Float, *Float, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	tol := gatherOptions(opts...).tol
	n := m.r
	L := mustZeros[float64](n, n)
	U := mustZeros[float64](n, n)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var (
		i, j, k    int
		sum, pivot float64
		baseI      int
		baseJ      int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = m.data[baseI+j] - sum
		}

		pivot = U.data[baseI+i]
		if math.Abs(pivot) < tol {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = 0
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}
