// SPDX-License-Identifier: MIT

// Package matrix: determinant by forward elimination.
package matrix

import "math"

// Det returns the determinant of a square float64 matrix.
// Implementation:
//   - Stage 1: validate non-nil, square, non-empty.
//   - Stage 2: 1×1 and 2×2 are computed directly.
//   - Stage 3: otherwise forward-eliminate a working copy with the same
//     first-usable-row pivot search as Reduce. When no row reaches tol the
//     first exactly nonzero entry is used instead, so small pivots still
//     contribute. Each swap flips the sign; the determinant is sign * Π pivots.
//     Only an all-zero column gives 0.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEmpty.
// Complexity: Time O(n³), Space O(n²).
func Det(m *Float, opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if m.IsEmpty() {
		return 0, matrixErrorf(opDet, ErrEmpty)
	}

	n := m.r
	switch n {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	tol := gatherOptions(opts...).tol
	work := m.Clone()
	det := 1.0
	for col := 0; col < n; col++ {
		if math.Abs(work.data[col*n+col]) < tol {
			p := firstPivotRow(work, col, col, tol)
			if p < 0 {
				p = firstNonZeroRow(work, col, col)
			}
			if p < 0 {
				return 0, nil // column is exactly zero
			}
			if p != col {
				work.swapRows(col, p)
				det = -det
			}
		}

		pivot := work.data[col*n+col]
		det *= pivot
		for r := col + 1; r < n; r++ {
			f := work.data[r*n+col]
			if f != 0 {
				work.addScaledRow(r, col, -f/pivot)
			}
		}
	}

	return det, nil
}

// firstNonZeroRow returns the first row r in [from, rows) with m(r,col) != 0,
// or -1 when the rest of the column is exactly zero.
func firstNonZeroRow(m *Float, col, from int) int {
	for r := from; r < m.r; r++ {
		if m.data[r*m.c+col] != 0 {
			return r
		}
	}

	return -1
}
