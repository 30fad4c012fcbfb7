// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan elimination over float64 matrices.
//
// Purpose:
//   - Reduce a matrix to reduced row-echelon form (RREF).
//   - Invert a square matrix by mirroring every row operation onto a
//     companion identity.
//   - Report rank as the number of pivots found by the same walk.
//
// Numeric policy:
//   - A value with |v| < tol is zero. Pivot search takes the FIRST row at or
//     below the pivot row with |v| >= tol, not the largest one, so results
//     near the tolerance boundary are reproducible.
//   - A pivot already within tol of 1 is not rescaled.
//
// Determinism:
//   - Fixed walk order (pivot row/col ascending, elimination rows ascending).

package matrix

import "math"

// firstPivotRow returns the first row r in [from, rows) with |m(r,col)| >= tol,
// or -1 when the column has no usable pivot below from.
// Complexity: O(rows).
func firstPivotRow(m *Float, col, from int, tol float64) int {
	for r := from; r < m.r; r++ {
		if math.Abs(m.data[r*m.c+col]) >= tol {
			return r
		}
	}

	return -1
}

// gaussJordan runs the elimination walk on a working copy of m.
// Implementation:
//   - Stage 1: if invert, require a square input and seed inv = I.
//   - Stage 2: walk (pivotRow, pivotCol) from (0,0):
//     a. a near-zero pivot is replaced by the first usable row below (swap, mirrored);
//     b. no usable row: inverting fails with ErrSingular, otherwise the column is skipped;
//     c. scale the pivot row so the pivot becomes 1 (mirrored);
//     d. clear the pivot column in every other row (mirrored);
//     e. advance both indices.
//
// Returns the reduced copy, the companion (nil unless invert) and the pivot count.
// The caller's matrix is never touched; partial work is discarded on error.
// Complexity: Time O(r*c*min(r,c)), Space O(r*c).
func gaussJordan(m *Float, invert bool, tol float64) (res, inv *Float, rank int, err error) {
	if invert && !m.IsSquare() {
		return nil, nil, 0, ErrNonSquare
	}

	res = m.Clone()
	if invert {
		inv, _ = Identity[float64](m.r) // n >= 0 holds for any constructed matrix
	}

	pivotRow, pivotCol := 0, 0
	for pivotRow < res.r && pivotCol < res.c {
		// a. replace a near-zero pivot with the first usable row below
		if math.Abs(res.data[pivotRow*res.c+pivotCol]) < tol {
			swapWith := firstPivotRow(res, pivotCol, pivotRow, tol)
			if swapWith < 0 {
				// b. no usable pivot in this column
				if invert {
					return nil, nil, 0, ErrSingular
				}
				pivotCol++

				continue
			}
			res.swapRows(pivotRow, swapWith)
			if invert {
				inv.swapRows(pivotRow, swapWith)
			}
		}

		// c. normalize the pivot to 1
		pivot := res.data[pivotRow*res.c+pivotCol]
		if math.Abs(1-pivot) >= tol {
			res.scaleRow(pivotRow, 1/pivot)
			if invert {
				inv.scaleRow(pivotRow, 1/pivot)
			}
		}

		// d. eliminate the pivot column from every other row
		for r := 0; r < res.r; r++ {
			if r == pivotRow {
				continue
			}
			factor := -res.data[r*res.c+pivotCol]
			if factor == 0 {
				continue // nothing to clear
			}
			res.addScaledRow(r, pivotRow, factor)
			if invert {
				inv.addScaledRow(r, pivotRow, factor)
			}
		}

		// e. advance
		pivotRow++
		pivotCol++
		rank++
	}

	return res, inv, rank, nil
}

// Reduce is the Gauss-Jordan entry point shared by RREF and Inverse.
// With invert=false it returns the RREF of m; with invert=true it returns m⁻¹.
//
// Errors:
//   - ErrNilMatrix  (m == nil).
//   - ErrNonSquare  (invert on a non-square matrix; no work is attempted).
//   - ErrSingular   (invert and some column has no usable pivot).
//
// Complexity: Time O(n³) for n×n input, Space O(n²).
func Reduce(m *Float, invert bool, opts ...Option) (*Float, error) {
	tag := opReduce
	if invert {
		tag = opInverse
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	o := gatherOptions(opts...)
	res, inv, _, err := gaussJordan(m, invert, o.tol)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if invert {
		return inv, nil
	}

	return res, nil
}

// RREF returns the reduced row-echelon form of m. Equivalent to Reduce(m, false).
func RREF(m *Float, opts ...Option) (*Float, error) {
	return Reduce(m, false, opts...)
}

// Inverse returns m⁻¹ computed by Gauss-Jordan. Equivalent to Reduce(m, true).
func Inverse(m *Float, opts ...Option) (*Float, error) {
	return Reduce(m, true, opts...)
}

// Rank returns the number of pivots found while reducing m.
// Complexity: same as RREF.
func Rank(m *Float, opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	o := gatherOptions(opts...)
	_, _, rank, err := gaussJordan(m, false, o.tol)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return rank, nil
}
