// SPDX-License-Identifier: MIT

// Package matrix: approximate comparison.
package matrix

import "math"

// AllClose reports whether |a[i,j] - b[i,j]| <= tol for every element.
// Returns (false, err) on nil operands, shape mismatch or an invalid tolerance.
// Complexity: Time O(r*c), Space O(1). Early exit on the first violation.
func AllClose(a, b *Float, tol float64) (bool, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range a.data {
		if math.Abs(a.data[idx]-b.data[idx]) > tol {
			return false, nil
		}
	}

	return true, nil
}
