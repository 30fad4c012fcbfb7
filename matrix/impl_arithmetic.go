// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels shared by both element kinds.
//
// Purpose:
//   - Elementwise addition/subtraction, matrix multiplication, scalar scaling
//     and transpose over any Dense[T].
//   - Strict fail-fast validation; every result is a fresh allocation and the
//     operands are never mutated.
//
// Notes:
//   - All kernels use the central validators and wrap failures with matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opReduce    = "Reduce"
	opInverse   = "Inverse"
	opRank      = "Rank"
	opDet       = "Det"
	opLU        = "LU"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 into a fresh result.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub[T Scalar](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := mustZeros[T](a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Add[T Scalar](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the elementwise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Sub[T Scalar](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate A.Cols == B.Rows.
//   - Stage 2: i→j→k triple loop; C[i,j] = Σ_k A[i,k]*B[k,j].
//
// Returns a new (A.Rows × B.Cols) matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadShape (result too large).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateShape(a.r, b.c); err != nil {
		return nil, matrixErrorf(opMul, err) // outer product past MaxElements
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := mustZeros[T](aRows, bCols)

	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < aCols; k++ {
				sum += a.data[i*aCols+k] * b.data[k*bCols+j]
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j] (copy-then-scale).
// Never fails for a non-nil matrix.
// Complexity: O(r*c).
func Scale[T Scalar](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Transpose returns a new (c × r) matrix with rows and columns swapped.
// Complexity: O(r*c).
func Transpose[T Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := mustZeros[T](cols, rows)
	var baseSrc int
	for i := 0; i < rows; i++ {
		baseSrc = i * cols
		for j := 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}
