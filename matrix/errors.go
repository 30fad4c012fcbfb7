// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("Op: %w", ErrX),
// callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid: a negative
	// dimension, or more than MaxElements elements.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return it after logging a warning; they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when elimination finds a column without a usable
	// pivot while computing an inverse or an LU factorization.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmpty indicates an operation that has no meaning on the empty sentinel.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrInvalidTolerance signals a tolerance that is NaN, ±Inf or not positive.
	ErrInvalidTolerance = errors.New("matrix: invalid tolerance")
)
