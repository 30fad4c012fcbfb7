// SPDX-License-Identifier: MIT

// Package matrix is the linear-algebra engine behind matcalc.
//
// The package provides:
//
//   - Dense[T], a row-major matrix over float64 or int64 elements with a
//     fixed shape and a 0-sized "empty" sentinel.
//   - Arithmetic kernels (Add, Sub, Mul, Scale, Transpose) that always return
//     freshly allocated results and never mutate their operands.
//   - Gauss-Jordan elimination (Reduce, RREF, Inverse, Rank), an
//     elimination-based determinant (Det) and a Doolittle LU factorization,
//     available for float64 matrices only.
//   - Column-aligned text rendering (Format).
//
// Numeric policy:
//
//	Floating-point kernels treat |x| < tolerance as zero. The tolerance
//	defaults to DefaultTolerance (0.002) and can be overridden per call with
//	WithTolerance. Pivots are chosen as the first row at or below the pivot
//	row whose magnitude reaches the tolerance, not the largest one.
//
// Errors:
//
//	Every failure is reported through the sentinels in errors.go, wrapped
//	with the operation name. Match them with errors.Is.
package matrix
