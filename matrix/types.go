// SPDX-License-Identifier: MIT

// Package matrix: element kinds.
// This file holds ONLY the numeric constraint and the two concrete matrix
// kinds used by callers. Kinds never convert into each other implicitly.
package matrix

// Scalar is the set of element kinds a Dense matrix may hold.
// float64 is the canonical, feature-complete kind; int64 supports
// construction, arithmetic and rendering only.
type Scalar interface {
	~int64 | ~float64
}

// Float is the floating-point matrix kind (elimination, inverse, det, LU).
type Float = Dense[float64]

// Int is the exact integer matrix kind (arithmetic and rendering only).
type Int = Dense[int64]
