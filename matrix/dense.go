// SPDX-License-Identifier: MIT

// Package matrix: Dense is the row-major matrix shared by every kernel.
// Elements live in a flat slice for cache friendliness; element (i,j) sits at
// index i*c+j. A matrix with zero rows or zero columns is the empty sentinel
// and stores nothing.
package matrix

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("matrix")

// Dense is a row-major matrix of Scalar values.
// r is rows, c is columns, and data holds exactly r*c elements.
type Dense[T Scalar] struct {
	r, c int // number of rows and columns, fixed at construction
	data []T // flat backing storage, len(data) == r*c
}

// NewDense creates an r×c matrix holding a copy of values in row-major order.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Sentinel): a zero dimension yields an empty matrix; values are ignored.
// Stage 3 (Copy): len(values) must equal rows*cols.
// Complexity: O(r*c) time and memory.
func NewDense[T Scalar](rows, cols int, values []T) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, denseErrorf("NewDense", rows, cols, err)
	}
	if rows == 0 || cols == 0 {
		return &Dense[T]{r: rows, c: cols}, nil
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewDense(%d,%d): got %d values: %w", rows, cols, len(values), ErrDimensionMismatch)
	}

	data := make([]T, len(values))
	copy(data, values)

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Zeros creates an r×c matrix initialized to zeros.
// Same shape rules as NewDense. Complexity: O(r*c).
func Zeros[T Scalar](rows, cols int) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, denseErrorf("Zeros", rows, cols, err)
	}
	if rows == 0 || cols == 0 {
		return &Dense[T]{r: rows, c: cols}, nil
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Identity returns the n×n identity. Flat index i holds 1 when i%(n+1)==0.
// n == 0 yields the empty sentinel; n < 0 or n*n > MaxElements is ErrBadShape.
// Complexity: O(n²).
func Identity[T Scalar](n int) (*Dense[T], error) {
	if err := ValidateShape(n, n); err != nil {
		return nil, denseErrorf("Identity", n, n, err)
	}

	m := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	for i := range m.data {
		if i%(n+1) == 0 {
			m.data[i] = 1
		}
	}

	return m, nil
}

// MaxElements caps rows*cols for every constructed matrix.
const MaxElements = 1 << 28

// ValidateShape reports ErrBadShape for a negative dimension or for a
// rows*cols product above MaxElements. A zero dimension is always valid.
// The product is never formed before the bound is known to hold, so it
// cannot overflow.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	if rows > MaxElements/cols {
		return ErrBadShape
	}

	return nil
}

// Empty returns the 0×0 sentinel used to signal "no value".
func Empty[T Scalar]() *Dense[T] {
	return &Dense[T]{}
}

// mustZeros allocates a zero matrix for shapes already validated by the caller.
func mustZeros[T Scalar](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// Dims returns (rows, cols).
func (m *Dense[T]) Dims() (int, int) {
	return m.r, m.c
}

// IsEmpty reports whether m is the empty sentinel (no stored elements).
func (m *Dense[T]) IsEmpty() bool {
	return m.r == 0 || m.c == 0
}

// IsSquare reports rows == cols.
func (m *Dense[T]) IsSquare() bool {
	return m.r == m.c
}

// indexOf computes the flat index for (row, col) or reports ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		log.Warnf("%s(%d,%d) out of bounds for %dx%d matrix", method, row, col, m.r, m.c)

		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Out-of-range access is a reported no-op: a warning is logged and the zero
// value is returned together with ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Out-of-range access logs a warning, leaves m untouched and returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense[T]) Row(i int) []T {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// RawCopy returns a copy of the row-major backing data.
func (m *Dense[T]) RawCopy() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	var data []T
	if len(m.data) > 0 {
		data = make([]T, len(m.data))
		copy(data, m.data)
	}

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Equal reports exact equality of shape and every element.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer with the column-aligned grid of Format.
func (m *Dense[T]) String() string {
	return Format(m)
}
