// SPDX-License-Identifier: MIT

// Package matrix: elementary row operations.
// These mutate the receiver in place and are only ever applied to working
// copies owned by an elimination kernel. An out-of-range row is a reported
// no-op: a warning is logged and nothing changes.
package matrix

// rowInRange reports whether row indexes an existing row, logging otherwise.
func (m *Dense[T]) rowInRange(op string, rows ...int) bool {
	for _, r := range rows {
		if r < 0 || r >= m.r {
			log.Warnf("%s: row %d out of bounds for %dx%d matrix", op, r, m.r, m.c)

			return false
		}
	}

	return true
}

// swapRows exchanges rows r1 and r2 elementwise.
// Complexity: O(c).
func (m *Dense[T]) swapRows(r1, r2 int) {
	if !m.rowInRange("swapRows", r1, r2) || r1 == r2 {
		return
	}
	a, b := r1*m.c, r2*m.c
	for k := 0; k < m.c; k++ {
		m.data[a+k], m.data[b+k] = m.data[b+k], m.data[a+k]
	}
}

// scaleRow multiplies every element of row by factor.
// Complexity: O(c).
func (m *Dense[T]) scaleRow(row int, factor T) {
	if !m.rowInRange("scaleRow", row) {
		return
	}
	base := row * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k] *= factor
	}
}

// addScaledRow performs dst[k] += factor * src[k] for every column k.
// Complexity: O(c).
func (m *Dense[T]) addScaledRow(dst, src int, factor T) {
	if !m.rowInRange("addScaledRow", dst, src) {
		return
	}
	d, s := dst*m.c, src*m.c
	for k := 0; k < m.c; k++ {
		m.data[d+k] += factor * m.data[s+k]
	}
}
