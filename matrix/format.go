// SPDX-License-Identifier: MIT

// Package matrix: text rendering.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders m as a bracketed, column-aligned grid:
//
//	[ -2    1]
//	[1.5 -0.5]
//
// Each column is as wide as its longest element; elements are right-aligned
// and separated by one space; every row ends with a newline. The empty
// sentinel renders as "".
// Complexity: O(r*c).
func Format[T Scalar](m *Dense[T]) string {
	if m == nil || m.IsEmpty() {
		return ""
	}

	cells := make([]string, len(m.data))
	widths := make([]int, m.c)
	for idx, v := range m.data {
		cells[idx] = formatScalar(v)
		if col := idx % m.c; len(cells[idx]) > widths[col] {
			widths[col] = len(cells[idx])
		}
	}

	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			cell := cells[i*m.c+j]
			sb.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// formatScalar renders floats in shortest decimal form without exponent.
func formatScalar[T Scalar](v T) string {
	switch x := any(v).(type) {
	case float64:
		return FormatFloat(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(v)
	}
}

// FormatFloat renders a single float the way Format does (1, 1.5, -0.25).
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
