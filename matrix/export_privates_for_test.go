// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private row operations and pivot search.
//
// Purpose:
//   - Expose UNEXPORTED row kernels to matrix_test ONLY.
//   - File name ends in _test.go, so it never reaches production builds.

// SwapRows_TestOnly forwards to the private swapRows kernel.
func SwapRows_TestOnly(m *Float, r1, r2 int) { m.swapRows(r1, r2) }

// ScaleRow_TestOnly forwards to the private scaleRow kernel.
func ScaleRow_TestOnly(m *Float, row int, f float64) { m.scaleRow(row, f) }

// AddScaledRow_TestOnly forwards to the private addScaledRow kernel.
func AddScaledRow_TestOnly(m *Float, dst, src int, f float64) { m.addScaledRow(dst, src, f) }

// FirstPivotRow_TestOnly forwards to the private pivot search.
func FirstPivotRow_TestOnly(m *Float, col, from int, tol float64) int {
	return firstPivotRow(m, col, from, tol)
}

// Panic message export to avoid "magic strings" in tests.
const PanicToleranceInvalid_TestOnly = panicToleranceInvalid
