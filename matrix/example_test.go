package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// ExampleInverse inverts a 2×2 matrix and renders it.
func ExampleInverse() {
	a, _ := matrix.NewDense(2, 2, []float64{1, 2, 3, 4})
	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)
	// Output:
	// [ -2    1]
	// [1.5 -0.5]
}

// ExampleDet computes a determinant with a row swap.
func ExampleDet() {
	a, _ := matrix.NewDense(3, 3, []float64{0, 1, 2, 1, 0, 3, 4, -3, 8})
	d, _ := matrix.Det(a)
	fmt.Println(matrix.FormatFloat(d))
	// Output:
	// -2
}

// ExampleReduce shows the singular-matrix failure of an inversion.
func ExampleReduce() {
	a, _ := matrix.NewDense(2, 2, []float64{1, 2, 2, 4})
	_, err := matrix.Reduce(a, true)
	fmt.Println(err)
	// Output:
	// Inverse: matrix: singular matrix
}
