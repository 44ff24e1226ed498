// SPDX-License-Identifier: MIT

package vectorwise_test

import (
	"fmt"

	"github.com/katalvlaran/vectorwise"
)

// ExampleReduceAlong demonstrates the two reduction axes on one matrix:
// collapsing rows yields one value per column, collapsing columns yields
// one value per row.
func ExampleReduceAlong() {
	m, _ := vectorwise.NewDenseFrom(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	colSums, _ := vectorwise.ReduceAlong(m, vectorwise.ColAxis, vectorwise.SumOp)
	rowSums, _ := vectorwise.ReduceAlong(m, vectorwise.RowAxis, vectorwise.SumOp)

	fmt.Print(colSums)
	fmt.Print(rowSums)
	// Output:
	// [5, 7, 9]
	// [6]
	// [15]
}

// ExampleVectorwiseOp_Sum shows the lazy route: nothing is computed until
// a coefficient is read.
func ExampleVectorwiseOp_Sum() {
	m, _ := vectorwise.NewDenseFrom(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	w, _ := vectorwise.AlongColumns(m)
	sums := w.Sum() // lazy: no reduction has run yet

	v, _ := sums.AtVec(2) // reduces column 2 only
	fmt.Println(v)
	// Output:
	// 9
}

// ExampleVectorwiseOp_AddAssign broadcasts a vector onto every column.
func ExampleVectorwiseOp_AddAssign() {
	m, _ := vectorwise.NewDenseFrom(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	w, _ := vectorwise.AlongColumnsMut(m)
	v, _ := vectorwise.NewVector([]float64{10, 20})
	_, _ = w.AddAssign(v)

	fmt.Print(m)
	// Output:
	// [11, 12, 13]
	// [24, 25, 26]
}
