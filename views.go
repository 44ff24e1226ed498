// SPDX-License-Identifier: MIT

// Package vectorwise: zero-copy sub-vector views. A view holds a reference
// to its source expression and an index; every At call re-reads the
// underlying element, which is exactly the cost contract PartialReduxExpr
// documents. Views constructed by subVector are always in-bounds by
// construction, so the only errors they surface come from the source.

package vectorwise

// colView exposes column j of an expression as a VecView of length Rows().
type colView struct {
	e Expr
	j int
}

// Len returns the column length. Complexity: O(1).
func (v colView) Len() int { return v.e.Rows() }

// At evaluates element k of the column, i.e. source coefficient (k, j).
func (v colView) At(k int) (float64, error) { return v.e.At(k, v.j) }

// rowView exposes row i of an expression as a VecView of length Cols().
type rowView struct {
	e Expr
	i int
}

// Len returns the row length. Complexity: O(1).
func (v rowView) Len() int { return v.e.Cols() }

// At evaluates element k of the row, i.e. source coefficient (i, k).
func (v rowView) At(k int) (float64, error) { return v.e.At(v.i, k) }

// subVector returns the k-th sub-vector of e along axis as a zero-copy
// view: column k under ColAxis, row k under RowAxis. The caller guarantees
// axis validity and 0 <= k < subVectorCount.
// Complexity: O(1) construction; O(1) per element read.
func subVector(e Expr, axis Axis, k int) VecView {
	if axis == ColAxis {
		return colView{e: e, j: k}
	}

	return rowView{e: e, i: k}
}

// vecViewOf adapts a vector-shaped expression (one extent = 1) as a linear
// VecView, regardless of row/column orientation. Assumes ValidateVector
// already passed.
// Complexity: O(1).
func vecViewOf(v Expr) VecView {
	if v.Cols() == 1 {
		return colView{e: v, j: 0}
	}

	return rowView{e: v, i: 0}
}
