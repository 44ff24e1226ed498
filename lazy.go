// SPDX-License-Identifier: MIT

// Package vectorwise: lazy structural and elementwise expression nodes.
//
// Purpose:
//   - ReverseExpr flips each sub-vector along a fixed axis.
//   - ReplicateExpr tiles its source a fixed number of times per dimension.
//   - CwiseBinaryExpr is the general elementwise binary machinery; the
//     broadcast arithmetic of VectorwiseOp is built on it.
//   - extendedExpr lazily replicates a vector operand to a full matrix
//     shape along an axis (the "extended broadcast" operand), so a
//     vector-against-matrix operation needs no temporary storage.
//
// Nesting policy (stated once, applies to every node in this file):
// children are held as interface references — cheap to copy, never owning
// storage. A node must not outlive the storage its leaves reference; this
// is a caller-enforced lifetime discipline, not runtime-checked.

package vectorwise

import "fmt"

// ---------- ReverseExpr ----------

// ReverseExpr presents its source with every sub-vector along axis
// reversed: columns flipped top-to-bottom under ColAxis, rows flipped
// left-to-right under RowAxis. Shape is unchanged.
type ReverseExpr struct {
	src  Expr
	axis Axis
}

var _ Expr = (*ReverseExpr)(nil)

// NewReverse builds a lazy reversal of src along axis.
// Errors: ErrNilExpr, ErrBadAxis. Complexity: O(1).
func NewReverse(src Expr, axis Axis) (*ReverseExpr, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("NewReverse: %w", err)
	}
	if err := ValidateAxis(axis); err != nil {
		return nil, fmt.Errorf("NewReverse: %w", err)
	}

	return &ReverseExpr{src: src, axis: axis}, nil
}

// Rows returns the source row count. Complexity: O(1).
func (r *ReverseExpr) Rows() int { return r.src.Rows() }

// Cols returns the source column count. Complexity: O(1).
func (r *ReverseExpr) Cols() int { return r.src.Cols() }

// CoeffReadCost equals the source's: reversal is index arithmetic only.
func (r *ReverseExpr) CoeffReadCost() int { return r.src.CoeffReadCost() }

// At evaluates the reversed coefficient: (rows-1-i, j) under ColAxis,
// (i, cols-1-j) under RowAxis. Bounds errors come from the source.
func (r *ReverseExpr) At(i, j int) (float64, error) {
	if i < 0 || i >= r.src.Rows() || j < 0 || j >= r.src.Cols() {
		return 0, fmt.Errorf("ReverseExpr.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if r.axis == ColAxis {
		return r.src.At(r.src.Rows()-1-i, j)
	}

	return r.src.At(i, r.src.Cols()-1-j)
}

// ---------- ReplicateExpr ----------

// ReplicateExpr tiles its source rowFactor times vertically and colFactor
// times horizontally; coefficient (i,j) maps to the source via modular
// index arithmetic, so no tile is ever materialized.
type ReplicateExpr struct {
	src                  Expr
	rowFactor, colFactor int
}

var _ Expr = (*ReplicateExpr)(nil)

// NewReplicate builds a lazy tiling of src.
// Errors: ErrNilExpr, ErrBadFactor (either factor < 1). Complexity: O(1).
func NewReplicate(src Expr, rowFactor, colFactor int) (*ReplicateExpr, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("NewReplicate: %w", err)
	}
	if rowFactor < 1 || colFactor < 1 {
		return nil, fmt.Errorf("NewReplicate: %w", ErrBadFactor)
	}

	return &ReplicateExpr{src: src, rowFactor: rowFactor, colFactor: colFactor}, nil
}

// Rows returns src.Rows() * rowFactor. Complexity: O(1).
func (r *ReplicateExpr) Rows() int { return r.src.Rows() * r.rowFactor }

// Cols returns src.Cols() * colFactor. Complexity: O(1).
func (r *ReplicateExpr) Cols() int { return r.src.Cols() * r.colFactor }

// CoeffReadCost equals the source's: tiling is index arithmetic only.
func (r *ReplicateExpr) CoeffReadCost() int { return r.src.CoeffReadCost() }

// At evaluates coefficient (i%srcRows, j%srcCols) of the source.
func (r *ReplicateExpr) At(i, j int) (float64, error) {
	if i < 0 || i >= r.Rows() || j < 0 || j >= r.Cols() {
		return 0, fmt.Errorf("ReplicateExpr.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return r.src.At(i%r.src.Rows(), j%r.src.Cols())
}

// ---------- CwiseBinaryExpr ----------

// BinaryFunc combines two scalars; used by CwiseBinaryExpr and Fold.
// A fold's BinaryFunc must additionally be associative (caller contract,
// unchecked).
type BinaryFunc func(a, b float64) float64

// CwiseBinaryExpr applies op to matching coefficients of two equally-shaped
// expressions. This is the general elementwise binary machinery; broadcast
// arithmetic composes it with extendedExpr.
type CwiseBinaryExpr struct {
	lhs, rhs Expr
	op       BinaryFunc
	opCost   int // per-coefficient cost of op, in cost-table units
}

var _ Expr = (*CwiseBinaryExpr)(nil)

// NewCwiseBinary builds a lazy elementwise combination of lhs and rhs.
// Errors: ErrNilExpr (either side or nil op — the op is the expression's
// whole meaning), ErrDimensionMismatch.
// Complexity: O(1).
func NewCwiseBinary(lhs, rhs Expr, op BinaryFunc, opCost int) (*CwiseBinaryExpr, error) {
	if err := ValidateNotNil(lhs); err != nil {
		return nil, fmt.Errorf("NewCwiseBinary: %w", err)
	}
	if err := ValidateNotNil(rhs); err != nil {
		return nil, fmt.Errorf("NewCwiseBinary: %w", err)
	}
	if op == nil {
		return nil, fmt.Errorf("NewCwiseBinary: %w", ErrNilExpr)
	}
	if err := ValidateSameShape(lhs, rhs); err != nil {
		return nil, fmt.Errorf("NewCwiseBinary: %w", err)
	}

	return &CwiseBinaryExpr{lhs: lhs, rhs: rhs, op: op, opCost: opCost}, nil
}

// Rows returns the common row count. Complexity: O(1).
func (b *CwiseBinaryExpr) Rows() int { return b.lhs.Rows() }

// Cols returns the common column count. Complexity: O(1).
func (b *CwiseBinaryExpr) Cols() int { return b.lhs.Cols() }

// CoeffReadCost sums both children plus one op application.
func (b *CwiseBinaryExpr) CoeffReadCost() int {
	return b.lhs.CoeffReadCost() + b.rhs.CoeffReadCost() + b.opCost
}

// At evaluates op(lhs[i,j], rhs[i,j]); left side first, deterministically.
func (b *CwiseBinaryExpr) At(i, j int) (float64, error) {
	l, err := b.lhs.At(i, j)
	if err != nil {
		return 0, err
	}
	r, err := b.rhs.At(i, j)
	if err != nil {
		return 0, err
	}

	return b.op(l, r), nil
}

// ---------- extendedExpr (broadcast operand) ----------

// extendedExpr lazily replicates a vector operand to a rows×cols shape:
// under ColAxis every column equals the operand (coefficient (i,j) reads
// operand element i), under RowAxis every row does. It is the operand-side
// half of broadcast arithmetic; the operand is re-read on every access,
// never copied.
type extendedExpr struct {
	vec        VecView
	rows, cols int
	axis       Axis
	readCost   int // CoeffReadCost of the wrapped operand expression
}

var _ Expr = (*extendedExpr)(nil)

// Rows returns the extended row count.
func (e *extendedExpr) Rows() int { return e.rows }

// Cols returns the extended column count.
func (e *extendedExpr) Cols() int { return e.cols }

// CoeffReadCost equals the operand's: extension is index arithmetic only.
func (e *extendedExpr) CoeffReadCost() int { return e.readCost }

// At reads operand element i (ColAxis) or j (RowAxis).
func (e *extendedExpr) At(i, j int) (float64, error) {
	if i < 0 || i >= e.rows || j < 0 || j >= e.cols {
		return 0, fmt.Errorf("extendedExpr.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if e.axis == ColAxis {
		return e.vec.At(i)
	}

	return e.vec.At(j)
}
