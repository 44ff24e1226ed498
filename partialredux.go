// SPDX-License-Identifier: MIT

// Package vectorwise: PartialReduxExpr — the lazy partial-reduction node.
//
// Purpose:
//   - Bind a source expression, a Reducer and an Axis into a read-only
//     expression whose every coefficient triggers one fresh reduction over
//     the corresponding row or column.
//   - Expose the composed cost estimate so the surrounding evaluator can
//     price the node statically.
//
// Cost contract (deliberate, relied upon by callers):
//   - No caching. Every At re-reads all n underlying elements of the
//     matching sub-vector: O(n) per access, O(n²) for a full pass unless
//     the consumer calls Materialize once.
//
// Nesting policy: the source is held as an interface reference (see
// lazy.go); the node is transient — its lifetime is bound to the caller's
// expression tree and it must not outlive by-reference storage.

package vectorwise

import "fmt"

// PartialReduxExpr is an immutable expression of a partially reduced
// matrix: 1×cols under ColAxis (one value per column), rows×1 under
// RowAxis (one value per row). The input scalar type stays float64; the
// output scalar kind is whatever the bound reducer declares.
type PartialReduxExpr struct {
	src  Expr
	op   Reducer
	axis Axis
}

var _ Expr = (*PartialReduxExpr)(nil)

// NewPartialRedux binds src, op and axis into a lazy reduction node.
// No shape errors are possible beyond construction: the reducer only ever
// sees correctly shaped sub-vectors extracted by the node itself.
// Errors: ErrNilExpr, ErrNilReducer, ErrBadAxis. Complexity: O(1).
func NewPartialRedux(src Expr, op Reducer, axis Axis) (*PartialReduxExpr, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("NewPartialRedux: %w", err)
	}
	if op == nil {
		return nil, fmt.Errorf("NewPartialRedux: %w", ErrNilReducer)
	}
	if err := ValidateAxis(axis); err != nil {
		return nil, fmt.Errorf("NewPartialRedux: %w", err)
	}

	return &PartialReduxExpr{src: src, op: op, axis: axis}, nil
}

// Rows returns 1 under ColAxis, the source row count under RowAxis.
// Complexity: O(1).
func (p *PartialReduxExpr) Rows() int {
	r, _ := reducedShape(p.axis, p.src.Rows(), p.src.Cols())

	return r
}

// Cols returns the source column count under ColAxis, 1 under RowAxis.
// Complexity: O(1).
func (p *PartialReduxExpr) Cols() int {
	_, c := reducedShape(p.axis, p.src.Rows(), p.src.Cols())

	return c
}

// Len returns the number of coefficients (the result is always a vector).
// Complexity: O(1).
func (p *PartialReduxExpr) Len() int {
	return subVectorCount(p.axis, p.src.Rows(), p.src.Cols())
}

// Axis returns the bound axis.
func (p *PartialReduxExpr) Axis() Axis { return p.axis }

// Reducer returns the bound reduction operator.
func (p *PartialReduxExpr) Reducer() Reducer { return p.op }

// Kind reports the result scalar kind of the bound reducer (e.g. Integer
// for Count), tracked distinctly from the float64 input type.
func (p *PartialReduxExpr) Kind() ResultKind { return p.op.Kind() }

// CoeffReadCost composes traversal and operator costs: reading one result
// coefficient reads all n sub-vector elements and runs the reducer once.
func (p *PartialReduxExpr) CoeffReadCost() int {
	n := subVectorLen(p.axis, p.src.Rows(), p.src.Cols())

	return n*p.src.CoeffReadCost() + p.op.Cost(n)
}

// At evaluates the reduction of column j (ColAxis, where i must be 0) or
// row i (RowAxis, where j must be 0). Every call recomputes from scratch.
// Errors: ErrOutOfRange; anything the source surfaces during traversal.
// Complexity: O(n) source reads.
func (p *PartialReduxExpr) At(i, j int) (float64, error) {
	r, c := reducedShape(p.axis, p.src.Rows(), p.src.Cols())
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("PartialReduxExpr.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	k := j
	if p.axis == RowAxis {
		k = i
	}

	return p.op.Reduce(subVector(p.src, p.axis, k))
}

// AtVec evaluates coefficient k by flat index, 0 <= k < Len().
// Complexity: O(n) source reads.
func (p *PartialReduxExpr) AtVec(k int) (float64, error) {
	if k < 0 || k >= p.Len() {
		return 0, fmt.Errorf("PartialReduxExpr.AtVec(%d): %w", k, ErrOutOfRange)
	}

	return p.op.Reduce(subVector(p.src, p.axis, k))
}
