// SPDX-License-Identifier: MIT

// Package vectorwise: VectorwiseOp — the per-axis adaptor.
//
// Purpose:
//   - Tag a matrix expression with an axis and expose, on that view:
//     reduction accessors (one per built-in reducer plus a generic entry),
//     structural operations (Reverse, Replicate) and broadcast
//     assignment/arithmetic against vector operands.
//
// Design:
//   - The adaptor is stateless beyond {expression, axis}: every method is
//     shape arithmetic over the fixed axis and returns a new expression
//     node; one code path serves all extents.
//   - Mutability is explicit: AlongColumns/AlongRows build read-only
//     adaptors; AlongColumnsMut/AlongRowsMut accept a MutableExpr and
//     additionally unlock Assign/AddAssign/SubAssign.
//   - Broadcast assignment validates the FULL operand shape before the
//     first write, so a failed call never leaves a partially updated
//     matrix. Sub-vectors are updated in ascending index order, each
//     element read from the operand freshly per sub-vector — observable
//     (and deterministic) if the operand has side-effecting access.

package vectorwise

import "fmt"

// VectorwiseOp is a thin immutable per-axis view over a matrix expression.
// It holds only a reference to the target and the fixed axis; it never owns
// storage and must not outlive the expression it wraps.
type VectorwiseOp struct {
	e    Expr
	m    MutableExpr // nil for read-only adaptors
	axis Axis
}

// AlongColumns returns a read-only column-axis adaptor: sub-vectors are
// columns, reductions collapse rows to a 1×cols result.
// Errors: ErrNilExpr. Complexity: O(1).
func AlongColumns(e Expr) (*VectorwiseOp, error) { return along(e, nil, ColAxis) }

// AlongRows returns a read-only row-axis adaptor: sub-vectors are rows,
// reductions collapse columns to a rows×1 result.
// Errors: ErrNilExpr. Complexity: O(1).
func AlongRows(e Expr) (*VectorwiseOp, error) { return along(e, nil, RowAxis) }

// AlongColumnsMut is AlongColumns over a mutable target, additionally
// unlocking the broadcast assignment operations.
func AlongColumnsMut(m MutableExpr) (*VectorwiseOp, error) {
	if m == nil {
		return nil, fmt.Errorf("AlongColumnsMut: %w", ErrNilExpr)
	}

	return along(m, m, ColAxis)
}

// AlongRowsMut is AlongRows over a mutable target.
func AlongRowsMut(m MutableExpr) (*VectorwiseOp, error) {
	if m == nil {
		return nil, fmt.Errorf("AlongRowsMut: %w", ErrNilExpr)
	}

	return along(m, m, RowAxis)
}

// along is the single constructor behind the four factories.
func along(e Expr, m MutableExpr, axis Axis) (*VectorwiseOp, error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, fmt.Errorf("Along: %w", err)
	}

	return &VectorwiseOp{e: e, m: m, axis: axis}, nil
}

// Expression returns the wrapped expression.
func (w *VectorwiseOp) Expression() Expr { return w.e }

// Axis returns the fixed axis of the adaptor.
func (w *VectorwiseOp) Axis() Axis { return w.axis }

// subVecLen is the traversal length of one sub-vector; broadcast operands
// must match it exactly.
func (w *VectorwiseOp) subVecLen() int {
	return subVectorLen(w.axis, w.e.Rows(), w.e.Cols())
}

// subVecCount is the number of sub-vectors the assignment loops iterate.
func (w *VectorwiseOp) subVecCount() int {
	return subVectorCount(w.axis, w.e.Rows(), w.e.Cols())
}

// ---------- Reduction accessors ----------

// bind wraps the validated adaptor state into a reduction node. The named
// accessors cannot fail: the adaptor already validated expression and axis,
// and every built-in reducer is non-nil.
func (w *VectorwiseOp) bind(op Reducer) *PartialReduxExpr {
	return &PartialReduxExpr{src: w.e, op: op, axis: w.axis}
}

// Sum returns the lazy per-sub-vector sum.
func (w *VectorwiseOp) Sum() *PartialReduxExpr { return w.bind(SumOp) }

// Mean returns the lazy per-sub-vector arithmetic mean.
func (w *VectorwiseOp) Mean() *PartialReduxExpr { return w.bind(MeanOp) }

// Min returns the lazy per-sub-vector smallest coefficient.
func (w *VectorwiseOp) Min() *PartialReduxExpr { return w.bind(MinOp) }

// Max returns the lazy per-sub-vector largest coefficient.
func (w *VectorwiseOp) Max() *PartialReduxExpr { return w.bind(MaxOp) }

// SquaredNorm returns the lazy per-sub-vector sum of squares.
func (w *VectorwiseOp) SquaredNorm() *PartialReduxExpr { return w.bind(SquaredNormOp) }

// Norm returns the lazy per-sub-vector Euclidean norm.
func (w *VectorwiseOp) Norm() *PartialReduxExpr { return w.bind(NormOp) }

// StableNorm returns the lazy per-sub-vector norm via running rescaling,
// robust to over/underflow.
func (w *VectorwiseOp) StableNorm() *PartialReduxExpr { return w.bind(StableNormOp) }

// BlueNorm returns the lazy per-sub-vector norm via Blue's algorithm,
// robust to over/underflow.
func (w *VectorwiseOp) BlueNorm() *PartialReduxExpr { return w.bind(BlueNormOp) }

// HypotNorm returns the lazy per-sub-vector norm via sequential hypot
// accumulation.
func (w *VectorwiseOp) HypotNorm() *PartialReduxExpr { return w.bind(HypotNormOp) }

// All returns the lazy per-sub-vector conjunction (non-zero = true).
func (w *VectorwiseOp) All() *PartialReduxExpr { return w.bind(AllOp) }

// Any returns the lazy per-sub-vector disjunction (non-zero = true).
func (w *VectorwiseOp) Any() *PartialReduxExpr { return w.bind(AnyOp) }

// Count returns the lazy per-sub-vector count of non-zero coefficients;
// the result kind is Integer regardless of the input type.
func (w *VectorwiseOp) Count() *PartialReduxExpr { return w.bind(CountOp) }

// Prod returns the lazy per-sub-vector product.
func (w *VectorwiseOp) Prod() *PartialReduxExpr { return w.bind(ProdOp) }

// Reduce is the generic entry point binding an arbitrary Reducer.
// Errors: ErrNilReducer.
func (w *VectorwiseOp) Reduce(op Reducer) (*PartialReduxExpr, error) {
	if op == nil {
		return nil, fmt.Errorf("Reduce: %w", ErrNilReducer)
	}

	return w.bind(op), nil
}

// Fold binds a caller-supplied associative binary function as the
// reduction. Associativity is a documented contract, not checked.
// Options: WithFoldCost. Errors: ErrNilFold.
func (w *VectorwiseOp) Fold(fn BinaryFunc, opts ...Option) (*PartialReduxExpr, error) {
	op, err := NewFold(fn, opts...)
	if err != nil {
		return nil, fmt.Errorf("Fold: %w", err)
	}

	return w.bind(op), nil
}

// ---------- Structural accessors ----------

// Reverse returns a lazy expression with every sub-vector reversed along
// the adaptor's axis. Applying it twice yields the original coefficients.
func (w *VectorwiseOp) Reverse() *ReverseExpr {
	// Cannot fail: expression and axis were validated at construction.
	return &ReverseExpr{src: w.e, axis: w.axis}
}

// Replicate tiles the wrapped expression factor times along the adaptor's
// axis: (factor·rows)×cols under ColAxis, rows×(factor·cols) under RowAxis.
// Errors: ErrBadFactor. Complexity: O(1); nothing is materialized.
func (w *VectorwiseOp) Replicate(factor int) (*ReplicateExpr, error) {
	if factor < 1 {
		return nil, fmt.Errorf("Replicate: %w", ErrBadFactor)
	}
	if w.axis == ColAxis {
		return &ReplicateExpr{src: w.e, rowFactor: factor, colFactor: 1}, nil
	}

	return &ReplicateExpr{src: w.e, rowFactor: 1, colFactor: factor}, nil
}

// ---------- Broadcast assignment (mutating) ----------

// assignFunc merges the current coefficient with the operand coefficient.
type assignFunc func(cur, operand float64) float64

// broadcastAssign is the single implementation behind Assign/AddAssign/
// SubAssign. Full validation precedes the first write; sub-vectors are
// processed in ascending index order with the operand re-read per
// sub-vector.
// Complexity: O(rows*cols) reads+writes.
func (w *VectorwiseOp) broadcastAssign(ctx string, v Expr, merge assignFunc) (Expr, error) {
	if w.m == nil {
		return nil, fmt.Errorf("%s: %w", ctx, ErrImmutable)
	}
	// Validate shape compatibility completely before mutating anything.
	if err := validateOperand(v, w.subVecLen()); err != nil {
		return nil, fmt.Errorf("%s: %w", ctx, err)
	}
	vv := vecViewOf(v)
	var cur, ov float64
	var err error
	for k, count := 0, w.subVecCount(); k < count; k++ { // ascending sub-vector order
		for t, n := 0, w.subVecLen(); t < n; t++ {
			// Map (sub-vector k, element t) to matrix coordinates.
			i, j := t, k
			if w.axis == RowAxis {
				i, j = k, t
			}
			if ov, err = vv.At(t); err != nil {
				return nil, fmt.Errorf("%s: %w", ctx, err)
			}
			if cur, err = w.m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctx, err)
			}
			if err = w.m.Set(i, j, merge(cur, ov)); err != nil {
				return nil, fmt.Errorf("%s: %w", ctx, err)
			}
		}
	}

	return w.e, nil
}

// Assign copies the vector operand into every sub-vector and returns the
// mutated underlying expression (not the adaptor).
// Errors: ErrImmutable, ErrNilExpr, ErrNotVector, ErrDimensionMismatch —
// all raised before the first write.
func (w *VectorwiseOp) Assign(v Expr) (Expr, error) {
	return w.broadcastAssign("Assign", v, func(_, operand float64) float64 { return operand })
}

// AddAssign adds the vector operand to every sub-vector in place.
func (w *VectorwiseOp) AddAssign(v Expr) (Expr, error) {
	return w.broadcastAssign("AddAssign", v, func(cur, operand float64) float64 { return cur + operand })
}

// SubAssign subtracts the vector operand from every sub-vector in place.
func (w *VectorwiseOp) SubAssign(v Expr) (Expr, error) {
	return w.broadcastAssign("SubAssign", v, func(cur, operand float64) float64 { return cur - operand })
}

// ---------- Broadcast arithmetic (non-mutating, lazy) ----------

// extendedTo lazily replicates the vector operand to the wrapped
// expression's full shape along the adaptor's axis. No storage allocated;
// the operand is re-read on every coefficient access.
func (w *VectorwiseOp) extendedTo(v Expr) *extendedExpr {
	return &extendedExpr{
		vec:      vecViewOf(v),
		rows:     w.e.Rows(),
		cols:     w.e.Cols(),
		axis:     w.axis,
		readCost: v.CoeffReadCost(),
	}
}

// broadcastArith builds the lazy elementwise combination of the wrapped
// matrix and the extended operand.
func (w *VectorwiseOp) broadcastArith(ctx string, v Expr, op BinaryFunc, opCost int) (*CwiseBinaryExpr, error) {
	if err := validateOperand(v, w.subVecLen()); err != nil {
		return nil, fmt.Errorf("%s: %w", ctx, err)
	}

	// Shapes match by construction of extendedTo, so this cannot fail on
	// dimensions; reuse the general binary machinery unchanged.
	return NewCwiseBinary(w.e, w.extendedTo(v), op, opCost)
}

// Plus returns the lazy sum of every sub-vector and the vector operand.
// Errors: ErrNilExpr, ErrNotVector, ErrDimensionMismatch.
func (w *VectorwiseOp) Plus(v Expr) (*CwiseBinaryExpr, error) {
	return w.broadcastArith("Plus", v, func(a, b float64) float64 { return a + b }, float64Costs.AddCost)
}

// Minus returns the lazy difference between every sub-vector and the
// vector operand.
func (w *VectorwiseOp) Minus(v Expr) (*CwiseBinaryExpr, error) {
	return w.broadcastArith("Minus", v, func(a, b float64) float64 { return a - b }, float64Costs.AddCost)
}
