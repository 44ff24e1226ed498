// SPDX-License-Identifier: MIT
// Package vectorwise — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for the common
//     "reduce and materialize" round trip.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     constructors and Materialize.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the kernels
//     they compose.

package vectorwise

import "fmt"

// ReduceAlong builds the partial reduction of e by op along axis and
// materializes it in one call: 1×cols under ColAxis, rows×1 under RowAxis.
// The lazy route (AlongColumns/AlongRows + accessor) remains available for
// callers composing larger expression trees.
// Errors: ErrNilExpr, ErrNilReducer, ErrBadAxis, plus anything the source
// surfaces during evaluation.
// Complexity: O(rows*cols) source reads.
func ReduceAlong(e Expr, axis Axis, op Reducer) (*Dense, error) {
	p, err := NewPartialRedux(e, op, axis)
	if err != nil {
		return nil, fmt.Errorf("ReduceAlong: %w", err)
	}

	return Materialize(p)
}

// ZerosLike returns a new zero Dense with the same shape as e.
// Handy for staging broadcast targets. Complexity: O(r*c).
func ZerosLike(e Expr) (*Dense, error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, fmt.Errorf("ZerosLike: %w", err)
	}

	return NewDense(e.Rows(), e.Cols())
}
