// SPDX-License-Identifier: MIT
// Package vectorwise: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in option
// constructors.

package vectorwise

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vectorwise: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("Op: %w", ErrX) at the detection site — callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil expression -> shape/index -> vector contract -> mutability.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (rows<=0 or cols<=0). Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("vectorwise: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column or flat index is outside
	// valid bounds. Public indexers (At/AtVec) MUST return this, not panic.
	ErrOutOfRange = errors.New("vectorwise: index out of range")

	// ErrDimensionMismatch indicates incompatible extents between operands,
	// e.g. a broadcast operand whose length differs from the sub-vector
	// length, or elementwise operands of different shapes.
	ErrDimensionMismatch = errors.New("vectorwise: dimension mismatch")

	// ErrNotVector signals that a vector operand was required (one extent
	// equal to 1) but a general matrix was supplied. Operands are never
	// silently reshaped.
	ErrNotVector = errors.New("vectorwise: operand is not a vector")

	// ErrBadAxis signals an Axis value other than ColAxis or RowAxis.
	ErrBadAxis = errors.New("vectorwise: unknown axis")

	// ErrBadFactor is returned when a replication factor is not positive.
	ErrBadFactor = errors.New("vectorwise: replication factor must be > 0")

	// ErrNilExpr indicates that a nil expression (source or operand) was
	// passed where a value is required.
	ErrNilExpr = errors.New("vectorwise: nil expression")

	// ErrNilReducer indicates that a nil Reducer was passed to the generic
	// reduction entry point.
	ErrNilReducer = errors.New("vectorwise: nil reducer")

	// ErrNilFold indicates that a nil binary function was passed to Fold.
	ErrNilFold = errors.New("vectorwise: nil fold function")

	// ErrImmutable is returned when broadcast assignment is requested on an
	// adaptor built over a read-only expression (AlongColumns/AlongRows
	// instead of the *Mut constructors).
	ErrImmutable = errors.New("vectorwise: expression is not mutable")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Dense ingestion and Set).
	ErrNaNInf = errors.New("vectorwise: NaN or Inf encountered")
)
