// SPDX-License-Identifier: MIT
// Package: vectorwise
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep expression constructors minimal by delegating nil/shape/vector
//    checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with their own context tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape),
//    matching the documented error priority in errors.go.

package vectorwise

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the expression reference is non-nil.
// Returns ErrNilExpr if e == nil. Complexity: O(1).
func ValidateNotNil(e Expr) error {
	if e == nil {
		return validatorErrorf("ValidateNotNil", ErrNilExpr)
	}

	return nil
}

// ValidateAxis ensures a is one of the two named axis values.
// Returns ErrBadAxis otherwise. Complexity: O(1).
func ValidateAxis(a Axis) error {
	if !a.valid() {
		return validatorErrorf("ValidateAxis", ErrBadAxis)
	}

	return nil
}

// ValidateVector ensures e is vector-shaped: exactly one extent equals 1.
// Assumes e is non-nil (caller runs ValidateNotNil first).
// Returns ErrNotVector otherwise; violations are detected at construction,
// never silently reshaped. Complexity: O(1).
func ValidateVector(e Expr) error {
	if e.Rows() != 1 && e.Cols() != 1 {
		return validatorErrorf("ValidateVector", ErrNotVector)
	}

	return nil
}

// ValidateSameShape ensures expressions a and b have equal dimensions.
// Assumes both are non-nil. Returns ErrDimensionMismatch on violation.
// Complexity: O(1).
func ValidateSameShape(a, b Expr) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateOperand is the composite check run by every broadcast entry point
// BEFORE any mutation or lazy-node construction: the operand must be
// present, vector-shaped and exactly n elements long.
// Sequence: NotNil → Vector → Length. Complexity: O(1).
func validateOperand(v Expr, n int) error {
	if err := ValidateNotNil(v); err != nil {
		return err
	}
	if err := ValidateVector(v); err != nil {
		return err
	}
	if v.Rows()*v.Cols() != n {
		return validatorErrorf("validateOperand", ErrDimensionMismatch)
	}

	return nil
}
