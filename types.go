// SPDX-License-Identifier: MIT

// Package vectorwise: domain types shared by every file — the Axis
// selector, the expression interfaces, the sub-vector view contract and the
// result-kind tag. Errors live in errors.go, numeric cost constants in
// numtraits.go, options in options.go per the package conventions.

package vectorwise

// Axis selects which structural dimension collapses under a reduction and
// along which dimension sub-vectors extend. It is used uniformly wherever
// an axis parameter appears.
type Axis int

const (
	// ColAxis is the column-axis: sub-vectors are columns (length = rows),
	// reductions collapse the row dimension and produce a 1×cols result.
	ColAxis Axis = iota

	// RowAxis is the row-axis: sub-vectors are rows (length = cols),
	// reductions collapse the column dimension and produce a rows×1 result.
	RowAxis
)

// String implements fmt.Stringer for diagnostics and error messages.
func (a Axis) String() string {
	switch a {
	case ColAxis:
		return "column-axis"
	case RowAxis:
		return "row-axis"
	default:
		return "invalid-axis"
	}
}

// valid reports whether a is one of the two named axis values.
// Complexity: O(1).
func (a Axis) valid() bool { return a == ColAxis || a == RowAxis }

// Expr is a read-only matrix expression with coordinate-based element
// access. Implementations are immutable view objects: they hold references
// to their children (interface values), own no storage, and evaluate lazily
// on every At call.
//
// Lifetime discipline: an Expr must not outlive the storage it references.
// Concurrent mutation of underlying storage while an Expr over it is being
// read is undefined behavior — a caller obligation, not runtime-checked.
type Expr interface {
	// Rows returns the number of rows of the expression.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns of the expression.
	// Complexity: O(1).
	Cols() int

	// At evaluates the coefficient at (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Evaluation recurses into child expressions; nothing is cached.
	At(i, j int) (float64, error)

	// CoeffReadCost estimates the cost of evaluating one coefficient, in
	// units of the numeric cost constants (numtraits.go). Consumed by
	// evaluator fusion heuristics; never evaluated here.
	CoeffReadCost() int
}

// MutableExpr is an Expr whose coefficients can be written. Dense is the
// canonical implementation; broadcast assignment requires it.
type MutableExpr interface {
	Expr

	// Set assigns v at (i, j). Returns ErrOutOfRange on invalid indices
	// and ErrNaNInf when the numeric policy rejects non-finite values.
	Set(i, j int, v float64) error
}

// VecView is a zero-copy read-only view of a single sub-vector (one row or
// column of an expression, or a plain slice). Reducers consume it; every
// At call re-reads the underlying element.
type VecView interface {
	// Len returns the number of elements in the view.
	Len() int

	// At evaluates element k. Returns ErrOutOfRange for k outside [0,Len).
	At(k int) (float64, error)
}

// ResultKind tags the scalar type a Reducer produces. The input scalar type
// (float64 throughout) and the output kind are tracked distinctly: Count
// yields Integer regardless of the input, All/Any yield Boolean.
type ResultKind int

const (
	// KindReal marks reductions whose output type equals the input scalar
	// type (sum, norms, product, ...).
	KindReal ResultKind = iota

	// KindBoolean marks predicate reductions (All, Any); values are exactly
	// 0 or 1.
	KindBoolean

	// KindInteger marks counting reductions (Count); values are exact whole
	// numbers.
	KindInteger
)

// String implements fmt.Stringer.
func (k ResultKind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	default:
		return "invalid-kind"
	}
}

// reducedShape is the single shape-inference rule for partial reductions:
// the collapsed axis gets extent 1, the other axis keeps the source extent.
// One pure function serves every consumer, so static and dynamic extents
// cannot disagree.
// Complexity: O(1).
func reducedShape(axis Axis, rows, cols int) (int, int) {
	if axis == ColAxis {
		return 1, cols
	}

	return rows, 1
}

// subVectorLen returns the traversal length of one sub-vector along axis.
// Complexity: O(1).
func subVectorLen(axis Axis, rows, cols int) int {
	if axis == ColAxis {
		return rows
	}

	return cols
}

// subVectorCount returns how many sub-vectors the expression exposes along
// axis: column count when sub-vectors are columns, row count otherwise.
// Complexity: O(1).
func subVectorCount(axis Axis, rows, cols int) int {
	if axis == ColAxis {
		return cols
	}

	return rows
}
