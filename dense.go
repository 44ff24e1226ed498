// SPDX-License-Identifier: MIT

// Package vectorwise - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Enforce the numeric policy (optional rejection of NaN/Inf) from a
//     single source of truth (options.go).
//   - Materialize is the only place in the package that allocates result
//     storage for a lazy expression.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     Materialize: O(r*c) coefficient evaluations of the source.

package vectorwise

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"          // method tag used in error wrappers
	ctxSet         = "Set"         // method tag used in error wrappers
	ctxFrom        = "NewDenseFrom"
	ctxMaterialize = "Materialize"
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// indices, e.g. "Dense.Set(3,0): vectorwise: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ MutableExpr  = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Stage 1 (Validate): rows>0 && cols>0; else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate zero-filled flat buffer.
// Stage 3 (Finalize): apply numeric policy options and return.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape before allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Resolve numeric policy once; stored on the matrix, not global.
	o := gatherOptions(opts...)
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFrom creates an r×c matrix from row-major data (copied, never
// aliased). The numeric policy applies to every ingested value.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (len(data) != r*c),
// ErrNaNInf under the default policy.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	// Exact-length contract: no implicit truncation or padding.
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrDimensionMismatch)
	}
	// Validate ingestion under the numeric policy before copying anything.
	if m.validateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// NewVector creates an n×1 column vector from data (copied).
// Thin alias of NewDenseFrom with an intention-revealing name; the usual
// shape for broadcast operands.
func NewVector(data []float64, opts ...Option) (*Dense, error) {
	return NewDenseFrom(len(data), 1, data, opts...)
}

// NewRowVector creates a 1×n row vector from data (copied).
func NewRowVector(data []float64, opts ...Option) (*Dense, error) {
	return NewDenseFrom(1, len(data), data, opts...)
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// CoeffReadCost of stored data is one plain read.
func (m *Dense) CoeffReadCost() int { return float64Costs.ReadCost }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Kept unexported so panics cannot reach the public surface.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange wrapped with method context.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col), honoring the numeric policy.
// Errors: ErrOutOfRange, ErrNaNInf — always before any write.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix, including its numeric policy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, validateNaNInf: m.validateNaNInf}
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Materialize forces a lazy expression into fresh Dense storage — the one
// place result storage is allocated. Deterministic i→j traversal; each
// coefficient of e is evaluated exactly once.
//
// The result carries the default numeric policy EXCEPT that non-finite
// values produced by the expression itself (e.g. an overflowing naive
// squared norm) are stored as-is: rejecting them here would turn a
// documented IEEE propagation into a construction error.
// Complexity: O(r*c) coefficient evaluations.
func Materialize(e Expr) (*Dense, error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMaterialize, err)
	}
	r, c := e.Rows(), e.Cols()
	out, err := NewDense(r, c, WithValidateNaNInf(false))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMaterialize, err)
	}
	var v float64
	for i := 0; i < r; i++ { // deterministic row order
		base := i * c
		for j := 0; j < c; j++ { // deterministic column order
			if v, err = e.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxMaterialize, err)
			}
			out.data[base+j] = v
		}
	}

	return out, nil
}
