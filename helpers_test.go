// SPDX-License-Identifier: MIT

// Shared fixtures for the vectorwise test suite: checked constructors,
// instrumented expressions for access-order and recompute-contract tests,
// and a wrapper that hides the concrete type behind the plain interface.

package vectorwise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vectorwise"
)

// mustDense builds a rows×cols Dense from row-major data, failing the test
// on any constructor error.
func mustDense(t *testing.T, rows, cols int, data []float64) *vectorwise.Dense {
	t.Helper()
	m, err := vectorwise.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)

	return m
}

// mustVector builds an n×1 column vector.
func mustVector(t *testing.T, data []float64) *vectorwise.Dense {
	t.Helper()
	v, err := vectorwise.NewVector(data)
	require.NoError(t, err)

	return v
}

// mustAt reads a coefficient, failing the test on error.
func mustAt(t *testing.T, e vectorwise.Expr, i, j int) float64 {
	t.Helper()
	v, err := e.At(i, j)
	require.NoError(t, err)

	return v
}

// m23 is the canonical 2×3 fixture used across scenario tests:
//
//	[1 2 3]
//	[4 5 6]
func m23(t *testing.T) *vectorwise.Dense {
	t.Helper()

	return mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
}

// countingExpr wraps an expression and counts coefficient reads; used to
// verify the no-caching cost contract of PartialReduxExpr.
type countingExpr struct {
	src   vectorwise.Expr
	reads int
}

func (c *countingExpr) Rows() int          { return c.src.Rows() }
func (c *countingExpr) Cols() int          { return c.src.Cols() }
func (c *countingExpr) CoeffReadCost() int { return c.src.CoeffReadCost() }

func (c *countingExpr) At(i, j int) (float64, error) {
	c.reads++

	return c.src.At(i, j)
}

// recordingDense wraps a Dense and records the coordinate order of writes;
// used to verify deterministic ascending sub-vector assignment order.
type recordingDense struct {
	*vectorwise.Dense
	writes [][2]int
}

func (r *recordingDense) Set(i, j int, v float64) error {
	r.writes = append(r.writes, [2]int{i, j})

	return r.Dense.Set(i, j, v)
}

// hide masks the concrete type so code under test sees only the interface.
type hide struct{ vectorwise.Expr }
