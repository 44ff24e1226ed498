// SPDX-License-Identifier: MIT

package vectorwise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vectorwise"
)

// TestPartialRedux_Shape verifies the shape rule on both axes: collapsed
// axis extent 1, other extent unchanged.
func TestPartialRedux_Shape(t *testing.T) {
	t.Parallel()

	m := m23(t)

	p, err := vectorwise.NewPartialRedux(m, vectorwise.SumOp, vectorwise.ColAxis)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Rows())
	assert.Equal(t, 3, p.Cols())
	assert.Equal(t, 3, p.Len())

	p, err = vectorwise.NewPartialRedux(m, vectorwise.SumOp, vectorwise.RowAxis)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 1, p.Cols())
	assert.Equal(t, 2, p.Len())
}

// TestPartialRedux_ConstructionErrors verifies the construction-time
// validation sequence.
func TestPartialRedux_ConstructionErrors(t *testing.T) {
	t.Parallel()

	m := m23(t)

	_, err := vectorwise.NewPartialRedux(nil, vectorwise.SumOp, vectorwise.ColAxis)
	assert.ErrorIs(t, err, vectorwise.ErrNilExpr)

	_, err = vectorwise.NewPartialRedux(m, nil, vectorwise.ColAxis)
	assert.ErrorIs(t, err, vectorwise.ErrNilReducer)

	_, err = vectorwise.NewPartialRedux(m, vectorwise.SumOp, vectorwise.Axis(7))
	assert.ErrorIs(t, err, vectorwise.ErrBadAxis)
}

// TestPartialRedux_CoefficientAccess verifies (row,col) and flat-index
// access agree and match whole-sub-vector reductions.
func TestPartialRedux_CoefficientAccess(t *testing.T) {
	t.Parallel()

	m := m23(t)
	p, err := vectorwise.NewPartialRedux(m, vectorwise.SumOp, vectorwise.ColAxis)
	require.NoError(t, err)

	want := []float64{5, 7, 9}
	for k, exp := range want {
		assert.Equal(t, exp, mustAt(t, p, 0, k))
		flat, err := p.AtVec(k)
		require.NoError(t, err)
		assert.Equal(t, exp, flat)
	}

	// Out-of-range coordinates on the reduced shape.
	_, err = p.At(1, 0)
	assert.ErrorIs(t, err, vectorwise.ErrOutOfRange)
	_, err = p.At(0, 3)
	assert.ErrorIs(t, err, vectorwise.ErrOutOfRange)
	_, err = p.AtVec(-1)
	assert.ErrorIs(t, err, vectorwise.ErrOutOfRange)
	_, err = p.AtVec(3)
	assert.ErrorIs(t, err, vectorwise.ErrOutOfRange)
}

// TestPartialRedux_RecomputeContract verifies the no-caching cost contract:
// each underlying element is re-read on every access to a given
// sub-vector's reduction.
func TestPartialRedux_RecomputeContract(t *testing.T) {
	t.Parallel()

	src := &countingExpr{src: m23(t)}
	p, err := vectorwise.NewPartialRedux(src, vectorwise.SumOp, vectorwise.ColAxis)
	require.NoError(t, err)

	// One access to coefficient 0 traverses the 2-element column once.
	_, err = p.AtVec(0)
	require.NoError(t, err)
	assert.Equal(t, 2, src.reads)

	// A second access to the SAME coefficient re-reads both elements.
	_, err = p.AtVec(0)
	require.NoError(t, err)
	assert.Equal(t, 4, src.reads)

	// A full materialization reads every element exactly once more.
	src.reads = 0
	_, err = vectorwise.Materialize(p)
	require.NoError(t, err)
	assert.Equal(t, 6, src.reads)
}

// TestPartialRedux_CoeffReadCost verifies the composed cost estimate:
// traversal × source read cost + operator cost.
func TestPartialRedux_CoeffReadCost(t *testing.T) {
	t.Parallel()

	m := m23(t) // Dense read cost 1
	p, err := vectorwise.NewPartialRedux(m, vectorwise.SumOp, vectorwise.ColAxis)
	require.NoError(t, err)
	// n=2: 2 reads + (2-1) adds.
	assert.Equal(t, 3, p.CoeffReadCost())

	p, err = vectorwise.NewPartialRedux(m, vectorwise.HypotNormOp, vectorwise.RowAxis)
	require.NoError(t, err)
	// n=3: 3 reads + 2 hypots.
	assert.Equal(t, 23, p.CoeffReadCost())
}

// TestPartialRedux_OneByOne verifies the 1×1 edge case: the matrix reduces
// to itself under either axis for sum/min/max/prod.
func TestPartialRedux_OneByOne(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 1, 1, []float64{42})
	for _, axis := range []vectorwise.Axis{vectorwise.ColAxis, vectorwise.RowAxis} {
		for _, op := range []vectorwise.Reducer{
			vectorwise.SumOp, vectorwise.MinOp, vectorwise.MaxOp, vectorwise.ProdOp,
		} {
			p, err := vectorwise.NewPartialRedux(m, op, axis)
			require.NoError(t, err)
			assert.Equal(t, 1, p.Rows())
			assert.Equal(t, 1, p.Cols())
			assert.Equal(t, 42.0, mustAt(t, p, 0, 0), "axis=%s op=%s", axis, op)
		}
	}
}

// TestPartialRedux_KindTracking verifies the node reports its reducer's
// result kind.
func TestPartialRedux_KindTracking(t *testing.T) {
	t.Parallel()

	m := m23(t)
	p, err := vectorwise.NewPartialRedux(m, vectorwise.CountOp, vectorwise.ColAxis)
	require.NoError(t, err)
	assert.Equal(t, vectorwise.KindInteger, p.Kind())
	assert.Equal(t, vectorwise.ColAxis, p.Axis())
	assert.Equal(t, vectorwise.CountOp, p.Reducer())
}
