// SPDX-License-Identifier: MIT

package vectorwise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vectorwise"
)

const normTol = 1e-12 // relative tolerance for floating comparisons

// reduceRow materializes the reduction of e by op along axis and returns
// the coefficients as a flat slice.
func reduceRow(t *testing.T, e vectorwise.Expr, axis vectorwise.Axis, op vectorwise.Reducer) []float64 {
	t.Helper()
	d, err := vectorwise.ReduceAlong(e, axis, op)
	require.NoError(t, err)
	out := make([]float64, 0, d.Rows()*d.Cols())
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			out = append(out, mustAt(t, d, i, j))
		}
	}

	return out
}

// TestReducers_ColumnAxis_Scenario pins the canonical per-column results on
// the 2×3 fixture [[1,2,3],[4,5,6]].
func TestReducers_ColumnAxis_Scenario(t *testing.T) {
	t.Parallel()

	m := m23(t)
	cases := []struct {
		op   vectorwise.Reducer
		want []float64
	}{
		{vectorwise.SumOp, []float64{5, 7, 9}},
		{vectorwise.MeanOp, []float64{2.5, 3.5, 4.5}},
		{vectorwise.MinOp, []float64{1, 2, 3}},
		{vectorwise.MaxOp, []float64{4, 5, 6}},
		{vectorwise.SquaredNormOp, []float64{17, 29, 45}},
		{vectorwise.ProdOp, []float64{4, 10, 18}},
		{vectorwise.CountOp, []float64{2, 2, 2}},
		{vectorwise.AllOp, []float64{1, 1, 1}},
		{vectorwise.AnyOp, []float64{1, 1, 1}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, reduceRow(t, m, vectorwise.ColAxis, tc.op), "op=%s", tc.op)
	}
}

// TestReducers_RowAxis_Scenario pins the per-row results on the fixture.
func TestReducers_RowAxis_Scenario(t *testing.T) {
	t.Parallel()

	m := m23(t)
	assert.Equal(t, []float64{6, 15}, reduceRow(t, m, vectorwise.RowAxis, vectorwise.SumOp))
	assert.Equal(t, []float64{6, 120}, reduceRow(t, m, vectorwise.RowAxis, vectorwise.ProdOp))
	assert.Equal(t, []float64{1, 4}, reduceRow(t, m, vectorwise.RowAxis, vectorwise.MinOp))
	assert.Equal(t, []float64{3, 6}, reduceRow(t, m, vectorwise.RowAxis, vectorwise.MaxOp))
}

// TestReducers_Predicates covers mixed true/false columns: non-zero means
// true, and Count stays an exact whole number.
func TestReducers_Predicates(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 3, 2, []float64{
		0, 1,
		2, 1,
		0, 1,
	})
	assert.Equal(t, []float64{0, 1}, reduceRow(t, m, vectorwise.ColAxis, vectorwise.AllOp))
	assert.Equal(t, []float64{1, 1}, reduceRow(t, m, vectorwise.ColAxis, vectorwise.AnyOp))
	assert.Equal(t, []float64{1, 3}, reduceRow(t, m, vectorwise.ColAxis, vectorwise.CountOp))

	zeros, err := vectorwise.NewDense(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, reduceRow(t, zeros, vectorwise.ColAxis, vectorwise.AnyOp))
	assert.Equal(t, []float64{0, 0}, reduceRow(t, zeros, vectorwise.ColAxis, vectorwise.CountOp))
}

// TestReducers_Kinds verifies the result-kind tags tracked distinctly from
// the float64 input type.
func TestReducers_Kinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vectorwise.KindInteger, vectorwise.CountOp.Kind())
	assert.Equal(t, vectorwise.KindBoolean, vectorwise.AllOp.Kind())
	assert.Equal(t, vectorwise.KindBoolean, vectorwise.AnyOp.Kind())
	for _, op := range []vectorwise.Reducer{
		vectorwise.SumOp, vectorwise.MeanOp, vectorwise.MinOp, vectorwise.MaxOp,
		vectorwise.SquaredNormOp, vectorwise.NormOp, vectorwise.StableNormOp,
		vectorwise.BlueNormOp, vectorwise.HypotNormOp, vectorwise.ProdOp,
	} {
		assert.Equal(t, vectorwise.KindReal, op.Kind(), "op=%s", op)
	}
}

// TestReducers_CostFormulas pins each declared a·N + b cost formula against
// the float64 cost table (Read=1, Add=1, Mul=1, Hypot=10).
func TestReducers_CostFormulas(t *testing.T) {
	t.Parallel()

	cm := vectorwise.Costs(vectorwise.Float64Scalar)
	require.Equal(t, 1, cm.AddCost)
	require.Equal(t, 1, cm.MulCost)
	require.Equal(t, 10, cm.HypotCost)

	assert.Equal(t, 3, vectorwise.SumOp.Cost(4))
	assert.Equal(t, 4, vectorwise.MeanOp.Cost(4))
	assert.Equal(t, 3, vectorwise.MinOp.Cost(4))
	assert.Equal(t, 3, vectorwise.MaxOp.Cost(4))
	assert.Equal(t, 5, vectorwise.SquaredNormOp.Cost(3))  // 3 mul + 2 add
	assert.Equal(t, 10, vectorwise.NormOp.Cost(3))        // (3+5) mul + 2 add
	assert.Equal(t, 10, vectorwise.StableNormOp.Cost(3))
	assert.Equal(t, 10, vectorwise.BlueNormOp.Cost(3))
	assert.Equal(t, 20, vectorwise.HypotNormOp.Cost(3)) // 2 hypot
	assert.Equal(t, 2, vectorwise.ProdOp.Cost(3))
	assert.Equal(t, 3, vectorwise.CountOp.Cost(4))
}

// TestNorm_MatchesSquaredNorm verifies norm(k) == sqrt(squaredNorm(k)) for
// every coefficient under both axes.
func TestNorm_MatchesSquaredNorm(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 3, 3, []float64{2, -7, 0.5, 1, 3, -4, 9, 0, 6})
	for _, axis := range []vectorwise.Axis{vectorwise.ColAxis, vectorwise.RowAxis} {
		norms := reduceRow(t, m, axis, vectorwise.NormOp)
		sq := reduceRow(t, m, axis, vectorwise.SquaredNormOp)
		require.Len(t, norms, len(sq))
		for k := range norms {
			assert.InEpsilon(t, math.Sqrt(sq[k]), norms[k], normTol, "axis=%s k=%d", axis, k)
		}
	}
}

// TestRobustNorms_WellScaled verifies the stable/Blue/hypot variants agree
// with the naive norm on well-scaled input.
func TestRobustNorms_WellScaled(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 2, []float64{3, 8, 4, 6}) // columns [3,4], [8,6]
	want := []float64{5, 10}
	for _, op := range []vectorwise.Reducer{
		vectorwise.NormOp, vectorwise.StableNormOp,
		vectorwise.BlueNormOp, vectorwise.HypotNormOp,
	} {
		got := reduceRow(t, m, vectorwise.ColAxis, op)
		for k := range want {
			assert.InEpsilon(t, want[k], got[k], normTol, "op=%s k=%d", op, k)
		}
	}
}

// TestRobustNorms_ExtremeScales verifies the robust variants stay finite
// and accurate at ×1e-200 and ×1e200 where the naive sum of squares
// under- or overflows.
func TestRobustNorms_ExtremeScales(t *testing.T) {
	t.Parallel()

	for _, scale := range []float64{1e-200, 1e200} {
		m := mustDense(t, 2, 1, []float64{3 * scale, 4 * scale})
		want := 5 * scale

		// Naive norm degrades: squares vanish below ~1e-308 or blow past
		// ~1e308, so the result is 0 or +Inf — the failure the robust
		// variants exist to avoid.
		naive := reduceRow(t, m, vectorwise.ColAxis, vectorwise.NormOp)
		assert.False(t, naive[0] > 0 && !math.IsInf(naive[0], 1),
			"naive norm should degrade at scale %g, got %g", scale, naive[0])

		for _, op := range []vectorwise.Reducer{
			vectorwise.StableNormOp, vectorwise.BlueNormOp, vectorwise.HypotNormOp,
		} {
			got := reduceRow(t, m, vectorwise.ColAxis, op)
			require.False(t, math.IsInf(got[0], 0), "op=%s scale=%g", op, scale)
			require.False(t, math.IsNaN(got[0]), "op=%s scale=%g", op, scale)
			assert.InEpsilon(t, want, got[0], normTol, "op=%s scale=%g", op, scale)
		}
	}
}

// TestRobustNorms_MixedMagnitudes exercises all three Blue accumulator
// ranges in a single sub-vector.
func TestRobustNorms_MixedMagnitudes(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 3, 1, []float64{1e200, 1, 1e-200})
	for _, op := range []vectorwise.Reducer{
		vectorwise.StableNormOp, vectorwise.BlueNormOp, vectorwise.HypotNormOp,
	} {
		got := reduceRow(t, m, vectorwise.ColAxis, op)
		assert.InEpsilon(t, 1e200, got[0], normTol, "op=%s", op)
	}
}

// TestFold_MatchesBuiltin verifies the generic associative fold against
// the corresponding built-in reductions and its declared cost.
func TestFold_MatchesBuiltin(t *testing.T) {
	t.Parallel()

	m := m23(t)
	w, err := vectorwise.AlongColumns(m)
	require.NoError(t, err)

	foldMax, err := w.Fold(func(a, b float64) float64 { return math.Max(a, b) })
	require.NoError(t, err)
	got, err := vectorwise.Materialize(foldMax)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, []float64{
		mustAt(t, got, 0, 0), mustAt(t, got, 0, 1), mustAt(t, got, 0, 2),
	})

	// Declared per-application cost flows into the (n-1)·cost formula.
	op, err := vectorwise.NewFold(func(a, b float64) float64 { return a + b }, vectorwise.WithFoldCost(5))
	require.NoError(t, err)
	assert.Equal(t, 10, op.Cost(3))
	assert.Equal(t, vectorwise.DefaultFoldCost*2, foldMax.Reducer().Cost(3))

	_, err = vectorwise.NewFold(nil)
	assert.ErrorIs(t, err, vectorwise.ErrNilFold)
}
