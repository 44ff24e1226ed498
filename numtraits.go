// SPDX-License-Identifier: MIT

// Package vectorwise: numeric cost traits — the scalar-type-keyed table of
// per-operation cost constants consumed by the reducers' Cost formulas and
// by Expr.CoeffReadCost. The table is a collaborator-facing single source
// of truth: reducers consume it, they never define costs inline.

package vectorwise

// ScalarKind keys the cost trait table. The package computes in float64,
// but cost formulas are declared per scalar kind so an evaluator comparing
// candidate kernels can price them for other element types.
type ScalarKind int

const (
	// Float64Scalar is the element type of Dense and all reducers.
	Float64Scalar ScalarKind = iota

	// Float32Scalar prices single-precision kernels.
	Float32Scalar

	// IntScalar prices integer kernels (counting, index arithmetic).
	IntScalar
)

// CostModel holds the per-scalar cost constants, in abstract units where
// one float64 add costs 1. HypotCost prices one hypot(a,b) evaluation,
// used only by the hypot-accumulated norm.
type CostModel struct {
	ReadCost  int // cost of reading one stored coefficient
	AddCost   int // cost of one scalar addition (also comparisons)
	MulCost   int // cost of one scalar multiplication
	HypotCost int // cost of one hypot(a,b) evaluation
}

// costTable is the single source of truth for cost constants.
// Hypot is priced as roughly one division, one sqrt and a handful of
// multiply/adds folded into a single constant.
var costTable = map[ScalarKind]CostModel{
	Float64Scalar: {ReadCost: 1, AddCost: 1, MulCost: 1, HypotCost: 10},
	Float32Scalar: {ReadCost: 1, AddCost: 1, MulCost: 1, HypotCost: 10},
	IntScalar:     {ReadCost: 1, AddCost: 1, MulCost: 1, HypotCost: 10},
}

// Costs returns the cost model for the given scalar kind. Unknown kinds
// fall back to the float64 model so cost formulas stay total.
// Complexity: O(1).
func Costs(k ScalarKind) CostModel {
	if cm, ok := costTable[k]; ok {
		return cm
	}

	return costTable[Float64Scalar]
}

// float64Costs is the row every built-in reducer consults; kept as a
// package variable to avoid a map lookup in cost hot paths.
var float64Costs = costTable[Float64Scalar]
