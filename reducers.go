// SPDX-License-Identifier: MIT

// Package vectorwise: the reduction operator set — a closed set of tagged
// variants implementing one capability: reduce a sub-vector to a scalar and
// declare a static cost formula a·N + b over the numeric cost constants
// (numtraits.go). Dispatch goes through the Reducer interface; each variant
// matches the corresponding whole-matrix reduction.
//
// Determinism & contracts:
//   - Every Reduce runs a fixed left-to-right loop; no randomness.
//   - Boolean semantics over float64: non-zero means true.
//   - A caller-supplied fold (Fold) MUST be associative — a documented
//     contract, not runtime-checked.
//   - Cost formulas are consumed by evaluator fusion heuristics and never
//     evaluated here.

package vectorwise

import (
	"fmt"
	"math"
)

// Reducer maps one sub-vector to a scalar and declares its cost formula.
// Implementations are stateless (or small-state for Fold) values; the same
// Reducer may be bound to any number of expressions.
type Reducer interface {
	// Reduce evaluates the reduction over v, re-reading every element.
	// Errors propagate from the underlying expression only: by
	// construction a reducer never sees a mis-shaped sub-vector.
	Reduce(v VecView) (float64, error)

	// Cost estimates the reduction's arithmetic cost for traversal length
	// n, excluding the cost of reading the n coefficients.
	Cost(n int) int

	// Kind reports the result scalar kind (Real, Boolean or Integer).
	Kind() ResultKind

	// String names the reduction for diagnostics.
	String() string
}

// The closed built-in set. Exported as package-level values so the generic
// Reduce entry point and the named VectorwiseOp accessors share one
// implementation per kind.
var (
	SumOp         Reducer = sumOp{}
	MeanOp        Reducer = meanOp{}
	MinOp         Reducer = minOp{}
	MaxOp         Reducer = maxOp{}
	SquaredNormOp Reducer = squaredNormOp{}
	NormOp        Reducer = normOp{}
	StableNormOp  Reducer = stableNormOp{}
	BlueNormOp    Reducer = blueNormOp{}
	HypotNormOp   Reducer = hypotNormOp{}
	AllOp         Reducer = allOp{}
	AnyOp         Reducer = anyOp{}
	CountOp       Reducer = countOp{}
	ProdOp        Reducer = prodOp{}
)

// ---------- sum / mean ----------

type sumOp struct{}

func (sumOp) Reduce(v VecView) (float64, error) {
	var acc, x float64
	var err error
	for k, n := 0, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		acc += x
	}

	return acc, nil
}

// Cost: (n-1) additions.
func (sumOp) Cost(n int) int   { return (n - 1) * float64Costs.AddCost }
func (sumOp) Kind() ResultKind { return KindReal }
func (sumOp) String() string   { return "sum" }

type meanOp struct{}

func (meanOp) Reduce(v VecView) (float64, error) {
	n := v.Len()
	if n == 0 {
		return 0, nil
	}
	s, err := SumOp.Reduce(v)
	if err != nil {
		return 0, err
	}

	return s / float64(n), nil
}

// Cost: (n-1) additions plus one multiply (the 1/n scaling).
func (meanOp) Cost(n int) int   { return (n-1)*float64Costs.AddCost + float64Costs.MulCost }
func (meanOp) Kind() ResultKind { return KindReal }
func (meanOp) String() string   { return "mean" }

// ---------- min / max ----------

type minOp struct{}

func (minOp) Reduce(v VecView) (float64, error) {
	best, err := v.At(0)
	if err != nil {
		return 0, err
	}
	var x float64
	for k, n := 1, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		if x < best {
			best = x
		}
	}

	return best, nil
}

// Cost: (n-1) comparisons, priced as additions.
func (minOp) Cost(n int) int   { return (n - 1) * float64Costs.AddCost }
func (minOp) Kind() ResultKind { return KindReal }
func (minOp) String() string   { return "min" }

type maxOp struct{}

func (maxOp) Reduce(v VecView) (float64, error) {
	best, err := v.At(0)
	if err != nil {
		return 0, err
	}
	var x float64
	for k, n := 1, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		if x > best {
			best = x
		}
	}

	return best, nil
}

func (maxOp) Cost(n int) int   { return (n - 1) * float64Costs.AddCost }
func (maxOp) Kind() ResultKind { return KindReal }
func (maxOp) String() string   { return "max" }

// ---------- norms ----------

type squaredNormOp struct{}

func (squaredNormOp) Reduce(v VecView) (float64, error) {
	var acc, x float64
	var err error
	for k, n := 0, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		acc += x * x
	}

	return acc, nil
}

// Cost: n multiplies + (n-1) additions.
func (squaredNormOp) Cost(n int) int {
	return n*float64Costs.MulCost + (n-1)*float64Costs.AddCost
}
func (squaredNormOp) Kind() ResultKind { return KindReal }
func (squaredNormOp) String() string   { return "squaredNorm" }

type normOp struct{}

func (normOp) Reduce(v VecView) (float64, error) {
	s, err := SquaredNormOp.Reduce(v)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(s), nil
}

// Cost: (n+5) multiplies + (n-1) additions; the +5 prices the sqrt.
func (normOp) Cost(n int) int {
	return (n+5)*float64Costs.MulCost + (n-1)*float64Costs.AddCost
}
func (normOp) Kind() ResultKind { return KindReal }
func (normOp) String() string   { return "norm" }

type stableNormOp struct{}

func (stableNormOp) Reduce(v VecView) (float64, error) { return stableNormOf(v) }

// Cost formula matches norm: the rescaling work hides in the constant term.
func (stableNormOp) Cost(n int) int {
	return (n+5)*float64Costs.MulCost + (n-1)*float64Costs.AddCost
}
func (stableNormOp) Kind() ResultKind { return KindReal }
func (stableNormOp) String() string   { return "stableNorm" }

type blueNormOp struct{}

func (blueNormOp) Reduce(v VecView) (float64, error) { return blueNormOf(v) }

func (blueNormOp) Cost(n int) int {
	return (n+5)*float64Costs.MulCost + (n-1)*float64Costs.AddCost
}
func (blueNormOp) Kind() ResultKind { return KindReal }
func (blueNormOp) String() string   { return "blueNorm" }

type hypotNormOp struct{}

func (hypotNormOp) Reduce(v VecView) (float64, error) { return hypotNormOf(v) }

// Cost: (n-1) hypot evaluations.
func (hypotNormOp) Cost(n int) int   { return (n - 1) * float64Costs.HypotCost }
func (hypotNormOp) Kind() ResultKind { return KindReal }
func (hypotNormOp) String() string   { return "hypotNorm" }

// ---------- predicates / counting ----------

type allOp struct{}

func (allOp) Reduce(v VecView) (float64, error) {
	var x float64
	var err error
	for k, n := 0, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		if x == 0 {
			return 0, nil // one false coefficient decides the answer
		}
	}

	return 1, nil
}

func (allOp) Cost(n int) int   { return (n - 1) * float64Costs.AddCost }
func (allOp) Kind() ResultKind { return KindBoolean }
func (allOp) String() string   { return "all" }

type anyOp struct{}

func (anyOp) Reduce(v VecView) (float64, error) {
	var x float64
	var err error
	for k, n := 0, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		if x != 0 {
			return 1, nil
		}
	}

	return 0, nil
}

func (anyOp) Cost(n int) int   { return (n - 1) * float64Costs.AddCost }
func (anyOp) Kind() ResultKind { return KindBoolean }
func (anyOp) String() string   { return "any" }

type countOp struct{}

func (countOp) Reduce(v VecView) (float64, error) {
	var x float64
	var err error
	var cnt int
	for k, n := 0, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		if x != 0 {
			cnt++
		}
	}

	// Exact whole number; Kind() reports Integer so consumers can narrow.
	return float64(cnt), nil
}

func (countOp) Cost(n int) int   { return (n - 1) * float64Costs.AddCost }
func (countOp) Kind() ResultKind { return KindInteger }
func (countOp) String() string   { return "count" }

// ---------- product ----------

type prodOp struct{}

func (prodOp) Reduce(v VecView) (float64, error) {
	acc := 1.0
	var x float64
	var err error
	for k, n := 0, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		acc *= x
	}

	return acc, nil
}

// Cost: (n-1) multiplies.
func (prodOp) Cost(n int) int   { return (n - 1) * float64Costs.MulCost }
func (prodOp) Kind() ResultKind { return KindReal }
func (prodOp) String() string   { return "prod" }

// ---------- generic associative fold ----------

// foldOp is the caller-supplied associative fold: acc starts at the first
// element, then acc = fn(acc, next) left to right. Associativity of fn is
// the caller's contract; grouping-dependence yields unspecified results.
type foldOp struct {
	fn   BinaryFunc
	cost int // per-application cost declared via WithFoldCost
}

// NewFold builds a Reducer from an associative binary function.
// Options: WithFoldCost to declare the per-application cost (defaults to
// DefaultFoldCost). Errors: ErrNilFold.
func NewFold(fn BinaryFunc, opts ...Option) (Reducer, error) {
	if fn == nil {
		return nil, fmt.Errorf("NewFold: %w", ErrNilFold)
	}
	o := gatherOptions(opts...)

	return foldOp{fn: fn, cost: o.foldCost}, nil
}

func (f foldOp) Reduce(v VecView) (float64, error) {
	acc, err := v.At(0)
	if err != nil {
		return 0, err
	}
	var x float64
	for k, n := 1, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		acc = f.fn(acc, x)
	}

	return acc, nil
}

// Cost: (n-1) applications of the caller's function.
func (f foldOp) Cost(n int) int   { return (n - 1) * f.cost }
func (f foldOp) Kind() ResultKind { return KindReal }
func (f foldOp) String() string   { return "fold" }
