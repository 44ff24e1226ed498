// Package vectorwise provides lazy axis-wise (per-row / per-column) partial
// reductions and broadcast arithmetic over dense float64 matrix expressions.
//
// The vectorwise package provides:
//
//   - An Expr abstraction for read-only matrix expressions with coordinate
//     access and a static per-coefficient cost estimate, plus Dense, a
//     row-major concrete implementation.
//   - A closed set of Reducers (Sum, Mean, Min, Max, SquaredNorm, Norm,
//     StableNorm, BlueNorm, HypotNorm, All, Any, Count, Prod) and a generic
//     associative Fold, each mapping one sub-vector to a scalar and
//     declaring a cost formula consumed by evaluator fusion heuristics.
//   - PartialReduxExpr, a lazy expression node whose every coefficient
//     re-runs the bound reducer over the matching row or column — nothing
//     is materialized until Materialize is called.
//   - VectorwiseOp, a per-axis adaptor built by AlongColumns/AlongRows,
//     exposing the reduction accessors, structural views (Reverse,
//     Replicate) and broadcast assignment/arithmetic against vector
//     operands.
//
// Everything is single-threaded and pure: expressions hold references, own
// no storage, and evaluate on the calling goroutine at read time. Mutating
// a source matrix while an expression over it is being read is a caller
// error and is not detected.
//
// All user-triggered failures surface as package sentinel errors
// (errors.go) matched via errors.Is; shape violations are rejected at
// construction, never deferred to coefficient access.
package vectorwise
