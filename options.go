// SPDX-License-Identifier: MIT

// Package vectorwise: functional configuration for storage numeric policy
// and the generic fold. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package vectorwise

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Dense
	// ingestion and Set. When true, NaN and ±Inf are rejected with ErrNaNInf.
	DefaultValidateNaNInf = true
)

// DefaultFoldCost prices one application of a caller-supplied fold function
// when the caller declares no cost: one multiply plus one add, the price of
// a typical fused binary accumulator.
var DefaultFoldCost = float64Costs.MulCost + float64Costs.AddCost

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFoldCostInvalid = "vectorwise: WithFoldCost: cost must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // Dense numeric guard; DefaultValidateNaNInf
	foldCost       int  // per-application cost of a custom fold; DefaultFoldCost
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf toggles the finite-value guard on Dense Set/ingestion.
// Disabling it permits NaN/Inf storage (useful for propagation studies);
// reductions then propagate non-finite values as IEEE arithmetic dictates.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// WithFoldCost declares the per-application cost of a caller-supplied fold
// function, consumed by the fold reducer's Cost formula.
// Panics if cost <= 0 (programmer error: a free operation prices nothing).
func WithFoldCost(cost int) Option {
	if cost <= 0 {
		panic(panicFoldCostInvalid)
	}

	return func(o *Options) { o.foldCost = cost }
}

// gatherOptions applies setters over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		foldCost:       DefaultFoldCost,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
