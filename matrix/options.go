// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for tolerance-based comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes the result of Close/AllClose and
//     is covered by tests.
//   - Panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is the relative tolerance rtol in |a-b| ≤ atol + rtol*|b|.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute tolerance atol in |a-b| ≤ atol + rtol*|b|.
	DefaultAbsTol = 1e-9

	// DefaultEqualNaN makes NaN compare unequal to everything, itself included.
	DefaultEqualNaN = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRelTolInvalid = "matrix: WithRelTol: rtol must be finite, non-negative"
	panicAbsTolInvalid = "matrix: WithAbsTol: atol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	rtol     float64 // >= 0; DefaultRelTol
	atol     float64 // >= 0; DefaultAbsTol
	equalNaN bool    // DefaultEqualNaN
}

// ---------- Constructors (WithX) ----------

// WithRelTol sets the relative tolerance.
//
// Errors:
//   - Panics with a stable message when rtol is negative, NaN or Inf.
func WithRelTol(rtol float64) Option {
	if !isFiniteNonNegative(rtol) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithAbsTol sets the absolute tolerance. Use it for values near zero, where
// the relative term vanishes.
//
// Errors:
//   - Panics with a stable message when atol is negative, NaN or Inf.
func WithAbsTol(atol float64) Option {
	if !isFiniteNonNegative(atol) {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithExact sets both tolerances to zero, so Close degenerates to ==.
func WithExact() Option {
	return func(o *Options) { o.rtol, o.atol = 0, 0 }
}

// WithEqualNaN treats two NaN values (any NaN component, for complex
// elements) as close to each other.
func WithEqualNaN() Option {
	return func(o *Options) { o.equalNaN = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		rtol:     DefaultRelTol,
		atol:     DefaultAbsTol,
		equalNaN: DefaultEqualNaN,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isFiniteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
