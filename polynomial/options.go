// SPDX-License-Identifier: MIT

// Package polynomial: functional configuration for tolerant comparison,
// trimming and rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Equal and String always use Tolerance; options only affect the
//     explicitly configurable entry points (ApproxEqual, Trim, Format).
//   - Options are resolved per call; there is no global mutable state.
package polynomial

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// Tolerance is the fixed absolute threshold below which two coefficients
	// are considered equal. Used by Equal, Hash and String.
	Tolerance = 1e-7

	// DefaultEpsilon is the tolerance used by ApproxEqual, Trim and Format
	// when WithEpsilon is not supplied.
	DefaultEpsilon = Tolerance

	// DefaultVariable is the symbol printed in every rendered term.
	DefaultVariable = "a"

	// DefaultZeroTerms controls whether near-zero terms are rendered.
	DefaultZeroTerms = false
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid  = "polynomial: WithEpsilon: eps must be finite, non-negative"
	panicVariableInvalid = "polynomial: WithVariable: name must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps       float64 // >= 0; DefaultEpsilon
	variable  string  // non-empty; DefaultVariable
	zeroTerms bool    // DefaultZeroTerms
}

// WithEpsilon sets the absolute tolerance used by ApproxEqual, Trim and Format.
// Panics when eps is negative, NaN or ±Inf.
//
// A larger eps relaxes equality and suppresses more terms; the boundary is
// inclusive for equality (|a-b| <= eps) and exclusive for term suppression
// (|c| < eps).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithVariable sets the variable symbol used by Format. Panics on "".
func WithVariable(name string) Option {
	if name == "" {
		panic(panicVariableInvalid)
	}

	return func(o *Options) { o.variable = name }
}

// WithZeroTerms makes Format print every term, including near-zero ones.
func WithZeroTerms() Option {
	return func(o *Options) { o.zeroTerms = true }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		variable:  DefaultVariable,
		zeroTerms: DefaultZeroTerms,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
