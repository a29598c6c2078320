// SPDX-License-Identifier: MIT

// Package polynomial - construction & safe accessors.
//
// Purpose:
//   - Validate input once at construction and keep the value immutable afterwards.
//   - Decouple from caller memory: New copies in, Coefficients copies out.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//
// Complexity quicksheet:
//   - New/Clone/Coefficients: O(n); At/Power/Degree: O(1); Evaluate: O(n).

package polynomial

import (
	"math"

	"golang.org/x/exp/slices"
)

// New creates a polynomial from coefficients ordered from the highest power
// down to the constant term.
//
// Implementation:
//   - Stage 1: reject nil/empty input with ErrInvalidInput.
//   - Stage 2: reject NaN/±Inf coefficients with ErrNaNInf.
//   - Stage 3: copy the slice so later caller writes have no effect.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(coeffs []float64) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, polyErrorf(ctxNew, ErrInvalidInput)
	}
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, indexErrorf(ctxNew, i, len(coeffs), ErrNaNInf)
		}
	}

	return &Polynomial{coeffs: slices.Clone(coeffs)}, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and examples where the input is known to be valid.
func MustNew(coeffs ...float64) *Polynomial {
	p, err := New(coeffs)
	if err != nil {
		panic(err)
	}

	return p
}

// fromOwned wraps a freshly allocated result slice without copying it again.
// The caller must not retain coeffs.
func fromOwned(coeffs []float64) *Polynomial {
	return &Polynomial{coeffs: coeffs}
}

// Power returns the number of coefficients (not the mathematical degree).
// A nil receiver has power 0.
func (p *Polynomial) Power() int {
	if p == nil {
		return 0
	}

	return len(p.coeffs)
}

// Degree returns Power()-1, the exponent of the leading term.
func (p *Polynomial) Degree() int { return p.Power() - 1 }

// At returns the coefficient stored at index, where index 0 is the
// highest-power term.
//
// Bounds are strict: 0 <= index < Power(). Anything else yields
// ErrOutOfRange wrapped with the index and power.
func (p *Polynomial) At(index int) (float64, error) {
	if p == nil {
		return 0, polyErrorf(ctxAt, ErrNilOperand)
	}
	if index < 0 || index >= len(p.coeffs) {
		return 0, indexErrorf(ctxAt, index, len(p.coeffs), ErrOutOfRange)
	}

	return p.coeffs[index], nil
}

// Coefficients returns a copy of the coefficient sequence.
// Mutating the result never affects p. A nil receiver yields nil.
func (p *Polynomial) Coefficients() []float64 {
	if p == nil {
		return nil
	}

	return slices.Clone(p.coeffs)
}

// Clone returns an independent polynomial with the same coefficients.
func (p *Polynomial) Clone() *Polynomial {
	if p == nil {
		return nil
	}

	return fromOwned(slices.Clone(p.coeffs))
}

// Evaluate computes p(x) with Horner's rule.
// A nil receiver evaluates to 0.
func (p *Polynomial) Evaluate(x float64) float64 {
	if p == nil {
		return 0
	}
	var acc float64
	for _, c := range p.coeffs { // highest power first
		acc = acc*x + c
	}

	return acc
}
