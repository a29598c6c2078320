// SPDX-License-Identifier: MIT
// Package polynomial: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the polynomial
// package. Operators MUST return these sentinels and tests MUST check them
// via errors.Is. No operator panics on user-triggered error conditions;
// MustNew and invalid WithX arguments are the only panicking paths.

package polynomial

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "polynomial: ..." for easy grepping.
// Context is attached with fmt.Errorf("<ctx>: %w", ErrX) at the detection site.

var (
	// ErrInvalidInput is returned when the coefficient sequence is nil or empty.
	ErrInvalidInput = errors.New("polynomial: coefficients must be non-empty")

	// ErrNilOperand indicates that a nil *Polynomial was passed to an operator.
	ErrNilOperand = errors.New("polynomial: nil operand")

	// ErrOutOfRange indicates that a coefficient index is outside [0, Power()).
	ErrOutOfRange = errors.New("polynomial: index out of range")

	// ErrNaNInf signals a NaN or ±Inf coefficient at construction.
	ErrNaNInf = errors.New("polynomial: NaN or Inf coefficient")
)

// Method tags used in error wrappers.
const (
	ctxNew  = "New"
	ctxAt   = "At"
	ctxAdd  = "Add"
	ctxSub  = "Sub"
	ctxMul  = "Mul"
	ctxNeg  = "Neg"
	ctxTrim = "Trim"
)

// polyErrorf wraps err with a uniform "Polynomial.<method>" context.
func polyErrorf(method string, err error) error {
	return fmt.Errorf("Polynomial.%s: %w", method, err)
}

// indexErrorf wraps err with the method and the offending index.
func indexErrorf(method string, index, power int, err error) error {
	return fmt.Errorf("Polynomial.%s(%d) with power %d: %w", method, index, power, err)
}
