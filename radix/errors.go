// SPDX-License-Identifier: MIT
// Package radix: sentinel error set.
// Every failure is detected synchronously and returned to the caller; no
// partial result is ever produced. Tests match these via errors.Is.

package radix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for an empty source string.
	ErrInvalidInput = errors.New("radix: source must be non-empty")

	// ErrInvalidBase indicates a base outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("radix: base out of range")

	// ErrInvalidSymbol indicates a character that is not in the base's alphabet.
	ErrInvalidSymbol = errors.New("radix: invalid symbol")

	// ErrOverflow indicates the accumulated value exceeds math.MaxInt64.
	ErrOverflow = errors.New("radix: arithmetic overflow")

	// ErrNilNotation indicates that a nil *Notation was passed to Convert.
	ErrNilNotation = errors.New("radix: nil notation")
)

// baseErrorf attaches the offending base to ErrInvalidBase.
func baseErrorf(base int) error {
	return fmt.Errorf("base %d not in [%d,%d]: %w", base, MinBase, MaxBase, ErrInvalidBase)
}

// symbolErrorf attaches the offending symbol, its rune position and the base.
func symbolErrorf(r rune, pos, base int) error {
	return fmt.Errorf("symbol %q at %d for base %d: %w", r, pos, base, ErrInvalidSymbol)
}
