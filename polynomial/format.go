// SPDX-License-Identifier: MIT

// Package polynomial - human-readable rendering.
//
// Layout:
//   - One term per coefficient, highest exponent first: <coef><var>^<exp>.
//   - Terms are joined with " + " or " - " depending on the sign of the next
//     coefficient; only the leading term carries its own minus sign.
//   - Terms with |c| < eps are omitted unless WithZeroTerms is set.
//   - If every term is omitted the result is "0".
//
// The output is for display only; it is not meant to be parsed back.

package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtPow   = "^"
	_fmtPlus  = " + "
	_fmtMinus = " - "
	_fmtZero  = "0"
	_fmtNil   = "<nil>"
)

// String implements fmt.Stringer using the default options:
// variable "a", near-zero terms (|c| < Tolerance) suppressed.
func (p *Polynomial) String() string {
	return Format(p)
}

// Format renders p with the given options (WithVariable, WithZeroTerms,
// WithEpsilon). A nil polynomial renders as "<nil>".
//
// Complexity:
//   - Time O(n), Space O(n).
func Format(p *Polynomial, opts ...Option) string {
	if p == nil {
		return _fmtNil
	}
	o := gatherOptions(opts...)

	var sb strings.Builder
	deg := p.Degree()
	written := false
	for i, c := range p.coeffs {
		if !o.zeroTerms && math.Abs(c) < o.eps {
			continue
		}
		if c == 0 {
			c = 0 // fold -0
		}
		switch {
		case !written:
			sb.WriteString(formatCoeff(c))
		case c < 0:
			sb.WriteString(_fmtMinus)
			sb.WriteString(formatCoeff(-c))
		default:
			sb.WriteString(_fmtPlus)
			sb.WriteString(formatCoeff(c))
		}
		sb.WriteString(o.variable)
		sb.WriteString(_fmtPow)
		sb.WriteString(strconv.Itoa(deg - i))
		written = true
	}
	if !written {
		return _fmtZero
	}

	return sb.String()
}

// formatCoeff prints c in the shortest form that round-trips.
func formatCoeff(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
