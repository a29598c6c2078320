// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"

	"golang.org/x/exp/slices"
)

// Trim returns a copy of p without leading (highest-power) coefficients whose
// absolute value is below eps (Tolerance unless WithEpsilon is given).
// At least one coefficient is always kept, so an all-zero input yields [c_last].
//
// Arithmetic never trims on its own; call Trim when two results of different
// length must compare as the same mathematical polynomial:
//
//	a, _ := polynomial.Sub(x, x)         // [0 0 0]
//	z, _ := polynomial.Trim(a)           // [0]
//
// Complexity:
//   - Time O(n), Space O(n).
func Trim(p *Polynomial, opts ...Option) (*Polynomial, error) {
	if p == nil {
		return nil, polyErrorf(ctxTrim, ErrNilOperand)
	}
	o := gatherOptions(opts...)

	first := slices.IndexFunc(p.coeffs, func(c float64) bool {
		return math.Abs(c) >= o.eps
	})
	if first < 0 {
		first = len(p.coeffs) - 1
	}

	return fromOwned(slices.Clone(p.coeffs[first:])), nil
}
