// SPDX-License-Identifier: MIT

// Package polynomial - value equality & hashing.
//
// Purpose:
//   - Equal: same length and every coefficient pair within Tolerance (inclusive).
//   - ApproxEqual: same contract with a caller-chosen epsilon.
//   - Hash: value-based digest over coefficients snapped to the Tolerance grid.
//
// Notes:
//   - Equality is never true when either side is nil, including nil vs nil.
//   - Hash agrees with Equal for identical inputs and for values that snap to
//     the same grid cell. Two Equal polynomials whose coefficients straddle a
//     cell boundary can still hash differently, so hash-keyed containers are
//     an index, not a substitute for Equal.

package polynomial

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/blake3"
	"golang.org/x/exp/slices"
)

// Equal reports whether p and q have the same power and every coefficient
// pair satisfies |p[i]-q[i]| <= Tolerance.
func Equal(p, q *Polynomial) bool {
	return equalWithin(p, q, Tolerance)
}

// ApproxEqual is Equal with a configurable tolerance (see WithEpsilon).
func ApproxEqual(p, q *Polynomial, opts ...Option) bool {
	o := gatherOptions(opts...)

	return equalWithin(p, q, o.eps)
}

// Equal is the method form of the package-level Equal.
func (p *Polynomial) Equal(q *Polynomial) bool { return Equal(p, q) }

func equalWithin(p, q *Polynomial, eps float64) bool {
	if p == nil || q == nil {
		return false
	}
	if p == q {
		return true
	}

	return slices.EqualFunc(p.coeffs, q.coeffs, func(a, b float64) bool {
		return math.Abs(a-b) <= eps
	})
}

// Hash returns a 64-bit value hash of p.
//
// Implementation:
//   - Stage 1: snap each coefficient to the nearest multiple of Tolerance
//     and fold -0 into +0.
//   - Stage 2: feed the power and the snapped IEEE-754 bits, big-endian,
//     into blake3.
//   - Stage 3: return the first 8 digest bytes.
//
// A nil receiver hashes to 0.
func (p *Polynomial) Hash() uint64 {
	if p == nil {
		return 0
	}

	hasher := blake3.New()
	buf := make([]byte, 8*(len(p.coeffs)+1))
	binary.BigEndian.PutUint64(buf, uint64(len(p.coeffs)))
	for i, c := range p.coeffs {
		binary.BigEndian.PutUint64(buf[8*(i+1):], math.Float64bits(snap(c)))
	}
	_, _ = hasher.Write(buf)

	return binary.BigEndian.Uint64(hasher.Sum(nil)[:8])
}

// snap rounds c to the Tolerance grid; the result is never -0.
func snap(c float64) float64 {
	s := math.Round(c/Tolerance) * Tolerance
	if s == 0 {
		return 0
	}

	return s
}
