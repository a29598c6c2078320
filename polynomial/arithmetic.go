// SPDX-License-Identifier: MIT

// Package polynomial - arithmetic operators.
//
// Purpose:
//   - Add, Sub, Mul and Neg return a NEW polynomial; operands are never modified.
//   - Results are never trimmed: Add/Sub keep the longer operand's length and
//     Mul always has length len(p)+len(q)-1. Use Trim for a canonical form.
//   - Coefficients are combined index by index starting at index 0, so operands
//     of different length line up at their first coefficient.
//
// Complexity quicksheet:
//   - Add/Sub: O(max(n,m)); Neg: O(n); Mul: O(n*m) schoolbook convolution.

package polynomial

// Add returns p + q.
//
// Implementation:
//   - Stage 1: reject nil operands with ErrNilOperand.
//   - Stage 2: allocate max(len(p), len(q)) and sum index-wise, treating a
//     missing coefficient as 0.
//
// Complexity:
//   - Time O(max(n,m)), Space O(max(n,m)).
func Add(p, q *Polynomial) (*Polynomial, error) {
	if p == nil || q == nil {
		return nil, polyErrorf(ctxAdd, ErrNilOperand)
	}

	return fromOwned(addCoeffs(p.coeffs, q.coeffs)), nil
}

// Sub returns p - q, defined as p + (-q).
func Sub(p, q *Polynomial) (*Polynomial, error) {
	if p == nil || q == nil {
		return nil, polyErrorf(ctxSub, ErrNilOperand)
	}

	return fromOwned(addCoeffs(p.coeffs, negCoeffs(q.coeffs))), nil
}

// Neg returns -p.
func Neg(p *Polynomial) (*Polynomial, error) {
	if p == nil {
		return nil, polyErrorf(ctxNeg, ErrNilOperand)
	}

	return fromOwned(negCoeffs(p.coeffs)), nil
}

// Mul returns p * q by schoolbook convolution:
// r[i+j] += p[i] * q[j] for every i, j.
//
// Complexity:
//   - Time O(n*m), Space O(n+m).
func Mul(p, q *Polynomial) (*Polynomial, error) {
	if p == nil || q == nil {
		return nil, polyErrorf(ctxMul, ErrNilOperand)
	}

	n, m := len(p.coeffs), len(q.coeffs)
	out := make([]float64, n+m-1)
	var i, j int
	for i = 0; i < n; i++ {
		pi := p.coeffs[i]
		for j = 0; j < m; j++ {
			out[i+j] += pi * q.coeffs[j]
		}
	}

	return fromOwned(out), nil
}

// addCoeffs sums a and b index-wise into a fresh slice of length max(len(a), len(b)).
func addCoeffs(a, b []float64) []float64 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]float64, len(a))
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}

	return out
}

// negCoeffs returns a fresh slice holding -a[i].
func negCoeffs(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = -v
	}

	return out
}
