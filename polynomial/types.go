// SPDX-License-Identifier: MIT

package polynomial

import "fmt"

// Polynomial is an immutable single-variable polynomial.
//   - coeffs[0] is the coefficient of the highest-power term,
//     coeffs[len-1] is the constant term.
//   - coeffs is never nil or empty once constructed via New.
//   - No method mutates coeffs; every operator allocates a new value.
type Polynomial struct {
	coeffs []float64 // highest power first; len == Power()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Polynomial)(nil)
