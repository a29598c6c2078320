// Package polynomial implements an immutable single-variable polynomial over
// float64 coefficients.
//
// 🚀 What is a Polynomial here?
//
//	A coefficient sequence ordered from the highest power down to the
//	constant term:
//	  [5, 8, 2]  ⇒  5a^2 + 8a^1 + 2a^0
//
//	Power() is the number of coefficients; Degree() is Power()-1.
//
// ✨ Key features:
//   - validating constructor (non-empty, finite) with defensive copies in and out
//   - Add / Sub / Neg / Mul, each returning a new value
//   - Equal with a fixed absolute Tolerance of 1e-7 (inclusive boundary)
//   - value-based Hash (blake3 over tolerance-snapped coefficients)
//   - String / Format rendering that hides near-zero terms
//   - explicit Trim for a canonical form; arithmetic never trims
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvpoly/polynomial"
//
//	p, err := polynomial.New([]float64{5, 8, 2})
//	if err != nil {
//	  // ErrInvalidInput or ErrNaNInf
//	}
//	q := polynomial.MustNew(2, -1)
//
//	r, _ := polynomial.Mul(p, q)
//	fmt.Println(r)                                            // 10a^3 + 11a^2 - 4a^1 - 2a^0
//	fmt.Println(polynomial.Equal(r, polynomial.MustNew(10, 11, -4, -2))) // true
//
// Errors:
//   - ErrInvalidInput — nil or empty coefficient sequence.
//   - ErrNilOperand   — nil operand passed to an operator.
//   - ErrOutOfRange   — At(i) with i outside [0, Power()).
//   - ErrNaNInf       — non-finite coefficient at construction.
//
// Concurrency:
//
//	Values are immutable; sharing a *Polynomial across goroutines needs no locking.
//
// Performance:
//
//   - Add/Sub/Neg: O(n)
//   - Mul: O(n·m)
package polynomial
