// Package lvpoly collects two small value-semantics utilities:
// an immutable polynomial type and a radix-to-integer converter.
//
// 🚀 What is inside?
//
//	• polynomial/ — single-variable polynomial over float64:
//		Add, Sub, Mul, Neg, Equal (absolute tolerance 1e-7), Hash, String, Trim
//	• radix/      — base 2..16 digit strings → int64, with overflow detection
//
// ✨ Why lvpoly?
//
//   - Errors, not panics – every invalid input yields a sentinel error (errors.Is)
//   - Immutable values – operators always return new instances, safe to share
//   - Pure Go – no cgo, deterministic, no global state
//
// Quick example:
//
//	p := polynomial.MustNew(5, 8, 2)   // 5a^2 + 8a^1 + 2a^0
//	q := polynomial.MustNew(2, -1)     // 2a^1 - 1a^0
//	r, _ := polynomial.Mul(p, q)       // 10a^3 + 11a^2 - 4a^1 - 2a^0
//
//	v, _ := radix.ToInt64("1ACB67", 16) // 1756007
//
// A runnable walkthrough lives in examples/.
//
//	go get github.com/katalvlaran/lvpoly
package lvpoly
