// SPDX-License-Identifier: MIT
// Package polynomial_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for operator and property tests.
//   • Keep all data finite so construction never fails inside helpers.

package polynomial_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvpoly/polynomial"
	"github.com/stretchr/testify/require"
)

// approx compares float64 values within the package tolerance.
var approx = cmpopts.EquateApprox(0, polynomial.Tolerance)

// mustPoly builds a polynomial or fails the test immediately.
func mustPoly(tb testing.TB, coeffs ...float64) *polynomial.Polynomial {
	tb.Helper()
	p, err := polynomial.New(coeffs)
	require.NoError(tb, err)

	return p
}

// requireCoeffs asserts that p holds want, coefficient by coefficient, within tolerance.
func requireCoeffs(tb testing.TB, want []float64, p *polynomial.Polynomial) {
	tb.Helper()
	require.NotNil(tb, p)
	if diff := cmp.Diff(want, p.Coefficients(), approx); diff != "" {
		tb.Fatalf("coefficients mismatch (-want +got):\n%s", diff)
	}
}

// randPoly returns a polynomial with n coefficients drawn from [-100, 100).
func randPoly(tb testing.TB, rng *rand.Rand, n int) *polynomial.Polynomial {
	tb.Helper()
	c := make([]float64, n)
	for i := range c {
		c[i] = rng.Float64()*200 - 100
	}

	return mustPoly(tb, c...)
}
