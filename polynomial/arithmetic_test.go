package polynomial_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpoly/polynomial"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"same length", []float64{1, 2, 3}, []float64{1, 2, 3}, []float64{2, 4, 6}},
		{"shorter right", []float64{8, 2, 3}, []float64{1, 2}, []float64{9, 4, 3}},
		{"cancelling lead", []float64{1, 0, 2}, []float64{-1, 1, 0}, []float64{0, 1, 2}},
		{"shorter left", []float64{1}, []float64{4, 5, 6}, []float64{5, 5, 6}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := polynomial.Add(mustPoly(t, tc.a...), mustPoly(t, tc.b...))
			require.NoError(t, err)
			requireCoeffs(t, tc.want, got)
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"constant differs", []float64{1, 2, 33}, []float64{1, 2, 3}, []float64{0, 0, 30}},
		{"lead differs", []float64{2, 2, 3}, []float64{1, 2, 3}, []float64{1, 0, 0}},
		{"shorter right", []float64{0, 2, 0}, []float64{-1, 0}, []float64{1, 2, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := polynomial.Sub(mustPoly(t, tc.a...), mustPoly(t, tc.b...))
			require.NoError(t, err)
			requireCoeffs(t, tc.want, got)
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"binomial", []float64{5, 8, 2}, []float64{2, -1}, []float64{10, 11, -4, -2}},
		{"sparse", []float64{5, 0, 0, 2}, []float64{1, -5, 4, 0}, []float64{5, -25, 20, 2, -10, 8, 0}},
		{"quadratics", []float64{3, 0, -2}, []float64{1, -2, -8}, []float64{3, -6, -26, 4, 16}},
		{"by zero", []float64{3, 0, -2}, []float64{0}, []float64{0, 0, 0}},
		{"by one", []float64{3, 0, -2}, []float64{1}, []float64{3, 0, -2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := polynomial.Mul(mustPoly(t, tc.a...), mustPoly(t, tc.b...))
			require.NoError(t, err)
			require.Equal(t, len(tc.a)+len(tc.b)-1, got.Power())
			requireCoeffs(t, tc.want, got)
		})
	}
}

func TestNeg(t *testing.T) {
	for _, c := range [][]float64{{3, 0, -2}, {-3, 0, 2}, {0}} {
		want := make([]float64, len(c))
		for i, v := range c {
			want[i] = -v
		}
		got, err := polynomial.Neg(mustPoly(t, c...))
		require.NoError(t, err)
		require.True(t, polynomial.Equal(mustPoly(t, want...), got))
	}
}

// TestOperatorsRejectNil checks every operator reports ErrNilOperand for a nil side.
func TestOperatorsRejectNil(t *testing.T) {
	p := mustPoly(t, 1, 2)

	binary := map[string]func(a, b *polynomial.Polynomial) (*polynomial.Polynomial, error){
		"Add": polynomial.Add,
		"Sub": polynomial.Sub,
		"Mul": polynomial.Mul,
	}
	for name, op := range binary {
		_, err := op(nil, p)
		require.ErrorIs(t, err, polynomial.ErrNilOperand, name+" nil left")
		_, err = op(p, nil)
		require.ErrorIs(t, err, polynomial.ErrNilOperand, name+" nil right")
	}

	_, err := polynomial.Neg(nil)
	require.ErrorIs(t, err, polynomial.ErrNilOperand)
}

// TestOperandsUnchanged verifies operators never write into their inputs.
func TestOperandsUnchanged(t *testing.T) {
	a := mustPoly(t, 1, 2, 3)
	b := mustPoly(t, 4, 5)

	_, _ = polynomial.Add(a, b)
	_, _ = polynomial.Sub(a, b)
	_, _ = polynomial.Mul(a, b)
	_, _ = polynomial.Neg(a)

	requireCoeffs(t, []float64{1, 2, 3}, a)
	requireCoeffs(t, []float64{4, 5}, b)
}

// TestArithmeticLaws exercises algebraic properties on deterministic random input.
func TestArithmeticLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	one := mustPoly(t, 1)

	for iter := 0; iter < 200; iter++ {
		a := randPoly(t, rng, 1+rng.Intn(8))
		b := randPoly(t, rng, 1+rng.Intn(8))
		c := randPoly(t, rng, 1+rng.Intn(8))

		// commutativity of addition
		ab, err := polynomial.Add(a, b)
		require.NoError(t, err)
		ba, err := polynomial.Add(b, a)
		require.NoError(t, err)
		require.True(t, polynomial.Equal(ab, ba), "a+b != b+a")

		// associativity of addition
		abc1, _ := polynomial.Add(ab, c)
		bc, _ := polynomial.Add(b, c)
		abc2, _ := polynomial.Add(a, bc)
		require.True(t, polynomial.Equal(abc1, abc2), "(a+b)+c != a+(b+c)")

		// a - a is the zero polynomial of the same length
		zero, _ := polynomial.Sub(a, a)
		require.Equal(t, a.Power(), zero.Power())
		requireCoeffs(t, make([]float64, a.Power()), zero)

		// product length and multiplicative identity
		prod, _ := polynomial.Mul(a, b)
		require.Equal(t, a.Power()+b.Power()-1, prod.Power())
		a1, _ := polynomial.Mul(a, one)
		require.True(t, polynomial.Equal(a, a1), "a*[1] != a")

		// negation is an involution
		na, _ := polynomial.Neg(a)
		nna, _ := polynomial.Neg(na)
		require.True(t, polynomial.Equal(a, nna), "-(-a) != a")
	}
}

// TestArithmeticNeverTrims documents that results keep their raw length.
func TestArithmeticNeverTrims(t *testing.T) {
	a := mustPoly(t, 1, 2)
	b := mustPoly(t, -1, 0, 0)

	sum, err := polynomial.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, sum.Power())
	requireCoeffs(t, []float64{0, 2, 0}, sum)
}
