package poly_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenkit/number"
	"github.com/katalvlaran/eigenkit/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPoly_Basics covers degree, evaluation and formatting.
func TestPoly_Basics(t *testing.T) {
	p := poly.FromInts(3, -2, 1) // x² − 2x + 3
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, "lambda**2 - 2*lambda + 3", p.Format("lambda"))
	assert.Equal(t, "6", p.Eval(big.NewRat(3, 1)).RatString())
	assert.Equal(t, -1, poly.FromInts(0, 0).Degree())
	assert.Equal(t, "0", poly.New().String())
	assert.Equal(t, "-x**3 + 1/2*x", poly.New(nil, big.NewRat(1, 2), nil, big.NewRat(-1, 1)).String())
}

// TestPoly_EvalQuad checks that 1 ± sqrt(2)*I are roots of x² − 2x + 3.
func TestPoly_EvalQuad(t *testing.T) {
	p := poly.FromInts(3, -2, 1)
	z := number.One().Add(number.SqrtRat(big.NewRat(-2, 1)))
	assert.True(t, p.EvalQuad(z).IsZero())
	assert.True(t, p.EvalQuad(z.Conj()).IsZero())
}

// TestPoly_DivMod verifies p = q·d + r with deg r < deg d.
func TestPoly_DivMod(t *testing.T) {
	p := poly.FromInts(-1, 0, 0, 1) // x³ − 1
	d := poly.FromInts(-1, 1)       // x − 1
	q, r, err := p.DivMod(d)
	require.NoError(t, err)
	assert.True(t, q.Equal(poly.FromInts(1, 1, 1)))
	assert.True(t, r.IsZero())

	q, r, err = poly.FromInts(1, 0, 1).DivMod(poly.FromInts(0, 2)) // (x²+1)/(2x)
	require.NoError(t, err)
	assert.Equal(t, "1/2*x", q.String())
	assert.Equal(t, "1", r.String())

	_, _, err = p.DivMod(poly.New())
	assert.ErrorIs(t, err, number.ErrDivisionByZero)
}

// TestGCD checks the monic gcd of (x−1)(x+2) and (x−1)(x−3).
func TestGCD(t *testing.T) {
	a := poly.FromInts(-1, 1).Mul(poly.FromInts(2, 1))
	b := poly.FromInts(-1, 1).Mul(poly.FromInts(-3, 1)).Scale(big.NewRat(5, 1))
	assert.True(t, poly.GCD(a, b).Equal(poly.FromInts(-1, 1)))
	assert.True(t, poly.GCD(a, poly.New()).Equal(a.Monic()))
}

// TestSquareFree decomposes (x−1)²(x²+1).
func TestSquareFree(t *testing.T) {
	lin := poly.FromInts(-1, 1)
	quad := poly.FromInts(1, 0, 1)
	p := lin.Mul(lin).Mul(quad).Scale(big.NewRat(3, 1))

	fs := poly.SquareFree(p)
	require.Len(t, fs, 2)
	assert.True(t, fs[0].Poly.Equal(quad))
	assert.Equal(t, 1, fs[0].Multiplicity)
	assert.True(t, fs[1].Poly.Equal(lin))
	assert.Equal(t, 2, fs[1].Multiplicity)
}

// TestRationalRoots finds 0, 1/2 and −3 of x(2x−1)(x+3).
func TestRationalRoots(t *testing.T) {
	p := poly.FromInts(0, 1).Mul(poly.FromInts(-1, 2)).Mul(poly.FromInts(3, 1))
	roots := poly.RationalRoots(p)
	require.Len(t, roots, 3)
	assert.Equal(t, "-3", roots[0].RatString())
	assert.Equal(t, "0", roots[1].RatString())
	assert.Equal(t, "1/2", roots[2].RatString())

	assert.Empty(t, poly.RationalRoots(poly.FromInts(-2, 0, 1)))
}

// TestRoots_Mixed returns rational, irrational and repeated roots in order.
func TestRoots_Mixed(t *testing.T) {
	// (x−1)² (x² − 2)
	p := poly.FromInts(-1, 1).Mul(poly.FromInts(-1, 1)).Mul(poly.FromInts(-2, 0, 1))
	roots, err := poly.Roots(p)
	require.NoError(t, err)
	require.Len(t, roots, 3)
	assert.Equal(t, "-sqrt(2)", roots[0].Value.String())
	assert.Equal(t, 1, roots[0].Multiplicity)
	assert.Equal(t, "1", roots[1].Value.String())
	assert.Equal(t, 2, roots[1].Multiplicity)
	assert.Equal(t, "sqrt(2)", roots[2].Value.String())
}

// TestRoots_RepeatedQuadratic handles (x²+1)², a square of an irreducible.
func TestRoots_RepeatedQuadratic(t *testing.T) {
	q := poly.FromInts(1, 0, 1)
	roots, err := poly.Roots(q.Mul(q))
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "-I", roots[0].Value.String())
	assert.Equal(t, "I", roots[1].Value.String())
	assert.Equal(t, 2, roots[0].Multiplicity)
}

// TestRoots_Unsolvable reports an irreducible cubic instead of guessing.
func TestRoots_Unsolvable(t *testing.T) {
	_, err := poly.Roots(poly.FromInts(-2, 0, 0, 1)) // x³ − 2
	require.ErrorIs(t, err, poly.ErrUnsolvable)
	assert.Contains(t, err.Error(), "lambda**3 - 2")

	_, err = poly.Roots(poly.FromInts(1, 0, 0, 0, 1)) // x⁴ + 1
	require.ErrorIs(t, err, poly.ErrUnsolvable)

	_, err = poly.Roots(poly.New())
	assert.ErrorIs(t, err, poly.ErrZeroPolynomial)
}

// TestRoots_QuadraticFactors splits quartics with no rational root into
// quadratics over Q before applying the quadratic formula.
func TestRoots_QuadraticFactors(t *testing.T) {
	cases := []struct {
		name string
		p    poly.Poly
		want []string
	}{
		{"x⁴ − x² − 2", poly.FromInts(-2, 0, -1, 0, 1), []string{"-sqrt(2)", "-I", "I", "sqrt(2)"}},
		{"(x² − 2)(x² − 3)", poly.FromInts(6, 0, -5, 0, 1), []string{"-sqrt(3)", "-sqrt(2)", "sqrt(2)", "sqrt(3)"}},
		{"(x² − 2x + 3)(x² + 1)", poly.FromInts(3, -2, 4, -2, 1), []string{"-I", "I", "1 - sqrt(2)*I", "1 + sqrt(2)*I"}},
		// (x² − 1/2)(x² + 1/3), non-integral coefficients
		{"scaled", poly.New(big.NewRat(-1, 6), big.NewRat(0, 1), big.NewRat(-1, 6), big.NewRat(0, 1), big.NewRat(1, 1)),
			[]string{"-sqrt(2)/2", "-sqrt(3)*I/3", "sqrt(3)*I/3", "sqrt(2)/2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roots, err := poly.Roots(tc.p)
			require.NoError(t, err)
			require.Len(t, roots, len(tc.want))
			for i, r := range roots {
				assert.Equal(t, tc.want[i], r.Value.String())
				assert.Equal(t, 1, r.Multiplicity)
				assert.True(t, tc.p.EvalQuad(r.Value).IsZero(), "p(%s) != 0", r.Value)
			}
		})
	}
}

// TestQuadraticFactor finds a monic divisor of degree 2 or reports none.
func TestQuadraticFactor(t *testing.T) {
	p := poly.FromInts(3, -2, 4, -2, 1)
	q, ok := poly.QuadraticFactor(p)
	require.True(t, ok)
	assert.Equal(t, 2, q.Degree())
	_, r, err := p.DivMod(q)
	require.NoError(t, err)
	assert.True(t, r.IsZero())

	_, ok = poly.QuadraticFactor(poly.FromInts(1, 0, 0, 0, 1)) // x⁴ + 1
	assert.False(t, ok)
	_, ok = poly.QuadraticFactor(poly.FromInts(-2, 0, 0, 0, 1)) // x⁴ − 2
	assert.False(t, ok)
}
