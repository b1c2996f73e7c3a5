package number_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenkit/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuad_ZeroValue verifies the zero Quad behaves as 0 in every operation.
func TestQuad_ZeroValue(t *testing.T) {
	var z number.Quad
	assert.True(t, z.IsZero())
	assert.True(t, z.IsRational())
	assert.Equal(t, "0", z.String())
	assert.True(t, z.Add(number.FromInt(3)).Equal(number.FromInt(3)))
	assert.True(t, z.Mul(number.SqrtRat(big.NewRat(2, 1))).IsZero())
}

// TestSqrtRat_Reduction checks square factors are pulled out of the radicand.
func TestSqrtRat_Reduction(t *testing.T) {
	cases := []struct {
		in   *big.Rat
		want string
	}{
		{big.NewRat(4, 1), "2"},
		{big.NewRat(8, 1), "2*sqrt(2)"},
		{big.NewRat(1, 4), "1/2"},
		{big.NewRat(3, 4), "sqrt(3)/2"},
		{big.NewRat(-1, 1), "I"},
		{big.NewRat(-4, 1), "2*I"},
		{big.NewRat(-8, 1), "2*sqrt(2)*I"},
		{big.NewRat(-3, 4), "sqrt(3)*I/2"},
		{big.NewRat(1, 2), "sqrt(2)/2"},
		{big.NewRat(0, 1), "0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, number.SqrtRat(tc.in).String(), "sqrt(%s)", tc.in.RatString())
	}
}

// TestSqrtRat_Squares ensures SqrtRat(r)² == r for rational and imaginary roots.
func TestSqrtRat_Squares(t *testing.T) {
	for _, r := range []*big.Rat{big.NewRat(2, 1), big.NewRat(-5, 3), big.NewRat(50, 7), big.NewRat(-1, 1)} {
		s := number.SqrtRat(r)
		got, ok := s.Mul(s).Rat()
		require.True(t, ok, "square of sqrt(%s) must be rational", r.RatString())
		assert.Zero(t, got.Cmp(r))
	}
}

// TestQuad_Arithmetic walks the field operations on 1 + sqrt(2).
func TestQuad_Arithmetic(t *testing.T) {
	x := number.One().Add(number.SqrtRat(big.NewRat(2, 1))) // 1 + sqrt(2)
	y := number.One().Sub(number.SqrtRat(big.NewRat(2, 1))) // 1 - sqrt(2)

	assert.Equal(t, "1 + sqrt(2)", x.String())
	assert.Equal(t, "1 - sqrt(2)", y.String())
	assert.True(t, x.Mul(y).Equal(number.FromInt(-1)))
	assert.True(t, x.Add(y).Equal(number.FromInt(2)))

	inv, err := x.Inv()
	require.NoError(t, err)
	assert.Equal(t, "-1 + sqrt(2)", inv.String())
	assert.True(t, inv.Mul(x).Equal(number.One()))

	q, err := number.FromInt(3).Div(x)
	require.NoError(t, err)
	assert.True(t, q.Mul(x).Equal(number.FromInt(3)))
}

// TestQuad_DivisionByZero checks the sentinel on Inv and Div.
func TestQuad_DivisionByZero(t *testing.T) {
	_, err := number.Zero().Inv()
	assert.ErrorIs(t, err, number.ErrDivisionByZero)

	_, err = number.One().Div(number.Zero())
	assert.ErrorIs(t, err, number.ErrDivisionByZero)
}

// TestQuad_ComplexParts checks Re/Im/Conj on 1 - sqrt(2)*I.
func TestQuad_ComplexParts(t *testing.T) {
	root := number.SqrtRat(big.NewRat(-2, 1))
	z := number.One().Sub(root)

	assert.Equal(t, "1 - sqrt(2)*I", z.String())
	assert.False(t, z.IsReal())
	assert.Equal(t, "1", z.Re().String())
	assert.Equal(t, "-sqrt(2)", z.Im().String())
	assert.Equal(t, "sqrt(2)", z.Im().Abs().String())
	assert.Equal(t, "1 + sqrt(2)*I", z.Conj().String())

	// z·conj(z) = |z|² = 3
	assert.True(t, z.Mul(z.Conj()).Equal(number.FromInt(3)))

	re, im := z.Float64()
	assert.InDelta(t, 1.0, re, 1e-12)
	assert.InDelta(t, -1.4142135623730951, im, 1e-12)

	i := number.ImagUnit()
	assert.True(t, i.Mul(i).Equal(number.FromInt(-1)))
}

// TestQuad_Sign covers the opposite-sign branch for real surds.
func TestQuad_Sign(t *testing.T) {
	s2 := number.SqrtRat(big.NewRat(2, 1))
	assert.Equal(t, 1, number.One().Add(s2).Sign())
	assert.Equal(t, -1, number.One().Sub(s2).Sign())   // 1 - 1.414
	assert.Equal(t, 1, number.FromInt(2).Sub(s2).Sign()) // 2 - 1.414
	assert.Equal(t, -1, s2.Neg().Sign())
	assert.Equal(t, 0, number.Zero().Sign())
}

// TestCompare checks exact ordering by real then imaginary part.
func TestCompare(t *testing.T) {
	root := number.SqrtRat(big.NewRat(-2, 1))
	lo := number.One().Sub(root)
	hi := number.One().Add(root)

	assert.Equal(t, -1, number.Compare(lo, hi))
	assert.Equal(t, 1, number.Compare(hi, lo))
	assert.Equal(t, 0, number.Compare(lo, lo))
	assert.Equal(t, -1, number.Compare(number.FromInt(-2), number.FromInt(2)))

	// different fields: sqrt(2) < sqrt(3)
	assert.Equal(t, -1, number.Compare(number.SqrtRat(big.NewRat(2, 1)), number.SqrtRat(big.NewRat(3, 1))))
}

// TestCompare_MixedFieldsTie orders values whose floats collide by radicand,
// independent of argument order.
func TestCompare_MixedFieldsTie(t *testing.T) {
	big20, ok := new(big.Rat).SetString("100000000000000000000")
	require.True(t, ok)
	x := number.NewQuad(big20, big.NewRat(1, 1), big.NewInt(2)) // 10^20 + sqrt(2)
	y := number.NewQuad(big20, big.NewRat(1, 1), big.NewInt(3)) // 10^20 + sqrt(3)
	xr, _ := x.Float64()
	yr, _ := y.Float64()
	require.Equal(t, xr, yr)

	assert.Equal(t, -1, number.Compare(x, y))
	assert.Equal(t, 1, number.Compare(y, x))

	i := number.SqrtRat(big.NewRat(-1, 1))
	s2 := number.SqrtRat(big.NewRat(2, 1))
	assert.NotZero(t, number.Compare(i, s2))
	assert.Equal(t, -number.Compare(i, s2), number.Compare(s2, i))
}

// TestNewQuad_ReducesRadicand ensures NewQuad(0,1,12) is 2*sqrt(3).
func TestNewQuad_ReducesRadicand(t *testing.T) {
	q := number.NewQuad(big.NewRat(0, 1), big.NewRat(1, 1), big.NewInt(12))
	assert.Equal(t, "2*sqrt(3)", q.String())

	a, b, d := q.Parts()
	assert.Zero(t, a.Sign())
	assert.Equal(t, "2", b.RatString())
	assert.Equal(t, int64(3), d.Int64())

	assert.True(t, number.NewQuad(big.NewRat(1, 1), big.NewRat(1, 1), big.NewInt(9)).Equal(number.FromInt(4)))
}

// TestQuad_MixedRadicandsPanics documents the programmer-error contract.
func TestQuad_MixedRadicandsPanics(t *testing.T) {
	s2 := number.SqrtRat(big.NewRat(2, 1))
	s3 := number.SqrtRat(big.NewRat(3, 1))
	assert.Panics(t, func() { _ = s2.Add(s3) })
}

// TestSameField checks radicand compatibility across value lists.
func TestSameField(t *testing.T) {
	r2 := number.SqrtRat(big.NewRat(2, 1))
	r3 := number.SqrtRat(big.NewRat(3, 1))
	i2 := number.SqrtRat(big.NewRat(-2, 1))

	assert.True(t, number.SameField())
	assert.True(t, number.SameField(number.One(), r2, r2.Add(number.One())))
	assert.False(t, number.SameField(r2, number.One(), r3))
	assert.False(t, number.SameField(r2, i2))
}
