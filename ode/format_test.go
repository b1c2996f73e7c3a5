package ode

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenkit/number"
	"github.com/stretchr/testify/assert"
)

func TestMulString(t *testing.T) {
	sqrt := func(n int64) number.Quad { return number.SqrtRat(big.NewRat(n, 1)) }
	half := big.NewRat(1, 2)

	cases := []struct {
		coef number.Quad
		want string
	}{
		{number.One(), "cos(t)"},
		{number.FromInt(-1), "-cos(t)"},
		{number.FromInt(-2), "-2*cos(t)"},
		{number.FromFrac(1, 2), "cos(t)/2"},
		{number.FromFrac(-3, 2), "-3*cos(t)/2"},
		{sqrt(2), "sqrt(2)*cos(t)"},
		{sqrt(3).Scale(half), "sqrt(3)*cos(t)/2"},
		{sqrt(2).Add(number.One()), "(1 + sqrt(2))*cos(t)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mulString(tc.coef, "cos(t)"), tc.coef.String())
	}
}

func TestTrigArgAndExponent(t *testing.T) {
	assert.Equal(t, "t", trigArg(number.One()))
	assert.Equal(t, "2*t", trigArg(number.FromInt(2)))
	assert.Equal(t, "t/2", trigArg(number.FromFrac(1, 2)))
	assert.Equal(t, "sqrt(2)*t", trigArg(number.SqrtRat(big.NewRat(2, 1))))

	assert.Equal(t, "e^(1t)", exponent(number.One()))
	assert.Equal(t, "e^(-1/2t)", exponent(number.FromFrac(-1, 2)))
	assert.Equal(t, "e^(0t)", exponent(number.Zero()))
	golden := number.FromFrac(1, 2).Add(number.SqrtRat(big.NewRat(5, 4)))
	assert.Equal(t, "e^((1/2 + sqrt(5)/2)t)", exponent(golden))
}

func TestModeCell(t *testing.T) {
	beta := number.FromInt(3)
	assert.Equal(t, "0", modeCell(number.Zero(), number.Zero(), beta))
	assert.Equal(t, "cos(3*t) - 2*sin(3*t)", modeCell(number.One(), number.FromInt(-2), beta))
	assert.Equal(t, "cos(3*t) + sin(3*t)", modeCell(number.One(), number.One(), beta))
	assert.Equal(t, "-5", modeCell(number.FromInt(-5), number.Zero(), number.Zero()))
}
