// SPDX-License-Identifier: MIT

package number

import (
	"math/big"
	"strings"
)

// String renders x the way sympy's str() does for the same value:
//
//	2, -1/2, sqrt(2), -3*sqrt(2)/2, I, 2*I, sqrt(3)*I/2,
//	1 - sqrt(2)*I, -1/2 + sqrt(5)/2
func (x Quad) String() string {
	a := ratOrZero(x.a)
	b := ratOrZero(x.b)
	if b.Sign() == 0 {
		return a.RatString()
	}

	term := radicalTerm(new(big.Rat).Abs(b), x.d)
	switch {
	case a.Sign() == 0 && b.Sign() < 0:
		return "-" + term
	case a.Sign() == 0:
		return term
	case b.Sign() < 0:
		return a.RatString() + " - " + term
	default:
		return a.RatString() + " + " + term
	}
}

// radicalTerm renders c·√d for c > 0, e.g. 3*sqrt(2)/2 or sqrt(3)*I/2.
func radicalTerm(c *big.Rat, d *big.Int) string {
	m := new(big.Int).Abs(d)
	imag := d.Sign() < 0

	factors := make([]string, 0, 3)
	if !c.Num().IsInt64() || c.Num().Int64() != 1 {
		factors = append(factors, c.Num().String())
	}
	if !m.IsInt64() || m.Int64() != 1 {
		factors = append(factors, "sqrt("+m.String()+")")
	}
	if imag {
		factors = append(factors, "I")
	}

	out := strings.Join(factors, "*")
	if !c.IsInt() {
		out += "/" + c.Denom().String()
	}

	return out
}

// IsMonomial reports whether x prints as a single product term (no " + "),
// i.e. it is rational or has a zero rational part.
func (x Quad) IsMonomial() bool {
	return x.IsRational() || ratOrZero(x.a).Sign() == 0
}
