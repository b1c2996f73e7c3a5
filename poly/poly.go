// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/eigenkit/number"
)

// Poly is a polynomial with rational coefficients, stored in ascending
// degree: c[i] is the coefficient of x^i. The slice is trimmed so the last
// entry (if any) is non-zero; the zero polynomial has no coefficients.
// Poly values are immutable.
type Poly struct {
	c []*big.Rat
}

// New returns the polynomial with the given ascending coefficients.
// Inputs are copied; nil entries count as 0.
func New(coefs ...*big.Rat) Poly {
	c := make([]*big.Rat, len(coefs))
	for i, v := range coefs {
		c[i] = new(big.Rat)
		if v != nil {
			c[i].Set(v)
		}
	}

	return trim(c)
}

// FromInts is New for integer coefficients (ascending degree).
func FromInts(coefs ...int64) Poly {
	c := make([]*big.Rat, len(coefs))
	for i, v := range coefs {
		c[i] = new(big.Rat).SetInt64(v)
	}

	return trim(c)
}

// Monomial returns coef·x^deg.
func Monomial(coef *big.Rat, deg int) Poly {
	c := make([]*big.Rat, deg+1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	c[deg].Set(coef)

	return trim(c)
}

// trim drops trailing zero coefficients in place.
func trim(c []*big.Rat) Poly {
	n := len(c)
	for n > 0 && c[n-1].Sign() == 0 {
		n--
	}

	return Poly{c: c[:n]}
}

// Degree returns the degree, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports p == 0.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// Coef returns a copy of the coefficient of x^i (0 outside the support).
func (p Poly) Coef(i int) *big.Rat {
	if i < 0 || i >= len(p.c) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.c[i])
}

// Lead returns a copy of the leading coefficient (0 for the zero polynomial).
func (p Poly) Lead() *big.Rat { return p.Coef(p.Degree()) }

// Coefs returns copies of all coefficients in ascending degree.
func (p Poly) Coefs() []*big.Rat {
	out := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Rat).Set(v)
	}

	return out
}

// Eval returns p(x) by Horner's rule.
func (p Poly) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p.c) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.c[i])
	}

	return acc
}

// EvalQuad returns p(x) for an exact Quad argument.
func (p Poly) EvalQuad(x number.Quad) number.Quad {
	acc := number.Zero()
	for i := len(p.c) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(number.FromRat(p.c[i]))
	}

	return acc
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := max(len(p.c), len(q.c))
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat).Add(p.Coef(i), q.Coef(i))
	}

	return trim(c)
}

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Scale(big.NewRat(-1, 1))) }

// Scale returns r·p.
func (p Poly) Scale(r *big.Rat) Poly {
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Mul(v, r)
	}

	return trim(c)
}

// Mul returns p·q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c)+len(q.c)-1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, a := range p.c {
		for j, b := range q.c {
			c[i+j].Add(c[i+j], tmp.Mul(a, b))
		}
	}

	return trim(c)
}

// Derivative returns dp/dx.
func (p Poly) Derivative() Poly {
	if len(p.c) <= 1 {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c)-1)
	for i := 1; i < len(p.c); i++ {
		c[i-1] = new(big.Rat).Mul(p.c[i], new(big.Rat).SetInt64(int64(i)))
	}

	return trim(c)
}

// DivMod returns (quotient, remainder) with deg(r) < deg(d).
// Returns number.ErrDivisionByZero when d is the zero polynomial.
// Complexity: O(deg(p)·deg(d)).
func (p Poly) DivMod(d Poly) (Poly, Poly, error) {
	if d.IsZero() {
		return Poly{}, Poly{}, fmt.Errorf("Poly.DivMod: %w", number.ErrDivisionByZero)
	}
	if p.Degree() < d.Degree() {
		return Poly{}, p, nil
	}

	rem := p.Coefs()
	dd := d.Degree()
	lead := d.c[dd]
	quo := make([]*big.Rat, p.Degree()-dd+1)
	for i := range quo {
		quo[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for k := len(rem) - 1; k >= dd; k-- {
		if rem[k].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Quo(rem[k], lead)
		quo[k-dd] = f
		for j := 0; j <= dd; j++ {
			rem[k-dd+j].Sub(rem[k-dd+j], tmp.Mul(f, d.c[j]))
		}
	}

	return trim(quo), trim(rem[:dd]), nil
}

// Quo returns p / d, assuming the division is exact (remainder discarded).
func (p Poly) Quo(d Poly) (Poly, error) {
	q, _, err := p.DivMod(d)

	return q, err
}

// Monic returns p scaled so its leading coefficient is 1.
// The zero polynomial is returned unchanged.
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return p
	}

	return p.Scale(new(big.Rat).Inv(p.c[len(p.c)-1]))
}

// Equal reports coefficient-wise equality.
func (p Poly) Equal(q Poly) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if p.c[i].Cmp(q.c[i]) != 0 {
			return false
		}
	}

	return true
}

// GCD returns the monic greatest common divisor of p and q (Euclid).
// GCD(0, 0) is 0.
func GCD(p, q Poly) Poly {
	a, b := p, q
	for !b.IsZero() {
		_, r, _ := a.DivMod(b) // b != 0
		a, b = b, r
	}

	return a.Monic()
}

// String renders p in the variable x, highest degree first.
func (p Poly) String() string { return p.Format("x") }

// Format renders p in the given variable, sympy style:
//
//	lambda**2 - 2*lambda + 3
func (p Poly) Format(v string) string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	first := true
	for i := len(p.c) - 1; i >= 0; i-- {
		c := p.c[i]
		if c.Sign() == 0 {
			continue
		}
		mag := new(big.Rat).Abs(c)
		switch {
		case first && c.Sign() < 0:
			sb.WriteString("-")
		case !first && c.Sign() < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		pow := ""
		switch i {
		case 0:
		case 1:
			pow = v
		default:
			pow = fmt.Sprintf("%s**%d", v, i)
		}
		switch {
		case pow == "":
			sb.WriteString(mag.RatString())
		case mag.Cmp(big.NewRat(1, 1)) == 0:
			sb.WriteString(pow)
		default:
			sb.WriteString(mag.RatString() + "*" + pow)
		}
	}

	return sb.String()
}
