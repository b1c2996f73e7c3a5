// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"math"
	"math/big"
)

// Quad is an exact value a + b·√d with a, b rational.
//
// Invariants (kept by every constructor):
//   - b == nil or b == 0 ⇔ the value is rational; d is nil in that case.
//   - d is never 0 or 1 and carries no small square factors.
//   - a, b and d are never mutated after construction.
//
// The zero value is a valid 0.
type Quad struct {
	a *big.Rat // rational part
	b *big.Rat // coefficient of √d
	d *big.Int // radicand; negative means imaginary
}

// ratOrZero treats a nil *big.Rat as 0 so the zero Quad works everywhere.
func ratOrZero(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}

	return r
}

// newQuad builds a Quad from parts it takes ownership of.
// d must already be reduced; b==0 collapses to a rational.
func newQuad(a, b *big.Rat, d *big.Int) Quad {
	a = ratOrZero(a)
	if b == nil || b.Sign() == 0 || d == nil || d.Sign() == 0 {
		return Quad{a: a}
	}
	if d.IsInt64() && d.Int64() == 1 {
		return Quad{a: new(big.Rat).Add(a, b)}
	}

	return Quad{a: a, b: b, d: d}
}

// Zero returns 0.
func Zero() Quad { return Quad{a: new(big.Rat)} }

// One returns 1.
func One() Quad { return FromInt(1) }

// FromInt returns the integer n.
func FromInt(n int64) Quad { return Quad{a: new(big.Rat).SetInt64(n)} }

// FromFrac returns p/q. It panics if q == 0, like big.NewRat.
func FromFrac(p, q int64) Quad { return Quad{a: big.NewRat(p, q)} }

// FromRat returns a copy of r as a Quad.
func FromRat(r *big.Rat) Quad { return Quad{a: new(big.Rat).Set(ratOrZero(r))} }

// ImagUnit returns I = √-1.
func ImagUnit() Quad { return newQuad(nil, big.NewRat(1, 1), big.NewInt(-1)) }

// NewQuad returns a + b·√d. The radicand is reduced (√8 = 2·√2), so callers
// may pass any integer d. Inputs are copied.
func NewQuad(a, b *big.Rat, d *big.Int) Quad {
	a = new(big.Rat).Set(ratOrZero(a))
	if b == nil || b.Sign() == 0 || d == nil || d.Sign() == 0 {
		return Quad{a: a}
	}
	// √d = k·√m
	k, m := extractSquare(d)
	coef := new(big.Rat).Mul(b, new(big.Rat).SetInt(k))

	return newQuad(a, coef, m)
}

// Parts returns copies of (a, b, d). d is 0 for rational values.
func (x Quad) Parts() (a, b *big.Rat, d *big.Int) {
	a = new(big.Rat).Set(ratOrZero(x.a))
	b = new(big.Rat).Set(ratOrZero(x.b))
	d = new(big.Int)
	if x.d != nil {
		d.Set(x.d)
	}

	return a, b, d
}

// commonRadicand returns the radicand shared by x and y.
// Mixing two different non-rational fields is a programmer error.
func commonRadicand(x, y Quad) *big.Int {
	switch {
	case x.d == nil:
		return y.d
	case y.d == nil:
		return x.d
	case x.d.Cmp(y.d) == 0:
		return x.d
	}
	panic(fmt.Sprintf("number: mixed radicands sqrt(%s) and sqrt(%s)", x.d, y.d))
}

// compatible reports whether x and y live in the same field.
func compatible(x, y Quad) bool {
	return x.d == nil || y.d == nil || x.d.Cmp(y.d) == 0
}

// SameField reports whether all values can be combined arithmetically:
// every non-rational value carries the same radicand.
func SameField(xs ...Quad) bool {
	var ref Quad
	for _, x := range xs {
		if x.d == nil {
			continue
		}
		if ref.d == nil {
			ref = x
			continue
		}
		if !compatible(ref, x) {
			return false
		}
	}

	return true
}

// Add returns x + y.
func (x Quad) Add(y Quad) Quad {
	d := commonRadicand(x, y)
	a := new(big.Rat).Add(ratOrZero(x.a), ratOrZero(y.a))
	b := new(big.Rat).Add(ratOrZero(x.b), ratOrZero(y.b))

	return newQuad(a, b, d)
}

// Sub returns x − y.
func (x Quad) Sub(y Quad) Quad { return x.Add(y.Neg()) }

// Neg returns −x.
func (x Quad) Neg() Quad {
	a := new(big.Rat).Neg(ratOrZero(x.a))
	b := new(big.Rat).Neg(ratOrZero(x.b))

	return newQuad(a, b, x.d)
}

// Mul returns x · y.
//
//	(a1 + b1√d)(a2 + b2√d) = (a1a2 + b1b2·d) + (a1b2 + a2b1)√d
func (x Quad) Mul(y Quad) Quad {
	d := commonRadicand(x, y)
	a1, b1 := ratOrZero(x.a), ratOrZero(x.b)
	a2, b2 := ratOrZero(y.a), ratOrZero(y.b)

	a := new(big.Rat).Mul(a1, a2)
	if d != nil {
		bb := new(big.Rat).Mul(b1, b2)
		bb.Mul(bb, new(big.Rat).SetInt(d))
		a.Add(a, bb)
	}
	b := new(big.Rat).Mul(a1, b2)
	b.Add(b, new(big.Rat).Mul(a2, b1))

	return newQuad(a, b, d)
}

// Scale returns r · x.
func (x Quad) Scale(r *big.Rat) Quad {
	a := new(big.Rat).Mul(ratOrZero(x.a), r)
	b := new(big.Rat).Mul(ratOrZero(x.b), r)

	return newQuad(a, b, x.d)
}

// Inv returns 1/x.
//
//	1/(a + b√d) = (a − b√d) / (a² − b²d)
//
// Returns ErrDivisionByZero when x == 0.
func (x Quad) Inv() (Quad, error) {
	if x.IsZero() {
		return Quad{}, fmt.Errorf("Quad.Inv: %w", ErrDivisionByZero)
	}
	a, b := ratOrZero(x.a), ratOrZero(x.b)
	if x.d == nil {
		return Quad{a: new(big.Rat).Inv(a)}, nil
	}
	// a² − b²d is non-zero because √d is irrational.
	den := new(big.Rat).Mul(a, a)
	bd := new(big.Rat).Mul(b, b)
	bd.Mul(bd, new(big.Rat).SetInt(x.d))
	den.Sub(den, bd)

	na := new(big.Rat).Quo(a, den)
	nb := new(big.Rat).Quo(new(big.Rat).Neg(b), den)

	return newQuad(na, nb, x.d), nil
}

// Div returns x / y or ErrDivisionByZero.
func (x Quad) Div(y Quad) (Quad, error) {
	inv, err := y.Inv()
	if err != nil {
		return Quad{}, fmt.Errorf("Quad.Div: %w", ErrDivisionByZero)
	}

	return x.Mul(inv), nil
}

// Conj returns the complex conjugate. Real values are returned unchanged.
func (x Quad) Conj() Quad {
	if x.IsReal() {
		return x
	}

	return newQuad(x.a, new(big.Rat).Neg(x.b), x.d)
}

// IsZero reports x == 0.
func (x Quad) IsZero() bool {
	return ratOrZero(x.a).Sign() == 0 && ratOrZero(x.b).Sign() == 0
}

// IsRational reports whether x ∈ Q.
func (x Quad) IsRational() bool { return x.d == nil }

// IsReal reports whether x has no imaginary part.
func (x Quad) IsReal() bool { return x.d == nil || x.d.Sign() > 0 }

// Rat returns x as a rational when it is one.
func (x Quad) Rat() (*big.Rat, bool) {
	if !x.IsRational() {
		return nil, false
	}

	return new(big.Rat).Set(ratOrZero(x.a)), true
}

// Re returns the real part.
func (x Quad) Re() Quad {
	if x.IsReal() {
		return x
	}

	return Quad{a: new(big.Rat).Set(ratOrZero(x.a))}
}

// Im returns the imaginary part as a real Quad (b·√|d| for negative d).
func (x Quad) Im() Quad {
	if x.IsReal() {
		return Zero()
	}

	return newQuad(nil, new(big.Rat).Set(x.b), new(big.Int).Neg(x.d))
}

// Sign returns −1, 0 or +1 for a real x. For a non-real x it reports the
// sign of the real part.
func (x Quad) Sign() int {
	if !x.IsReal() {
		return ratOrZero(x.a).Sign()
	}
	a, b := ratOrZero(x.a), ratOrZero(x.b)
	sa, sb := a.Sign(), b.Sign()
	switch {
	case sb == 0:
		return sa
	case sa == 0, sa == sb:
		return sb
	}
	// Opposite signs: the larger of a² and b²d wins.
	a2 := new(big.Rat).Mul(a, a)
	b2d := new(big.Rat).Mul(b, b)
	b2d.Mul(b2d, new(big.Rat).SetInt(x.d))
	if a2.Cmp(b2d) > 0 {
		return sa
	}

	return sb
}

// Abs returns |x| for a real x. Non-real values are returned unchanged.
func (x Quad) Abs() Quad {
	if x.IsReal() && x.Sign() < 0 {
		return x.Neg()
	}

	return x
}

// Equal reports exact equality.
func (x Quad) Equal(y Quad) bool {
	if ratOrZero(x.a).Cmp(ratOrZero(y.a)) != 0 {
		return false
	}
	if ratOrZero(x.b).Cmp(ratOrZero(y.b)) != 0 {
		return false
	}
	if x.d == nil || y.d == nil {
		return x.d == nil && y.d == nil
	}

	return x.d.Cmp(y.d) == 0
}

// Float64 returns approximate (real, imaginary) parts.
func (x Quad) Float64() (re, im float64) {
	re, _ = ratOrZero(x.a).Float64()
	if x.d == nil {
		return re, 0
	}
	root := sqrtAbs(x.d)
	coef, _ := x.b.Float64()
	if x.d.Sign() > 0 {
		return re + coef*root, 0
	}

	return re, coef * root
}

// sqrtAbs approximates √|d| with big.Float to keep huge radicands finite.
func sqrtAbs(d *big.Int) float64 {
	f := new(big.Float).SetInt(new(big.Int).Abs(d))
	f.Sqrt(f)
	v, _ := f.Float64()
	if math.IsInf(v, 0) {
		return math.MaxFloat64
	}

	return v
}

// Compare orders x and y by real part, then imaginary part.
// Values in the same field compare exactly. Values from different fields
// are never equal; they are ordered by their float approximations, and by
// radicand when those collide. Returns −1, 0 or +1.
func Compare(x, y Quad) int {
	if compatible(x, y) {
		if s := x.Re().Sub(y.Re()).Sign(); s != 0 {
			return s
		}

		return x.Im().Sub(y.Im()).Sign()
	}
	xr, xi := x.Float64()
	yr, yi := y.Float64()
	switch {
	case xr < yr:
		return -1
	case xr > yr:
		return 1
	case xi < yi:
		return -1
	case xi > yi:
		return 1
	}

	return x.d.Cmp(y.d)
}
