// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/eigenkit/number"
)

// divisorTrialLimit bounds the trial division used to enumerate divisors in
// RationalRoots. Integers whose square root exceeds it are only partially
// enumerated, so very large rational roots may be missed and surface as
// ErrUnsolvable instead.
const divisorTrialLimit = 1 << 16

// Factor is one square-free factor of a polynomial with its multiplicity.
type Factor struct {
	Poly         Poly
	Multiplicity int
}

// Root is an exact root with its multiplicity.
type Root struct {
	Value        number.Quad
	Multiplicity int
}

// SquareFree returns the square-free decomposition of p (Yun's algorithm):
// p = lead · Π f_i^i with each f_i monic, square-free and pairwise coprime.
// Constant factors are omitted. Degree < 1 yields an empty result.
// Complexity: O(deg²) GCD steps over Q.
func SquareFree(p Poly) []Factor {
	if p.Degree() < 1 {
		return nil
	}

	var (
		out []Factor
		dp  = p.Derivative()
		a0  = GCD(p, dp)
	)
	b, _ := p.Quo(a0)
	c, _ := dp.Quo(a0)
	d := c.Sub(b.Derivative())

	for i := 1; b.Degree() > 0; i++ {
		a := GCD(b, d)
		b, _ = b.Quo(a)
		c, _ = d.Quo(a)
		d = c.Sub(b.Derivative())
		if a.Degree() > 0 {
			out = append(out, Factor{Poly: a, Multiplicity: i})
		}
	}

	return out
}

// RationalRoots returns the distinct rational roots of p in ascending order.
//
// Stage 1: strip x^k (root 0).
// Stage 2: scale to integer coefficients.
// Stage 3: try every ±p/q with p | a0 and q | an.
func RationalRoots(p Poly) []*big.Rat {
	if p.Degree() < 1 {
		return nil
	}

	var roots []*big.Rat
	// Stage 1: zero roots.
	lo := 0
	for lo < len(p.c) && p.c[lo].Sign() == 0 {
		lo++
	}
	if lo > 0 {
		roots = append(roots, new(big.Rat))
		p = Poly{c: p.c[lo:]}
	}
	if p.Degree() < 1 {
		return roots
	}

	// Stage 2: integer coefficients.
	ints := integerCoefs(p)
	a0 := new(big.Int).Abs(ints[0])
	an := new(big.Int).Abs(ints[len(ints)-1])

	// Stage 3: candidates.
	seen := make(map[string]struct{})
	for _, num := range divisors(a0) {
		for _, den := range divisors(an) {
			for _, sign := range []int64{1, -1} {
				cand := new(big.Rat).SetFrac(new(big.Int).Mul(num, big.NewInt(sign)), den)
				key := cand.RatString()
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				if p.Eval(cand).Sign() == 0 {
					roots = append(roots, cand)
				}
			}
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Cmp(roots[j]) < 0 })

	return roots
}

// integerCoefs multiplies p by the lcm of its denominators.
func integerCoefs(p Poly) []*big.Int {
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, c := range p.c {
		den := c.Denom()
		g.GCD(nil, nil, lcm, den)
		lcm.Mul(lcm, new(big.Int).Quo(den, g))
	}
	out := make([]*big.Int, len(p.c))
	scale := new(big.Rat).SetInt(lcm)
	for i, c := range p.c {
		out[i] = new(big.Int).Set(new(big.Rat).Mul(c, scale).Num())
	}

	return out
}

// divisors returns the positive divisors of n > 0 found by trial division
// up to divisorTrialLimit (paired with their cofactors).
func divisors(n *big.Int) []*big.Int {
	if n.Sign() == 0 {
		return nil
	}
	var (
		out    []*big.Int
		q, r   = new(big.Int), new(big.Int)
		i, sq  = new(big.Int), new(big.Int)
		bounds = big.NewInt(divisorTrialLimit)
	)
	for i.SetInt64(1); i.Cmp(bounds) <= 0; i.Add(i, big.NewInt(1)) {
		if sq.Mul(i, i).Cmp(n) > 0 {
			break
		}
		q.QuoRem(n, i, r)
		if r.Sign() != 0 {
			continue
		}
		out = append(out, new(big.Int).Set(i))
		if q.Cmp(i) != 0 {
			out = append(out, new(big.Int).Set(q))
		}
	}

	return out
}

// Roots returns every root of p with its multiplicity, sorted by
// number.Compare.
//
// Rational roots are removed first, then monic quadratic factors over Q
// (QuadraticFactor), each solved with the quadratic formula.
//
// Returns ErrZeroPolynomial for p == 0 and ErrUnsolvable (wrapped with the
// offending factor) when a factor of degree ≥ 3 with no rational root and
// no quadratic factor over Q remains.
func Roots(p Poly) ([]Root, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("Roots: %w", ErrZeroPolynomial)
	}

	var out []Root
	for _, f := range SquareFree(p) {
		rest := f.Poly
		for _, r := range RationalRoots(rest) {
			out = append(out, Root{Value: number.FromRat(r), Multiplicity: f.Multiplicity})
			linear := New(new(big.Rat).Neg(r), big.NewRat(1, 1)) // x − r
			rest, _ = rest.Quo(linear)
		}

		for rest.Degree() > 2 {
			q, ok := QuadraticFactor(rest)
			if !ok {
				return nil, fmt.Errorf("Roots: factor %s: %w", rest.Format("lambda"), ErrUnsolvable)
			}
			r1, r2 := quadraticRoots(q.c[2], q.c[1], q.c[0])
			out = append(out,
				Root{Value: r1, Multiplicity: f.Multiplicity},
				Root{Value: r2, Multiplicity: f.Multiplicity},
			)
			rest, _ = rest.Quo(q)
		}

		switch rest.Degree() {
		case -1, 0:
		case 1:
			v := new(big.Rat).Quo(new(big.Rat).Neg(rest.c[0]), rest.c[1])
			out = append(out, Root{Value: number.FromRat(v), Multiplicity: f.Multiplicity})
		case 2:
			r1, r2 := quadraticRoots(rest.c[2], rest.c[1], rest.c[0])
			out = append(out,
				Root{Value: r1, Multiplicity: f.Multiplicity},
				Root{Value: r2, Multiplicity: f.Multiplicity},
			)
		default:
			return nil, fmt.Errorf("Roots: factor %s: %w", rest.Format("lambda"), ErrUnsolvable)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return number.Compare(out[i].Value, out[j].Value) < 0 })

	return out, nil
}

// QuadraticFactor returns a monic quadratic factor of p over Q, if any.
// p must have degree ≥ 3 and no rational roots (so p(0), p(±1) ≠ 0 after
// scaling).
//
// Stage 1: substitute x = y/L so g(y) = L^n·m(y/L) is monic with integer
// coefficients (m = monic p, L = lcm of its denominators). By Gauss's lemma
// every monic factor of g over Q has integer coefficients.
// Stage 2: a factor y² + a·y + b has b | g(0) and (1 + a + b) | g(1);
// (1 − a + b) | g(−1) prunes the candidates (Kronecker).
// Stage 3: confirm by exact division and map back to x.
// Complexity: O(d(g(0))·d(g(1))) trial divisions, d = number of divisors.
func QuadraticFactor(p Poly) (Poly, bool) {
	if p.Degree() < 3 {
		return Poly{}, false
	}

	// Stage 1: integer monic g.
	m := p.Monic()
	n := m.Degree()
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, c := range m.c {
		den := c.Denom()
		g.GCD(nil, nil, lcm, den)
		lcm.Mul(lcm, new(big.Int).Quo(den, g))
	}
	scale := new(big.Rat).SetInt(lcm)
	gc := make([]*big.Rat, n+1)
	pow := big.NewRat(1, 1)
	for k := n; k >= 0; k-- {
		gc[k] = new(big.Rat).Mul(m.c[k], pow)
		pow.Mul(pow, scale)
	}
	gp := Poly{c: gc}

	g0 := gp.c[0].Num()
	g1 := gp.Eval(big.NewRat(1, 1)).Num()
	gm1 := gp.Eval(big.NewRat(-1, 1)).Num()
	if g0.Sign() == 0 || g1.Sign() == 0 || gm1.Sign() == 0 {
		return Poly{}, false
	}

	// Stage 2: candidates.
	one := big.NewInt(1)
	rem := new(big.Int)
	for _, b := range signedDivisors(g0) {
		for _, e := range signedDivisors(g1) {
			a := new(big.Int).Sub(e, one)
			a.Sub(a, b) // 1 + a + b = e
			dm := new(big.Int).Sub(one, a)
			dm.Add(dm, b) // 1 − a + b
			if dm.Sign() == 0 || rem.Rem(gm1, dm).Sign() != 0 {
				continue
			}

			// Stage 3: exact division.
			q := New(new(big.Rat).SetInt(b), new(big.Rat).SetInt(a), big.NewRat(1, 1))
			_, r, err := gp.DivMod(q)
			if err != nil || !r.IsZero() {
				continue
			}
			// y² + a·y + b with y = L·x, divided by L²
			s2 := new(big.Rat).Mul(scale, scale)
			return New(
				new(big.Rat).Quo(new(big.Rat).SetInt(b), s2),
				new(big.Rat).Quo(new(big.Rat).SetInt(a), scale),
				big.NewRat(1, 1),
			), true
		}
	}

	return Poly{}, false
}

// signedDivisors returns ±d for every positive divisor d of |n|.
func signedDivisors(n *big.Int) []*big.Int {
	pos := divisors(new(big.Int).Abs(n))
	out := make([]*big.Int, 0, 2*len(pos))
	for _, d := range pos {
		out = append(out, d, new(big.Int).Neg(d))
	}

	return out
}
