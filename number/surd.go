// SPDX-License-Identifier: MIT

package number

import "math/big"

// squareTrialLimit bounds the trial division used to pull square factors out
// of a radicand. A cofactor left above the limit is still exact; it is just
// not guaranteed square-free unless it is itself a perfect square.
const squareTrialLimit = 1 << 16

// extractSquare splits n into k²·m and returns (k, m) with k > 0 and
// sign(m) == sign(n). Input n is not modified.
// Complexity: O(squareTrialLimit) big.Int divisions in the worst case.
func extractSquare(n *big.Int) (k, m *big.Int) {
	k, m = big.NewInt(1), big.NewInt(1)
	if n.Sign() == 0 {
		return k, new(big.Int)
	}
	rest := new(big.Int).Abs(n)

	var (
		f       = new(big.Int)
		ff      = new(big.Int)
		q, r    = new(big.Int), new(big.Int)
		divisor int64
	)
	for divisor = 2; divisor <= squareTrialLimit; divisor++ {
		if divisor > 2 && divisor%2 == 0 {
			continue // odd trial divisors only after 2
		}
		f.SetInt64(divisor)
		if ff.Mul(f, f).Cmp(rest) > 0 {
			break
		}
		exp := 0
		for {
			q.QuoRem(rest, f, r)
			if r.Sign() != 0 {
				break
			}
			rest.Set(q)
			exp++
		}
		for i := 0; i < exp/2; i++ {
			k.Mul(k, f)
		}
		if exp%2 == 1 {
			m.Mul(m, f)
		}
	}

	// Whatever is left may still be a perfect square of a large prime.
	if s := new(big.Int).Sqrt(rest); new(big.Int).Mul(s, s).Cmp(rest) == 0 {
		k.Mul(k, s)
	} else {
		m.Mul(m, rest)
	}
	if n.Sign() < 0 {
		m.Neg(m)
	}

	return k, m
}

// SqrtRat returns the principal square root of r as an exact Quad.
//
//	√(p/q) = √(p·q)/q = (k/q)·√m
//
// Negative inputs give imaginary results: SqrtRat(-4) = 2*I.
func SqrtRat(r *big.Rat) Quad {
	r = ratOrZero(r)
	if r.Sign() == 0 {
		return Zero()
	}
	den := new(big.Int).Set(r.Denom())
	n := new(big.Int).Mul(r.Num(), den)
	k, m := extractSquare(n)
	coef := new(big.Rat).SetFrac(k, den)

	return newQuad(nil, coef, m)
}
