// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/eigenkit/number"
)

// SolveQuadratic returns the distinct roots of a·x² + b·x + c = 0 in
// ascending order (real part, then imaginary part). A double root is
// returned once.
//
// Returns ErrDegenerate when a == 0.
// Complexity: O(1) big-number operations plus radicand reduction.
func SolveQuadratic(a, b, c *big.Rat) ([]number.Quad, error) {
	if a == nil || a.Sign() == 0 {
		return nil, fmt.Errorf("SolveQuadratic: %w", ErrDegenerate)
	}
	if b == nil {
		b = new(big.Rat)
	}
	if c == nil {
		c = new(big.Rat)
	}

	r1, r2 := quadraticRoots(a, b, c)
	if r1.Equal(r2) {
		return []number.Quad{r1}, nil
	}
	roots := []number.Quad{r1, r2}
	sort.SliceStable(roots, func(i, j int) bool { return number.Compare(roots[i], roots[j]) < 0 })

	return roots, nil
}

// quadraticRoots applies x = (−b ± √(b² − 4ac)) / 2a. a must be non-zero.
// The two results are equal when the discriminant is zero.
func quadraticRoots(a, b, c *big.Rat) (number.Quad, number.Quad) {
	// disc = b² − 4ac
	disc := new(big.Rat).Mul(b, b)
	fourAC := new(big.Rat).Mul(a, c)
	fourAC.Mul(fourAC, big.NewRat(4, 1))
	disc.Sub(disc, fourAC)

	twoA := new(big.Rat).Mul(a, big.NewRat(2, 1))
	inv := new(big.Rat).Inv(twoA)

	center := number.FromRat(new(big.Rat).Neg(b)).Scale(inv)
	spread := number.SqrtRat(disc).Scale(inv)

	return center.Sub(spread), center.Add(spread)
}
