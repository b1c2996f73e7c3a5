// Package poly implements polynomials over Q and the exact root finding the
// eigen solver and the quadratic command rely on.
//
// Roots are found in three steps:
//
//  1. SquareFree splits p into square-free factors with multiplicities (Yun).
//  2. RationalRoots peels every rational root off each factor
//     (rational root theorem on an integer-scaled copy).
//  3. Monic quadratic factors over Q are split off what is left
//     (QuadraticFactor, Kronecker's method on an integer-scaled copy) and
//     solved with the quadratic formula into number.Quad values.
//
// A leftover factor of degree ≥ 3 with no rational root and no quadratic
// factor over Q is reported as ErrUnsolvable rather than approximated.
package poly
