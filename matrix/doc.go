// Package matrix provides exact dense matrices over number.Quad and the
// linear algebra the eigenkit programs need.
//
// The matrix package provides:
//
//   - Dense, a row-major implementation of the Matrix interface whose
//     entries are exact rationals or quadratic surds (never floats).
//   - Kernels: Add, Sub, Mul, Scale, MatVec, Transpose, RREF, NullSpace,
//     CharPoly (Faddeev–LeVerrier over Q).
//   - Eigen decomposition: Eigenvals / Eigenvects, exact whenever every
//     factor of the characteristic polynomial has degree ≤ 2 over Q.
//   - A strict text reader (Parse, ReadFile) for whitespace- or
//     delimiter-separated rows. Tokens go through number.ParseRat only.
//   - sympy-style printing: Matrix([[1, 0], [0, 1]]) and the indented
//     Pretty form.
//
// Matrices here are small (hand-written input files), so every kernel is a
// plain O(n³) exact loop; determinism matters more than speed.
//
// See example_test.go for usage patterns.
package matrix
