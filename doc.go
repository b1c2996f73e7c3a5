// Package eigenkit is a small toolkit for exact linear algebra at the
// command line: eigenvalues and eigenvectors of rational matrices, roots of
// quadratic equations, and a worked 2×2 linear ODE system.
//
// 🚀 What is eigenkit?
//
//	Three programs and the packages behind them:
//		• matrix2eigens – read a matrix file, print eigenvalues & eigenvectors
//		• quadratic     – solve a*x^2 + b*x + c = 0
//		• odesystem     – the textbook solution of x' = A·x, A = [[1, -2], [1, 1]]
//		• eigenkit      – the same three as subcommands of one binary
//
// ✨ Why exact?
//
//   - No floats – every value is a rational or a + b*sqrt(d), printed as
//     1 - sqrt(2)*I rather than 0.99999…
//   - Safe input – matrix entries and coefficients go through a strict
//     literal parser, never an expression evaluator
//   - Typed errors – every failure wraps a package sentinel you can match
//     with errors.Is
//
// The code is organized as:
//
//	number/   — Quad: exact a + b*sqrt(d), parsing & sympy-style printing
//	poly/     — polynomials over Q: square-free split, rational roots, quadratic formula
//	matrix/   — exact Dense matrices, RREF, null space, CharPoly, Eigenvals/Eigenvects, file reader
//	ode/      — real fundamental solutions of x' = A·x and the textbook walkthrough
//	internal/ — cli (cobra commands), config (viper), logging (slog)
//	cmd/      — matrix2eigens, quadratic, odesystem, eigenkit
//
// Quick example:
//
//	$ printf '1 0\n0 1\n' > id.txt
//	$ matrix2eigens id.txt
//	Matrix:
//	Matrix([[1, 0], [0, 1]])
//	...
//
//	go install github.com/katalvlaran/eigenkit/cmd/...@latest
package eigenkit
