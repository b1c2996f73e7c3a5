// Package ode solves constant-coefficient linear systems x' = A·x exactly.
//
// 🚀 What it builds
//
//	For a rational square A, Derive returns the real fundamental modes
//
//	    x(t) = e^(α·t) · (Cos·cos(β·t) + Sin·sin(β·t))
//
//	read straight off the exact eigenpairs of A:
//	  • a real eigenvalue λ with eigenvector v gives α = λ, β = 0, Cos = v;
//	  • a complex pair α ± iβ (β > 0) with v = p + i·q gives two modes,
//	    (Cos, Sin) = (p, −q) and (q, p).
//
//	Mode.Verify checks a mode against A with the exact identities
//
//	    (A − αI)·Cos =  β·Sin
//	    (A − αI)·Sin = −β·Cos
//
// 📖 Textbook
//
//	Textbook reproduces the worked example for A = [[1, -2], [1, 1]] with the
//	vector pair printed in the book. Those coefficients are fixed, not derived;
//	Textbook.Check runs Verify on them so a matrix they do not fit is reported
//	with ErrTextbookMismatch instead of printed as if it were correct.
package ode
