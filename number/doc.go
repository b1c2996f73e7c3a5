// Package number provides the exact scalars used across eigenkit.
//
// 🚀 What is a Quad?
//
//	A Quad is an element of the quadratic field Q(√d):
//
//	    a + b·√d,   a, b ∈ Q,  d ∈ Z \ {0, 1}
//
//	A negative d encodes the imaginary unit, so √-2 prints as sqrt(2)*I.
//	This is exactly the arithmetic needed to express:
//	  • roots of quadratics with rational coefficients
//	  • eigenvalues of rational matrices whose characteristic polynomial
//	    splits into linear and quadratic factors over Q
//	  • eigenvectors of such eigenvalues (Gauss-Jordan stays inside Q(√d))
//
// ✨ Key features:
//   - exact big.Rat arithmetic, no rounding anywhere
//   - immutable values: every operation returns a fresh Quad
//   - sympy-compatible printing (sqrt(2), 3*sqrt(2)/2, 1 - sqrt(2)*I)
//   - strict literal parsing (ParseRat) that never evaluates input as code
//
// ⚙️ Usage:
//
//	r, err := number.ParseRat("-3/4")
//	if err != nil {
//	  // errors.Is(err, number.ErrSyntax)
//	}
//	root := number.SqrtRat(big.NewRat(-8, 1)) // 2*sqrt(2)*I
//	fmt.Println(number.FromRat(r).Add(root))  // -3/4 + 2*sqrt(2)*I
//
// Values from different fields (say √2 and √3) must not be combined in a
// single arithmetic call; doing so is a programmer error and panics.
package number
