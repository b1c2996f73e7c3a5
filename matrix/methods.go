// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/eigenkit/number"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opShift     = "Shift"
	opTrace     = "Trace"
	opColumn    = "Column"
	opRREF      = "RREF"
	opNullSpace = "NullSpace"
	opCharPoly  = "CharPoly"
	opEigenvals = "Eigenvals"
	opEigvects  = "Eigenvects"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new Matrix containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): element loop over the flat buffers.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	return addSub(opAdd, a, b, false)
}

// Sub returns a new Matrix containing the element-wise difference a − b.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (*Dense, error) {
	return addSub(opSub, a, b, true)
}

// addSub computes out = a ± b. Operands are not mutated.
func addSub(tag string, a, b Matrix, negate bool) (*Dense, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Stage 2: Prepare
	da, db := toDense(a), toDense(b)
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Stage 3: Execute
	for idx := range res.data {
		if negate {
			res.data[idx] = da.data[idx].Sub(db.data[idx])
		} else {
			res.data[idx] = da.data[idx].Add(db.data[idx])
		}
	}

	return res, nil
}

// Mul returns the matrix product a × b.
// Stage 1 (Validate): nil-checks and a.Cols == b.Rows.
// Stage 2 (Execute): classic i→k→j triple loop (fixed order, deterministic).
// Complexity: O(r·n·c).
func Mul(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(fmt.Sprintf("%s(%dx%d · %dx%d)", opMul, a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrDimensionMismatch)
	}

	// Stage 2: Execute
	da, db := toDense(a), toDense(b)
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, k, j int
	for i = 0; i < da.r; i++ {
		for k = 0; k < da.c; k++ {
			aik := da.at(i, k)
			if aik.IsZero() {
				continue // skip zero contributions
			}
			for j = 0; j < db.c; j++ {
				res.set(i, j, res.at(i, j).Add(aik.Mul(db.at(k, j))))
			}
		}
	}

	return res, nil
}

// Scale returns alpha·m.
// Complexity: O(r·c).
func Scale(m Matrix, alpha number.Quad) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := toDense(m).cloneDense()
	for idx := range res.data {
		res.data[idx] = res.data[idx].Mul(alpha)
	}

	return res, nil
}

// MatVec returns y = m·x.
// Complexity: O(r·c).
func MatVec(m Matrix, x []number.Quad) ([]number.Quad, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d := toDense(m)
	y := make([]number.Quad, d.r)
	for i := 0; i < d.r; i++ {
		acc := number.Zero()
		for j := 0; j < d.c; j++ {
			acc = acc.Add(d.at(i, j).Mul(x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns mᵀ.
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d := toDense(m)
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.set(j, i, d.at(i, j))
		}
	}

	return res, nil
}

// Shift returns m − λ·I for a square m.
// Complexity: O(n²).
func Shift(m Matrix, lambda number.Quad) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opShift, err)
	}
	res := toDense(m).cloneDense()
	for i := 0; i < res.r; i++ {
		res.set(i, i, res.at(i, i).Sub(lambda))
	}

	return res, nil
}

// Trace returns Σ m[i,i] for a square m.
// Complexity: O(n).
func Trace(m Matrix) (number.Quad, error) {
	if err := ValidateSquare(m); err != nil {
		return number.Quad{}, matrixErrorf(opTrace, err)
	}
	d := toDense(m)
	acc := number.Zero()
	for i := 0; i < d.r; i++ {
		acc = acc.Add(d.at(i, i))
	}

	return acc, nil
}

// Column returns column j as a slice.
func Column(m Matrix, j int) ([]number.Quad, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d)", opColumn, j), ErrOutOfRange)
	}
	d := toDense(m)
	out := make([]number.Quad, d.r)
	for i := range out {
		out[i] = d.at(i, j)
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and identical entries.
// nil matrices are never equal.
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil || ValidateSameShape(a, b) != nil {
		return false
	}
	da, db := toDense(a), toDense(b)
	for idx := range da.data {
		if !da.data[idx].Equal(db.data[idx]) {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry of m is 0.
func IsZero(m Matrix) bool {
	if ValidateNotNil(m) != nil {
		return false
	}
	for _, v := range toDense(m).data {
		if !v.IsZero() {
			return false
		}
	}

	return true
}
